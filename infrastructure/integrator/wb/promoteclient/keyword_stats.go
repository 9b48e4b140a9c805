package promoteclient

import (
	"net/http"

	"github.com/pkg/errors"
	wbdomain "github.com/vfg2006/wb-promote-cli/infrastructure/integrator/wb/domain"
)

const keywordStatsPath = "/adv/v1/normquery/stats"

// GetKeywordStats busca as estatísticas por palavra-chave das campanhas e
// datas pedidas
func (c *WBClient) GetKeywordStats(request *wbdomain.KeywordStatsRequest) (*wbdomain.KeywordStatsResponse, error) {
	response := &wbdomain.KeywordStatsResponse{}
	if err := c.doJSON(http.MethodPost, keywordStatsPath, nil, request, response); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar estatísticas por palavra-chave")
	}

	return response, nil
}
