package promoteclient

import (
	"net/http"

	"github.com/pkg/errors"
	wbdomain "github.com/vfg2006/wb-promote-cli/infrastructure/integrator/wb/domain"
)

const minBidsPath = "/api/advert/v1/bids/min"

// GetMinBids busca os pisos de lance dos produtos de uma campanha
func (c *WBClient) GetMinBids(request *wbdomain.MinBidsRequest) (*wbdomain.MinBidsResponse, error) {
	response := &wbdomain.MinBidsResponse{}
	if err := c.doJSON(http.MethodPost, minBidsPath, nil, request, response); err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar lances mínimos da campanha %d", request.AdvertID)
	}

	return response, nil
}
