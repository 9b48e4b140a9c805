package promoteclient

import (
	"net/http"

	"github.com/pkg/errors"
	wbdomain "github.com/vfg2006/wb-promote-cli/infrastructure/integrator/wb/domain"
)

const bidsPatchPath = "/api/advert/v1/bids"

// PatchBids submete mudanças de lance. A resposta da API não tem formato
// estável documentado, então é devolvida como veio para o relatório.
func (c *WBClient) PatchBids(request *wbdomain.BidsPatchRequest) (any, error) {
	var response any
	if err := c.doJSON(http.MethodPatch, bidsPatchPath, nil, request, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao submeter mudanças de lance")
	}

	return response, nil
}
