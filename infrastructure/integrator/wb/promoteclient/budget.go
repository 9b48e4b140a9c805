package promoteclient

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	wbdomain "github.com/vfg2006/wb-promote-cli/infrastructure/integrator/wb/domain"
)

const budgetPath = "/adv/v1/budget"

// GetBudget busca o orçamento restante de uma campanha, em copeques
func (c *WBClient) GetBudget(campaignID int64) (*wbdomain.BudgetResponse, error) {
	query := url.Values{}
	query.Set("id", strconv.FormatInt(campaignID, 10))

	response := &wbdomain.BudgetResponse{}
	if err := c.doJSON(http.MethodGet, budgetPath, query, nil, response); err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar orçamento da campanha %d", campaignID)
	}

	return response, nil
}
