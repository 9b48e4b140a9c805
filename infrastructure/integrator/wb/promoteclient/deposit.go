package promoteclient

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	wbdomain "github.com/vfg2006/wb-promote-cli/infrastructure/integrator/wb/domain"
)

const depositPath = "/adv/v1/budget/deposit"

// DepositBudget deposita amountKopecks no orçamento de uma campanha
func (c *WBClient) DepositBudget(campaignID int64, amountKopecks int64) (any, error) {
	query := url.Values{}
	query.Set("id", strconv.FormatInt(campaignID, 10))

	var response any
	request := &wbdomain.DepositRequest{Sum: amountKopecks}
	if err := c.doJSON(http.MethodPost, depositPath, query, request, &response); err != nil {
		return nil, errors.Wrapf(err, "erro ao depositar orçamento na campanha %d", campaignID)
	}

	return response, nil
}
