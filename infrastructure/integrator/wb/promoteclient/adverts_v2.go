package promoteclient

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	wbdomain "github.com/vfg2006/wb-promote-cli/infrastructure/integrator/wb/domain"
)

const advertsPath = "/adv/v2/adverts"

// GetAdverts busca as configurações das campanhas. Sem ids, a API lista as
// campanhas filtradas por status; paymentType vazio não filtra por tipo.
func (c *WBClient) GetAdverts(ids []int64, statuses []int, paymentType string) (*wbdomain.AdvertsResponse, error) {
	query := url.Values{}
	if len(ids) > 0 {
		query.Set("ids", joinInt64(ids))
	}
	if len(statuses) > 0 {
		query.Set("statuses", joinInt(statuses))
	}
	if paymentType != "" {
		query.Set("payment_type", paymentType)
	}

	response := &wbdomain.AdvertsResponse{}
	if err := c.doJSON(http.MethodGet, advertsPath, query, nil, response); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar campanhas")
	}

	return response, nil
}

func joinInt64(values []int64) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strconv.FormatInt(v, 10))
	}
	return strings.Join(parts, ",")
}

func joinInt(values []int) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strconv.Itoa(v))
	}
	return strings.Join(parts, ",")
}
