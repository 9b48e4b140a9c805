package promoteclient

import (
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	wbdomain "github.com/vfg2006/wb-promote-cli/infrastructure/integrator/wb/domain"
)

const fullStatsPath = "/adv/v3/fullstats"

// GetFullStats busca as métricas agregadas das campanhas no período fechado
// [beginDate, endDate], datas no formato YYYY-MM-DD
func (c *WBClient) GetFullStats(ids []int64, beginDate, endDate string) ([]wbdomain.FullStatsItem, error) {
	query := url.Values{}
	query.Set("ids", joinInt64(ids))
	query.Set("beginDate", beginDate)
	query.Set("endDate", endDate)

	items := []wbdomain.FullStatsItem{}
	if err := c.doJSON(http.MethodGet, fullStatsPath, query, nil, &items); err != nil {
		return nil, errors.Wrap(err, "erro ao buscar estatísticas das campanhas")
	}

	return items, nil
}
