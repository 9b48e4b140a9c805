package optimizing

import (
	"math"
	"sort"

	"github.com/vfg2006/wb-promote-cli/internal/domain"
	"github.com/vfg2006/wb-promote-cli/pkg/utils"
)

const (
	// badQueryMinClicks é o mínimo de cliques para uma linha diária de
	// palavra-chave sem pedidos entrar na lista de gasto desperdiçado
	badQueryMinClicks = 10

	// badQueryLimit é o tamanho máximo da lista de gasto desperdiçado
	badQueryLimit = 5
)

// productAccumulator acumula as linhas de um par (campanha, produto) antes
// da finalização
type productAccumulator struct {
	views   float64
	clicks  float64
	orders  float64
	baskets float64
	spend   float64
	rows    int

	// Posição média ponderada: peso = views da linha, ou cliques quando a
	// linha não tem views. Linhas sem posição ou sem peso ficam de fora.
	weightedPosSum float64
	posWeight      float64

	badQueries []domain.BadQuery
}

// AggregateProductPerformance agrupa as linhas diárias de palavra-chave por
// par (campanha, produto) e finaliza as razões derivadas de cada grupo
func AggregateProductPerformance(rows []domain.KeywordStatRow) map[domain.ProductKey]*domain.ProductPerformance {
	accumulators := make(map[domain.ProductKey]*productAccumulator)

	for i := range rows {
		row := &rows[i]
		key := domain.ProductKey{CampaignID: row.CampaignID, ProductID: row.ProductID}

		acc := accumulators[key]
		if acc == nil {
			acc = &productAccumulator{}
			accumulators[key] = acc
		}

		acc.views += row.Views
		acc.clicks += row.Clicks
		acc.orders += row.Orders
		acc.baskets += row.Baskets
		acc.spend += row.SpendRub
		acc.rows++

		if row.AvgPos != nil {
			weight := row.Views
			if weight <= 0 {
				weight = row.Clicks
			}
			if weight > 0 {
				acc.weightedPosSum += *row.AvgPos * weight
				acc.posWeight += weight
			}
		}

		// Cada linha diária é avaliada isoladamente: uma palavra-chave que
		// queimou verba num dia entra na lista mesmo que tenha convertido
		// em outro dia
		if row.Query != "" && row.Clicks >= badQueryMinClicks && row.Orders <= 0 && row.SpendRub > 0 {
			acc.badQueries = append(acc.badQueries, domain.BadQuery{
				Query:    row.Query,
				Clicks:   int64(math.Round(row.Clicks)),
				SpendRub: utils.RoundWithTwoDecimalPlace(row.SpendRub),
			})
		}
	}

	performances := make(map[domain.ProductKey]*domain.ProductPerformance, len(accumulators))
	for key, acc := range accumulators {
		performances[key] = finalizeProduct(key, acc)
	}

	return performances
}

func finalizeProduct(key domain.ProductKey, acc *productAccumulator) *domain.ProductPerformance {
	perf := &domain.ProductPerformance{
		CampaignID: key.CampaignID,
		ProductID:  key.ProductID,
		Views:      int64(math.Round(acc.views)),
		Clicks:     int64(math.Round(acc.clicks)),
		Orders:     int64(math.Round(acc.orders)),
		Baskets:    int64(math.Round(acc.baskets)),
		SpendRub:   utils.RoundWithTwoDecimalPlace(acc.spend),
		QueryRows:  acc.rows,
		BadQueries: sortBadQueries(acc.badQueries),
	}

	if acc.views > 0 {
		perf.CTR = utils.Float64Ptr(utils.RoundWithTwoDecimalPlace(acc.clicks / acc.views * 100))
	}
	if acc.clicks > 0 {
		perf.CPCRub = utils.Float64Ptr(utils.RoundWithTwoDecimalPlace(acc.spend / acc.clicks))
	}
	if acc.orders > 0 {
		perf.CPARub = utils.Float64Ptr(utils.RoundWithTwoDecimalPlace(acc.spend / acc.orders))
	}
	if acc.posWeight > 0 {
		perf.AvgPos = utils.Float64Ptr(utils.RoundWithTwoDecimalPlace(acc.weightedPosSum / acc.posWeight))
	}

	return perf
}

// sortBadQueries ordena os candidatos de gasto desperdiçado do maior gasto
// para o menor, cliques como desempate, e limita a lista a badQueryLimit
func sortBadQueries(bad []domain.BadQuery) []domain.BadQuery {
	if bad == nil {
		return make([]domain.BadQuery, 0)
	}

	sort.SliceStable(bad, func(i, j int) bool {
		if bad[i].SpendRub != bad[j].SpendRub {
			return bad[i].SpendRub > bad[j].SpendRub
		}
		return bad[i].Clicks > bad[j].Clicks
	})

	if len(bad) > badQueryLimit {
		bad = bad[:badQueryLimit]
	}

	return bad
}
