package optimizing

import (
	"github.com/vfg2006/wb-promote-cli/internal/domain"
	"github.com/vfg2006/wb-promote-cli/pkg/utils"
)

// CampaignMetricsFromStat deriva as razões de um registro bruto do período.
// Denominador zero produz razão nil, nunca Inf ou NaN.
func CampaignMetricsFromStat(stat domain.StatRecord) domain.CampaignMetrics {
	metrics := domain.CampaignMetrics{
		Views:      stat.Views,
		Clicks:     stat.Clicks,
		Orders:     stat.Orders,
		SpendRub:   utils.RoundWithTwoDecimalPlace(stat.SpendRub),
		RevenueRub: utils.RoundWithTwoDecimalPlace(stat.RevenueRub),
	}

	if stat.Views > 0 {
		metrics.CTR = utils.Float64Ptr(utils.RoundWithTwoDecimalPlace(
			float64(stat.Clicks) / float64(stat.Views) * 100,
		))
	}
	if stat.Clicks > 0 {
		metrics.CPCRub = utils.Float64Ptr(utils.RoundWithTwoDecimalPlace(
			stat.SpendRub / float64(stat.Clicks),
		))
	}
	if stat.Orders > 0 {
		metrics.CPARub = utils.Float64Ptr(utils.RoundWithTwoDecimalPlace(
			stat.SpendRub / float64(stat.Orders),
		))
	}
	if stat.SpendRub > 0 {
		metrics.ROAS = utils.Float64Ptr(utils.RoundWithTwoDecimalPlace(
			stat.RevenueRub / stat.SpendRub,
		))
	}
	if stat.RevenueRub > 0 {
		metrics.ACOS = utils.Float64Ptr(utils.RoundWithTwoDecimalPlace(
			stat.SpendRub / stat.RevenueRub * 100,
		))
	}

	return metrics
}
