package optimizing

import (
	"fmt"
	"math"
	"sort"

	"github.com/vfg2006/wb-promote-cli/internal/domain"
	"github.com/vfg2006/wb-promote-cli/pkg/utils"
)

// BudgetPlannerConfig parametriza o planejador de depósitos. MaxCPARub e
// MinROAS são guardas opcionais: campanhas fora da meta não recebem verba.
type BudgetPlannerConfig struct {
	TargetRunwayDays  float64
	MinSpendPerDayRub float64
	RoundToKopecks    int64
	MinTopUpKopecks   int64
	MaxCPARub         *float64
	MinROAS           *float64
}

// PlanBudgetTopUps projeta a autonomia de cada campanha a partir do gasto
// médio diário do período e sugere depósitos para as que ficariam sem verba
// antes da meta. A lista sai ordenada da mais urgente para a menos: maior
// gasto diário primeiro, menor autonomia como desempate.
func PlanBudgetTopUps(
	campaigns []domain.Campaign,
	stats map[int64]domain.StatRecord,
	budgets map[int64]int64,
	periodDays int,
	cfg *BudgetPlannerConfig,
) []domain.BudgetTopUpPlan {
	if periodDays < 1 {
		periodDays = 1
	}

	plans := make([]domain.BudgetTopUpPlan, 0)

	for i := range campaigns {
		campaign := &campaigns[i]
		stat := stats[campaign.ID]
		metrics := CampaignMetricsFromStat(stat)

		spendPerDayRub := stat.SpendRub / float64(periodDays)
		if spendPerDayRub < cfg.MinSpendPerDayRub {
			continue
		}
		if cfg.MaxCPARub != nil && metrics.CPARub != nil && *metrics.CPARub > *cfg.MaxCPARub {
			continue
		}
		if cfg.MinROAS != nil && metrics.ROAS != nil && *metrics.ROAS < *cfg.MinROAS {
			continue
		}

		spendPerDayKopecks := spendPerDayRub * 100
		if spendPerDayKopecks <= 0 {
			continue
		}

		runwayDays := float64(budgets[campaign.ID]) / spendPerDayKopecks
		if runwayDays >= cfg.TargetRunwayDays {
			continue
		}

		neededKopecks := math.Max(0, (cfg.TargetRunwayDays-runwayDays)*spendPerDayKopecks)
		suggested := utils.RoundUpToStep(
			int64(math.Ceil(math.Max(neededKopecks, float64(cfg.MinTopUpKopecks)))),
			cfg.RoundToKopecks,
		)

		plans = append(plans, domain.BudgetTopUpPlan{
			CampaignID:            campaign.ID,
			Name:                  campaign.Name,
			Status:                campaign.Status,
			PaymentType:           campaign.PaymentType,
			SpendPerDayRub:        utils.RoundWithTwoDecimalPlace(spendPerDayRub),
			CurrentBudgetKopecks:  budgets[campaign.ID],
			RunwayDays:            utils.RoundWithTwoDecimalPlace(runwayDays),
			SuggestedTopUpKopecks: suggested,
			Reason:                fmt.Sprintf("runway %.2fd < target %.2fd", runwayDays, cfg.TargetRunwayDays),
			Metrics:               metrics,
		})
	}

	sort.SliceStable(plans, func(i, j int) bool {
		if plans[i].SpendPerDayRub != plans[j].SpendPerDayRub {
			return plans[i].SpendPerDayRub > plans[j].SpendPerDayRub
		}
		return plans[i].RunwayDays < plans[j].RunwayDays
	})

	return plans
}
