package domain

// BudgetTopUpPlan é a sugestão de depósito de orçamento de uma campanha.
// Só é emitido quando a autonomia projetada fica abaixo da meta e o gasto
// médio diário atinge o piso configurado.
type BudgetTopUpPlan struct {
	CampaignID            int64           `json:"campaign_id"`
	Name                  string          `json:"name"`
	Status                int             `json:"status"`
	PaymentType           string          `json:"payment_type"`
	SpendPerDayRub        float64         `json:"spend_per_day_rub"`
	CurrentBudgetKopecks  int64           `json:"current_budget_kopecks"`
	RunwayDays            float64         `json:"runway_days"`
	SuggestedTopUpKopecks int64           `json:"suggested_topup_kopecks"`
	Reason                string          `json:"reason"`
	Metrics               CampaignMetrics `json:"metrics"`
}
