package domain

// CampaignMetrics agrega contadores brutos e razões derivadas de um período.
// Toda razão é nil (indefinida) quando o denominador é zero ou o conjunto de
// dados do numerador está ausente, nunca divisão por zero, Inf ou NaN.
type CampaignMetrics struct {
	Views      int64    `json:"views"`
	Clicks     int64    `json:"clicks"`
	Orders     int64    `json:"orders"`
	SpendRub   float64  `json:"spend_rub"`
	RevenueRub float64  `json:"revenue_rub"`
	CTR        *float64 `json:"ctr"`
	CPCRub     *float64 `json:"cpc_rub"`
	CPARub     *float64 `json:"cpa_rub"`
	ROAS       *float64 `json:"roas"`
	ACOS       *float64 `json:"acos"`
}

// StatRecord são os contadores brutos de um período para uma campanha,
// já normalizados da resposta do fullstats
type StatRecord struct {
	CampaignID int64   `json:"campaign_id"`
	Views      int64   `json:"views"`
	Clicks     int64   `json:"clicks"`
	Orders     int64   `json:"orders"`
	SpendRub   float64 `json:"spend_rub"`
	RevenueRub float64 `json:"revenue_rub"`
}

// Add acumula outro registro no receptor (chaves de agregação comutativas)
func (s *StatRecord) Add(other StatRecord) {
	s.Views += other.Views
	s.Clicks += other.Clicks
	s.Orders += other.Orders
	s.SpendRub += other.SpendRub
	s.RevenueRub += other.RevenueRub
}
