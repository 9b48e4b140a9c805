package domain

// KeywordStatRow é uma linha diária de estatística por palavra-chave,
// normalizada de qualquer um dos dois formatos de resposta da API.
// Campos numéricos ausentes entram como zero; razões ausentes como nil.
type KeywordStatRow struct {
	CampaignID int64    `json:"campaign_id"`
	ProductID  int64    `json:"nm_id"`
	Date       string   `json:"date,omitempty"`
	Query      string   `json:"norm_query"`
	Views      float64  `json:"views"`
	Clicks     float64  `json:"clicks"`
	Orders     float64  `json:"orders"`
	Baskets    float64  `json:"atbs"`
	SpendRub   float64  `json:"spend_rub"`
	CPC        *float64 `json:"cpc,omitempty"`
	CTR        *float64 `json:"ctr,omitempty"`
	CPM        *float64 `json:"cpm,omitempty"`
	AvgPos     *float64 `json:"avg_pos,omitempty"`
}

// ProductKey identifica o par (campanha, produto) na agregação
type ProductKey struct {
	CampaignID int64
	ProductID  int64
}
