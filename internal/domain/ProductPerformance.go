package domain

// BadQuery é uma palavra-chave com gasto desperdiçado: muitos cliques,
// nenhum pedido, gasto positivo
type BadQuery struct {
	Query    string  `json:"query"`
	Clicks   int64   `json:"clicks"`
	SpendRub float64 `json:"spend_rub"`
}

// ProductPerformance é o desempenho agregado das palavras-chave de um par
// (campanha, produto) dentro do período analisado
type ProductPerformance struct {
	CampaignID int64      `json:"campaign_id"`
	ProductID  int64      `json:"nm_id"`
	Views      int64      `json:"views"`
	Clicks     int64      `json:"clicks"`
	Orders     int64      `json:"orders"`
	Baskets    int64      `json:"atbs"`
	SpendRub   float64    `json:"spend_rub"`
	QueryRows  int        `json:"query_rows"`
	CTR        *float64   `json:"ctr"`
	CPCRub     *float64   `json:"cpc_rub"`
	CPARub     *float64   `json:"cpa_rub"`
	AvgPos     *float64   `json:"avg_pos"`
	BadQueries []BadQuery `json:"bad_queries"`
}
