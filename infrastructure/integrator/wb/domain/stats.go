package domain

// FullStatsItem é uma linha do fullstats por campanha. O identificador da
// campanha pode vir sob dois nomes alternativos ("advert_id" ou "advertId");
// CampaignID resolve na ordem de prioridade.
type FullStatsItem struct {
	AdvertID    *int64  `json:"advert_id"`
	AdvertIDAlt *int64  `json:"advertId"`
	Views       int64   `json:"views"`
	Clicks      int64   `json:"clicks"`
	Orders      int64   `json:"orders"`
	Sum         float64 `json:"sum"`
	SumPrice    float64 `json:"sum_price"`
}

// CampaignID retorna o identificador da campanha, tentando cada nome de
// campo conhecido em ordem; nil quando nenhum está presente
func (f *FullStatsItem) CampaignID() *int64 {
	if f.AdvertID != nil {
		return f.AdvertID
	}
	return f.AdvertIDAlt
}

// BudgetResponse é a resposta do endpoint de orçamento de campanha
type BudgetResponse struct {
	Total int64 `json:"total"`
}
