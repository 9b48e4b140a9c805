package domain

// BidAction indica a direção de um ajuste de lance
type BidAction string

const (
	BidActionIncrease BidAction = "increase"
	BidActionDecrease BidAction = "decrease"
)

// BidRecommendation é uma proposta de mudança de lance para a tripla
// (campanha, produto, placement). Só existe quando o novo lance difere do
// atual depois de todos os clamps; "hold" nunca gera recomendação.
type BidRecommendation struct {
	CampaignID        int64               `json:"campaign_id"`
	CampaignName      string              `json:"campaign_name"`
	ProductID         int64               `json:"nm_id"`
	Placement         Placement           `json:"placement"`
	Action            BidAction           `json:"action"`
	Reason            string              `json:"reason"`
	PriorityScore     float64             `json:"priority_score"`
	CurrentBidKopecks int64               `json:"current_bid_kopecks"`
	NewBidKopecks     int64               `json:"new_bid_kopecks"`
	DeltaKopecks      int64               `json:"delta_kopecks"`
	DeltaPct          *float64            `json:"delta_pct"`
	MinBidFloor       *int64              `json:"min_bid_floor_kopecks"`
	Perf              *ProductPerformance `json:"perf"`
}
