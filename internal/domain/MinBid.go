package domain

// MinBidKey identifica o piso de lance de (campanha, produto, placement)
type MinBidKey struct {
	CampaignID int64
	ProductID  int64
	Placement  Placement
}
