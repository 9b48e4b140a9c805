package domain

// BidsPatchRequest é o corpo da submissão de mudanças de lance
type BidsPatchRequest struct {
	Bids []BidsPatchAdvert `json:"bids"`
}

// BidsPatchAdvert agrupa as mudanças de uma campanha
type BidsPatchAdvert struct {
	AdvertID int64          `json:"advert_id"`
	NMBids   []BidsPatchBid `json:"nm_bids"`
}

// BidsPatchBid é uma mudança de lance individual
type BidsPatchBid struct {
	NMID       int64  `json:"nm_id"`
	BidKopecks int64  `json:"bid_kopecks"`
	Placement  string `json:"placement"`
}

// DepositRequest é o corpo do depósito de orçamento
type DepositRequest struct {
	Sum int64 `json:"sum"`
}
