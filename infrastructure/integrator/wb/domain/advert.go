package domain

// AdvertsResponse é a resposta do endpoint adverts-v2
type AdvertsResponse struct {
	Adverts []Advert `json:"adverts"`
}

// Advert é uma campanha como retornada pela API
type Advert struct {
	ID         int64           `json:"id"`
	Status     int             `json:"status"`
	BidType    string          `json:"bid_type"`
	Settings   *AdvertSettings `json:"settings"`
	NMSettings []NMSetting     `json:"nm_settings"`
}

// AdvertSettings são as configurações da campanha
type AdvertSettings struct {
	Name        string            `json:"name"`
	PaymentType string            `json:"payment_type"`
	Placements  *AdvertPlacements `json:"placements"`
}

// AdvertPlacements indica os placements habilitados
type AdvertPlacements struct {
	Search          bool `json:"search"`
	Recommendations bool `json:"recommendations"`
}

// NMSetting é a configuração de um produto dentro da campanha
type NMSetting struct {
	NMID int64   `json:"nm_id"`
	Bids *NMBids `json:"bids_kopecks"`
}

// NMBids são os lances atuais por placement, em copeques
type NMBids struct {
	Search          *int64 `json:"search"`
	Recommendations *int64 `json:"recommendations"`
}
