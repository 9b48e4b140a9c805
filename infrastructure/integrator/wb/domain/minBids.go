package domain

// MinBidsRequest é o corpo da consulta de lances mínimos por produto
type MinBidsRequest struct {
	AdvertID       int64    `json:"advert_id"`
	NMIDs          []int64  `json:"nm_ids"`
	PaymentType    string   `json:"payment_type"`
	PlacementTypes []string `json:"placement_types"`
}

// MinBidsResponse é a resposta da consulta de lances mínimos
type MinBidsResponse struct {
	Bids []MinBidNM `json:"bids"`
}

// MinBidNM são os pisos de lance de um produto, por placement. O
// identificador do produto pode vir sob dois nomes.
type MinBidNM struct {
	NMID    *int64        `json:"nm_id"`
	NMIDAlt *int64        `json:"nmId"`
	Bids    []MinBidValue `json:"bids"`
}

// ProductID resolve o identificador do produto
func (m *MinBidNM) ProductID() *int64 {
	if m.NMID != nil {
		return m.NMID
	}
	return m.NMIDAlt
}

// MinBidValue é o piso de lance para um tipo de placement. A API usa o
// rótulo "recommendation" no singular; a normalização para o modelo de
// domínio acontece no integrador.
type MinBidValue struct {
	Type  string `json:"type"`
	Value int64  `json:"value"`
}
