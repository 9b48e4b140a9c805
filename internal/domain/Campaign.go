package domain

// Status de campanha no WB Promote
const (
	CampaignStatusReady     = 1
	CampaignStatusRunning   = 4
	CampaignStatusPaused    = 8
	CampaignStatusActive    = 9
	CampaignStatusSuspended = 11
)

// DefaultDiscoveryStatuses são os status usados na descoberta de campanhas
// quando o usuário não informa nem IDs nem status explícitos
var DefaultDiscoveryStatuses = []int{CampaignStatusActive, CampaignStatusSuspended}

// Tipos de pagamento
const (
	PaymentTypeCPM = "cpm"
	PaymentTypeCPC = "cpc"
)

// BidTypeUnified indica lance unificado (um único slot combinado)
const BidTypeUnified = "unified"

// ProductBids são os lances atuais (em copeques) de um produto por placement
type ProductBids struct {
	Search          *int64 `json:"search,omitempty"`
	Recommendations *int64 `json:"recommendations,omitempty"`
}

// ProductSettings é a configuração de um produto (NM) dentro de uma campanha
type ProductSettings struct {
	ProductID int64       `json:"nm_id"`
	Bids      ProductBids `json:"bids_kopecks"`
}

// Campaign é uma campanha publicitária normalizada da resposta adverts-v2
type Campaign struct {
	ID          int64             `json:"campaign_id"`
	Name        string            `json:"name"`
	Status      int               `json:"status"`
	BidType     string            `json:"bid_type"`
	PaymentType string            `json:"payment_type"`
	Placements  PlacementSettings `json:"placements"`
	Products    []ProductSettings `json:"nm_settings"`
}

// ChooseBidPlacement resolve a escolha de placement para ajustes de lance.
// "auto" escolhe combined para campanhas de lance unificado, senão o primeiro
// placement habilitado nas configurações, com search como padrão.
func (c *Campaign) ChooseBidPlacement(choice Placement) Placement {
	if choice != PlacementAuto {
		return choice
	}
	if c.BidType == BidTypeUnified {
		return PlacementCombined
	}
	if c.Placements.Search {
		return PlacementSearch
	}
	if c.Placements.Recommendations {
		return PlacementRecommendations
	}
	return PlacementSearch
}

// PlacementTypesForMinBids lista os rótulos de placement enviados à API de
// lances mínimos (que usa "recommendation" no singular)
func (c *Campaign) PlacementTypesForMinBids() []string {
	if c.BidType == BidTypeUnified {
		return []string{"combined"}
	}

	out := make([]string, 0, 2)
	if c.Placements.Search {
		out = append(out, "search")
	}
	if c.Placements.Recommendations {
		out = append(out, "recommendation")
	}
	if len(out) == 0 {
		return []string{"search"}
	}
	return out
}

// CurrentBid retorna o lance atual do produto para o placement escolhido.
// Para combined vale o maior entre search e recommendations. nil quando o
// lance não pode ser determinado; o produto é pulado sem erro.
func (p *ProductSettings) CurrentBid(placement Placement) *int64 {
	switch placement {
	case PlacementCombined:
		search := p.Bids.Search
		rec := p.Bids.Recommendations
		if search == nil && rec == nil {
			return nil
		}
		if search == nil {
			return rec
		}
		if rec == nil {
			return search
		}
		if *search >= *rec {
			return search
		}
		return rec
	case PlacementRecommendations:
		return p.Bids.Recommendations
	default:
		return p.Bids.Search
	}
}

// CampaignSnapshot é a visão normalizada de uma campanha para um período:
// identidade + configurações + métricas + orçamento. Construída a cada
// invocação do CLI e nunca persistida.
type CampaignSnapshot struct {
	CampaignID       int64             `json:"campaign_id"`
	Name             string            `json:"name"`
	Status           int               `json:"status"`
	BidType          string            `json:"bid_type"`
	PaymentType      string            `json:"payment_type"`
	Placements       PlacementSettings `json:"placements"`
	ProductCount     int               `json:"nms_count"`
	Metrics          CampaignMetrics   `json:"metrics"`
	BudgetKopecks    *int64            `json:"budget_kopecks"`
	BudgetRunwayDays *float64          `json:"budget_runway_days"`
}
