package domain

// Placement indica onde o anúncio é exibido dentro do WB Promote
type Placement string

const (
	PlacementSearch          Placement = "search"
	PlacementRecommendations Placement = "recommendations"
	PlacementCombined        Placement = "combined"

	// PlacementAuto não é um placement real: instrui o otimizador a escolher
	// com base nas configurações da campanha
	PlacementAuto Placement = "auto"
)

// AllowedPlacementChoices são os valores aceitos pela flag --placement
var AllowedPlacementChoices = []Placement{
	PlacementAuto,
	PlacementSearch,
	PlacementRecommendations,
	PlacementCombined,
}

// ValidPlacementChoice verifica se o valor informado pelo usuário é aceito
func ValidPlacementChoice(value string) bool {
	for _, p := range AllowedPlacementChoices {
		if string(p) == value {
			return true
		}
	}
	return false
}

// NormalizePlacement converte o rótulo usado pela API de lances mínimos
// ("recommendation", singular) para o rótulo do modelo de domínio
func NormalizePlacement(apiLabel string) Placement {
	if apiLabel == "recommendation" {
		return PlacementRecommendations
	}
	return Placement(apiLabel)
}

// PlacementSettings descreve os placements habilitados de uma campanha
type PlacementSettings struct {
	Search          bool `json:"search"`
	Recommendations bool `json:"recommendations"`
}
