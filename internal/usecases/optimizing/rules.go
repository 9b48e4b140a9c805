package optimizing

import (
	"fmt"
	"math"

	"github.com/vfg2006/wb-promote-cli/internal/domain"
	"github.com/vfg2006/wb-promote-cli/pkg/utils"
)

// BidderConfig parametriza o motor de recomendação de lances. Campos com
// ponteiro são gatilhos opcionais: nil desliga a regra correspondente.
type BidderConfig struct {
	TargetCPA            *float64
	MinClicks            int
	KillClicks           int
	MinCTR               *float64
	MaxAvgPos            float64
	IncreasePct          int
	DecreasePct          int
	StrongDecreasePct    int
	MinOrdersForIncrease int
	BidStepKopecks       int64
	MaxBidKopecks        *int64
}

// decision é o veredito de uma regra sobre um produto
type decision struct {
	action   domain.BidAction
	pct      int
	reason   string
	priority float64
}

// decide aplica as regras em ordem estrita e devolve o veredito da primeira
// que disparar; nil significa manter o lance. A ordem importa: um produto que
// queima cliques sem converter é cortado antes de qualquer outra análise.
func decide(perf *domain.ProductPerformance, cfg *BidderConfig) *decision {
	if !eligible(perf, cfg) {
		return nil
	}

	// Corte: gastou, clicou muito e não converteu nada
	if perf.Orders == 0 && perf.Clicks >= int64(cfg.KillClicks) {
		return &decision{
			action:   domain.BidActionDecrease,
			pct:      cfg.StrongDecreasePct,
			reason:   fmt.Sprintf("0 orders after %d clicks", perf.Clicks),
			priority: perf.SpendRub + float64(perf.Clicks),
		}
	}

	// CPA acima da meta, com folga de 15% para não reagir a ruído
	if cfg.TargetCPA != nil && perf.Orders > 0 && perf.CPARub != nil &&
		*perf.CPARub > *cfg.TargetCPA*1.15 {
		return &decision{
			action:   domain.BidActionDecrease,
			pct:      cfg.DecreasePct,
			reason:   fmt.Sprintf("CPA %.2f > target %.2f", *perf.CPARub, *cfg.TargetCPA),
			priority: perf.SpendRub + math.Max(0, *perf.CPARub-*cfg.TargetCPA),
		}
	}

	// CTR abaixo do piso sem nenhum pedido
	if cfg.MinCTR != nil && perf.Orders == 0 && perf.Clicks >= int64(cfg.MinClicks) &&
		perf.CTR != nil && *perf.CTR < *cfg.MinCTR {
		return &decision{
			action:   domain.BidActionDecrease,
			pct:      cfg.DecreasePct,
			reason:   fmt.Sprintf("CTR %.2f%% < %.2f%%", *perf.CTR, *cfg.MinCTR),
			priority: perf.SpendRub + math.Max(0, (*cfg.MinCTR-*perf.CTR)*10),
		}
	}

	// Aumento: converte bem e ou está mal posicionado ou tem CPA com folga
	if perf.Orders >= int64(cfg.MinOrdersForIncrease) {
		cpaComfortable := cfg.TargetCPA == nil ||
			(perf.CPARub != nil && *perf.CPARub <= *cfg.TargetCPA*0.85)
		weakPosition := perf.AvgPos != nil && *perf.AvgPos > cfg.MaxAvgPos

		if cpaComfortable && (weakPosition || cfg.TargetCPA != nil) {
			reason := fmt.Sprintf("%d orders and avg_pos %.2f", perf.Orders, floatOrZero(perf.AvgPos))
			if cfg.TargetCPA != nil {
				reason = fmt.Sprintf("CPA %.2f <= target %.2f", floatOrZero(perf.CPARub), *cfg.TargetCPA)
			}
			return &decision{
				action:   domain.BidActionIncrease,
				pct:      cfg.IncreasePct,
				reason:   reason,
				priority: float64(perf.Orders)*10 + math.Max(0, perf.SpendRub/10),
			}
		}
	}

	return nil
}

// eligible barra produtos sem volume suficiente para qualquer decisão:
// poucos cliques e poucas views não dizem nada sobre o lance
func eligible(perf *domain.ProductPerformance, cfg *BidderConfig) bool {
	minViews := int64(cfg.MinClicks) * 30
	if minViews < 1000 {
		minViews = 1000
	}
	return perf.Clicks >= int64(cfg.MinClicks) || perf.Views >= minViews
}

// RecommendBid avalia um produto e devolve a mudança de lance proposta, ou
// nil quando o lance deve ser mantido. floor é o piso de lance da API para a
// tripla (campanha, produto, placement), quando conhecido.
func RecommendBid(
	campaign *domain.Campaign,
	product *domain.ProductSettings,
	placement domain.Placement,
	perf *domain.ProductPerformance,
	floor *int64,
	cfg *BidderConfig,
) *domain.BidRecommendation {
	current := product.CurrentBid(placement)
	if current == nil || *current <= 0 {
		return nil
	}

	verdict := decide(perf, cfg)
	if verdict == nil {
		return nil
	}

	pct := verdict.pct
	if verdict.action == domain.BidActionDecrease {
		pct = -pct
	}

	newBid := computeNewBid(*current, pct, cfg.BidStepKopecks)

	if floor != nil && newBid < *floor {
		newBid = roundToStep(*floor, cfg.BidStepKopecks)
	}
	if cfg.MaxBidKopecks != nil && newBid > *cfg.MaxBidKopecks {
		newBid = roundToStep(*cfg.MaxBidKopecks, cfg.BidStepKopecks)
	}

	// Depois dos clamps a mudança pode ter evaporado
	if newBid == *current {
		return nil
	}

	deltaPct := utils.RoundWithTwoDecimalPlace((float64(newBid)/float64(*current) - 1) * 100)

	return &domain.BidRecommendation{
		CampaignID:        campaign.ID,
		CampaignName:      campaign.Name,
		ProductID:         product.ProductID,
		Placement:         placement,
		Action:            verdict.action,
		Reason:            verdict.reason,
		PriorityScore:     verdict.priority,
		CurrentBidKopecks: *current,
		NewBidKopecks:     newBid,
		DeltaKopecks:      newBid - *current,
		DeltaPct:          &deltaPct,
		MinBidFloor:       floor,
		Perf:              perf,
	}
}

// computeNewBid aplica o percentual ao lance atual, com piso absoluto de
// 1 copeque, e alinha o resultado ao passo configurado
func computeNewBid(current int64, pct int, step int64) int64 {
	raw := math.RoundToEven(float64(current) * (1 + float64(pct)/100))
	if raw < 1 {
		raw = 1
	}
	if step < 1 {
		step = 1
	}
	return roundToStep(int64(raw), step)
}

// roundToStep alinha o valor ao múltiplo mais próximo do passo, usando
// arredondamento banker's (metade vai para o múltiplo par)
func roundToStep(value int64, step int64) int64 {
	if step <= 1 {
		return value
	}
	return int64(math.RoundToEven(float64(value)/float64(step))) * step
}

func floatOrZero(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}
