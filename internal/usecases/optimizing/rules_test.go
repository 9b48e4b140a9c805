package optimizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/wb-promote-cli/internal/domain"
	"github.com/vfg2006/wb-promote-cli/pkg/utils"
)

func defaultBidderConfig() *BidderConfig {
	return &BidderConfig{
		MinClicks:            15,
		KillClicks:           35,
		MaxAvgPos:            6.0,
		IncreasePct:          10,
		DecreasePct:          10,
		StrongDecreasePct:    20,
		MinOrdersForIncrease: 2,
		BidStepKopecks:       10,
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name           string
		perf           *domain.ProductPerformance
		configure      func(cfg *BidderConfig)
		expectedAction domain.BidAction
		expectedPct    int
		expectedReason string
		hold           bool
	}{
		{
			name: "Sem volume suficiente não decide nada",
			perf: &domain.ProductPerformance{Clicks: 5, Views: 500, Orders: 0, SpendRub: 100},
			hold: true,
		},
		{
			name:           "Views altas habilitam a decisão mesmo com poucos cliques",
			perf:           &domain.ProductPerformance{Clicks: 0, Views: 1000, Orders: 2, AvgPos: utils.Float64Ptr(8.0)},
			expectedAction: domain.BidActionIncrease,
			expectedPct:    10,
			expectedReason: "2 orders and avg_pos 8.00",
		},
		{
			name:           "Corte: muitos cliques sem nenhum pedido",
			perf:           &domain.ProductPerformance{Clicks: 40, Views: 2000, Orders: 0, SpendRub: 300},
			expectedAction: domain.BidActionDecrease,
			expectedPct:    20,
			expectedReason: "0 orders after 40 clicks",
		},
		{
			name: "Corte vence o piso de CTR quando ambos disparam",
			perf: &domain.ProductPerformance{
				Clicks: 40, Views: 8000, Orders: 0, SpendRub: 300,
				CTR: utils.Float64Ptr(0.5),
			},
			configure: func(cfg *BidderConfig) {
				cfg.MinCTR = utils.Float64Ptr(2.0)
			},
			expectedAction: domain.BidActionDecrease,
			expectedPct:    20,
			expectedReason: "0 orders after 40 clicks",
		},
		{
			name: "CPA acima da meta com folga de 15%",
			perf: &domain.ProductPerformance{
				Clicks: 20, Views: 2000, Orders: 2, SpendRub: 240,
				CPARub: utils.Float64Ptr(120.0),
			},
			configure: func(cfg *BidderConfig) {
				cfg.TargetCPA = utils.Float64Ptr(100.0)
			},
			expectedAction: domain.BidActionDecrease,
			expectedPct:    10,
			expectedReason: "CPA 120.00 > target 100.00",
		},
		{
			name: "CPA dentro da folga não dispara redução nem aumento",
			perf: &domain.ProductPerformance{
				Clicks: 20, Views: 2000, Orders: 2, SpendRub: 220,
				CPARub: utils.Float64Ptr(110.0),
			},
			configure: func(cfg *BidderConfig) {
				cfg.TargetCPA = utils.Float64Ptr(100.0)
			},
			hold: true,
		},
		{
			name: "CTR abaixo do piso sem pedidos",
			perf: &domain.ProductPerformance{
				Clicks: 20, Views: 4000, Orders: 0, SpendRub: 80,
				CTR: utils.Float64Ptr(0.5),
			},
			configure: func(cfg *BidderConfig) {
				cfg.MinCTR = utils.Float64Ptr(2.0)
			},
			expectedAction: domain.BidActionDecrease,
			expectedPct:    10,
			expectedReason: "CTR 0.50% < 2.00%",
		},
		{
			name: "Aumento: CPA com folga abaixo de 85% da meta",
			perf: &domain.ProductPerformance{
				Clicks: 20, Views: 2000, Orders: 3, SpendRub: 240,
				CPARub: utils.Float64Ptr(80.0),
			},
			configure: func(cfg *BidderConfig) {
				cfg.TargetCPA = utils.Float64Ptr(100.0)
			},
			expectedAction: domain.BidActionIncrease,
			expectedPct:    10,
			expectedReason: "CPA 80.00 <= target 100.00",
		},
		{
			name: "Aumento: converte bem e está mal posicionado",
			perf: &domain.ProductPerformance{
				Clicks: 20, Views: 2000, Orders: 2, SpendRub: 100,
				AvgPos: utils.Float64Ptr(8.0),
			},
			expectedAction: domain.BidActionIncrease,
			expectedPct:    10,
			expectedReason: "2 orders and avg_pos 8.00",
		},
		{
			name: "Sem meta de CPA e bem posicionado, não aumenta",
			perf: &domain.ProductPerformance{
				Clicks: 20, Views: 2000, Orders: 5, SpendRub: 100,
				AvgPos: utils.Float64Ptr(2.0),
			},
			hold: true,
		},
		{
			name: "Poucos pedidos para aumento",
			perf: &domain.ProductPerformance{
				Clicks: 20, Views: 2000, Orders: 1, SpendRub: 100,
				AvgPos: utils.Float64Ptr(8.0),
			},
			hold: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultBidderConfig()
			if tt.configure != nil {
				tt.configure(cfg)
			}

			verdict := decide(tt.perf, cfg)

			if tt.hold {
				assert.Nil(t, verdict)
				return
			}

			assert.NotNil(t, verdict)
			assert.Equal(t, tt.expectedAction, verdict.action)
			assert.Equal(t, tt.expectedPct, verdict.pct)
			assert.Equal(t, tt.expectedReason, verdict.reason)
		})
	}
}

func TestDecidePriorities(t *testing.T) {
	cfg := defaultBidderConfig()

	t.Run("Prioridade do corte soma gasto e cliques", func(t *testing.T) {
		verdict := decide(&domain.ProductPerformance{Clicks: 40, Views: 2000, SpendRub: 300}, cfg)
		assert.Equal(t, 340.0, verdict.priority)
	})

	t.Run("Prioridade do aumento pesa pedidos e gasto", func(t *testing.T) {
		verdict := decide(&domain.ProductPerformance{
			Clicks: 20, Views: 2000, Orders: 3, SpendRub: 100,
			AvgPos: utils.Float64Ptr(8.0),
		}, cfg)
		assert.Equal(t, 40.0, verdict.priority)
	})
}

func TestRecommendBid(t *testing.T) {
	campaign := &domain.Campaign{ID: 1, Name: "Campanha A", PaymentType: domain.PaymentTypeCPM}

	killPerf := &domain.ProductPerformance{
		CampaignID: 1, ProductID: 10,
		Clicks: 40, Views: 2000, Orders: 0, SpendRub: 300,
	}
	increasePerf := &domain.ProductPerformance{
		CampaignID: 1, ProductID: 10,
		Clicks: 20, Views: 2000, Orders: 2, SpendRub: 100,
		AvgPos: utils.Float64Ptr(8.0),
	}

	product := func(searchBid int64) *domain.ProductSettings {
		return &domain.ProductSettings{
			ProductID: 10,
			Bids:      domain.ProductBids{Search: utils.Int64Ptr(searchBid)},
		}
	}

	t.Run("Redução forte aplicada e alinhada ao passo", func(t *testing.T) {
		rec := RecommendBid(campaign, product(100), domain.PlacementSearch, killPerf, nil, defaultBidderConfig())

		assert.NotNil(t, rec)
		assert.Equal(t, domain.BidActionDecrease, rec.Action)
		assert.Equal(t, int64(100), rec.CurrentBidKopecks)
		assert.Equal(t, int64(80), rec.NewBidKopecks)
		assert.Equal(t, int64(-20), rec.DeltaKopecks)
		assert.Equal(t, -20.0, *rec.DeltaPct)
	})

	t.Run("Redução simples de 10% alinhada ao passo", func(t *testing.T) {
		cfg := defaultBidderConfig()
		cfg.TargetCPA = utils.Float64Ptr(100.0)
		cpaPerf := &domain.ProductPerformance{
			CampaignID: 1, ProductID: 10,
			Clicks: 20, Views: 2000, Orders: 2, SpendRub: 240,
			CPARub: utils.Float64Ptr(120.0),
		}

		rec := RecommendBid(campaign, product(100), domain.PlacementSearch, cpaPerf, nil, cfg)

		assert.NotNil(t, rec)
		assert.Equal(t, domain.BidActionDecrease, rec.Action)
		assert.Equal(t, int64(90), rec.NewBidKopecks)
	})

	t.Run("Aumento de 95 com passo 10 termina em 100", func(t *testing.T) {
		rec := RecommendBid(campaign, product(95), domain.PlacementSearch, increasePerf, nil, defaultBidderConfig())

		assert.NotNil(t, rec)
		assert.Equal(t, domain.BidActionIncrease, rec.Action)
		assert.Equal(t, int64(100), rec.NewBidKopecks)
		assert.Equal(t, 5.26, *rec.DeltaPct)
	})

	t.Run("Piso de lance da API segura a redução", func(t *testing.T) {
		floor := utils.Int64Ptr(90)
		rec := RecommendBid(campaign, product(120), domain.PlacementSearch, killPerf, floor, defaultBidderConfig())

		// 120 - 20% = 96, alinhado ao passo vira 100, acima do piso 90
		assert.NotNil(t, rec)
		assert.Equal(t, int64(100), rec.NewBidKopecks)
		assert.Equal(t, floor, rec.MinBidFloor)
	})

	t.Run("Redução abaixo do piso volta para o piso", func(t *testing.T) {
		rec := RecommendBid(campaign, product(100), domain.PlacementSearch, killPerf, utils.Int64Ptr(90), defaultBidderConfig())

		// 100 - 20% = 80, abaixo do piso 90
		assert.NotNil(t, rec)
		assert.Equal(t, int64(90), rec.NewBidKopecks)
	})

	t.Run("Piso igual ao lance atual suprime a mudança", func(t *testing.T) {
		rec := RecommendBid(campaign, product(100), domain.PlacementSearch, killPerf, utils.Int64Ptr(100), defaultBidderConfig())
		assert.Nil(t, rec)
	})

	t.Run("Teto de lance limita o aumento", func(t *testing.T) {
		cfg := defaultBidderConfig()
		cfg.MaxBidKopecks = utils.Int64Ptr(214)

		rec := RecommendBid(campaign, product(200), domain.PlacementSearch, increasePerf, nil, cfg)

		// 200 + 10% = 220, acima do teto 214 que alinhado ao passo vira 210
		assert.NotNil(t, rec)
		assert.Equal(t, int64(210), rec.NewBidKopecks)
	})

	t.Run("Sem lance atual não há recomendação", func(t *testing.T) {
		noBid := &domain.ProductSettings{ProductID: 10}
		rec := RecommendBid(campaign, noBid, domain.PlacementSearch, killPerf, nil, defaultBidderConfig())
		assert.Nil(t, rec)
	})

	t.Run("Veredito de manter não gera recomendação", func(t *testing.T) {
		holdPerf := &domain.ProductPerformance{Clicks: 5, Views: 100}
		rec := RecommendBid(campaign, product(100), domain.PlacementSearch, holdPerf, nil, defaultBidderConfig())
		assert.Nil(t, rec)
	})
}

func TestRoundToStep(t *testing.T) {
	tests := []struct {
		name     string
		value    int64
		step     int64
		expected int64
	}{
		{"Alinha para baixo", 104, 10, 100},
		{"Alinha para cima", 106, 10, 110},
		{"Metade vai para o múltiplo par", 105, 10, 100},
		{"Metade vai para o múltiplo par acima", 115, 10, 120},
		{"Passo um não altera", 104, 1, 104},
		{"Passo zero não altera", 104, 0, 104},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, roundToStep(tt.value, tt.step))
		})
	}
}
