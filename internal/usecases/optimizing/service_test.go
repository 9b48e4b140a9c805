package optimizing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/wb-promote-cli/infrastructure/integrator/wb/mocks"
	"github.com/vfg2006/wb-promote-cli/internal/config"
	"github.com/vfg2006/wb-promote-cli/internal/domain"
	"github.com/vfg2006/wb-promote-cli/pkg/clierrors"
	"github.com/vfg2006/wb-promote-cli/pkg/utils"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Optimizer: config.Optimizer{
			LookbackDays:         3,
			MinClicks:            15,
			KillClicks:           35,
			MaxAvgPos:            6.0,
			IncreasePct:          10,
			DecreasePct:          10,
			StrongDecreasePct:    20,
			MinOrdersForIncrease: 2,
			BidStepKopecks:       10,
		},
		BudgetPlanner: config.BudgetPlanner{
			LookbackDays:      7,
			TargetRunwayDays:  3.0,
			MinSpendPerDayRub: 50.0,
			RoundToKopecks:    10000,
			MinTopUpKopecks:   10000,
		},
	}
}

var testNow = time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

func TestServiceSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	weekPeriod := domain.Period{From: "2026-08-16", To: "2026-08-22", Days: 7}

	t.Run("Visão consolidada com métricas, orçamento e autonomia", func(t *testing.T) {
		mockIntegrator := mocks.NewMockIntegrator(ctrl)
		service := NewService(testConfig(), mockIntegrator)

		mockIntegrator.EXPECT().
			FetchCampaigns([]int64{1, 2}, gomock.Nil(), "").
			Return([]domain.Campaign{
				{ID: 1, Name: "Campanha A", Status: domain.CampaignStatusActive, PaymentType: domain.PaymentTypeCPM},
				{ID: 2, Name: "Campanha B", Status: domain.CampaignStatusSuspended, PaymentType: domain.PaymentTypeCPM},
			}, nil)
		mockIntegrator.EXPECT().
			FetchPeriodStats([]int64{1, 2}, weekPeriod).
			Return(map[int64]domain.StatRecord{
				1: {CampaignID: 1, Views: 1000, Clicks: 50, Orders: 5, SpendRub: 700, RevenueRub: 2800},
			}, nil)
		mockIntegrator.EXPECT().
			FetchBudgets([]int64{1, 2}).
			Return(map[int64]int64{1: 70000, 2: 5000}, nil)

		result, err := service.Snapshot(SnapshotOptions{
			CampaignIDs: []int64{1, 2},
			Now:         testNow,
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, result.RunID)
		assert.Equal(t, weekPeriod, result.Period)
		assert.Len(t, result.Campaigns, 2)

		first := result.Campaigns[0]
		assert.Equal(t, int64(1), first.CampaignID)
		assert.Equal(t, int64(70000), *first.BudgetKopecks)
		// 700 rublos em 7 dias = 10000 copeques/dia; 70000 restantes = 7 dias
		assert.Equal(t, 7.0, *first.BudgetRunwayDays)
		assert.Equal(t, 5.0, *first.Metrics.CTR)

		second := result.Campaigns[1]
		assert.Equal(t, int64(5000), *second.BudgetKopecks)
		assert.Nil(t, second.BudgetRunwayDays)

		assert.Equal(t, 2, result.Summary.Campaigns)
		assert.Equal(t, 1, result.Summary.ActiveCampaigns)
		assert.Equal(t, 700.0, result.Summary.SpendRub)
		assert.Equal(t, 2800.0, result.Summary.RevenueRub)
		assert.Equal(t, int64(50), result.Summary.Clicks)
		assert.Equal(t, int64(5), result.Summary.Orders)
		assert.Equal(t, 4.0, *result.Summary.ROAS)
		assert.Equal(t, 140.0, *result.Summary.CPARub)
	})

	t.Run("Sem IDs nem status, descobre pelas ativas e pausadas", func(t *testing.T) {
		mockIntegrator := mocks.NewMockIntegrator(ctrl)
		service := NewService(testConfig(), mockIntegrator)

		mockIntegrator.EXPECT().
			FetchCampaigns(gomock.Nil(), domain.DefaultDiscoveryStatuses, "").
			Return([]domain.Campaign{}, nil)
		mockIntegrator.EXPECT().
			FetchPeriodStats([]int64{}, weekPeriod).
			Return(map[int64]domain.StatRecord{}, nil)
		mockIntegrator.EXPECT().
			FetchBudgets([]int64{}).
			Return(map[int64]int64{}, nil)

		result, err := service.Snapshot(SnapshotOptions{Now: testNow})

		assert.NoError(t, err)
		assert.Empty(t, result.Campaigns)
	})

	t.Run("ID pedido que não existe é erro de validação", func(t *testing.T) {
		mockIntegrator := mocks.NewMockIntegrator(ctrl)
		service := NewService(testConfig(), mockIntegrator)

		mockIntegrator.EXPECT().
			FetchCampaigns([]int64{1, 5}, gomock.Nil(), "").
			Return([]domain.Campaign{{ID: 1}}, nil)

		_, err := service.Snapshot(SnapshotOptions{
			CampaignIDs: []int64{1, 5},
			Now:         testNow,
		})

		assert.Error(t, err)
		assert.True(t, clierrors.IsValidation(err))
		assert.Contains(t, err.Error(), "5")
	})

	t.Run("Falha na API aborta a execução inteira", func(t *testing.T) {
		mockIntegrator := mocks.NewMockIntegrator(ctrl)
		service := NewService(testConfig(), mockIntegrator)

		mockIntegrator.EXPECT().
			FetchCampaigns([]int64{1}, gomock.Nil(), "").
			Return([]domain.Campaign{{ID: 1}}, nil)
		mockIntegrator.EXPECT().
			FetchPeriodStats([]int64{1}, weekPeriod).
			Return(nil, assert.AnError)

		_, err := service.Snapshot(SnapshotOptions{
			CampaignIDs: []int64{1},
			Now:         testNow,
		})

		assert.Error(t, err)
		assert.False(t, clierrors.IsValidation(err))
	})
}

func TestServiceBidsPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cpmCampaign := domain.Campaign{
		ID:          1,
		Name:        "Campanha A",
		Status:      domain.CampaignStatusActive,
		PaymentType: domain.PaymentTypeCPM,
		Placements:  domain.PlacementSettings{Search: true},
		Products: []domain.ProductSettings{
			{ProductID: 10, Bids: domain.ProductBids{Search: utils.Int64Ptr(100)}},
		},
	}

	killRows := []domain.KeywordStatRow{
		{CampaignID: 1, ProductID: 10, Query: "tenis", Views: 2000, Clicks: 40, SpendRub: 300},
	}

	t.Run("Sem IDs é erro de validação", func(t *testing.T) {
		service := NewService(testConfig(), mocks.NewMockIntegrator(ctrl))

		_, err := service.BidsPlan(BidsPlanOptions{Placement: "auto", Now: testNow})

		assert.Error(t, err)
		assert.True(t, clierrors.IsValidation(err))
	})

	t.Run("Placement fora do conjunto permitido é erro de validação", func(t *testing.T) {
		service := NewService(testConfig(), mocks.NewMockIntegrator(ctrl))

		_, err := service.BidsPlan(BidsPlanOptions{
			CampaignIDs: []int64{1},
			Placement:   "sidebar",
			Now:         testNow,
		})

		assert.Error(t, err)
		assert.True(t, clierrors.IsValidation(err))
	})

	t.Run("Plano em modo dry-run com recomendação de corte", func(t *testing.T) {
		mockIntegrator := mocks.NewMockIntegrator(ctrl)
		service := NewService(testConfig(), mockIntegrator)

		mockIntegrator.EXPECT().
			FetchCampaigns([]int64{1}, gomock.Nil(), "").
			Return([]domain.Campaign{cpmCampaign}, nil)
		mockIntegrator.EXPECT().
			FetchKeywordStats([]int64{1}, []string{"2026-08-20", "2026-08-21", "2026-08-22"}).
			Return(killRows, nil)
		mockIntegrator.EXPECT().
			FetchMinBids(gomock.Any()).
			Return(map[domain.MinBidKey]int64{}, nil)

		result, err := service.BidsPlan(BidsPlanOptions{
			CampaignIDs: []int64{1},
			Placement:   "auto",
			MaxChanges:  20,
			Now:         testNow,
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, result.RunID)
		assert.Equal(t, "dry-run", result.Summary.Mode)
		assert.Equal(t, 1, result.Summary.Changes)
		assert.Equal(t, 1, result.Summary.Decrease)
		assert.Equal(t, 0, result.Summary.Increase)
		assert.Nil(t, result.APIResult)

		rec := result.Recommendations[0]
		assert.Equal(t, domain.PlacementSearch, rec.Placement)
		assert.Equal(t, int64(100), rec.CurrentBidKopecks)
		assert.Equal(t, int64(80), rec.NewBidKopecks)

		assert.Len(t, result.APIPayload.Bids, 1)
		assert.Equal(t, int64(1), result.APIPayload.Bids[0].CampaignID)
	})

	t.Run("Piso de lance da API entra na recomendação", func(t *testing.T) {
		mockIntegrator := mocks.NewMockIntegrator(ctrl)
		service := NewService(testConfig(), mockIntegrator)

		mockIntegrator.EXPECT().
			FetchCampaigns([]int64{1}, gomock.Nil(), "").
			Return([]domain.Campaign{cpmCampaign}, nil)
		mockIntegrator.EXPECT().
			FetchKeywordStats([]int64{1}, gomock.Any()).
			Return(killRows, nil)
		mockIntegrator.EXPECT().
			FetchMinBids(gomock.Any()).
			Return(map[domain.MinBidKey]int64{
				{CampaignID: 1, ProductID: 10, Placement: domain.PlacementSearch}: 90,
			}, nil)

		result, err := service.BidsPlan(BidsPlanOptions{
			CampaignIDs: []int64{1},
			Placement:   "auto",
			Now:         testNow,
		})

		assert.NoError(t, err)
		assert.Len(t, result.Recommendations, 1)
		// 100 - 20% = 80, abaixo do piso 90
		assert.Equal(t, int64(90), result.Recommendations[0].NewBidKopecks)
		assert.Equal(t, int64(90), *result.Recommendations[0].MinBidFloor)
	})

	t.Run("Campanha que não é CPM é pulada sem erro", func(t *testing.T) {
		mockIntegrator := mocks.NewMockIntegrator(ctrl)
		service := NewService(testConfig(), mockIntegrator)

		cpcCampaign := cpmCampaign
		cpcCampaign.PaymentType = domain.PaymentTypeCPC

		mockIntegrator.EXPECT().
			FetchCampaigns([]int64{1}, gomock.Nil(), "").
			Return([]domain.Campaign{cpcCampaign}, nil)
		mockIntegrator.EXPECT().
			FetchKeywordStats([]int64{1}, gomock.Any()).
			Return(killRows, nil)

		result, err := service.BidsPlan(BidsPlanOptions{
			CampaignIDs: []int64{1},
			Placement:   "auto",
			Now:         testNow,
		})

		assert.NoError(t, err)
		assert.Empty(t, result.Recommendations)
	})

	t.Run("Modo apply submete o payload e relata o resultado", func(t *testing.T) {
		mockIntegrator := mocks.NewMockIntegrator(ctrl)
		service := NewService(testConfig(), mockIntegrator)

		mockIntegrator.EXPECT().
			FetchCampaigns([]int64{1}, gomock.Nil(), "").
			Return([]domain.Campaign{cpmCampaign}, nil)
		mockIntegrator.EXPECT().
			FetchKeywordStats([]int64{1}, gomock.Any()).
			Return(killRows, nil)
		mockIntegrator.EXPECT().
			FetchMinBids(gomock.Any()).
			Return(map[domain.MinBidKey]int64{}, nil)
		mockIntegrator.EXPECT().
			SubmitBidChunk(gomock.Len(1)).
			Return(map[string]any{"ok": true}, nil)

		result, err := service.BidsPlan(BidsPlanOptions{
			CampaignIDs: []int64{1},
			Placement:   "auto",
			Apply:       true,
			Now:         testNow,
		})

		assert.NoError(t, err)
		assert.Equal(t, "apply", result.Summary.Mode)
		assert.NotNil(t, result.APIResult)
		assert.False(t, result.APIResult.Failed)
		assert.Len(t, result.APIResult.SubmittedChunks, 1)
	})

	t.Run("Falha ao buscar estatísticas aborta o plano", func(t *testing.T) {
		mockIntegrator := mocks.NewMockIntegrator(ctrl)
		service := NewService(testConfig(), mockIntegrator)

		mockIntegrator.EXPECT().
			FetchCampaigns([]int64{1}, gomock.Nil(), "").
			Return([]domain.Campaign{cpmCampaign}, nil)
		mockIntegrator.EXPECT().
			FetchKeywordStats([]int64{1}, gomock.Any()).
			Return(nil, assert.AnError)

		_, err := service.BidsPlan(BidsPlanOptions{
			CampaignIDs: []int64{1},
			Placement:   "auto",
			Now:         testNow,
		})

		assert.Error(t, err)
		assert.False(t, clierrors.IsValidation(err))
	})
}

func TestServiceBudgetPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	weekPeriod := domain.Period{From: "2026-08-16", To: "2026-08-22", Days: 7}

	t.Run("Plano com depósito aplicado", func(t *testing.T) {
		mockIntegrator := mocks.NewMockIntegrator(ctrl)
		service := NewService(testConfig(), mockIntegrator)

		mockIntegrator.EXPECT().
			FetchCampaigns([]int64{1}, gomock.Nil(), "").
			Return([]domain.Campaign{{ID: 1, Name: "Campanha A", Status: domain.CampaignStatusActive}}, nil)
		mockIntegrator.EXPECT().
			FetchPeriodStats([]int64{1}, weekPeriod).
			Return(map[int64]domain.StatRecord{
				1: {CampaignID: 1, SpendRub: 1400, RevenueRub: 4200},
			}, nil)
		mockIntegrator.EXPECT().
			FetchBudgets([]int64{1}).
			Return(map[int64]int64{1: 50000}, nil)
		mockIntegrator.EXPECT().
			DepositBudget(int64(1), int64(10000)).
			Return(map[string]any{"ok": true}, nil)

		result, err := service.BudgetPlan(BudgetPlanOptions{
			CampaignIDs: []int64{1},
			Apply:       true,
			Now:         testNow,
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, result.RunID)
		assert.Equal(t, 3.0, result.TargetRunwayDays)
		assert.Len(t, result.Plans, 1)
		assert.Equal(t, int64(10000), result.Plans[0].SuggestedTopUpKopecks)
		assert.Equal(t, 1, result.Summary.CampaignsRequiringTopUp)
		assert.Equal(t, int64(10000), result.Summary.TotalSuggestedTopUpKopecks)
		assert.NotNil(t, result.APIResult)
		assert.False(t, result.APIResult.Failed)
	})

	t.Run("Meta de autonomia da flag substitui a configuração", func(t *testing.T) {
		mockIntegrator := mocks.NewMockIntegrator(ctrl)
		service := NewService(testConfig(), mockIntegrator)

		mockIntegrator.EXPECT().
			FetchCampaigns([]int64{1}, gomock.Nil(), "").
			Return([]domain.Campaign{{ID: 1, Name: "Campanha A"}}, nil)
		mockIntegrator.EXPECT().
			FetchPeriodStats([]int64{1}, weekPeriod).
			Return(map[int64]domain.StatRecord{
				1: {CampaignID: 1, SpendRub: 1400},
			}, nil)
		mockIntegrator.EXPECT().
			FetchBudgets([]int64{1}).
			Return(map[int64]int64{1: 50000}, nil)

		result, err := service.BudgetPlan(BudgetPlanOptions{
			CampaignIDs:      []int64{1},
			TargetRunwayDays: utils.Float64Ptr(2.0),
			Now:              testNow,
		})

		assert.NoError(t, err)
		assert.Equal(t, 2.0, result.TargetRunwayDays)
		// Autonomia 2.5 já está acima da meta de 2 dias
		assert.Empty(t, result.Plans)
		assert.Nil(t, result.APIResult)
	})

	t.Run("Falha em um depósito preserva os anteriores no relatório", func(t *testing.T) {
		mockIntegrator := mocks.NewMockIntegrator(ctrl)
		service := NewService(testConfig(), mockIntegrator)

		mockIntegrator.EXPECT().
			FetchCampaigns([]int64{1, 2}, gomock.Nil(), "").
			Return([]domain.Campaign{
				{ID: 1, Name: "Campanha A"},
				{ID: 2, Name: "Campanha B"},
			}, nil)
		mockIntegrator.EXPECT().
			FetchPeriodStats([]int64{1, 2}, weekPeriod).
			Return(map[int64]domain.StatRecord{
				1: {CampaignID: 1, SpendRub: 1400},
				2: {CampaignID: 2, SpendRub: 700},
			}, nil)
		mockIntegrator.EXPECT().
			FetchBudgets([]int64{1, 2}).
			Return(map[int64]int64{1: 0, 2: 0}, nil)

		// Maior gasto diário primeiro: campanha 1 deposita, campanha 2 falha
		first := mockIntegrator.EXPECT().
			DepositBudget(int64(1), gomock.Any()).
			Return(map[string]any{"ok": true}, nil)
		mockIntegrator.EXPECT().
			DepositBudget(int64(2), gomock.Any()).
			Return(nil, assert.AnError).
			After(first)

		result, err := service.BudgetPlan(BudgetPlanOptions{
			CampaignIDs: []int64{1, 2},
			Apply:       true,
			Now:         testNow,
		})

		assert.NoError(t, err)
		assert.NotNil(t, result.APIResult)
		assert.True(t, result.APIResult.Failed)
		assert.Len(t, result.APIResult.SubmittedChunks, 1)
	})
}
