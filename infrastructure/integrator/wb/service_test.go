package wb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	wbdomain "github.com/vfg2006/wb-promote-cli/infrastructure/integrator/wb/domain"
	"github.com/vfg2006/wb-promote-cli/infrastructure/integrator/wb/promoteclient/mocks"
	"github.com/vfg2006/wb-promote-cli/internal/config"
	"github.com/vfg2006/wb-promote-cli/internal/domain"
	"github.com/vfg2006/wb-promote-cli/pkg/utils"
	"go.uber.org/mock/gomock"
)

func TestFetchCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("IDs são fatiados em lotes de 50 e o resultado deduplicado", func(t *testing.T) {
		mockClient := mocks.NewMockClient(ctrl)
		integrator := NewIntegrator(&config.Config{}, mockClient, nil)

		ids := make([]int64, 0, 51)
		for i := 0; i < 51; i++ {
			ids = append(ids, int64(i+1))
		}

		mockClient.EXPECT().
			GetAdverts(ids[:50], gomock.Nil(), "").
			Return(&wbdomain.AdvertsResponse{Adverts: []wbdomain.Advert{
				{ID: 1, Status: 9},
				{ID: 2, Status: 9},
			}}, nil)
		mockClient.EXPECT().
			GetAdverts(ids[50:], gomock.Nil(), "").
			Return(&wbdomain.AdvertsResponse{Adverts: []wbdomain.Advert{
				{ID: 2, Status: 9},
				{ID: 51, Status: 11},
			}}, nil)

		campaigns, err := integrator.FetchCampaigns(ids, nil, "")

		assert.NoError(t, err)
		assert.Len(t, campaigns, 3)
	})

	t.Run("Sem IDs a descoberta usa os status informados", func(t *testing.T) {
		mockClient := mocks.NewMockClient(ctrl)
		integrator := NewIntegrator(&config.Config{}, mockClient, nil)

		mockClient.EXPECT().
			GetAdverts(gomock.Nil(), []int{9, 11}, "cpm").
			Return(&wbdomain.AdvertsResponse{}, nil)

		campaigns, err := integrator.FetchCampaigns(nil, []int{9, 11}, "cpm")

		assert.NoError(t, err)
		assert.Empty(t, campaigns)
	})
}

func TestNormalizeAdvert(t *testing.T) {
	t.Run("Campanha completa é normalizada com placements e lances", func(t *testing.T) {
		advert := &wbdomain.Advert{
			ID:      1,
			Status:  9,
			BidType: "unified",
			Settings: &wbdomain.AdvertSettings{
				Name:        "Campanha A",
				PaymentType: "cpm",
				Placements:  &wbdomain.AdvertPlacements{Search: true},
			},
			NMSettings: []wbdomain.NMSetting{
				{NMID: 10, Bids: &wbdomain.NMBids{Search: utils.Int64Ptr(100)}},
				{NMID: 20},
			},
		}

		campaign := normalizeAdvert(advert)

		assert.Equal(t, int64(1), campaign.ID)
		assert.Equal(t, "Campanha A", campaign.Name)
		assert.Equal(t, "unified", campaign.BidType)
		assert.Equal(t, domain.PaymentTypeCPM, campaign.PaymentType)
		assert.True(t, campaign.Placements.Search)
		assert.Len(t, campaign.Products, 2)
		assert.Equal(t, int64(100), *campaign.Products[0].Bids.Search)
		assert.Nil(t, campaign.Products[1].Bids.Search)
	})

	t.Run("Campanha sem settings não quebra a normalização", func(t *testing.T) {
		campaign := normalizeAdvert(&wbdomain.Advert{ID: 2, Status: 11})

		assert.Equal(t, int64(2), campaign.ID)
		assert.Empty(t, campaign.Name)
		assert.False(t, campaign.Placements.Search)
		assert.Empty(t, campaign.Products)
	})
}

func TestFetchPeriodStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	period := domain.Period{From: "2026-08-20", To: "2026-08-22", Days: 3}

	t.Run("Linhas com qualquer nome de campo de ID são somadas por campanha", func(t *testing.T) {
		mockClient := mocks.NewMockClient(ctrl)
		integrator := NewIntegrator(&config.Config{}, mockClient, nil)

		mockClient.EXPECT().
			GetFullStats([]int64{1, 2}, "2026-08-20", "2026-08-22").
			Return([]wbdomain.FullStatsItem{
				{AdvertID: utils.Int64Ptr(1), Views: 100, Clicks: 10, Sum: 50, SumPrice: 200},
				{AdvertIDAlt: utils.Int64Ptr(1), Views: 50, Clicks: 5, Sum: 25, SumPrice: 100},
				{AdvertIDAlt: utils.Int64Ptr(2), Orders: 1, Sum: 10},
				// Sem identificador: ignorada
				{Views: 999},
			}, nil)

		totals, err := integrator.FetchPeriodStats([]int64{1, 2}, period)

		assert.NoError(t, err)
		assert.Len(t, totals, 2)
		assert.Equal(t, int64(150), totals[1].Views)
		assert.Equal(t, int64(15), totals[1].Clicks)
		assert.Equal(t, 75.0, totals[1].SpendRub)
		assert.Equal(t, 300.0, totals[1].RevenueRub)
		assert.Equal(t, int64(1), totals[2].Orders)
	})
}

func TestFetchMinBids(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Rótulo recommendation da API é normalizado no plural", func(t *testing.T) {
		mockClient := mocks.NewMockClient(ctrl)
		integrator := NewIntegrator(&config.Config{}, mockClient, nil)

		campaign := &domain.Campaign{
			ID:          1,
			PaymentType: domain.PaymentTypeCPM,
			Placements:  domain.PlacementSettings{Search: true, Recommendations: true},
			Products:    []domain.ProductSettings{{ProductID: 10}},
		}

		mockClient.EXPECT().
			GetMinBids(&wbdomain.MinBidsRequest{
				AdvertID:       1,
				NMIDs:          []int64{10},
				PaymentType:    "cpm",
				PlacementTypes: []string{"search", "recommendation"},
			}).
			Return(&wbdomain.MinBidsResponse{Bids: []wbdomain.MinBidNM{
				{
					// Identificador sob o nome alternativo
					NMIDAlt: utils.Int64Ptr(10),
					Bids: []wbdomain.MinBidValue{
						{Type: "search", Value: 80},
						{Type: "recommendation", Value: 60},
					},
				},
				// Sem identificador: ignorado
				{Bids: []wbdomain.MinBidValue{{Type: "search", Value: 999}}},
			}}, nil)

		floors, err := integrator.FetchMinBids(campaign)

		assert.NoError(t, err)
		assert.Len(t, floors, 2)
		assert.Equal(t, int64(80), floors[domain.MinBidKey{CampaignID: 1, ProductID: 10, Placement: domain.PlacementSearch}])
		assert.Equal(t, int64(60), floors[domain.MinBidKey{CampaignID: 1, ProductID: 10, Placement: domain.PlacementRecommendations}])
	})

	t.Run("Campanha de lance unificado pede o placement combinado", func(t *testing.T) {
		mockClient := mocks.NewMockClient(ctrl)
		integrator := NewIntegrator(&config.Config{}, mockClient, nil)

		campaign := &domain.Campaign{
			ID:          1,
			BidType:     domain.BidTypeUnified,
			PaymentType: domain.PaymentTypeCPM,
			Products:    []domain.ProductSettings{{ProductID: 10}},
		}

		mockClient.EXPECT().
			GetMinBids(&wbdomain.MinBidsRequest{
				AdvertID:       1,
				NMIDs:          []int64{10},
				PaymentType:    "cpm",
				PlacementTypes: []string{"combined"},
			}).
			Return(&wbdomain.MinBidsResponse{Bids: []wbdomain.MinBidNM{
				{NMID: utils.Int64Ptr(10), Bids: []wbdomain.MinBidValue{{Type: "combined", Value: 120}}},
			}}, nil)

		floors, err := integrator.FetchMinBids(campaign)

		assert.NoError(t, err)
		assert.Equal(t, int64(120), floors[domain.MinBidKey{CampaignID: 1, ProductID: 10, Placement: domain.PlacementCombined}])
	})
}

func TestSubmitBidChunk(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := NewIntegrator(&config.Config{}, mockClient, nil)

	groups := []domain.CampaignBidGroup{
		{
			CampaignID: 1,
			Bids: []domain.CampaignBidChange{
				{ProductID: 10, BidKopecks: 90, Placement: domain.PlacementSearch},
			},
		},
	}

	mockClient.EXPECT().
		PatchBids(&wbdomain.BidsPatchRequest{Bids: []wbdomain.BidsPatchAdvert{
			{
				AdvertID: 1,
				NMBids:   []wbdomain.BidsPatchBid{{NMID: 10, BidKopecks: 90, Placement: "search"}},
			},
		}}).
		Return(map[string]any{"ok": true}, nil)

	response, err := integrator.SubmitBidChunk(groups)

	assert.NoError(t, err)
	assert.NotNil(t, response)
}

func TestFetchBudgets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := NewIntegrator(&config.Config{}, mockClient, nil)

	mockClient.EXPECT().GetBudget(int64(1)).Return(&wbdomain.BudgetResponse{Total: 50000}, nil)
	mockClient.EXPECT().GetBudget(int64(2)).Return(&wbdomain.BudgetResponse{Total: 0}, nil)

	budgets, err := integrator.FetchBudgets([]int64{1, 2})

	assert.NoError(t, err)
	assert.Equal(t, int64(50000), budgets[1])
	assert.Equal(t, int64(0), budgets[2])
}
