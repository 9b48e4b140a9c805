package optimizing

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/wb-promote-cli/infrastructure/integrator/wb"
	"github.com/vfg2006/wb-promote-cli/internal/config"
	"github.com/vfg2006/wb-promote-cli/internal/domain"
	"github.com/vfg2006/wb-promote-cli/pkg/clierrors"
	"github.com/vfg2006/wb-promote-cli/pkg/utils"
)

// defaultSnapshotLookbackDays é a janela padrão do snapshot quando o usuário
// não informa datas
const defaultSnapshotLookbackDays = 7

// Service orquestra os fluxos do CLI sobre o integrador do WB Promote. Cada
// fluxo é uma passada única: resolve o período, busca, decide e emite. Nada
// fica agendado nem persistido entre execuções.
type Service struct {
	cfg        *config.Config
	integrator wb.Integrator
}

func NewService(cfg *config.Config, integrator wb.Integrator) *Service {
	return &Service{
		cfg:        cfg,
		integrator: integrator,
	}
}

// SnapshotOptions são as entradas do fluxo snapshot
type SnapshotOptions struct {
	CampaignIDs []int64
	Statuses    []int
	From        string
	To          string
	Now         time.Time
}

// Snapshot monta a visão consolidada das campanhas no período: configurações,
// métricas derivadas, orçamento restante e autonomia projetada
func (s *Service) Snapshot(opts SnapshotOptions) (*domain.SnapshotResult, error) {
	period, _, err := ResolveDateRange(opts.From, opts.To, defaultSnapshotLookbackDays, opts.Now)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.resolveCampaigns(opts.CampaignIDs, opts.Statuses, "")
	if err != nil {
		return nil, err
	}

	ids := campaignIDs(campaigns)

	stats, err := s.integrator.FetchPeriodStats(ids, period)
	if err != nil {
		return nil, clierrors.External(err)
	}
	budgets, err := s.integrator.FetchBudgets(ids)
	if err != nil {
		return nil, clierrors.External(err)
	}

	result := &domain.SnapshotResult{
		Period:    period,
		Campaigns: make([]domain.CampaignSnapshot, 0, len(campaigns)),
	}

	var totalSpend, totalRevenue float64
	var totalClicks, totalOrders int64

	for i := range campaigns {
		campaign := &campaigns[i]
		stat := stats[campaign.ID]
		metrics := CampaignMetricsFromStat(stat)

		snapshot := domain.CampaignSnapshot{
			CampaignID:   campaign.ID,
			Name:         campaign.Name,
			Status:       campaign.Status,
			BidType:      campaign.BidType,
			PaymentType:  campaign.PaymentType,
			Placements:   campaign.Placements,
			ProductCount: len(campaign.Products),
			Metrics:      metrics,
		}

		if budget, ok := budgets[campaign.ID]; ok {
			snapshot.BudgetKopecks = utils.Int64Ptr(budget)

			spendPerDayKopecks := stat.SpendRub / float64(period.Days) * 100
			if spendPerDayKopecks > 0 {
				snapshot.BudgetRunwayDays = utils.Float64Ptr(utils.RoundWithTwoDecimalPlace(
					float64(budget) / spendPerDayKopecks,
				))
			}
		}

		totalSpend += stat.SpendRub
		totalRevenue += stat.RevenueRub
		totalClicks += stat.Clicks
		totalOrders += stat.Orders
		if campaign.Status == domain.CampaignStatusActive {
			result.Summary.ActiveCampaigns++
		}

		result.Campaigns = append(result.Campaigns, snapshot)
	}

	result.Summary.Campaigns = len(campaigns)
	result.Summary.SpendRub = utils.RoundWithTwoDecimalPlace(totalSpend)
	result.Summary.RevenueRub = utils.RoundWithTwoDecimalPlace(totalRevenue)
	result.Summary.Clicks = totalClicks
	result.Summary.Orders = totalOrders
	if totalSpend > 0 {
		result.Summary.ROAS = utils.Float64Ptr(utils.RoundWithTwoDecimalPlace(totalRevenue / totalSpend))
	}
	if totalOrders > 0 {
		result.Summary.CPARub = utils.Float64Ptr(utils.RoundWithTwoDecimalPlace(totalSpend / float64(totalOrders)))
	}

	result.RunID, err = utils.ShortID()
	if err != nil {
		return nil, clierrors.Newf(clierrors.ErrInternal, "failed to generate run id: %v", err)
	}

	return result, nil
}

// BidsPlanOptions são as entradas do fluxo bids-plan
type BidsPlanOptions struct {
	CampaignIDs   []int64
	From          string
	To            string
	Placement     string
	TargetCPA     *float64
	MinCTR        *float64
	MaxBidKopecks *int64
	MaxChanges    int
	Apply         bool
	Now           time.Time
}

// BidsPlan monta (e opcionalmente aplica) o plano de mudanças de lance das
// campanhas CPM informadas, a partir do desempenho por palavra-chave
func (s *Service) BidsPlan(opts BidsPlanOptions) (*domain.BidsPlanResult, error) {
	if len(opts.CampaignIDs) == 0 {
		return nil, clierrors.Validation("at least one campaign id is required")
	}
	if !domain.ValidPlacementChoice(opts.Placement) {
		return nil, clierrors.Newf(
			clierrors.ErrInvalidEnum,
			"invalid placement %q: allowed values are auto, search, recommendations, combined",
			opts.Placement,
		)
	}
	placementChoice := domain.Placement(opts.Placement)

	period, dates, err := ResolveDateRange(opts.From, opts.To, s.cfg.Optimizer.LookbackDays, opts.Now)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.resolveCampaigns(opts.CampaignIDs, nil, "")
	if err != nil {
		return nil, err
	}

	rows, err := s.integrator.FetchKeywordStats(opts.CampaignIDs, dates)
	if err != nil {
		return nil, clierrors.External(err)
	}
	performances := AggregateProductPerformance(rows)

	bidderCfg := &BidderConfig{
		TargetCPA:            opts.TargetCPA,
		MinClicks:            s.cfg.Optimizer.MinClicks,
		KillClicks:           s.cfg.Optimizer.KillClicks,
		MinCTR:               opts.MinCTR,
		MaxAvgPos:            s.cfg.Optimizer.MaxAvgPos,
		IncreasePct:          s.cfg.Optimizer.IncreasePct,
		DecreasePct:          s.cfg.Optimizer.DecreasePct,
		StrongDecreasePct:    s.cfg.Optimizer.StrongDecreasePct,
		MinOrdersForIncrease: s.cfg.Optimizer.MinOrdersForIncrease,
		BidStepKopecks:       s.cfg.Optimizer.BidStepKopecks,
		MaxBidKopecks:        opts.MaxBidKopecks,
	}

	recommendations := make([]domain.BidRecommendation, 0)

	for i := range campaigns {
		campaign := &campaigns[i]

		// Só campanhas CPM têm lance por mil impressões ajustável
		if campaign.PaymentType != domain.PaymentTypeCPM {
			logrus.WithFields(logrus.Fields{
				"campaign_id":  campaign.ID,
				"payment_type": campaign.PaymentType,
			}).Warn("optimize: skipping non-CPM campaign")
			continue
		}

		placement := campaign.ChooseBidPlacement(placementChoice)

		floors, err := s.integrator.FetchMinBids(campaign)
		if err != nil {
			return nil, clierrors.External(err)
		}

		for j := range campaign.Products {
			product := &campaign.Products[j]

			perf := performances[domain.ProductKey{
				CampaignID: campaign.ID,
				ProductID:  product.ProductID,
			}]
			if perf == nil {
				continue
			}

			var floor *int64
			if value, ok := floors[domain.MinBidKey{
				CampaignID: campaign.ID,
				ProductID:  product.ProductID,
				Placement:  placement,
			}]; ok {
				floor = utils.Int64Ptr(value)
			}

			rec := RecommendBid(campaign, product, placement, perf, floor, bidderCfg)
			if rec != nil {
				recommendations = append(recommendations, *rec)
			}
		}
	}

	SortRecommendations(recommendations)
	recommendations = TruncatePlan(recommendations, opts.MaxChanges)
	payload := BuildPayload(recommendations)

	result := &domain.BidsPlanResult{
		Period:          period,
		Recommendations: recommendations,
		APIPayload:      payload,
	}

	result.Summary.Mode = "dry-run"
	result.Summary.Changes = len(recommendations)
	result.Summary.CampaignsAffected = len(payload.Bids)
	for i := range recommendations {
		switch recommendations[i].Action {
		case domain.BidActionIncrease:
			result.Summary.Increase++
		case domain.BidActionDecrease:
			result.Summary.Decrease++
		}
	}

	if opts.Apply && len(recommendations) > 0 {
		result.Summary.Mode = "apply"
		result.APIResult = SubmitPlan(s.integrator, payload)
	}

	result.RunID, err = utils.ShortID()
	if err != nil {
		return nil, clierrors.Newf(clierrors.ErrInternal, "failed to generate run id: %v", err)
	}

	return result, nil
}

// BudgetPlanOptions são as entradas do fluxo budget-plan
type BudgetPlanOptions struct {
	CampaignIDs      []int64
	Statuses         []int
	From             string
	To               string
	TargetRunwayDays *float64
	MaxCPARub        *float64
	MinROAS          *float64
	Apply            bool
	Now              time.Time
}

// BudgetPlan projeta a autonomia de orçamento das campanhas e sugere (e
// opcionalmente executa) depósitos para as que ficariam sem verba
func (s *Service) BudgetPlan(opts BudgetPlanOptions) (*domain.BudgetPlanResult, error) {
	period, _, err := ResolveDateRange(opts.From, opts.To, s.cfg.BudgetPlanner.LookbackDays, opts.Now)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.resolveCampaigns(opts.CampaignIDs, opts.Statuses, "")
	if err != nil {
		return nil, err
	}

	ids := campaignIDs(campaigns)

	stats, err := s.integrator.FetchPeriodStats(ids, period)
	if err != nil {
		return nil, clierrors.External(err)
	}
	budgets, err := s.integrator.FetchBudgets(ids)
	if err != nil {
		return nil, clierrors.External(err)
	}

	plannerCfg := &BudgetPlannerConfig{
		TargetRunwayDays:  s.cfg.BudgetPlanner.TargetRunwayDays,
		MinSpendPerDayRub: s.cfg.BudgetPlanner.MinSpendPerDayRub,
		RoundToKopecks:    s.cfg.BudgetPlanner.RoundToKopecks,
		MinTopUpKopecks:   s.cfg.BudgetPlanner.MinTopUpKopecks,
		MaxCPARub:         opts.MaxCPARub,
		MinROAS:           opts.MinROAS,
	}
	if opts.TargetRunwayDays != nil {
		plannerCfg.TargetRunwayDays = *opts.TargetRunwayDays
	}

	plans := PlanBudgetTopUps(campaigns, stats, budgets, period.Days, plannerCfg)

	result := &domain.BudgetPlanResult{
		Period:           period,
		TargetRunwayDays: plannerCfg.TargetRunwayDays,
		Plans:            plans,
	}
	result.Summary.CampaignsRequiringTopUp = len(plans)
	for i := range plans {
		result.Summary.TotalSuggestedTopUpKopecks += plans[i].SuggestedTopUpKopecks
	}

	if opts.Apply && len(plans) > 0 {
		result.APIResult = s.applyDeposits(plans)
	}

	result.RunID, err = utils.ShortID()
	if err != nil {
		return nil, clierrors.Newf(clierrors.ErrInternal, "failed to generate run id: %v", err)
	}

	return result, nil
}

// applyDeposits executa os depósitos um a um e relata até onde chegou: uma
// falha interrompe a aplicação, mas os depósitos já aceitos ficam no relatório
func (s *Service) applyDeposits(plans []domain.BudgetTopUpPlan) *domain.ApplyOutcome {
	outcome := &domain.ApplyOutcome{
		ChunksTotal:     len(plans),
		SubmittedChunks: make([]domain.ApplyChunkResult, 0, len(plans)),
	}

	for i := range plans {
		plan := &plans[i]
		response, err := s.integrator.DepositBudget(plan.CampaignID, plan.SuggestedTopUpKopecks)
		if err != nil {
			logrus.WithError(err).WithField("campaign_id", plan.CampaignID).
				Error("optimize: budget deposit failed")
			outcome.Failed = true
			outcome.Error = err.Error()
			return outcome
		}
		outcome.SubmittedChunks = append(outcome.SubmittedChunks, domain.ApplyChunkResult{
			Chunk:     i + 1,
			Campaigns: 1,
			Response:  response,
		})
	}

	return outcome
}

// ListCampaigns lista as campanhas normalizadas, com descoberta por status
// quando nenhum ID é informado
func (s *Service) ListCampaigns(ids []int64, statuses []int, paymentType string) ([]domain.Campaign, error) {
	return s.resolveCampaigns(ids, statuses, paymentType)
}

// resolveCampaigns busca as campanhas pedidas ou descobre pelas de status
// padrão. IDs explícitos ausentes na resposta são erro de validação: o
// usuário pediu algo que não existe.
func (s *Service) resolveCampaigns(ids []int64, statuses []int, paymentType string) ([]domain.Campaign, error) {
	if len(ids) == 0 && len(statuses) == 0 {
		statuses = domain.DefaultDiscoveryStatuses
	}

	campaigns, err := s.integrator.FetchCampaigns(ids, statuses, paymentType)
	if err != nil {
		return nil, clierrors.External(err)
	}

	if len(ids) > 0 {
		found := make(map[int64]bool, len(campaigns))
		for i := range campaigns {
			found[campaigns[i].ID] = true
		}
		missing := make([]string, 0)
		for _, id := range ids {
			if !found[id] {
				missing = append(missing, fmt.Sprintf("%d", id))
			}
		}
		if len(missing) > 0 {
			return nil, clierrors.Newf(
				clierrors.ErrUnknownCampaign,
				"campaigns not found: %s", strings.Join(missing, ", "),
			)
		}
	}

	sort.SliceStable(campaigns, func(i, j int) bool { return campaigns[i].ID < campaigns[j].ID })

	return campaigns, nil
}

func campaignIDs(campaigns []domain.Campaign) []int64 {
	ids := make([]int64, 0, len(campaigns))
	for i := range campaigns {
		ids = append(ids, campaigns[i].ID)
	}
	return ids
}
