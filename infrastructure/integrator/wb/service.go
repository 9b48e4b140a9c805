package wb

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	wbdomain "github.com/vfg2006/wb-promote-cli/infrastructure/integrator/wb/domain"
	"github.com/vfg2006/wb-promote-cli/infrastructure/integrator/wb/promoteclient"
	"github.com/vfg2006/wb-promote-cli/infrastructure/repository"
	"github.com/vfg2006/wb-promote-cli/internal/config"
	"github.com/vfg2006/wb-promote-cli/internal/domain"
)

// maxBatchSize é o limite de campanhas (e de produtos por campanha) aceito
// pela API por chamada
const maxBatchSize = 50

// Integrator é a visão tipada da API do WB Promote para os casos de uso:
// chunking, deduplicação e normalização acontecem aqui, nunca acima.
type Integrator interface {
	FetchCampaigns(ids []int64, statuses []int, paymentType string) ([]domain.Campaign, error)
	FetchPeriodStats(ids []int64, period domain.Period) (map[int64]domain.StatRecord, error)
	FetchBudgets(ids []int64) (map[int64]int64, error)
	FetchKeywordStats(ids []int64, dates []string) ([]domain.KeywordStatRow, error)
	FetchMinBids(campaign *domain.Campaign) (map[domain.MinBidKey]int64, error)
	SubmitBidChunk(groups []domain.CampaignBidGroup) (any, error)
	DepositBudget(campaignID int64, amountKopecks int64) (any, error)
}

type wbIntegrator struct {
	cfg        *config.Config
	client     promoteclient.Client
	statsCache repository.StatsCacheRepository
}

// NewIntegrator monta o integrador. statsCache pode ser nil quando o cache
// local está desabilitado.
func NewIntegrator(
	cfg *config.Config,
	client promoteclient.Client,
	statsCache repository.StatsCacheRepository,
) Integrator {
	return &wbIntegrator{
		cfg:        cfg,
		client:     client,
		statsCache: statsCache,
	}
}

// FetchCampaigns busca e normaliza as campanhas. Com IDs explícitos as
// chamadas são divididas em lotes de 50; sem IDs a descoberta usa os status
// informados. Campanhas repetidas entre lotes são deduplicadas pelo ID.
func (s *wbIntegrator) FetchCampaigns(ids []int64, statuses []int, paymentType string) ([]domain.Campaign, error) {
	adverts := make([]wbdomain.Advert, 0)

	if len(ids) == 0 {
		response, err := s.client.GetAdverts(nil, statuses, paymentType)
		if err != nil {
			return nil, err
		}
		adverts = response.Adverts
	} else {
		for _, chunk := range chunkInt64(ids, maxBatchSize) {
			response, err := s.client.GetAdverts(chunk, statuses, paymentType)
			if err != nil {
				return nil, err
			}
			adverts = append(adverts, response.Adverts...)
		}
	}

	seen := make(map[int64]bool, len(adverts))
	campaigns := make([]domain.Campaign, 0, len(adverts))
	for i := range adverts {
		advert := &adverts[i]
		if seen[advert.ID] {
			continue
		}
		seen[advert.ID] = true
		campaigns = append(campaigns, normalizeAdvert(advert))
	}

	logrus.WithField("campaigns", len(campaigns)).Debug("promote: campaigns fetched")

	return campaigns, nil
}

func normalizeAdvert(advert *wbdomain.Advert) domain.Campaign {
	campaign := domain.Campaign{
		ID:      advert.ID,
		Status:  advert.Status,
		BidType: advert.BidType,
	}

	if advert.Settings != nil {
		campaign.Name = advert.Settings.Name
		campaign.PaymentType = advert.Settings.PaymentType
		if advert.Settings.Placements != nil {
			campaign.Placements = domain.PlacementSettings{
				Search:          advert.Settings.Placements.Search,
				Recommendations: advert.Settings.Placements.Recommendations,
			}
		}
	}

	campaign.Products = make([]domain.ProductSettings, 0, len(advert.NMSettings))
	for _, nm := range advert.NMSettings {
		product := domain.ProductSettings{ProductID: nm.NMID}
		if nm.Bids != nil {
			product.Bids = domain.ProductBids{
				Search:          nm.Bids.Search,
				Recommendations: nm.Bids.Recommendations,
			}
		}
		campaign.Products = append(campaign.Products, product)
	}

	return campaign
}

// FetchPeriodStats soma as métricas das campanhas no período. Com o cache
// local habilitado o período é preenchido dia a dia a partir do banco, e só
// os dias faltantes vão à API.
func (s *wbIntegrator) FetchPeriodStats(ids []int64, period domain.Period) (map[int64]domain.StatRecord, error) {
	if s.statsCache == nil || !s.cfg.StatsCache.Enabled {
		return s.fetchStatsFromAPI(ids, period.From, period.To)
	}
	return s.fetchStatsWithCache(ids, period)
}

func (s *wbIntegrator) fetchStatsFromAPI(ids []int64, from, to string) (map[int64]domain.StatRecord, error) {
	totals := make(map[int64]domain.StatRecord, len(ids))

	for _, chunk := range chunkInt64(ids, maxBatchSize) {
		items, err := s.client.GetFullStats(chunk, from, to)
		if err != nil {
			return nil, err
		}
		mergeStatItems(totals, items)
	}

	return totals, nil
}

func mergeStatItems(totals map[int64]domain.StatRecord, items []wbdomain.FullStatsItem) {
	for i := range items {
		item := &items[i]
		campaignID := item.CampaignID()
		if campaignID == nil {
			continue
		}
		record := totals[*campaignID]
		record.CampaignID = *campaignID
		record.Add(domain.StatRecord{
			Views:      item.Views,
			Clicks:     item.Clicks,
			Orders:     item.Orders,
			SpendRub:   item.Sum,
			RevenueRub: item.SumPrice,
		})
		totals[*campaignID] = record
	}
}

// fetchStatsWithCache preenche o período dia a dia: dias já no banco não
// voltam à API, dias faltantes são buscados em paralelo (com limite de
// goroutines simultâneas) e gravados para as próximas execuções. Campanhas
// sem atividade no dia entram como registro zerado para evitar rebusca.
func (s *wbIntegrator) fetchStatsWithCache(ids []int64, period domain.Period) (map[int64]domain.StatRecord, error) {
	startDate, err := time.Parse(time.DateOnly, period.From)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao converter a data inicial do período")
	}
	endDate, err := time.Parse(time.DateOnly, period.To)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao converter a data final do período")
	}

	totals := make(map[int64]domain.StatRecord, len(ids))

	cached, err := s.statsCache.GetByDateRange(ids, startDate, endDate)
	if err != nil {
		logrus.WithError(err).Warn("promote: stats cache unavailable, falling back to API")
		return s.fetchStatsFromAPI(ids, period.From, period.To)
	}

	type dayKey struct {
		campaignID int64
		date       string
	}

	cachedDays := make(map[dayKey]bool, len(cached))
	for _, entry := range cached {
		cachedDays[dayKey{entry.CampaignID, entry.Date.Format(time.DateOnly)}] = true
		record := totals[entry.CampaignID]
		record.CampaignID = entry.CampaignID
		record.Add(entry.Stat)
		totals[entry.CampaignID] = record
	}

	// Por data faltante, só as campanhas ainda sem aquele dia no banco
	missingByDate := make(map[string][]int64)
	for date := startDate; !date.After(endDate); date = date.AddDate(0, 0, 1) {
		dateStr := date.Format(time.DateOnly)
		for _, id := range ids {
			if !cachedDays[dayKey{id, dateStr}] {
				missingByDate[dateStr] = append(missingByDate[dateStr], id)
			}
		}
	}

	if len(missingByDate) == 0 {
		return totals, nil
	}

	logrus.WithFields(logrus.Fields{
		"days":      len(missingByDate),
		"campaigns": len(ids),
	}).Info("promote: fetching missing days from API")

	maxConcurrent := s.cfg.StatsCache.MaxConcurrentFetches
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	semaphore := make(chan struct{}, maxConcurrent)

	var fetchWg sync.WaitGroup
	var mutex sync.Mutex
	var fetchErr error

	for dateStr, missingIDs := range missingByDate {
		fetchWg.Add(1)

		go func(dateStr string, missingIDs []int64) {
			defer fetchWg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			dayStats, err := s.fetchStatsFromAPI(missingIDs, dateStr, dateStr)
			if err != nil {
				mutex.Lock()
				if fetchErr == nil {
					fetchErr = err
				}
				mutex.Unlock()
				return
			}

			date, _ := time.Parse(time.DateOnly, dateStr)
			mutex.Lock()
			for _, id := range missingIDs {
				record := dayStats[id]
				record.CampaignID = id

				total := totals[id]
				total.CampaignID = id
				total.Add(record)
				totals[id] = total

				// Gravação é melhor esforço: falha no cache não derruba a execução
				saveErr := s.statsCache.SaveOrUpdate(&domain.StatsCacheEntry{
					CampaignID: id,
					Date:       date,
					Stat:       record,
				})
				if saveErr != nil {
					logrus.WithError(saveErr).WithFields(logrus.Fields{
						"campaign_id": id,
						"date":        dateStr,
					}).Warn("promote: failed to persist day stats")
				}
			}
			mutex.Unlock()
		}(dateStr, missingIDs)
	}

	fetchWg.Wait()

	if fetchErr != nil {
		return nil, fetchErr
	}

	return totals, nil
}

// FetchBudgets busca o orçamento restante de cada campanha, em copeques
func (s *wbIntegrator) FetchBudgets(ids []int64) (map[int64]int64, error) {
	budgets := make(map[int64]int64, len(ids))

	for _, id := range ids {
		response, err := s.client.GetBudget(id)
		if err != nil {
			return nil, err
		}
		budgets[id] = response.Total
	}

	return budgets, nil
}

// FetchKeywordStats busca as estatísticas por palavra-chave das campanhas e
// datas pedidas, já normalizadas em linhas do modelo de domínio
func (s *wbIntegrator) FetchKeywordStats(ids []int64, dates []string) ([]domain.KeywordStatRow, error) {
	rows := make([]domain.KeywordStatRow, 0)

	for _, chunk := range chunkInt64(ids, maxBatchSize) {
		items := make([]wbdomain.KeywordStatsRequestItem, 0, len(chunk))
		for _, id := range chunk {
			items = append(items, wbdomain.KeywordStatsRequestItem{ID: id, Dates: dates})
		}

		response, err := s.client.GetKeywordStats(&wbdomain.KeywordStatsRequest{Items: items})
		if err != nil {
			return nil, err
		}
		rows = append(rows, extractKeywordRows(response)...)
	}

	logrus.WithField("rows", len(rows)).Debug("promote: keyword stats fetched")

	return rows, nil
}

// FetchMinBids busca os pisos de lance dos produtos da campanha, com o rótulo
// de placement já normalizado para o modelo de domínio
func (s *wbIntegrator) FetchMinBids(campaign *domain.Campaign) (map[domain.MinBidKey]int64, error) {
	productIDs := make([]int64, 0, len(campaign.Products))
	for _, product := range campaign.Products {
		productIDs = append(productIDs, product.ProductID)
	}

	floors := make(map[domain.MinBidKey]int64)

	for _, chunk := range chunkInt64(productIDs, maxBatchSize) {
		response, err := s.client.GetMinBids(&wbdomain.MinBidsRequest{
			AdvertID:       campaign.ID,
			NMIDs:          chunk,
			PaymentType:    campaign.PaymentType,
			PlacementTypes: campaign.PlacementTypesForMinBids(),
		})
		if err != nil {
			return nil, err
		}

		for i := range response.Bids {
			nm := &response.Bids[i]
			productID := nm.ProductID()
			if productID == nil {
				continue
			}
			for _, bid := range nm.Bids {
				key := domain.MinBidKey{
					CampaignID: campaign.ID,
					ProductID:  *productID,
					Placement:  domain.NormalizePlacement(bid.Type),
				}
				floors[key] = bid.Value
			}
		}
	}

	return floors, nil
}

// SubmitBidChunk submete um lote de mudanças de lance já dentro dos limites
// da API (o fatiamento em lotes é responsabilidade do plano)
func (s *wbIntegrator) SubmitBidChunk(groups []domain.CampaignBidGroup) (any, error) {
	request := &wbdomain.BidsPatchRequest{
		Bids: make([]wbdomain.BidsPatchAdvert, 0, len(groups)),
	}

	for _, group := range groups {
		advert := wbdomain.BidsPatchAdvert{
			AdvertID: group.CampaignID,
			NMBids:   make([]wbdomain.BidsPatchBid, 0, len(group.Bids)),
		}
		for _, bid := range group.Bids {
			advert.NMBids = append(advert.NMBids, wbdomain.BidsPatchBid{
				NMID:       bid.ProductID,
				BidKopecks: bid.BidKopecks,
				Placement:  string(bid.Placement),
			})
		}
		request.Bids = append(request.Bids, advert)
	}

	return s.client.PatchBids(request)
}

// DepositBudget deposita amountKopecks no orçamento da campanha
func (s *wbIntegrator) DepositBudget(campaignID int64, amountKopecks int64) (any, error) {
	return s.client.DepositBudget(campaignID, amountKopecks)
}
