package optimizing

import (
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/wb-promote-cli/infrastructure/integrator/wb"
	"github.com/vfg2006/wb-promote-cli/internal/domain"
	"github.com/vfg2006/wb-promote-cli/pkg/utils"
)

// maxSubmitBatch é o limite da API de submissão: até 50 campanhas por
// chamada e até 50 produtos por campanha
const maxSubmitBatch = 50

// SortRecommendations ordena as recomendações da mais urgente para a menos:
// prioridade maior primeiro, gasto maior como desempate. A ordenação é
// estável para que entradas empatadas preservem a ordem de chegada.
func SortRecommendations(recommendations []domain.BidRecommendation) {
	sort.SliceStable(recommendations, func(i, j int) bool {
		if recommendations[i].PriorityScore != recommendations[j].PriorityScore {
			return recommendations[i].PriorityScore > recommendations[j].PriorityScore
		}
		return perfSpend(&recommendations[i]) > perfSpend(&recommendations[j])
	})
}

func perfSpend(rec *domain.BidRecommendation) float64 {
	if rec.Perf == nil {
		return 0
	}
	return rec.Perf.SpendRub
}

// TruncatePlan limita o plano às maxChanges recomendações mais urgentes.
// maxChanges <= 0 não limita.
func TruncatePlan(recommendations []domain.BidRecommendation, maxChanges int) []domain.BidRecommendation {
	if maxChanges <= 0 || len(recommendations) <= maxChanges {
		return recommendations
	}
	return recommendations[:maxChanges]
}

// BuildPayload agrupa as recomendações no formato da API de submissão, com
// as campanhas em ordem crescente de ID
func BuildPayload(recommendations []domain.BidRecommendation) domain.BidsPayload {
	byCampaign := make(map[int64][]domain.CampaignBidChange)
	campaignIDs := make([]int64, 0)

	for i := range recommendations {
		rec := &recommendations[i]
		if _, ok := byCampaign[rec.CampaignID]; !ok {
			campaignIDs = append(campaignIDs, rec.CampaignID)
		}
		byCampaign[rec.CampaignID] = append(byCampaign[rec.CampaignID], domain.CampaignBidChange{
			ProductID:  rec.ProductID,
			BidKopecks: rec.NewBidKopecks,
			Placement:  rec.Placement,
		})
	}

	sort.Slice(campaignIDs, func(i, j int) bool { return campaignIDs[i] < campaignIDs[j] })

	payload := domain.BidsPayload{Bids: make([]domain.CampaignBidGroup, 0, len(campaignIDs))}
	for _, id := range campaignIDs {
		payload.Bids = append(payload.Bids, domain.CampaignBidGroup{
			CampaignID: id,
			Bids:       byCampaign[id],
		})
	}

	return payload
}

// SubmitPlan envia o payload respeitando os limites da API e relata até onde
// chegou: uma falha interrompe a submissão, mas os lotes já aceitos ficam no
// relatório
func SubmitPlan(integrator wb.Integrator, payload domain.BidsPayload) *domain.ApplyOutcome {
	groups := splitGroups(payload.Bids, maxSubmitBatch)
	chunks := chunkGroups(groups, maxSubmitBatch)

	outcome := &domain.ApplyOutcome{
		ChunksTotal:     len(chunks),
		SubmittedChunks: make([]domain.ApplyChunkResult, 0, len(chunks)),
	}

	for i, chunk := range chunks {
		if logrus.IsLevelEnabled(logrus.DebugLevel) {
			logrus.Debugf("optimize: submitting chunk %d/%d: %s", i+1, len(chunks), utils.PrettyJson(chunk))
		}

		response, err := integrator.SubmitBidChunk(chunk)
		if err != nil {
			logrus.WithError(err).WithField("chunk", i+1).Error("optimize: bid submission failed")
			outcome.Failed = true
			outcome.Error = err.Error()
			return outcome
		}

		bids := 0
		for _, group := range chunk {
			bids += len(group.Bids)
		}
		outcome.SubmittedChunks = append(outcome.SubmittedChunks, domain.ApplyChunkResult{
			Chunk:     i + 1,
			Campaigns: len(chunk),
			Bids:      bids,
			Response:  response,
		})
	}

	return outcome
}

// splitGroups reparte campanhas com mais de size produtos em múltiplas
// entradas com o mesmo ID de campanha
func splitGroups(groups []domain.CampaignBidGroup, size int) []domain.CampaignBidGroup {
	out := make([]domain.CampaignBidGroup, 0, len(groups))
	for _, group := range groups {
		if len(group.Bids) <= size {
			out = append(out, group)
			continue
		}
		for start := 0; start < len(group.Bids); start += size {
			end := start + size
			if end > len(group.Bids) {
				end = len(group.Bids)
			}
			out = append(out, domain.CampaignBidGroup{
				CampaignID: group.CampaignID,
				Bids:       group.Bids[start:end],
			})
		}
	}
	return out
}

// chunkGroups fatia as entradas em lotes de até size campanhas por chamada
func chunkGroups(groups []domain.CampaignBidGroup, size int) [][]domain.CampaignBidGroup {
	if len(groups) == 0 {
		return nil
	}
	chunks := make([][]domain.CampaignBidGroup, 0, (len(groups)+size-1)/size)
	for start := 0; start < len(groups); start += size {
		end := start + size
		if end > len(groups) {
			end = len(groups)
		}
		chunks = append(chunks, groups[start:end])
	}
	return chunks
}
