package wb

import (
	wbdomain "github.com/vfg2006/wb-promote-cli/infrastructure/integrator/wb/domain"
	"github.com/vfg2006/wb-promote-cli/internal/domain"
)

// extractKeywordRows normaliza a resposta de estatísticas por palavra-chave
// em linhas do modelo de domínio. Os formatos conhecidos são tentados em
// ordem: primeiro items[].dailyStats[], depois stats[].stats[]. Um items
// presente, mesmo vazio, indica que a resposta está nesse formato e o
// alternativo não é consultado. Grupos sem identificador de campanha ou
// produto são descartados em silêncio.
func extractKeywordRows(response *wbdomain.KeywordStatsResponse) []domain.KeywordStatRow {
	if response == nil {
		return nil
	}

	rows := make([]domain.KeywordStatRow, 0)

	if response.Items != nil {
		for _, item := range response.Items {
			for _, day := range item.DailyStats {
				if day.Stat == nil {
					continue
				}
				rows = append(rows, buildKeywordRow(item.AdvertID, item.NMID, day.Date, day.Stat))
			}
		}
		return rows
	}

	for _, group := range response.Stats {
		campaignID := group.CampaignID()
		productID := group.ProductID()
		if campaignID == nil || productID == nil {
			continue
		}
		for i := range group.Stats {
			rows = append(rows, buildKeywordRow(*campaignID, *productID, "", &group.Stats[i]))
		}
	}

	return rows
}

func buildKeywordRow(campaignID, productID int64, date string, entry *wbdomain.KeywordEntry) domain.KeywordStatRow {
	return domain.KeywordStatRow{
		CampaignID: campaignID,
		ProductID:  productID,
		Date:       date,
		Query:      entry.Query(),
		Views:      floatOrZero(entry.Views),
		Clicks:     floatOrZero(entry.Clicks),
		Orders:     floatOrZero(entry.Orders),
		Baskets:    floatOrZero(entry.ATBs),
		SpendRub:   floatOrZero(entry.Spend),
		CPC:        entry.CPC,
		CTR:        entry.CTR,
		CPM:        entry.CPM,
		AvgPos:     entry.Position(),
	}
}

func floatOrZero(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}
