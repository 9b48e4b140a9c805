package domain

import "time"

// StatsCacheEntry é a linha do cache local de estatísticas: as métricas de
// uma campanha em um único dia fechado. Dias fechados não mudam mais na API,
// então a entrada nunca expira por conteúdo, só por retenção.
type StatsCacheEntry struct {
	ID         int64
	CampaignID int64
	Date       time.Time
	Stat       StatRecord
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
