package domain

// KeywordStatsRequest é o corpo da consulta de estatísticas por palavra-chave
type KeywordStatsRequest struct {
	Items []KeywordStatsRequestItem `json:"items"`
}

// KeywordStatsRequestItem identifica uma campanha e as datas desejadas
type KeywordStatsRequestItem struct {
	ID    int64    `json:"id"`
	Dates []string `json:"dates"`
}

// KeywordStatsResponse aceita os dois formatos conhecidos da resposta de
// estatísticas por palavra-chave: o formato primário items[].dailyStats[]
// e o formato alternativo stats[].stats[]. O leitor do integrador tenta
// cada formato em ordem.
type KeywordStatsResponse struct {
	Items []KeywordItem      `json:"items"`
	Stats []KeywordStatGroup `json:"stats"`
}

// KeywordItem é um item do formato primário
type KeywordItem struct {
	AdvertID   int64            `json:"advertId"`
	NMID       int64            `json:"nmId"`
	DailyStats []KeywordDayStat `json:"dailyStats"`
}

// KeywordDayStat é a estatística de um dia no formato primário
type KeywordDayStat struct {
	Date string        `json:"date"`
	Stat *KeywordEntry `json:"stat"`
}

// KeywordStatGroup é um grupo do formato alternativo, com nomes de campo
// de identificador também alternativos
type KeywordStatGroup struct {
	AdvertID    *int64         `json:"advertId"`
	AdvertIDAlt *int64         `json:"advert_id"`
	NMID        *int64         `json:"nmId"`
	NMIDAlt     *int64         `json:"nm_id"`
	Stats       []KeywordEntry `json:"stats"`
}

// CampaignID resolve o identificador de campanha do grupo
func (g *KeywordStatGroup) CampaignID() *int64 {
	if g.AdvertID != nil {
		return g.AdvertID
	}
	return g.AdvertIDAlt
}

// ProductID resolve o identificador de produto do grupo
func (g *KeywordStatGroup) ProductID() *int64 {
	if g.NMID != nil {
		return g.NMID
	}
	return g.NMIDAlt
}

// KeywordEntry é a estatística de uma palavra-chave. A própria chave
// normalizada pode vir sob dois nomes.
type KeywordEntry struct {
	NormQuery    string   `json:"normQuery"`
	NormQueryAlt string   `json:"norm_query"`
	Views        *float64 `json:"views"`
	Clicks       *float64 `json:"clicks"`
	Orders       *float64 `json:"orders"`
	ATBs         *float64 `json:"atbs"`
	Spend        *float64 `json:"spend"`
	CPC          *float64 `json:"cpc"`
	CTR          *float64 `json:"ctr"`
	CPM          *float64 `json:"cpm"`
	AvgPos       *float64 `json:"avgPos"`
	AvgPosAlt    *float64 `json:"avg_pos"`
}

// Query resolve o texto da palavra-chave
func (e *KeywordEntry) Query() string {
	if e.NormQuery != "" {
		return e.NormQuery
	}
	return e.NormQueryAlt
}

// Position resolve a posição média, tentando cada nome de campo em ordem
func (e *KeywordEntry) Position() *float64 {
	if e.AvgPos != nil {
		return e.AvgPos
	}
	return e.AvgPosAlt
}
