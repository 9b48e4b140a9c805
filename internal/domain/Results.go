package domain

// Period descreve o intervalo de datas resolvido para uma execução
type Period struct {
	From string `json:"from"`
	To   string `json:"to"`
	Days int    `json:"days"`
}

// CampaignBidChange é um item (produto, novo lance, placement) do payload
type CampaignBidChange struct {
	ProductID  int64     `json:"nm_id"`
	BidKopecks int64     `json:"bid_kopecks"`
	Placement  Placement `json:"placement"`
}

// CampaignBidGroup agrupa as mudanças de lance de uma campanha
type CampaignBidGroup struct {
	CampaignID int64               `json:"advert_id"`
	Bids       []CampaignBidChange `json:"nm_bids"`
}

// BidsPayload é o payload agrupado de submissão de lances
type BidsPayload struct {
	Bids []CampaignBidGroup `json:"bids"`
}

// ApplyChunkResult registra o resultado de um chunk já submetido
type ApplyChunkResult struct {
	Chunk     int `json:"chunk"`
	Campaigns int `json:"campaigns"`
	Bids      int `json:"bids"`
	Response  any `json:"response,omitempty"`
}

// ApplyOutcome relata a aplicação do plano, inclusive sucesso parcial:
// os chunks já submetidos antes de uma falha permanecem no relatório
type ApplyOutcome struct {
	ChunksTotal     int                `json:"chunks_total"`
	SubmittedChunks []ApplyChunkResult `json:"submitted_chunks"`
	Failed          bool               `json:"failed"`
	Error           string             `json:"error,omitempty"`
}

// SnapshotSummary são os agregados da visão de snapshot
type SnapshotSummary struct {
	Campaigns       int      `json:"campaigns"`
	ActiveCampaigns int      `json:"active_campaigns"`
	SpendRub        float64  `json:"spend_rub"`
	RevenueRub      float64  `json:"revenue_rub"`
	Clicks          int64    `json:"clicks"`
	Orders          int64    `json:"orders"`
	ROAS            *float64 `json:"roas"`
	CPARub          *float64 `json:"cpa_rub"`
}

// SnapshotResult é o documento emitido pelo workflow snapshot
type SnapshotResult struct {
	RunID     string             `json:"run_id"`
	Period    Period             `json:"period"`
	Campaigns []CampaignSnapshot `json:"campaigns"`
	Summary   SnapshotSummary    `json:"summary"`
}

// BidsPlanSummary são os agregados do plano de lances
type BidsPlanSummary struct {
	Mode              string `json:"mode"`
	Changes           int    `json:"changes"`
	Increase          int    `json:"increase"`
	Decrease          int    `json:"decrease"`
	CampaignsAffected int    `json:"campaigns_affected"`
}

// BidsPlanResult é o documento emitido pelo workflow bids-plan
type BidsPlanResult struct {
	RunID           string              `json:"run_id"`
	Period          Period              `json:"period"`
	Summary         BidsPlanSummary     `json:"summary"`
	Recommendations []BidRecommendation `json:"recommendations"`
	APIPayload      BidsPayload         `json:"api_payload"`
	APIResult       *ApplyOutcome       `json:"api_result"`
}

// BudgetPlanSummary são os agregados do plano de orçamento
type BudgetPlanSummary struct {
	CampaignsRequiringTopUp    int   `json:"campaigns_requiring_topup"`
	TotalSuggestedTopUpKopecks int64 `json:"total_suggested_topup_kopecks"`
}

// BudgetPlanResult é o documento emitido pelo workflow budget-plan
type BudgetPlanResult struct {
	RunID            string            `json:"run_id"`
	Period           Period            `json:"period"`
	TargetRunwayDays float64           `json:"target_runway_days"`
	Plans            []BudgetTopUpPlan `json:"plans"`
	Summary          BudgetPlanSummary `json:"summary"`
	APIResult        *ApplyOutcome     `json:"api_result,omitempty"`
}
