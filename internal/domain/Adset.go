package domain

import "time"

// AdsetFilters delimita o período consultado nas fontes de métricas
type AdsetFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// AdsetRow é uma linha da listagem do dashboard, montada a partir dos adsets
// de uma conta e dos insights em nível de adset do período selecionado
type AdsetRow struct {
	AccountID    string  `json:"account_id"`
	AccountName  string  `json:"account_name"`
	AdsetID      string  `json:"adset_id"`
	AdsetName    string  `json:"adset_name"`
	CampaignID   string  `json:"campaign_id"`
	CampaignName string  `json:"campaign_name"`
	Status       string  `json:"status"`
	Objective    string  `json:"objective"`
	Spend        float64 `json:"spend"`
	Leads        int     `json:"leads"`
	CPL          float64 `json:"cpl"`
	CPM          float64 `json:"cpm"`
	CTRAll       float64 `json:"ctr_all"`
	LinkClicks   int     `json:"link_clicks"`
	Impressions  int     `json:"impressions"`
	Frequency    float64 `json:"frequency"`

	// Raw guarda o registro upstream original para servir de fonte de
	// fallback na resolução de orçamento/cronograma
	Raw RawRecord `json:"-"`
}

// ResolvedAdset é o view-model mesclado e normalizado de um conjunto,
// produzido quando a visão de detalhes é aberta. Recalculado do zero a cada
// abertura e após cada mutação bem-sucedida; nunca persistido.
type ResolvedAdset struct {
	AdsetID         string           `json:"adset_id"`
	Name            string           `json:"name"`
	Status          string           `json:"status"`
	CampaignID      string           `json:"campaign_id"`
	Budget          ResolvedBudget   `json:"budget"`
	Schedule        ResolvedSchedule `json:"schedule"`
	History         []ChangeRecord   `json:"history"`
	AvgDailySpend   float64          `json:"avg_daily_spend"`
	SpendSampleDays int              `json:"spend_sample_days"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Estados de veiculação aceitos pelo endpoint de atualização de status
const (
	AdsetStatusActive = "ACTIVE"
	AdsetStatusPaused = "PAUSED"
)

// ValidAdsetStatus valida o status recebido do cliente antes do envio upstream
func ValidAdsetStatus(status string) bool {
	return status == AdsetStatusActive || status == AdsetStatusPaused
}
