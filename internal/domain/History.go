package domain

import "time"

// HistoryScope indica de qual entidade a entrada de histórico veio
type HistoryScope string

const (
	HistoryScopeAdset    HistoryScope = "adset"
	HistoryScopeCampaign HistoryScope = "campaign"
)

// ChangeCategory é a categoria semântica derivada para uma entrada retida
type ChangeCategory string

const (
	ChangeCategoryCreated  ChangeCategory = "created"
	ChangeCategoryBudget   ChangeCategory = "budget"
	ChangeCategorySchedule ChangeCategory = "schedule"
)

// HistoryEntry é uma entrada bruta do log de alterações retornado pelo Meta.
// A ordem de inserção do upstream (mais recente primeiro) é preservada em todo
// o pipeline; o classificador nunca reordena, apenas filtra.
type HistoryEntry struct {
	Timestamp time.Time    `json:"timestamp"`
	Actor     string       `json:"actor"`
	Action    string       `json:"action"`
	Details   string       `json:"details"`
	Scope     HistoryScope `json:"scope"`
}

// ChangeRecord é uma entrada de histórico retida pelo classificador, com a
// categoria e o título de exibição derivados. Os campos brutos não são alterados.
type ChangeRecord struct {
	HistoryEntry
	Category ChangeCategory `json:"category"`
	Title    string         `json:"title"`
}
