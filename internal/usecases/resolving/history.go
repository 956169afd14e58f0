package resolving

import (
	"regexp"

	"github.com/alikitto/ad-dash/internal/domain"
)

// Padrões de retenção e titulação do log de alterações. O log upstream é
// ruidoso (curtidas de página, edições de criativo, eventos de entrega); só as
// três categorias com significado para orçamento/cronograma são mantidas.
var (
	// "create" como token inteiro (delimitado por não alfanuméricos, incluindo
	// underscore de ações como create_ad_set) ou o literal "created"
	createdActionPattern = regexp.MustCompile(`(?i)(^|[^a-z0-9])create([^a-z0-9]|$)|created`)
	budgetPattern        = regexp.MustCompile(`(?i)daily_budget|lifetime_budget|budget`)
	schedulePattern      = regexp.MustCompile(`(?i)duration|schedul|\bstart(_time)?\b|\bend(_time)?\b|start_time|end_time`)
	nameChangePattern    = regexp.MustCompile(`(?i)\bname\b|rename`)
)

// Títulos de exibição por regra de primeira correspondência
const (
	titleCreated         = "Adset created"
	titleScheduleUpdated = "Schedule updated"
	titleBudgetUpdated   = "Budget updated"
	titleNameChanged     = "Name changed"
	titleGenericChange   = "Updated"
)

// ClassifyHistory reduz o log de alterações bruto à subsequência com
// significado semântico, derivando categoria e título de cada entrada retida.
// É um filtro, não só um rotulador: entradas fora das três categorias são
// descartadas por completo. A ordem do upstream é preservada; entradas nulas
// ou lista ausente degradam para resultado vazio.
func ClassifyHistory(entries []domain.HistoryEntry) []domain.ChangeRecord {
	changes := make([]domain.ChangeRecord, 0, len(entries))

	for _, entry := range entries {
		category, ok := categorize(entry)
		if !ok {
			continue
		}

		changes = append(changes, domain.ChangeRecord{
			HistoryEntry: entry,
			Category:     category,
			Title:        displayTitle(entry, category),
		})
	}

	return changes
}

// categorize decide a retenção da entrada. Criação é testada só contra a
// ação; orçamento e cronograma valem tanto para a ação quanto para os
// detalhes (os nomes literais de campo start_time/end_time aparecem no JSON
// de detalhes de mutações do Meta).
func categorize(entry domain.HistoryEntry) (domain.ChangeCategory, bool) {
	combined := entry.Action + " " + entry.Details

	switch {
	case createdActionPattern.MatchString(entry.Action):
		return domain.ChangeCategoryCreated, true
	case schedulePattern.MatchString(combined):
		return domain.ChangeCategorySchedule, true
	case budgetPattern.MatchString(combined):
		return domain.ChangeCategoryBudget, true
	}

	return "", false
}

// displayTitle escolhe o título pela primeira regra que casar, em ordem de
// prioridade: criação > cronograma/duração > orçamento > renomeação >
// alteração genérica. Uma renomeação que também mexe em orçamento titula
// como orçamento; o título de renomeação só vale quando nenhuma das três
// categorias casou. A titulação é um passe separado da retenção de
// propósito; unificar os dois mudaria o resultado observável.
func displayTitle(entry domain.HistoryEntry, category domain.ChangeCategory) string {
	switch category {
	case domain.ChangeCategoryCreated:
		return titleCreated
	case domain.ChangeCategorySchedule:
		return titleScheduleUpdated
	case domain.ChangeCategoryBudget:
		return titleBudgetUpdated
	}

	if nameChangePattern.MatchString(entry.Action) {
		return titleNameChanged
	}

	return titleGenericChange
}
