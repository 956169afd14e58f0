package resolving

import (
	"github.com/alikitto/ad-dash/internal/domain"
)

// BuildResolvedAdset compõe o view-model mesclado de um conjunto a partir das
// três fontes upstream e do histórico. Os três componentes-folha rodam de
// forma independente e cada um tolera qualquer subconjunto de fontes ausente;
// nenhum assume que as três buscas tiveram sucesso. A composição é pura e
// idempotente: as mesmas entradas produzem sempre o mesmo view-model e o
// mesmo conjunto de recomendações.
func BuildResolvedAdset(row, details domain.RawRecord, history []domain.HistoryEntry, insights *domain.TimeInsights) *domain.ResolvedAdset {
	name := details.StringField("name")
	if name == "" {
		name = row.StringField("adset_name")
	}
	if name == "" {
		name = row.StringField("name")
	}

	status := details.StringField("status")
	if status == "" {
		status = details.StringField("effective_status")
	}
	if status == "" {
		status = row.StringField("status")
	}

	campaignID := details.StringField("campaign_id")
	if campaignID == "" {
		campaignID = row.StringField("campaign_id")
	}

	var samples []domain.SpendSample
	if insights != nil {
		samples = insights.DailyData
	}

	budget := NormalizeBudget(details, row, name)
	schedule := ResolveSchedule(details, insights, row, name)

	return &domain.ResolvedAdset{
		AdsetID:         resolveAdsetID(row, details),
		Name:            name,
		Status:          status,
		CampaignID:      campaignID,
		Budget:          budget,
		Schedule:        schedule,
		History:         ClassifyHistory(history),
		AvgDailySpend:   AvgDailySpend(samples),
		SpendSampleDays: len(samples),
		Recommendations: BuildRecommendations(budget, schedule, samples),
	}
}

func resolveAdsetID(row, details domain.RawRecord) string {
	if id := details.StringField("id"); id != "" {
		return id
	}
	if id := row.StringField("adset_id"); id != "" {
		return id
	}
	return row.StringField("id")
}
