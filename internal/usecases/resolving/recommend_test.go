package resolving

import (
	"testing"
	"time"

	"github.com/alikitto/ad-dash/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvgDailySpend(t *testing.T) {
	tests := []struct {
		name     string
		samples  []domain.SpendSample
		expected float64
	}{
		{
			name: "Média aritmética simples arredondada",
			samples: []domain.SpendSample{
				{Date: "2024-06-01", Spend: 10.0},
				{Date: "2024-06-02", Spend: 20.0},
				{Date: "2024-06-03", Spend: 30.0},
			},
			expected: 20.00,
		},
		{
			name: "Arredondamento a duas casas",
			samples: []domain.SpendSample{
				{Date: "2024-06-01", Spend: 10.0},
				{Date: "2024-06-02", Spend: 10.01},
				{Date: "2024-06-03", Spend: 10.0},
			},
			expected: 10.00,
		},
		{
			name:     "Série vazia resulta em zero",
			samples:  []domain.SpendSample{},
			expected: 0,
		},
		{
			name:     "Série ausente resulta em zero",
			samples:  nil,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AvgDailySpend(tt.samples))
		})
	}
}

func TestBuildRecommendations_Lifetime(t *testing.T) {
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	budget := domain.ResolvedBudget{Kind: domain.BudgetKindLifetime, Amount: 100.00}
	schedule := domain.ResolvedSchedule{Start: &start, End: &end}
	samples := []domain.SpendSample{
		{Date: "2024-06-27", Spend: 20.0},
		{Date: "2024-06-28", Spend: 20.0},
		{Date: "2024-06-29", Spend: 20.0},
	}

	recommendations := BuildRecommendations(budget, schedule, samples)

	require.Len(t, recommendations, 2)

	// +1 dia: 100 + 20*1 = 120, fim 2024-07-01
	require.NotNil(t, recommendations[0].Payload.LifetimeBudget)
	assert.Equal(t, int64(12000), *recommendations[0].Payload.LifetimeBudget)
	require.NotNil(t, recommendations[0].Payload.EndTime)
	assert.Equal(t, "2024-07-01T00:00:00Z", *recommendations[0].Payload.EndTime)
	assert.Nil(t, recommendations[0].Payload.DailyBudget)
	assert.Contains(t, recommendations[0].Summary, "$100.00")
	assert.Contains(t, recommendations[0].Summary, "$120.00")

	// +3 dias: 100 + 20*3 = 160, fim 2024-07-03
	require.NotNil(t, recommendations[1].Payload.LifetimeBudget)
	assert.Equal(t, int64(16000), *recommendations[1].Payload.LifetimeBudget)
	require.NotNil(t, recommendations[1].Payload.EndTime)
	assert.Equal(t, "2024-07-03T00:00:00Z", *recommendations[1].Payload.EndTime)
	assert.Contains(t, recommendations[1].Summary, "$160.00")
}

func TestBuildRecommendations_Daily(t *testing.T) {
	budget := domain.ResolvedBudget{Kind: domain.BudgetKindDaily, Amount: 50.00}

	recommendations := BuildRecommendations(budget, domain.ResolvedSchedule{}, nil)

	require.Len(t, recommendations, 2)

	// +10%: 55.00
	require.NotNil(t, recommendations[0].Payload.DailyBudget)
	assert.Equal(t, int64(5500), *recommendations[0].Payload.DailyBudget)
	assert.Nil(t, recommendations[0].Payload.LifetimeBudget)
	assert.Nil(t, recommendations[0].Payload.EndTime)
	assert.Contains(t, recommendations[0].Summary, "+10%")

	// +20%: 60.00
	require.NotNil(t, recommendations[1].Payload.DailyBudget)
	assert.Equal(t, int64(6000), *recommendations[1].Payload.DailyBudget)
	assert.Contains(t, recommendations[1].Summary, "+20%")
}

func TestBuildRecommendations_OpcoesDesabilitadas(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		budget   domain.ResolvedBudget
		schedule domain.ResolvedSchedule
		samples  []domain.SpendSample
	}{
		{
			name:     "Lifetime sem fim conhecido não gera extensões",
			budget:   domain.ResolvedBudget{Kind: domain.BudgetKindLifetime, Amount: 100.00},
			schedule: domain.ResolvedSchedule{Start: &start},
		},
		{
			name:     "Lifetime sem gasto médio positivo não gera extensões",
			budget:   domain.ResolvedBudget{Kind: domain.BudgetKindLifetime, Amount: 100.00},
			schedule: domain.ResolvedSchedule{Start: &start, End: &end},
			samples:  []domain.SpendSample{{Date: "2024-06-01", Spend: 0}},
		},
		{
			name:   "Diário zerado não gera aumentos",
			budget: domain.ResolvedBudget{Kind: domain.BudgetKindDaily, Amount: 0},
		},
		{
			name:   "Orçamento desconhecido não gera opção alguma",
			budget: domain.ResolvedBudget{Kind: domain.BudgetKindUnknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recommendations := BuildRecommendations(tt.budget, tt.schedule, tt.samples)

			// Opções desabilitadas ficam ausentes, nunca zeradas
			assert.Empty(t, recommendations)
			assert.NotNil(t, recommendations)
		})
	}
}

func TestBuildRecommendations_Idempotente(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	budget := domain.ResolvedBudget{Kind: domain.BudgetKindLifetime, Amount: 100.00}
	schedule := domain.ResolvedSchedule{Start: &start, End: &end}
	samples := []domain.SpendSample{{Date: "2024-06-29", Spend: 20.0}}

	first := BuildRecommendations(budget, schedule, samples)
	second := BuildRecommendations(budget, schedule, samples)

	assert.Equal(t, first, second)
}

func TestBuildResolvedAdset(t *testing.T) {
	row := domain.RawRecord{
		"adset_id":   "120210000000000001",
		"adset_name": "Promo Junho",
		"status":     "ACTIVE",
	}
	details := domain.RawRecord{
		"id":          "120210000000000001",
		"name":        "Promo Junho $50/day",
		"status":      "ACTIVE",
		"campaign_id": "120210000000000099",
		"daily_budget": "5000",
		"start_time":  "2024-06-01",
	}
	history := []domain.HistoryEntry{
		{Timestamp: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC), Action: "create_ad_set"},
		{Timestamp: time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC), Action: "like_page"},
	}
	insights := &domain.TimeInsights{
		DateRange: domain.DateRange{Start: "2024-06-01", End: "2024-06-03"},
		DailyData: []domain.SpendSample{
			{Date: "2024-06-01", Spend: 40.0},
			{Date: "2024-06-02", Spend: 60.0},
		},
	}

	resolved := BuildResolvedAdset(row, details, history, insights)

	require.NotNil(t, resolved)
	assert.Equal(t, "120210000000000001", resolved.AdsetID)
	assert.Equal(t, "Promo Junho $50/day", resolved.Name)
	assert.Equal(t, "ACTIVE", resolved.Status)
	assert.Equal(t, "120210000000000099", resolved.CampaignID)
	assert.Equal(t, domain.BudgetKindDaily, resolved.Budget.Kind)
	assert.Equal(t, 50.00, resolved.Budget.Amount)
	require.NotNil(t, resolved.Schedule.Start)
	assert.Equal(t, 50.00, resolved.AvgDailySpend)
	assert.Equal(t, 2, resolved.SpendSampleDays)
	require.Len(t, resolved.History, 1)
	assert.Equal(t, "Adset created", resolved.History[0].Title)
	require.Len(t, resolved.Recommendations, 2)
}

func TestBuildResolvedAdset_FontesAusentes(t *testing.T) {
	resolved := BuildResolvedAdset(nil, nil, nil, nil)

	require.NotNil(t, resolved)
	assert.Equal(t, domain.BudgetKindUnknown, resolved.Budget.Kind)
	assert.Nil(t, resolved.Schedule.Start)
	assert.Empty(t, resolved.History)
	assert.Equal(t, 0.0, resolved.AvgDailySpend)
	assert.Empty(t, resolved.Recommendations)
}
