package resolving

import (
	"testing"
	"time"

	"github.com/alikitto/ad-dash/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected *time.Time
	}{
		{
			name:     "Epoch em segundos abaixo do limiar",
			input:    1717200000,
			expected: timePtr(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:     "Epoch em milissegundos acima do limiar",
			input:    1717200000000,
			expected: timePtr(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:     "String RFC3339 com offset",
			input:    "2024-06-01T10:30:00-03:00",
			expected: timePtr(time.Date(2024, 6, 1, 10, 30, 0, 0, time.FixedZone("", -3*3600))),
		},
		{
			name:     "Formato de offset do Meta sem dois-pontos",
			input:    "2024-06-01T10:30:00-0300",
			expected: timePtr(time.Date(2024, 6, 1, 10, 30, 0, 0, time.FixedZone("", -3*3600))),
		},
		{
			name:     "Data de calendário sem hora",
			input:    "2024-06-01",
			expected: timePtr(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:     "Epoch zero é ausente",
			input:    0,
			expected: nil,
		},
		{
			name:     "Epoch negativo é ausente",
			input:    -100,
			expected: nil,
		},
		{
			name:     "String não reconhecida é ausente",
			input:    "amanhã",
			expected: nil,
		},
		{
			name:     "Nulo é ausente",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTimestamp(tt.input)

			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.True(t, tt.expected.Equal(*got), "esperado %v, obtido %v", tt.expected, got)
		})
	}
}

func TestResolveSchedule(t *testing.T) {
	detailsStart := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	detailsEnd := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		details  domain.RawRecord
		insights *domain.TimeInsights
		row      domain.RawRecord
		adName   string
		expected domain.ResolvedSchedule
	}{
		{
			name: "Datas explícitas nos detalhes vencem todas as outras fontes",
			details: domain.RawRecord{
				"start_time": "2024-06-01",
				"end_time":   "2024-06-30",
			},
			insights: &domain.TimeInsights{
				DateRange: domain.DateRange{Start: "2024-01-01", End: "2024-01-31"},
			},
			row:      domain.RawRecord{"start_time": "2024-03-01"},
			adName:   "Promo 15/05/2024",
			expected: domain.ResolvedSchedule{Start: &detailsStart, End: &detailsEnd},
		},
		{
			name:    "Qualquer data nos detalhes esgota o nível mesmo sem o fim",
			details: domain.RawRecord{"start_time": "2024-06-01"},
			row:     domain.RawRecord{"end_time": "2024-06-30"},
			expected: domain.ResolvedSchedule{Start: &detailsStart},
		},
		{
			name:    "Detalhes só com fim esgotam o nível e a invariante zera a janela",
			details: domain.RawRecord{"end_time": "2024-06-30"},
			row: domain.RawRecord{
				"start_time": "2024-06-01",
				"end_time":   "2024-06-30",
			},
			expected: domain.ResolvedSchedule{},
		},
		{
			name: "Sem detalhes o date_range dos insights é usado",
			insights: &domain.TimeInsights{
				DateRange: domain.DateRange{Start: "2024-06-01", End: "2024-06-30"},
			},
			row:      domain.RawRecord{"start_time": "2024-03-01"},
			expected: domain.ResolvedSchedule{Start: &detailsStart, End: &detailsEnd},
		},
		{
			name: "Sem detalhes nem insights a linha de resumo resolve",
			row: domain.RawRecord{
				"start_time": "2024-06-01",
				"end_time":   "2024-06-30",
			},
			expected: domain.ResolvedSchedule{Start: &detailsStart, End: &detailsEnd},
		},
		{
			name:     "Data no nome é o último recurso",
			adName:   "Promo 01/06/2024 - Leads",
			expected: domain.ResolvedSchedule{Start: &detailsStart},
		},
		{
			name:     "Ano de dois dígitos no nome assume século 21",
			adName:   "Promo 1.6.24",
			expected: domain.ResolvedSchedule{Start: &detailsStart},
		},
		{
			name:     "Data impossível no nome é rejeitada",
			adName:   "Promo 31/02/2024",
			expected: domain.ResolvedSchedule{},
		},
		{
			name:     "Sem fonte alguma a janela fica vazia",
			expected: domain.ResolvedSchedule{},
		},
		{
			name:    "created_time cobre start_time ausente nos detalhes",
			details: domain.RawRecord{"created_time": "2024-06-01", "stop_time": "2024-06-30"},
			expected: domain.ResolvedSchedule{Start: &detailsStart, End: &detailsEnd},
		},
		{
			name:    "Epoch em milissegundos nos detalhes",
			details: domain.RawRecord{"start_time": 1717200000000},
			expected: domain.ResolvedSchedule{Start: &detailsStart},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveSchedule(tt.details, tt.insights, tt.row, tt.adName)

			assertSameTime(t, tt.expected.Start, got.Start)
			assertSameTime(t, tt.expected.End, got.End)
		})
	}
}

func TestResolvedSchedule_Bounded(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	assert.True(t, domain.ResolvedSchedule{Start: &start, End: &end}.Bounded())
	assert.False(t, domain.ResolvedSchedule{Start: &start}.Bounded())
	assert.False(t, domain.ResolvedSchedule{}.Bounded())
	assert.True(t, domain.ResolvedSchedule{Start: &start}.Ongoing())
}

func assertSameTime(t *testing.T, expected, got *time.Time) {
	t.Helper()

	if expected == nil {
		assert.Nil(t, got)
		return
	}

	require.NotNil(t, got)
	assert.True(t, expected.Equal(*got), "esperado %v, obtido %v", expected, got)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
