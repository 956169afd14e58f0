package resolving

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/alikitto/ad-dash/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseBudgetAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected float64
	}{
		{
			name:     "Micro-unidades acima de 1e6 divididas por 1e6",
			input:    2500000,
			expected: 2.50,
		},
		{
			name:     "Centavos acima de 100 divididos por 100",
			input:    1500,
			expected: 15.00,
		},
		{
			name:     "Valores pequenos já estão em unidades principais",
			input:    42.5,
			expected: 42.5,
		},
		{
			name:     "Limiar exato de 100 é tratado como centavos",
			input:    100,
			expected: 1.00,
		},
		{
			name:     "Limiar exato de 1e6 é tratado como micro-unidades",
			input:    1000000,
			expected: 1.00,
		},
		{
			name:     "String numérica é coagida antes da escala",
			input:    "2500000",
			expected: 2.50,
		},
		{
			name:     "json.Number é coagido antes da escala",
			input:    json.Number("1500"),
			expected: 15.00,
		},
		{
			name:     "String não numérica degrada para zero",
			input:    "abc",
			expected: 0,
		},
		{
			name:     "NaN degrada para zero",
			input:    math.NaN(),
			expected: 0,
		},
		{
			name:     "Infinito degrada para zero",
			input:    math.Inf(1),
			expected: 0,
		},
		{
			name:     "Nulo degrada para zero",
			input:    nil,
			expected: 0,
		},
		{
			name:     "Booleano degrada para zero",
			input:    true,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseBudgetAmount(tt.input))
		})
	}
}

func TestNormalizeBudget(t *testing.T) {
	tests := []struct {
		name     string
		details  domain.RawRecord
		row      domain.RawRecord
		adName   string
		expected domain.ResolvedBudget
	}{
		{
			name:     "Orçamento diário dos detalhes em centavos",
			details:  domain.RawRecord{"daily_budget": "1500"},
			expected: domain.ResolvedBudget{Kind: domain.BudgetKindDaily, Amount: 15.00},
		},
		{
			name:     "Variante camelCase resolvida pela mesma cadeia",
			details:  domain.RawRecord{"dailyBudget": 2500000},
			expected: domain.ResolvedBudget{Kind: domain.BudgetKindDaily, Amount: 2.50},
		},
		{
			name:     "Primeira chave presente vence mesmo com ambas definidas",
			details:  domain.RawRecord{"daily_budget": 1500, "dailyBudget": 9900},
			expected: domain.ResolvedBudget{Kind: domain.BudgetKindDaily, Amount: 15.00},
		},
		{
			name:     "Diário tem precedência sobre lifetime sem tipo explícito",
			details:  domain.RawRecord{"daily_budget": 1500, "lifetime_budget": 50000},
			expected: domain.ResolvedBudget{Kind: domain.BudgetKindDaily, Amount: 15.00},
		},
		{
			name:     "Tipo explícito LIFETIME inverte a precedência",
			details:  domain.RawRecord{"daily_budget": 1500, "lifetime_budget": 50000, "budget_type": "LIFETIME"},
			expected: domain.ResolvedBudget{Kind: domain.BudgetKindLifetime, Amount: 500.00},
		},
		{
			name:     "Linha de resumo cobre detalhes ausentes",
			row:      domain.RawRecord{"lifetime_budget": "50000"},
			expected: domain.ResolvedBudget{Kind: domain.BudgetKindLifetime, Amount: 500.00},
		},
		{
			name:     "Detalhes vencem a linha de resumo para o mesmo campo",
			details:  domain.RawRecord{"daily_budget": 1500},
			row:      domain.RawRecord{"daily_budget": 9900},
			expected: domain.ResolvedBudget{Kind: domain.BudgetKindDaily, Amount: 15.00},
		},
		{
			name:     "Candidato não numérico é pulado na cadeia",
			details:  domain.RawRecord{"daily_budget": "n/a", "dailyBudget": 1500},
			expected: domain.ResolvedBudget{Kind: domain.BudgetKindDaily, Amount: 15.00},
		},
		{
			name:     "Nome cobre registros sem campos de orçamento",
			details:  domain.RawRecord{"status": "ACTIVE"},
			adName:   "Promo $10/day - Leads",
			expected: domain.ResolvedBudget{Kind: domain.BudgetKindDaily, Amount: 10.00},
		},
		{
			name:     "Sem fonte alguma o tipo é desconhecido",
			expected: domain.ResolvedBudget{Kind: domain.BudgetKindUnknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeBudget(tt.details, tt.row, tt.adName))
		})
	}
}

func TestBudgetFromName(t *testing.T) {
	tests := []struct {
		name      string
		adName    string
		expected  float64
		resolvable bool
	}{
		{
			name:       "Cifrão antes do valor com barra",
			adName:     "Promo $10/day",
			expected:   10.00,
			resolvable: true,
		},
		{
			name:       "Cifrão depois do valor com per day",
			adName:     "Campanha 10$ per day",
			expected:   10.00,
			resolvable: true,
		},
		{
			name:       "Palavra-chave daily antes do valor",
			adName:     "daily 10 - conjunto teste",
			expected:   10.00,
			resolvable: true,
		},
		{
			name:       "Decimal com vírgula normalizado para ponto",
			adName:     "Promo $10,50/day",
			expected:   10.50,
			resolvable: true,
		},
		{
			name:       "Número sem palavra-chave de periodicidade é ignorado",
			adName:     "Conjunto 42 - Leads",
			resolvable: false,
		},
		{
			name:       "Nome vazio não resolve",
			adName:     "",
			resolvable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			budget, ok := BudgetFromName(tt.adName)

			assert.Equal(t, tt.resolvable, ok)
			if tt.resolvable {
				assert.Equal(t, domain.BudgetKindDaily, budget.Kind)
				assert.Equal(t, tt.expected, budget.Amount)
			} else {
				assert.Equal(t, domain.BudgetKindUnknown, budget.Kind)
			}
		})
	}
}

func TestNormalizeBudget_Idempotente(t *testing.T) {
	details := domain.RawRecord{"daily_budget": 1500, "lifetime_budget": "n/a"}
	row := domain.RawRecord{"dailyBudget": 9900}

	first := NormalizeBudget(details, row, "Promo $10/day")
	second := NormalizeBudget(details, row, "Promo $10/day")

	assert.Equal(t, first, second)
}
