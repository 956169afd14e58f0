package resolving

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/alikitto/ad-dash/internal/domain"
	"github.com/alikitto/ad-dash/pkg/utils"
)

// Cadeias de campos candidatos por campo lógico, em ordem fixa de prioridade.
// As fontes upstream alternam entre snake_case e camelCase e entre variantes
// com sufixo de escala, então cada campo lógico é uma lista explícita de
// chaves avaliada por um único redutor genérico.
var (
	dailyBudgetKeys = []string{
		"daily_budget",
		"dailyBudget",
		"budget_daily",
		"daily_budget_amount",
		"dailyBudgetAmount",
		"daily_budget_micro",
		"dailyBudgetMicros",
	}

	lifetimeBudgetKeys = []string{
		"lifetime_budget",
		"lifetimeBudget",
		"budget_lifetime",
		"lifetime_budget_amount",
		"lifetimeBudgetAmount",
		"lifetime_budget_micro",
		"lifetimeBudgetMicros",
	}
)

// Padrões de orçamento embutido no nome do conjunto, ex.: "$10/day",
// "10$ per day", "daily 10". Separador decimal "." ou ",".
var (
	budgetInNamePattern         = regexp.MustCompile(`(?i)\$?\s?(\d+(?:[.,]\d{1,2})?)\s?\$?\s*(?:/\s*day|per\s*day|daily)`)
	budgetInNameReversedPattern = regexp.MustCompile(`(?i)(?:daily|per\s*day)\s*\$?\s?(\d+(?:[.,]\d{1,2})?)`)
)

// ParseBudgetAmount converte um valor bruto de orçamento para unidades
// monetárias principais. As fontes divergem na convenção de unidades, então a
// escala é inferida pela magnitude do número:
//
//   - >= 1.000.000: micro-unidades (estilo Google), divide por 1e6
//   - >= 100: unidades menores/centavos (estilo Meta), divide por 100
//   - caso contrário: já está em unidades principais
//
// A heurística é ambígua por construção (150 pode ser $150 ou $1,50) e deve
// ser reproduzida exatamente como está; ver a questão em aberto no DESIGN.md.
// Entrada não numérica ou não finita degrada para 0, nunca para erro.
func ParseBudgetAmount(v any) float64 {
	num, ok := toFiniteNumber(v)
	if !ok {
		return 0
	}

	if num >= 1_000_000 {
		return utils.RoundWithTwoDecimalPlace(num / 1_000_000)
	}

	if num >= 100 {
		return utils.RoundWithTwoDecimalPlace(num / 100)
	}

	return num
}

// NormalizeBudget resolve o orçamento oficial de um conjunto a partir do
// registro de detalhes, da linha de resumo e, em último caso, do nome.
// Cada componente tolera fontes ausentes: details e row podem ser nil.
func NormalizeBudget(details, row domain.RawRecord, name string) domain.ResolvedBudget {
	daily := firstBudgetCandidate(details, dailyBudgetKeys)
	if daily == 0 {
		daily = firstBudgetCandidate(row, dailyBudgetKeys)
	}

	lifetime := firstBudgetCandidate(details, lifetimeBudgetKeys)
	if lifetime == 0 {
		lifetime = firstBudgetCandidate(row, lifetimeBudgetKeys)
	}

	explicitType := strings.ToUpper(details.StringField("budget_type"))

	switch {
	case explicitType == "LIFETIME" && lifetime > 0:
		return domain.ResolvedBudget{Kind: domain.BudgetKindLifetime, Amount: lifetime}
	case daily > 0:
		return domain.ResolvedBudget{Kind: domain.BudgetKindDaily, Amount: daily}
	case lifetime > 0:
		return domain.ResolvedBudget{Kind: domain.BudgetKindLifetime, Amount: lifetime}
	}

	if fromName, ok := BudgetFromName(name); ok {
		return fromName
	}

	return domain.ResolvedBudget{Kind: domain.BudgetKindUnknown}
}

// BudgetFromName extrai um orçamento diário de um nome livre de conjunto
func BudgetFromName(name string) (domain.ResolvedBudget, bool) {
	if name == "" {
		return domain.ResolvedBudget{Kind: domain.BudgetKindUnknown}, false
	}

	match := budgetInNamePattern.FindStringSubmatch(name)
	if match == nil {
		match = budgetInNameReversedPattern.FindStringSubmatch(name)
	}

	if match == nil {
		return domain.ResolvedBudget{Kind: domain.BudgetKindUnknown}, false
	}

	raw := strings.ReplaceAll(match[1], ",", ".")

	num, err := strconv.ParseFloat(raw, 64)
	if err != nil || num <= 0 {
		return domain.ResolvedBudget{Kind: domain.BudgetKindUnknown}, false
	}

	return domain.ResolvedBudget{
		Kind:   domain.BudgetKindDaily,
		Amount: utils.RoundWithTwoDecimalPlace(num),
	}, true
}

// firstBudgetCandidate aplica o redutor "primeiro presente e finito" sobre a
// cadeia de chaves candidatas e normaliza a escala do valor encontrado
func firstBudgetCandidate(record domain.RawRecord, keys []string) float64 {
	for _, key := range keys {
		v, ok := record.Field(key)
		if !ok {
			continue
		}

		if _, finite := toFiniteNumber(v); finite {
			return ParseBudgetAmount(v)
		}
	}

	return 0
}

// toFiniteNumber coage tipos soltos de JSON para float64 finito
func toFiniteNumber(v any) (float64, bool) {
	var num float64

	switch n := v.(type) {
	case float64:
		num = n
	case float32:
		num = float64(n)
	case int:
		num = float64(n)
	case int64:
		num = float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		num = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		num = f
	default:
		return 0, false
	}

	if math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, false
	}

	return num, true
}
