package resolving

import (
	"fmt"
	"math"
	"time"

	"github.com/alikitto/ad-dash/internal/domain"
	"github.com/alikitto/ad-dash/pkg/utils"
)

// Opções oferecidas por modo. Extensão de vigência em dias para orçamentos
// lifetime com data final conhecida; multiplicadores para orçamentos diários.
var (
	lifetimeExtensionDays    = []int{1, 3}
	dailyIncreaseMultipliers = []float64{1.10, 1.20}
)

// AvgDailySpend calcula a média diária de gasto sobre a série histórica,
// arredondada a duas casas. Série vazia resulta em 0.
func AvgDailySpend(samples []domain.SpendSample) float64 {
	if len(samples) == 0 {
		return 0
	}

	total := 0.0
	for _, sample := range samples {
		total += sample.Spend
	}

	return utils.RoundWithTwoDecimalPlace(total / float64(len(samples)))
}

// BuildRecommendations deriva propostas de mutação de orçamento/datas a
// partir do orçamento resolvido, do cronograma resolvido e da velocidade de
// gasto recente.
//
// Seleção de modo: extensão de lifetime quando o orçamento é lifetime e o
// cronograma tem fim conhecido; caso contrário, aumento do orçamento diário.
// Entradas zeradas ou negativas desabilitam silenciosamente as opções
// correspondentes (ausentes do resultado, não zeradas). Computação pura,
// re-executada a cada abertura da visão de detalhes e após cada mutação.
func BuildRecommendations(budget domain.ResolvedBudget, schedule domain.ResolvedSchedule, samples []domain.SpendSample) []domain.Recommendation {
	avgDaily := AvgDailySpend(samples)

	if budget.Kind == domain.BudgetKindLifetime && schedule.Bounded() {
		return lifetimeExtensions(budget.Amount, *schedule.End, avgDaily)
	}

	if budget.Kind == domain.BudgetKindDaily && budget.Amount > 0 {
		return dailyIncreases(budget.Amount)
	}

	return []domain.Recommendation{}
}

// lifetimeExtensions propõe estender a vigência em d dias, acrescentando
// avgDaily*d ao orçamento lifetime. Sem gasto médio positivo não há base para
// a proposta e nenhuma opção é oferecida.
func lifetimeExtensions(currentAmount float64, currentEnd time.Time, avgDaily float64) []domain.Recommendation {
	recommendations := make([]domain.Recommendation, 0, len(lifetimeExtensionDays))

	if avgDaily <= 0 {
		return recommendations
	}

	for _, days := range lifetimeExtensionDays {
		newAmount := utils.RoundWithTwoDecimalPlace(currentAmount + avgDaily*float64(days))
		newEnd := currentEnd.AddDate(0, 0, days)

		// O payload inverte a normalização de escala aplicada na entrada:
		// valores voltam para unidades menores inteiras e a data vira ISO-8601
		lifetimeMinor := utils.ToMinorUnits(newAmount)
		endTime := newEnd.UTC().Format(time.RFC3339)

		recommendations = append(recommendations, domain.Recommendation{
			Summary: fmt.Sprintf(
				"+%d day(s): lifetime budget $%.2f → $%.2f, end %s → %s",
				days,
				currentAmount,
				newAmount,
				currentEnd.Format(time.DateOnly),
				newEnd.Format(time.DateOnly),
			),
			Payload: domain.UpdateBudgetDatesPayload{
				LifetimeBudget: &lifetimeMinor,
				EndTime:        &endTime,
			},
			SuccessMessage: fmt.Sprintf("Extended by %d day(s)", days),
		})
	}

	return recommendations
}

// dailyIncreases propõe aumentos percentuais sobre o orçamento diário atual
func dailyIncreases(currentAmount float64) []domain.Recommendation {
	recommendations := make([]domain.Recommendation, 0, len(dailyIncreaseMultipliers))

	for _, multiplier := range dailyIncreaseMultipliers {
		newAmount := utils.RoundWithTwoDecimalPlace(currentAmount * multiplier)
		dailyMinor := utils.ToMinorUnits(currentAmount * multiplier)
		percent := int(math.Round((multiplier - 1) * 100))

		recommendations = append(recommendations, domain.Recommendation{
			Summary: fmt.Sprintf(
				"+%d%%: daily budget $%.2f → $%.2f",
				percent,
				currentAmount,
				newAmount,
			),
			Payload: domain.UpdateBudgetDatesPayload{
				DailyBudget: &dailyMinor,
			},
			SuccessMessage: fmt.Sprintf("Daily budget increased by %d%%", percent),
		})
	}

	return recommendations
}
