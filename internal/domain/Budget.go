package domain

// BudgetKind indica o tipo de orçamento resolvido para um conjunto de anúncios
type BudgetKind string

const (
	BudgetKindDaily    BudgetKind = "daily"
	BudgetKindLifetime BudgetKind = "lifetime"
	BudgetKindUnknown  BudgetKind = "unknown"
)

// ResolvedBudget é o orçamento oficial de um conjunto após a normalização das
// fontes upstream. Amount está sempre em unidades monetárias principais
// (dólares, não centavos nem micros). Kind é "unknown" somente quando nenhuma
// fonte produziu um valor positivo.
type ResolvedBudget struct {
	Kind   BudgetKind `json:"kind"`
	Amount float64    `json:"amount"`
}

// Known retorna verdadeiro quando um orçamento positivo foi resolvido
func (b ResolvedBudget) Known() bool {
	return b.Kind != BudgetKindUnknown && b.Amount > 0
}
