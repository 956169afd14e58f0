package domain

// SpendSample é um ponto da série histórica de gastos diários de um conjunto
type SpendSample struct {
	Date  string  `json:"date"`
	Spend float64 `json:"spend"`
}

// DateRange é o intervalo coberto por uma consulta de insights por período
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TimeInsights agrega a série diária de gastos retornada pelo endpoint de
// insights por período
type TimeInsights struct {
	DateRange DateRange     `json:"date_range"`
	DailyData []SpendSample `json:"daily_data"`
}

// UpdateBudgetDatesPayload é o corpo enviado ao endpoint de atualização de
// orçamento/datas. Os valores monetários estão em unidades menores inteiras
// (centavos) e EndTime é um instante ISO-8601, como a API do Meta espera.
type UpdateBudgetDatesPayload struct {
	DailyBudget    *int64  `json:"daily_budget,omitempty"`
	LifetimeBudget *int64  `json:"lifetime_budget,omitempty"`
	EndTime        *string `json:"end_time,omitempty"`
}

// Empty retorna verdadeiro quando o payload não contém nenhuma mutação
func (p UpdateBudgetDatesPayload) Empty() bool {
	return p.DailyBudget == nil && p.LifetimeBudget == nil && p.EndTime == nil
}

// Recommendation é uma proposta de mutação de orçamento/datas derivada da
// velocidade de gasto recente. Criada a cada render da visão de detalhes e
// descartada após a confirmação (ou o fechamento da visão); nunca persistida.
type Recommendation struct {
	Summary        string                   `json:"summary"`
	Payload        UpdateBudgetDatesPayload `json:"payload"`
	SuccessMessage string                   `json:"success_message"`
}
