package domain

import "time"

// ResolvedSchedule é a janela de veiculação oficial de um conjunto.
// End == nil com Start preenchido significa "em andamento", um estado terminal
// válido. Uma janela nunca é ancorada apenas pela data final: se Start é nil,
// End também é reportado como desconhecido.
type ResolvedSchedule struct {
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
}

// Bounded retorna verdadeiro quando a janela tem início e fim conhecidos
func (s ResolvedSchedule) Bounded() bool {
	return s.Start != nil && s.End != nil
}

// Ongoing retorna verdadeiro quando o conjunto está em veiculação sem data final
func (s ResolvedSchedule) Ongoing() bool {
	return s.Start != nil && s.End == nil
}
