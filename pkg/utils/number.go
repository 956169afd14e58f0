package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ToMinorUnits converte um valor em unidades monetárias principais (ex.: dólares)
// para unidades menores inteiras (ex.: centavos), como a API do Meta espera.
func ToMinorUnits(f float64) int64 {
	return int64(math.Round(f * 100))
}
