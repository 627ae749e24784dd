package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para duas casas decimais. Usada nos KPIs
// fracionários do relatório, como o ticket médio.
func RoundWithTwoDecimalPlace(f float64) float64 {
	return math.Round(f*100) / 100
}
