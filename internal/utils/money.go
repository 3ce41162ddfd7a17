package utils

import "math"

// RoundCurrency rounds an amount to currency precision (2 decimal places).
func RoundCurrency(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// CommissionAmount computes the commission for a sale total at the given
// percentage rate, rounded to currency precision.
func CommissionAmount(total, rate float64) float64 {
	return RoundCurrency(total * rate / 100)
}
