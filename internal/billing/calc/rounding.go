package calc

import (
	"math"

	"github.com/shopspring/decimal"
)

// All three rounders use the counter rule: fractional part of 0.5 or more
// rounds up, anything less rounds down. Not banker's rounding. Negative or
// non-finite inputs clamp to zero. Decimal arithmetic keeps results exact
// on decimal inputs (2106.795 rupees is 2106.80, never 2106.79).

// RoundGSTWhole rounds a GST amount to whole rupees.
func RoundGSTWhole(x float64) float64 {
	if x <= 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	v, _ := decimal.NewFromFloat(x).Round(0).Float64()
	return v
}

// RoundCurrency rounds a currency amount to whole paise (2 decimals).
func RoundCurrency(x float64) float64 {
	if x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	v, _ := decimal.NewFromFloat(x).Round(2).Float64()
	return v
}

// RoundWhole rounds a surcharge amount to whole rupees.
func RoundWhole(x float64) float64 {
	if x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	v, _ := decimal.NewFromFloat(x).Round(0).Float64()
	return v
}
