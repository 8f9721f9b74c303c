package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round2 rounds half away from zero to two decimal places.
// It is applied at the final output step only.
func Round2(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return decimal.NewFromFloat(x).Round(2).InexactFloat64()
}

// FormatPercent renders a percentage with two decimals, a leading "+" when
// positive and no sign when it rounds to zero.
func FormatPercent(p float64) string {
	d := decimal.NewFromFloat(p).Round(2)
	switch d.Sign() {
	case 1:
		return "+" + d.StringFixed(2) + "%"
	case 0:
		return "0.00%"
	default:
		return d.StringFixed(2) + "%"
	}
}

// FormatAmount renders a monetary amount with exactly two decimals.
func FormatAmount(x float64) string {
	return decimal.NewFromFloat(Round2(x)).StringFixed(2)
}
