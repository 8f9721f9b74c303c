package pricing

import (
	"math"
	"time"
	"unicode/utf8"

	"goldprice/internal/domain"
)

const (
	variationScale = 0.012
	// MaxVariation bounds |Variation| for any input.
	MaxVariation = 2 * variationScale

	historySpread = 0.05
)

// VariationFunc yields the fractional daily price movement for a currency.
type VariationFunc func(code domain.CurrencyCode, date time.Time) float64

// Variation is a pure function of the currency code and the calendar date of
// date. The same inputs always produce the same movement.
func Variation(code domain.CurrencyCode, date time.Time) float64 {
	s := seed(code, date)
	return (math.Sin(s) + math.Cos(s*0.7)) * variationScale
}

// seed uses the zero-based month index, so January 1st of "USD" is 1+0*30+85.
func seed(code domain.CurrencyCode, date time.Time) float64 {
	return float64(date.Day() + (int(date.Month())-1)*30 + firstCharCode(code))
}

func firstCharCode(code domain.CurrencyCode) int {
	if code == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(string(code))
	return int(r)
}

// historyOffset is the absolute deviation from base for one day of history.
func historyOffset(code domain.CurrencyCode, date time.Time, base float64) float64 {
	s := seed(code, date)
	return (math.Sin(s)*3 + math.Cos(s*0.7)*2) * (base * historySpread)
}
