package gold

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"goldprice/internal/domain"
)

var (
	ErrCurrencyRequired  = errors.New("currency is required")
	ErrCurrencyMalformed = errors.New("currency must be a 3-letter code")
)

// NormalizeCode trims and upper-cases user input.
func NormalizeCode(raw string) domain.CurrencyCode {
	return domain.CurrencyCode(strings.ToUpper(strings.TrimSpace(raw)))
}

// ValidateCode only checks the shape. Well-formed codes outside the
// reference table are accepted and priced as USD further down.
func ValidateCode(code domain.CurrencyCode) error {
	if code == "" {
		return ErrCurrencyRequired
	}
	if len(code) != 3 {
		return ErrCurrencyMalformed
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return ErrCurrencyMalformed
		}
	}
	return nil
}

// MaxInput bounds amounts and weights so that multiplying by the largest
// rate or unit factor stays finite.
const MaxInput = 1e12

func ParseAmount(raw string) (float64, error) {
	return parseNonNegative(raw, domain.ErrInvalidAmount, domain.ErrNegativeAmount, domain.ErrAmountTooLarge)
}

func ParseWeight(raw string) (float64, error) {
	return parseNonNegative(raw, domain.ErrInvalidWeight, domain.ErrNegativeWeight, domain.ErrWeightTooLarge)
}

func parseNonNegative(raw string, errInvalid, errNegative, errTooLarge error) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errInvalid
	}
	if v < 0 {
		return 0, errNegative
	}
	if v > MaxInput {
		return 0, errTooLarge
	}
	return v, nil
}

// ParsePeriod defaults to one month when raw is empty.
func ParsePeriod(raw string) (domain.Period, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return domain.Period1M, nil
	}
	return domain.ParsePeriod(raw)
}

func ParsePurity(raw string) domain.PurityLabel {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return domain.Purity24K
	}
	return domain.PurityLabel(raw)
}

func ParseUnit(raw string) domain.Unit {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return domain.Gram
	}
	return domain.Unit(raw)
}
