// Package conversion converts amounts between currencies using the static
// per-USD rate table. It is independent of gold prices.
package conversion

import (
	"time"

	"goldprice/internal/domain"
	"goldprice/internal/pricing"
	"goldprice/internal/reference"
)

type Converter struct {
	now func() time.Time
}

func NewConverter(now func() time.Time) *Converter {
	if now == nil {
		now = time.Now
	}
	return &Converter{now: now}
}

// Convert never fails: a currency missing from the table counts as parity
// with USD on its side of the rate.
func (c *Converter) Convert(amount float64, from, to domain.CurrencyCode) float64 {
	return pricing.Round2(amount * rate(from, to))
}

// Rate is recomputed on every call and carries the call time.
func (c *Converter) Rate(from, to domain.CurrencyCode) domain.ExchangeRate {
	return domain.ExchangeRate{
		From:      from,
		To:        to,
		Rate:      rate(from, to),
		Timestamp: c.now().UnixMilli(),
	}
}

func rate(from, to domain.CurrencyCode) float64 {
	return reference.USDRate(to) / reference.USDRate(from)
}
