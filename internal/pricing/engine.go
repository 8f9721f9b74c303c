// Package pricing simulates gold prices: a deterministic daily variation
// applied to the static base price table, adjusted for purity and unit.
package pricing

import (
	"time"

	"goldprice/internal/domain"
	"goldprice/internal/reference"
)

// Engine is stateless apart from its injected clock and variation source,
// and is safe for concurrent use.
type Engine struct {
	now       func() time.Time
	variation VariationFunc
	location  *time.Location
}

type Option func(*Engine)

func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func WithVariation(v VariationFunc) Option {
	return func(e *Engine) {
		if v != nil {
			e.variation = v
		}
	}
}

// WithLocation sets the time zone that decides where a calendar day starts.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.location = loc
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		now:       time.Now,
		variation: Variation,
		location:  time.UTC,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Today returns midnight of the current calendar day in the engine's location.
func (e *Engine) Today() time.Time {
	return e.dayOf(e.now())
}

func (e *Engine) dayOf(t time.Time) time.Time {
	y, m, d := t.In(e.location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, e.location)
}

// resolve maps currencies outside the table to USD so that both the base
// price and the variation seed come from the same currency.
func resolve(code domain.CurrencyCode) domain.CurrencyCode {
	if reference.IsSupported(code) {
		return code
	}
	return domain.USD
}

// Price quotes one gram of gold of the given purity.
func (e *Engine) Price(code domain.CurrencyCode, purity domain.PurityLabel) domain.GoldPrice {
	return e.PriceIn(code, purity, domain.Gram)
}

// PriceIn quotes one unit of gold of the given purity. Change figures follow
// the base movement: purity scales the price but never the percentage.
func (e *Engine) PriceIn(code domain.CurrencyCode, purity domain.PurityLabel, unit domain.Unit) domain.GoldPrice {
	q, _ := e.quote(code, purity, unit)
	return q
}

// Value prices weight units of gold. The total is rounded once, from the
// unrounded unit price.
func (e *Engine) Value(code domain.CurrencyCode, purity domain.PurityLabel, unit domain.Unit, weight float64) domain.GoldValue {
	q, perUnit := e.quote(code, purity, unit)
	return domain.GoldValue{
		Currency:     q.Currency,
		Symbol:       q.Symbol,
		Purity:       q.Purity,
		Unit:         q.Unit,
		Weight:       weight,
		PricePerUnit: q.Price,
		Value:        Round2(perUnit * weight),
	}
}

// quote also returns the unrounded price per unit.
func (e *Engine) quote(code domain.CurrencyCode, purity domain.PurityLabel, unit domain.Unit) (domain.GoldPrice, float64) {
	now := e.now()
	code = resolve(code)
	if !reference.IsKnownPurity(purity) {
		purity = domain.Purity24K
	}
	if !reference.IsKnownUnit(unit) {
		unit = domain.Gram
	}

	base := reference.BasePrice(code) * reference.UnitFactor(unit)
	v := e.variation(code, e.dayOf(now))

	change := Round2(base * v)
	changePct := Round2(100 * v)
	if change == 0 || changePct == 0 {
		change, changePct = 0, 0
	}
	perUnit := base * (1 + v) * reference.PurityMultiplier(purity)

	return domain.GoldPrice{
		Price:            Round2(perUnit),
		Currency:         code,
		Symbol:           reference.Symbol(code),
		Timestamp:        now.UnixMilli(),
		Change:           change,
		ChangePercentage: changePct,
		Purity:           purity,
		Unit:             unit,
	}, perUnit
}
