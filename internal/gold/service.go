package gold

import (
	"time"

	"goldprice/internal/adapters"
	"goldprice/internal/conversion"
	"goldprice/internal/domain"
	"goldprice/internal/pricing"
	"goldprice/internal/reference"
)

// Service is the narrow facade the presentation layer calls into.
type Service struct {
	engine    *pricing.Engine
	converter *conversion.Converter
	cache     adapters.HistoryCache
}

func (s *Service) Price(code domain.CurrencyCode, purity domain.PurityLabel, unit domain.Unit) domain.GoldPrice {
	return s.engine.PriceIn(code, purity, unit)
}

// History serves from the cache when the same series was already generated
// on the current calendar day.
func (s *Service) History(code domain.CurrencyCode, period domain.Period) ([]domain.HistoryPoint, error) {
	key := domain.HistoryKey{Currency: code, Period: period, Day: s.engine.Today().Format(time.DateOnly)}
	if s.cache != nil {
		if points, ok := s.cache.Get(key); ok {
			return points, nil
		}
	}

	points, err := s.engine.History(code, period)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(key, points)
	}
	return points, nil
}

func (s *Service) Value(code domain.CurrencyCode, purity domain.PurityLabel, unit domain.Unit, weight float64) domain.GoldValue {
	return s.engine.Value(code, purity, unit, weight)
}

func (s *Service) Convert(amount float64, from, to domain.CurrencyCode) float64 {
	return s.converter.Convert(amount, from, to)
}

func (s *Service) Rate(from, to domain.CurrencyCode) domain.ExchangeRate {
	return s.converter.Rate(from, to)
}

func (s *Service) Currencies() []domain.Currency {
	return reference.Currencies()
}

// Snapshot quotes 24k per gram for every supported currency.
func (s *Service) Snapshot() []domain.GoldPrice {
	currencies := reference.Currencies()
	prices := make([]domain.GoldPrice, 0, len(currencies))
	for _, c := range currencies {
		prices = append(prices, s.engine.Price(c.Code, domain.Purity24K))
	}
	return prices
}

func NewService(engine *pricing.Engine, converter *conversion.Converter, cache adapters.HistoryCache) *Service {
	return &Service{engine: engine, converter: converter, cache: cache}
}
