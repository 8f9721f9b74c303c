package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"goldprice/internal/domain"
	"goldprice/internal/gold"

	"github.com/sirupsen/logrus"
)

type PriceService interface {
	Price(code domain.CurrencyCode, purity domain.PurityLabel, unit domain.Unit) domain.GoldPrice
	History(code domain.CurrencyCode, period domain.Period) ([]domain.HistoryPoint, error)
	Value(code domain.CurrencyCode, purity domain.PurityLabel, unit domain.Unit, weight float64) domain.GoldValue
	Convert(amount float64, from, to domain.CurrencyCode) float64
	Rate(from, to domain.CurrencyCode) domain.ExchangeRate
	Currencies() []domain.Currency
}

type TickerReader interface {
	Latest() (gold.TickerSnapshot, bool)
}

type LanguageAccessor interface {
	Get() domain.Language
	Set(ctx context.Context, code string) error
}

type Handler struct {
	service  PriceService
	ticker   TickerReader
	language LanguageAccessor
}

func NewHandler(service PriceService, ticker TickerReader, language LanguageAccessor) *Handler {
	return &Handler{service: service, ticker: ticker, language: language}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{
		Error: errorMsg,
	})
}

// writeJSON encodes before writing the status, so an unencodable body
// becomes a 500 instead of an empty success.
func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	payload, err := json.Marshal(body)
	if err != nil {
		logrus.WithError(err).WithField("status", statusCode).Error("failed to encode response")
		statusCode = http.StatusInternalServerError
		payload = []byte(`{"error":"ups, couldn't encode the response this time"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(append(payload, '\n'))
}
