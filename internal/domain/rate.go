package domain

// ExchangeRate is derived from the static per-USD table on every request.
type ExchangeRate struct {
	From      CurrencyCode `json:"from"`
	To        CurrencyCode `json:"to"`
	Rate      float64      `json:"rate"`
	Timestamp int64        `json:"timestamp"`
}
