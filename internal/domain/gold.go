package domain

type CurrencyCode string

const (
	USD CurrencyCode = "USD"
	EUR CurrencyCode = "EUR"
	GBP CurrencyCode = "GBP"
	MAD CurrencyCode = "MAD"
	AED CurrencyCode = "AED"
	SAR CurrencyCode = "SAR"
	EGP CurrencyCode = "EGP"
	INR CurrencyCode = "INR"
	JPY CurrencyCode = "JPY"
	CNY CurrencyCode = "CNY"
	CAD CurrencyCode = "CAD"
	AUD CurrencyCode = "AUD"
	CHF CurrencyCode = "CHF"
	TRY CurrencyCode = "TRY"
	KWD CurrencyCode = "KWD"
	QAR CurrencyCode = "QAR"
)

type PurityLabel string

const (
	Purity24K PurityLabel = "24k"
	Purity22K PurityLabel = "22k"
	Purity21K PurityLabel = "21k"
	Purity18K PurityLabel = "18k"
	Purity14K PurityLabel = "14k"
	Purity12K PurityLabel = "12k"
	Purity10K PurityLabel = "10k"
)

type Unit string

const (
	Gram  Unit = "gram"
	Ounce Unit = "ounce"
	Kilo  Unit = "kilo"
)

type Period string

const (
	Period1D Period = "1d"
	Period1W Period = "1w"
	Period1M Period = "1m"
	Period6M Period = "6m"
	Period1Y Period = "1y"
)

// Days returns how many days back a period reaches. The series itself holds Days()+1 points.
func (p Period) Days() (int, bool) {
	switch p {
	case Period1D:
		return 24, true
	case Period1W:
		return 7, true
	case Period1M:
		return 30, true
	case Period6M:
		return 180, true
	case Period1Y:
		return 365, true
	}
	return 0, false
}

func ParsePeriod(raw string) (Period, error) {
	p := Period(raw)
	if _, ok := p.Days(); !ok {
		return "", ErrUnsupportedPeriod
	}
	return p, nil
}

func Periods() []Period {
	return []Period{Period1D, Period1W, Period1M, Period6M, Period1Y}
}

type Currency struct {
	Code   CurrencyCode `json:"code"`
	Symbol string       `json:"symbol"`
	Name   string       `json:"name"`
}

// GoldPrice is built fresh for every request and never mutated afterwards.
type GoldPrice struct {
	Price            float64      `json:"price"`
	Currency         CurrencyCode `json:"currency"`
	Symbol           string       `json:"symbol"`
	Timestamp        int64        `json:"timestamp"`
	Change           float64      `json:"change"`
	ChangePercentage float64      `json:"change_percentage"`
	Purity           PurityLabel  `json:"purity,omitempty"`
	Unit             Unit         `json:"unit,omitempty"`
}

type HistoryPoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// GoldValue is the result of pricing a given weight of gold.
type GoldValue struct {
	Currency     CurrencyCode `json:"currency"`
	Symbol       string       `json:"symbol"`
	Purity       PurityLabel  `json:"purity"`
	Unit         Unit         `json:"unit"`
	Weight       float64      `json:"weight"`
	PricePerUnit float64      `json:"price_per_unit"`
	Value        float64      `json:"value"`
}

// HistoryKey identifies one generated series. Day pins it to the calendar
// day it was generated on, since the series shifts at midnight.
type HistoryKey struct {
	Currency CurrencyCode
	Period   Period
	Day      string
}
