package reference

import (
	"slices"

	"goldprice/internal/domain"
)

var currencies = []domain.Currency{
	{Code: domain.USD, Symbol: "$", Name: "US Dollar"},
	{Code: domain.EUR, Symbol: "€", Name: "Euro"},
	{Code: domain.GBP, Symbol: "£", Name: "British Pound"},
	{Code: domain.MAD, Symbol: "DH", Name: "Moroccan Dirham"},
	{Code: domain.AED, Symbol: "AED", Name: "UAE Dirham"},
	{Code: domain.SAR, Symbol: "SAR", Name: "Saudi Riyal"},
	{Code: domain.EGP, Symbol: "E£", Name: "Egyptian Pound"},
	{Code: domain.INR, Symbol: "₹", Name: "Indian Rupee"},
	{Code: domain.JPY, Symbol: "¥", Name: "Japanese Yen"},
	{Code: domain.CNY, Symbol: "CN¥", Name: "Chinese Yuan"},
	{Code: domain.CAD, Symbol: "C$", Name: "Canadian Dollar"},
	{Code: domain.AUD, Symbol: "A$", Name: "Australian Dollar"},
	{Code: domain.CHF, Symbol: "CHF", Name: "Swiss Franc"},
	{Code: domain.TRY, Symbol: "₺", Name: "Turkish Lira"},
	{Code: domain.KWD, Symbol: "KD", Name: "Kuwaiti Dinar"},
	{Code: domain.QAR, Symbol: "QR", Name: "Qatari Riyal"},
}

var symbols = func() map[domain.CurrencyCode]string {
	m := make(map[domain.CurrencyCode]string, len(currencies))
	for _, c := range currencies {
		m[c.Code] = c.Symbol
	}
	return m
}()

// Currencies returns the supported currencies in display order.
func Currencies() []domain.Currency {
	return slices.Clone(currencies)
}

func IsSupported(code domain.CurrencyCode) bool {
	_, ok := symbols[code]
	return ok
}

// Symbol falls back to the code itself for currencies outside the table.
func Symbol(code domain.CurrencyCode) string {
	return Lookup(symbols, code, nil, string(code))
}
