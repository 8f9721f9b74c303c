package reference

import "goldprice/internal/domain"

// BasePriceDate is the snapshot date of the base price table.
const BasePriceDate = "2025-03-01"

// Price per gram of 24k gold.
var basePrices = map[domain.CurrencyCode]float64{
	domain.USD: 94.85,
	domain.EUR: 87.26,
	domain.GBP: 74.93,
	domain.MAD: 949.50,
	domain.AED: 348.34,
	domain.SAR: 355.69,
	domain.EGP: 4799.41,
	domain.INR: 8242.47,
	domain.JPY: 14274.93,
	domain.CNY: 690.51,
	domain.CAD: 136.58,
	domain.AUD: 151.76,
	domain.CHF: 85.37,
	domain.TRY: 3452.54,
	domain.KWD: 29.21,
	domain.QAR: 345.25,
}

// BasePrice never misses: unknown currencies get the USD entry.
func BasePrice(code domain.CurrencyCode) float64 {
	return Lookup(basePrices, code, nil, basePrices[domain.USD])
}

// Units of the quote currency per one USD.
var usdRates = map[domain.CurrencyCode]float64{
	domain.USD: 1,
	domain.EUR: 0.92,
	domain.GBP: 0.79,
	domain.MAD: 10.01,
	domain.AED: 3.6725,
	domain.SAR: 3.75,
	domain.EGP: 50.6,
	domain.INR: 86.9,
	domain.JPY: 150.5,
	domain.CNY: 7.28,
	domain.CAD: 1.44,
	domain.AUD: 1.6,
	domain.CHF: 0.9,
	domain.TRY: 36.4,
	domain.KWD: 0.308,
	domain.QAR: 3.64,
}

// USDRate treats currencies missing from the table as parity with USD.
func USDRate(code domain.CurrencyCode) float64 {
	return Lookup(usdRates, code, nil, 1)
}
