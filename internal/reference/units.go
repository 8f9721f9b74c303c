package reference

import "goldprice/internal/domain"

// TroyOunceGrams is the rounded troy ounce used for display prices.
const TroyOunceGrams = 31.1035

var units = map[domain.Unit]float64{
	domain.Gram:  1,
	domain.Ounce: TroyOunceGrams,
	domain.Kilo:  1000,
}

// UnitFactor returns grams per unit; unknown units count as grams.
func UnitFactor(u domain.Unit) float64 {
	return Lookup(units, u, nil, 1)
}

func IsKnownUnit(u domain.Unit) bool {
	_, ok := units[u]
	return ok
}
