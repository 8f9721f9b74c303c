package reference

import "goldprice/internal/domain"

var purities = map[domain.PurityLabel]float64{
	domain.Purity24K: 1,
	domain.Purity22K: 0.917,
	domain.Purity21K: 0.875,
	domain.Purity18K: 0.75,
	domain.Purity14K: 0.583,
	domain.Purity12K: 0.5,
	domain.Purity10K: 0.417,
}

// PurityMultiplier treats unknown labels as 24k.
func PurityMultiplier(label domain.PurityLabel) float64 {
	return Lookup(purities, label, nil, 1)
}

// Purities lists labels from purest down.
func Purities() []domain.PurityLabel {
	return []domain.PurityLabel{
		domain.Purity24K,
		domain.Purity22K,
		domain.Purity21K,
		domain.Purity18K,
		domain.Purity14K,
		domain.Purity12K,
		domain.Purity10K,
	}
}

func IsKnownPurity(label domain.PurityLabel) bool {
	_, ok := purities[label]
	return ok
}
