// Package reference holds the static tables the pricing core reads from:
// currencies, purities, units, base prices and exchange rates.
package reference

// Lookup resolves key in table, then in fallback, then returns def.
// A nil table or fallback is treated as empty.
func Lookup[K comparable, V any](table map[K]V, key K, fallback map[K]V, def V) V {
	if v, ok := table[key]; ok {
		return v
	}
	if v, ok := fallback[key]; ok {
		return v
	}
	return def
}
