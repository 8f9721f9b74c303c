package reference

import (
	"testing"

	"goldprice/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestLookup_FallbackChain(t *testing.T) {
	table := map[string]int{"a": 1}
	fallback := map[string]int{"a": 10, "b": 20}

	require.Equal(t, 1, Lookup(table, "a", fallback, -1))
	require.Equal(t, 20, Lookup(table, "b", fallback, -1))
	require.Equal(t, -1, Lookup(table, "c", fallback, -1))
	require.Equal(t, -1, Lookup[string, int](nil, "a", nil, -1))
}

func TestBasePrice_FallsBackToUSD(t *testing.T) {
	require.Equal(t, 949.50, BasePrice(domain.MAD))
	require.Equal(t, BasePrice(domain.USD), BasePrice("ZZZ"))
	require.Equal(t, BasePrice(domain.USD), BasePrice(""))
}

func TestEverySupportedCurrencyHasPriceAndRate(t *testing.T) {
	for _, c := range Currencies() {
		_, ok := basePrices[c.Code]
		require.True(t, ok, "missing base price for %s", c.Code)
		_, ok = usdRates[c.Code]
		require.True(t, ok, "missing rate for %s", c.Code)
		require.NotEmpty(t, c.Symbol)
		require.NotEmpty(t, c.Name)
	}
	require.Len(t, basePrices, len(Currencies()))
}

func TestCurrencies_ReturnsCopy(t *testing.T) {
	got := Currencies()
	got[0].Code = "XXX"
	require.Equal(t, domain.USD, Currencies()[0].Code)
}

func TestSymbol(t *testing.T) {
	require.Equal(t, "DH", Symbol(domain.MAD))
	require.Equal(t, "ZZZ", Symbol("ZZZ"))
}

func TestPurityMultiplier(t *testing.T) {
	require.Equal(t, 1.0, PurityMultiplier(domain.Purity24K))
	require.Equal(t, 0.75, PurityMultiplier(domain.Purity18K))
	require.Equal(t, 1.0, PurityMultiplier("9k"))

	prev := 2.0
	for _, p := range Purities() {
		m := PurityMultiplier(p)
		require.Greater(t, m, 0.0)
		require.LessOrEqual(t, m, 1.0)
		require.Less(t, m, prev, "multipliers must decrease down the karat scale")
		prev = m
	}
}

func TestUnitFactor(t *testing.T) {
	require.Equal(t, 1.0, UnitFactor(domain.Gram))
	require.Equal(t, 31.1035, UnitFactor(domain.Ounce))
	require.Equal(t, 1000.0, UnitFactor(domain.Kilo))
	require.Equal(t, 1.0, UnitFactor("stone"))
	require.False(t, IsKnownUnit("stone"))
}

func TestUSDRate(t *testing.T) {
	require.Equal(t, 0.92, USDRate(domain.EUR))
	require.Equal(t, 1.0, USDRate("ZZZ"))
}
