package cache

import (
	"fmt"
	"slices"

	"goldprice/internal/domain"

	"github.com/dgraph-io/ristretto"
)

type RistrettoHistoryCache struct {
	cache *ristretto.Cache
}

func NewHistoryCache(maxItems int64) (*RistrettoHistoryCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        10 * maxItems,
		MaxCost:            maxItems,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create history cache failed: %w", err)
	}
	return &RistrettoHistoryCache{cache: c}, nil
}

// Get hands out a copy so callers cannot alter the cached series.
func (c *RistrettoHistoryCache) Get(key domain.HistoryKey) ([]domain.HistoryPoint, bool) {
	if v, ok := c.cache.Get(toKey(key)); ok {
		points, ok := v.([]domain.HistoryPoint)
		return slices.Clone(points), ok
	}
	return nil, false
}

func (c *RistrettoHistoryCache) Set(key domain.HistoryKey, points []domain.HistoryPoint) {
	c.cache.Set(toKey(key), slices.Clone(points), 1)
}

func (c *RistrettoHistoryCache) Close() { c.cache.Close() }

func toKey(k domain.HistoryKey) string {
	return string(k.Currency) + ":" + string(k.Period) + ":" + k.Day
}
