package adapters

import (
	"context"

	"goldprice/internal/domain"
)

// PreferenceStore persists single string values under fixed keys.
// Get reports ok=false when the key has never been written.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
}

// HistoryCache holds generated series for the calendar day they were built on.
type HistoryCache interface {
	Get(key domain.HistoryKey) ([]domain.HistoryPoint, bool)
	Set(key domain.HistoryKey, points []domain.HistoryPoint)
}
