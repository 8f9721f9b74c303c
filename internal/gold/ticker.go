package gold

import (
	"sync/atomic"
	"time"

	"goldprice/internal/domain"
)

type TickerSnapshot struct {
	ExecID      string             `json:"exec_id"`
	RefreshedAt time.Time          `json:"refreshed_at"`
	Prices      []domain.GoldPrice `json:"prices"`
}

// Ticker holds the latest snapshot published by the scheduler.
type Ticker struct {
	latest   atomic.Pointer[TickerSnapshot]
	versions atomic.Uint64
}

func (t *Ticker) Latest() (TickerSnapshot, bool) {
	s := t.latest.Load()
	if s == nil {
		return TickerSnapshot{}, false
	}
	return *s, true
}

// Version counts publishes; it only moves forward.
func (t *Ticker) Version() uint64 {
	return t.versions.Load()
}

func (t *Ticker) publish(s TickerSnapshot) {
	t.latest.Store(&s)
	t.versions.Add(1)
}

func NewTicker() *Ticker {
	return &Ticker{}
}
