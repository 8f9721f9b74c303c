package gold

import (
	"context"
	"sync"
	"time"

	"goldprice/internal/domain"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultRefreshInterval = 60 * time.Second

type Snapshotter interface {
	Snapshot() []domain.GoldPrice
}

// Scheduler periodically refreshes the ticker. Once Stop returns no further
// snapshot is published.
type Scheduler struct {
	source Snapshotter
	ticker *Ticker
	// -----
	refreshInterval time.Duration
	now             func() time.Time
	mu              sync.Mutex
	sched           gocron.Scheduler
	done            chan struct{}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sched != nil {
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.refreshInterval),
		gocron.NewTask(s.refresh),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return err
	}

	done := make(chan struct{})
	s.sched = scheduler
	s.done = done
	scheduler.Start()

	// Stop scheduler when the provided context is canceled. An explicit Stop
	// closes done and releases this goroutine.
	go func() {
		select {
		case <-ctx.Done():
			if sdErr := s.Stop(); sdErr != nil {
				logrus.Errorf("Scheduler shutdown error: %v", sdErr)
			}
		case <-done:
		}
	}()
	return nil
}

// Stop is idempotent.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	sched := s.sched
	s.sched = nil
	if s.done != nil {
		close(s.done)
		s.done = nil
	}
	s.mu.Unlock()

	if sched == nil {
		return nil
	}
	return sched.Shutdown()
}

func (s *Scheduler) refresh() {
	execID := uuid.NewString()
	snapshot := TickerSnapshot{
		ExecID:      execID,
		RefreshedAt: s.now(),
		Prices:      s.source.Snapshot(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sched == nil {
		logrus.Debugf("Dropping ticker refresh %s, scheduler stopped", execID)
		return
	}
	s.ticker.publish(snapshot)
	logrus.WithFields(logrus.Fields{"exec_id": execID, "prices": len(snapshot.Prices)}).Debug("Ticker refreshed")
}

func (s *Scheduler) running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched != nil
}

// NewScheduler stamps snapshots with now, time.Now when nil.
func NewScheduler(source Snapshotter, ticker *Ticker, refreshInterval time.Duration, now func() time.Time) *Scheduler {
	if refreshInterval <= 0 {
		refreshInterval = defaultRefreshInterval
	}
	if now == nil {
		now = time.Now
	}
	return &Scheduler{source: source, ticker: ticker, refreshInterval: refreshInterval, now: now}
}
