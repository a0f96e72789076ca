package trigger

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/daniloc96/member-roster-sync/internal/models"
)

// Ticker delivers ticks on C until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct {
	*time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.Ticker.C }

// NewTimeTicker wraps time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{time.NewTicker(d)}
}

// Scheduler runs a sync at start and then once per interval.
type Scheduler struct {
	run       Runner
	interval  time.Duration
	newTicker func(time.Duration) Ticker
}

// NewScheduler creates a scheduler with a wall-clock ticker.
func NewScheduler(interval time.Duration, run Runner) *Scheduler {
	return &Scheduler{run: run, interval: interval, newTicker: NewTimeTicker}
}

// Run blocks until ctx is cancelled. Failed runs are logged and the next
// tick proceeds as usual.
func (s *Scheduler) Run(ctx context.Context) error {
	logrus.WithField("interval", s.interval.String()).Info("⏰ Scheduler started")

	s.tick(ctx)

	ticker := s.newTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logrus.Info("scheduler stopped")
			return nil
		case <-ticker.C():
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	result, err := s.run(ctx, models.TriggerSchedule)
	if err != nil {
		logrus.WithError(err).Error("scheduled sync failed")
		return
	}
	logrus.Info(result.Message())
}
