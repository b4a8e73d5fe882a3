package report

import (
	"context"
	"log/slog"
	"time"
)

// Triggerer starts a report run.
type Triggerer interface {
	Trigger(ctx context.Context) (string, error)
}

// Scheduler triggers a report run on a fixed interval.
// Each tick is independent: a failed trigger is logged and retried on the next tick.
type Scheduler struct {
	interval time.Duration
	reports  Triggerer
}

// NewScheduler creates a periodic report scheduler.
func NewScheduler(interval time.Duration, reports Triggerer) *Scheduler {
	return &Scheduler{
		interval: interval,
		reports:  reports,
	}
}

// Start triggers runs until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("[Scheduler] Starting report scheduler", "interval", s.interval)

	for {
		select {
		case <-ticker.C:
			s.tick(ctx)
		case <-ctx.Done():
			slog.Info("[Scheduler] Stopping (context cancelled)")
			return nil
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	id, err := s.reports.Trigger(ctx)
	if err != nil {
		slog.Error("[Scheduler] Scheduled report trigger failed", "error", err)
		return
	}
	slog.Info("[Scheduler] Scheduled report triggered", "report_id", id)
}
