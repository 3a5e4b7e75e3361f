package service

import (
	"context"
	"time"

	"gasmeter/internal/repository"
)

// Retention defaults; the window is configurable through NewService.
const defaultRetention = 90 * 24 * time.Hour

// RetentionService prunes stored calculations past the retention window.
type RetentionService struct {
	reports   repository.ReportRepo
	retainFor time.Duration
}

func NewRetentionService(reports repository.ReportRepo, retainFor time.Duration) *RetentionService {
	if retainFor <= 0 {
		retainFor = defaultRetention
	}
	return &RetentionService{reports: reports, retainFor: retainFor}
}

// Run ticks at the given interval until ctx is canceled, deleting records
// older than the retention window on every tick. Delete failures are
// transient (sqlite busy, shutdown race) and retried on the next tick.
func (s *RetentionService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			cutoff := now.UTC().Add(-s.retainFor)
			if _, err := s.reports.DeleteOlderThan(ctx, cutoff); err != nil {
				continue
			}
		}
	}
}

// PruneOnce runs a single pruning pass; used at startup and in tests.
func (s *RetentionService) PruneOnce(ctx context.Context, now time.Time) (int64, error) {
	return s.reports.DeleteOlderThan(ctx, now.UTC().Add(-s.retainFor))
}
