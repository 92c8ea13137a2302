// Package scheduler runs the due-date sweep on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portssvc "github.com/SscSPs/cheque_management_app/internal/core/ports/services"
	"github.com/SscSPs/cheque_management_app/internal/middleware"
	"github.com/robfig/cron/v3"
)

// SweepScheduler triggers DueDateSvc.RunDueDateSweep on schedule. Overlapping ticks are
// skipped rather than queued.
type SweepScheduler struct {
	cron   *cron.Cron
	svc    portssvc.DueDateSvc
	logger *slog.Logger
}

// New parses schedule (standard five-field cron or a descriptor such as "@daily") in loc.
func New(schedule string, loc *time.Location, svc portssvc.DueDateSvc, logger *slog.Logger) (*SweepScheduler, error) {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &SweepScheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		svc:    svc,
		logger: logger,
	}
	if _, err := s.cron.AddFunc(schedule, s.tick); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}
	return s, nil
}

// Start begins ticking in the background.
func (s *SweepScheduler) Start() {
	s.cron.Start()
	s.logger.Info("Due date sweep scheduled", slog.Int("entries", len(s.cron.Entries())))
}

// RunNow performs one sweep synchronously.
func (s *SweepScheduler) RunNow(ctx context.Context) (int, error) {
	ctx = middleware.WithLogger(ctx, s.logger.With(slog.String("job", "due_date_sweep")))
	start := time.Now()
	n, err := s.svc.RunDueDateSweep(ctx)
	if err != nil {
		s.logger.Warn("Due date sweep finished with errors",
			slog.Int("transitioned", n),
			slog.Duration("took", time.Since(start)),
			slog.String("error", err.Error()))
		return n, err
	}
	s.logger.Info("Due date sweep finished", slog.Int("transitioned", n), slog.Duration("took", time.Since(start)))
	return n, nil
}

func (s *SweepScheduler) tick() {
	_, _ = s.RunNow(context.Background())
}

// Stop halts the schedule and waits for a running sweep to finish or ctx to expire.
func (s *SweepScheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
