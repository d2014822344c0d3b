package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	portssvc "github.com/SscSPs/fx_rates_service/internal/core/ports/services"
	"github.com/robfig/cron/v3"
)

// BackfillScheduler periodically backfills the previous day for every tracked currency.
type BackfillScheduler struct {
	cron     *cron.Cron
	backfill portssvc.BackfillSvc
	tracked  domain.TrackedCurrencies
	logger   *slog.Logger
	now      func() time.Time
}

// NewBackfillScheduler creates a scheduler. Nothing runs until Start.
func NewBackfillScheduler(backfill portssvc.BackfillSvc, tracked domain.TrackedCurrencies, logger *slog.Logger) *BackfillScheduler {
	return &BackfillScheduler{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		backfill: backfill,
		tracked:  tracked,
		logger:   logger,
		now:      time.Now,
	}
}

// Start registers the job under schedule (standard 5-field cron syntax) and starts the cron loop.
func (s *BackfillScheduler) Start(ctx context.Context, schedule string) error {
	if _, err := s.cron.AddFunc(schedule, func() { s.RunOnce(ctx) }); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("Backfill scheduler started", slog.String("schedule", schedule))
	return nil
}

// RunOnce launches a backfill of yesterday for each tracked currency.
func (s *BackfillScheduler) RunOnce(ctx context.Context) {
	yesterday := domain.TruncateDay(s.now().UTC()).AddDate(0, 0, -1)
	for _, code := range s.tracked {
		ticket, err := s.backfill.LaunchBackfill(ctx, code, yesterday, yesterday)
		if err != nil {
			s.logger.Error("Scheduled backfill failed to launch",
				slog.String("source_currency", code),
				slog.String("error", err.Error()))
			continue
		}
		s.logger.Info("Scheduled backfill launched",
			slog.String("source_currency", code),
			slog.String("job_id", ticket.JobID))
	}
}

// Stop halts the cron loop and waits for a running trigger to return.
func (s *BackfillScheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("Backfill scheduler stopped")
}

// Entries exposes the registered cron entries.
func (s *BackfillScheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}
