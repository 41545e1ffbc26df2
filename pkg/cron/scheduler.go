// Package cron provides scheduled background jobs using robfig/cron.
package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/aerogest/backoffice/internal/domain/ledger"
	"github.com/aerogest/backoffice/internal/domain/reconciliation"
)

// Scheduler manages background scheduled jobs using robfig/cron.
type Scheduler struct {
	cron           *cron.Cron
	reconciliation *reconciliation.Service
	logger         *slog.Logger
}

// NewScheduler creates a new job scheduler.
func NewScheduler(reconciliationService *reconciliation.Service, logger *slog.Logger) *Scheduler {
	c := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelDebug))))

	return &Scheduler{
		cron:           c,
		reconciliation: reconciliationService,
		logger:         logger,
	}
}

// Start begins scheduled jobs.
func (s *Scheduler) Start() error {
	// Invoice divergence refresh: runs daily at 3:00 AM, keeps the
	// divergence gauge current without waiting for a report request.
	_, err := s.cron.AddFunc("0 3 * * *", s.refreshDivergences)
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("cron scheduler started",
		slog.Int("jobs", len(s.cron.Entries())),
	)
	return nil
}

// Stop gracefully stops all scheduled jobs.
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("cron scheduler stopping")
	return s.cron.Stop()
}

// RunNow manually triggers the divergence refresh (for testing/admin).
func (s *Scheduler) RunNow() {
	go s.refreshDivergences()
}

// refreshDivergences reconciles the whole ledger and updates the gauge.
func (s *Scheduler) refreshDivergences() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	s.logger.Info("starting nightly invoice divergence refresh")

	report, err := s.reconciliation.Reconcile(ctx, ledger.Filter{})
	if err != nil {
		s.logger.Error("divergence refresh failed", slog.Any("error", err))
		return
	}

	s.logger.Info("nightly invoice divergence refresh complete",
		slog.Int("groups", len(report.Groups)),
		slog.Int("divergent", report.DivergentCount),
	)
}
