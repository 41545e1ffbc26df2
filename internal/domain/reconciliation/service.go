package reconciliation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aerogest/backoffice/internal/domain/ledger"
	"github.com/aerogest/backoffice/pkg/metrics"
)

// Service runs invoice reconciliation over the persisted ledger.
type Service struct {
	repo    ledger.Repository
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewService wires the reconciliation service. metrics may be nil in tests.
func NewService(repo ledger.Repository, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{repo: repo, logger: logger, metrics: m}
}

// Report is the reconciliation result for one filtered slice of the ledger.
type Report struct {
	Groups         []InvoiceGroup `json:"groups"`
	DivergentCount int            `json:"divergent_count"`
}

// Reconcile groups the filtered records by fiscal document and reports the
// divergent ones. The divergence gauge tracks the latest run.
func (s *Service) Reconcile(ctx context.Context, filter ledger.Filter) (*Report, error) {
	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing records for reconciliation: %w", err)
	}

	groups := GroupInvoices(records)
	report := &Report{Groups: groups, DivergentCount: CountDivergent(groups)}

	if s.metrics != nil {
		s.metrics.DivergentInvoices.Set(float64(report.DivergentCount))
	}
	s.logger.Info("invoice reconciliation complete",
		slog.Int("groups", len(groups)),
		slog.Int("divergent", report.DivergentCount))
	return report, nil
}
