package analytics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aerogest/backoffice/internal/domain/ledger"
	"github.com/aerogest/backoffice/pkg/money"
)

// Service fetches ledger records and runs the aggregation views over them.
type Service struct {
	repo      ledger.Repository
	formatter *money.Formatter
	logger    *slog.Logger
}

// NewService wires the analytics service.
func NewService(repo ledger.Repository, formatter *money.Formatter, logger *slog.Logger) *Service {
	return &Service{repo: repo, formatter: formatter, logger: logger}
}

// SpendSeries is a chart-ready series with locale-formatted totals alongside
// the raw decimals.
type SpendSeries struct {
	Series
	TotalFormatted string `json:"total_formatted"`
}

// MonthlySpend returns the YYYY-MM payment series for the filter.
func (s *Service) MonthlySpend(ctx context.Context, filter ledger.Filter) (*SpendSeries, error) {
	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing records for monthly spend: %w", err)
	}
	series := MonthlyTotals(records, ByPaymentDate)
	return &SpendSeries{Series: series, TotalFormatted: s.formatter.FormatDecimal(series.Total)}, nil
}

// WeeklySpend returns the ISO-week payment series for the filter.
func (s *Service) WeeklySpend(ctx context.Context, filter ledger.Filter) (*SpendSeries, error) {
	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing records for weekly spend: %w", err)
	}
	series := WeeklyTotals(records, ByPaymentDate)
	return &SpendSeries{Series: series, TotalFormatted: s.formatter.FormatDecimal(series.Total)}, nil
}

// RollingSpend returns the monthly series annotated with a trailing mean over
// the given window of months.
func (s *Service) RollingSpend(ctx context.Context, filter ledger.Filter, window int) ([]RollingPoint, error) {
	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing records for rolling average: %w", err)
	}
	return RollingAverage(MonthlyTotals(records, ByPaymentDate), window), nil
}

// MonthlyDeltas returns the month-over-month report for the filter.
func (s *Service) MonthlyDeltas(ctx context.Context, filter ledger.Filter) ([]MonthDelta, error) {
	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing records for monthly deltas: %w", err)
	}
	return MonthOverMonth(MonthlyTotals(records, ByPaymentDate)), nil
}

// FleetReport is the comparison plus display strings for the summary cards.
type FleetReport struct {
	FleetComparison
	CommercialAverageFormatted string `json:"commercial_average_formatted"`
	PrivateAverageFormatted    string `json:"private_average_formatted"`
	EconomyFormatted           string `json:"economy_formatted"`
}

// Fleet returns the commercial-versus-private comparison for the filter.
func (s *Service) Fleet(ctx context.Context, filter ledger.Filter) (*FleetReport, error) {
	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing records for fleet comparison: %w", err)
	}
	cmp := CompareFleet(records)
	return &FleetReport{
		FleetComparison:            cmp,
		CommercialAverageFormatted: s.formatter.FormatMoney(cmp.Commercial.Average),
		PrivateAverageFormatted:    s.formatter.FormatMoney(cmp.Private.Average),
		EconomyFormatted:           s.formatter.FormatMoney(cmp.Economy.Abs()),
	}, nil
}

// CostCenters returns the cost-center rollup for the filter.
func (s *Service) CostCenters(ctx context.Context, filter ledger.Filter) ([]CostCenterGroup, error) {
	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing records for cost-center rollup: %w", err)
	}
	rollup := RollupByCostCenter(records)
	s.logger.Debug("cost-center rollup computed",
		slog.Int("records", len(records)), slog.Int("groups", len(rollup)))
	return rollup, nil
}
