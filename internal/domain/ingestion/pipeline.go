package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aerogest/backoffice/internal/domain/ledger"
	"github.com/aerogest/backoffice/pkg/metrics"
)

// Result summarizes one ingestion batch. FailureCount is the number of rows
// attempted when the bulk insert failed as a whole; on success it is zero.
type Result struct {
	Inserted      []ledger.Record `json:"inserted"`
	FailureCount  int             `json:"failure_count"`
	DegradedRows  int             `json:"degraded_rows"`
	DegradedCells int             `json:"degraded_cells"`
}

// Pipeline turns raw spreadsheet batches into persisted ledger records.
type Pipeline struct {
	resolver *Resolver
	repo     ledger.Repository
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewPipeline wires the ingestion pipeline. metrics may be nil in tests.
func NewPipeline(repo ledger.Repository, logger *slog.Logger, m *metrics.Metrics) *Pipeline {
	return &Pipeline{
		resolver: NewResolver(),
		repo:     repo,
		logger:   logger,
		metrics:  m,
	}
}

// Ingest normalizes every row of the batch and issues a single bulk insert.
// Rows are processed independently: a malformed cell degrades that field to
// its normalizer's default and the row still inserts. Only a persistence
// failure fails the batch, and then the whole batch is reported failed.
func (p *Pipeline) Ingest(ctx context.Context, batch *RawBatch) (*Result, error) {
	start := time.Now()
	mapping := p.resolver.Resolve(batch.Headers)

	result := &Result{}
	records := make([]ledger.Record, 0, len(batch.Rows))
	for i, row := range batch.Rows {
		record, degraded := p.buildRecord(mapping, row)
		if degraded > 0 {
			result.DegradedRows++
			result.DegradedCells += degraded
			p.logger.Debug("degraded cells in imported row",
				slog.Int("row", i+1), slog.Int("cells", degraded))
		}
		records = append(records, record)
	}

	inserted, err := p.repo.BulkInsert(ctx, records)
	if err != nil {
		result.FailureCount = len(records)
		if p.metrics != nil {
			p.metrics.BatchesFailed.Inc()
		}
		p.logger.Error("bulk insert failed",
			slog.Int("rows", len(records)), slog.Any("error", err))
		return result, fmt.Errorf("inserting batch of %d rows: %w", len(records), err)
	}
	result.Inserted = inserted

	if p.metrics != nil {
		p.metrics.RowsIngested.Add(float64(len(inserted)))
		p.metrics.RowsDegraded.Add(float64(result.DegradedRows))
		p.metrics.BatchSize.Observe(float64(len(inserted)))
		p.metrics.BatchDuration.Observe(time.Since(start).Seconds())
	}
	p.logger.Info("batch ingested",
		slog.Int("rows", len(inserted)),
		slog.Int("degraded_rows", result.DegradedRows),
		slog.Duration("took", time.Since(start)))
	return result, nil
}

// buildRecord normalizes one raw row into a ledger record and counts how many
// cells had to be defaulted along the way.
func (p *Pipeline) buildRecord(mapping Mapping, row RawRow) (ledger.Record, int) {
	degraded := 0

	cell := func(f Field) CellValue {
		header, ok := mapping.Header(f)
		if !ok {
			return EmptyCell()
		}
		return row[header]
	}
	text := func(f Field) string {
		c := cell(f)
		switch c.Kind {
		case KindText:
			return strings.TrimSpace(c.Text)
		case KindNumber:
			// Spreadsheets routinely store document numbers as numbers.
			return strconv.FormatFloat(c.Number, 'f', -1, 64)
		}
		return ""
	}
	date := func(f Field) *time.Time {
		s, wasDefaulted := NormalizeDate(cell(f))
		if wasDefaulted {
			degraded++
		}
		t, err := ParseCanonicalDate(s)
		if err != nil {
			return nil
		}
		return t
	}
	amount := func(f Field) decimal.Decimal {
		d, wasDefaulted := NormalizeMoney(cell(f))
		if wasDefaulted {
			degraded++
		}
		return d
	}

	cls := Classify(cell(FieldMissionID), text(FieldAircraft),
		text(FieldExpenseCategory), text(FieldExpenseType))

	return ledger.Record{
		Origin:          ledger.Origin(cls.Origin),
		MissionID:       cls.MissionID,
		MissionName:     text(FieldMissionName),
		Aircraft:        cls.Aircraft,
		ExpenseCategory: cls.ExpenseCategory,
		ExpenseType:     cls.ExpenseType,
		Supplier:        text(FieldSupplier),
		Description:     text(FieldDescription),
		DueDate:         date(FieldDueDate),
		PaymentDate:     date(FieldPaymentDate),
		AmountDue:       amount(FieldAmountDue),
		AmountPaid:      amount(FieldAmountPaid),
		InvoiceTotal:    amount(FieldInvoiceTotal),
		CostCenter:      text(FieldCostCenter),
		FiscalDocType:   text(FieldFiscalDocType),
		FiscalDocNumber: text(FieldFiscalDocNumber),
		Notes:           text(FieldNotes),
	}, degraded
}
