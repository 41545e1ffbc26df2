package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// recordColumns is the column list shared by every SELECT.
const recordColumns = `id, origin, mission_id, mission_name, aircraft,
	expense_category, expense_type, supplier, description,
	due_date, payment_date, amount_due, amount_paid, invoice_total,
	cost_center, fiscal_doc_type, fiscal_doc_number, notes,
	created_at, updated_at`

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db      Querier
	retrier *Retrier
}

var _ Repository = (*PostgresRepository)(nil)

// NewPostgresRepository creates a new PostgreSQL ledger repository.
func NewPostgresRepository(db Querier, retrier *Retrier) *PostgresRepository {
	return &PostgresRepository{db: db, retrier: retrier}
}

// List retrieves records matching the filter, ordered by payment date.
func (r *PostgresRepository) List(ctx context.Context, filter Filter) ([]Record, error) {
	var (
		conditions []string
		args       []any
	)

	addArg := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.From != nil {
		addArg("payment_date >= $%d", *filter.From)
	}
	if filter.To != nil {
		addArg("payment_date < $%d", *filter.To)
	}
	if filter.Origin != nil {
		addArg("origin = $%d", *filter.Origin)
	}
	if filter.CostCenter != "" {
		addArg("cost_center = $%d", filter.CostCenter)
	}
	if filter.FiscalDocType != "" {
		addArg("fiscal_doc_type = $%d", filter.FiscalDocType)
	}

	query := `SELECT ` + recordColumns + ` FROM ledger_records`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY payment_date NULLS LAST, created_at"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger record: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ledger records: %w", err)
	}
	return records, nil
}

// GetByID retrieves a single record.
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	query := `SELECT ` + recordColumns + ` FROM ledger_records WHERE id = $1`

	rec, err := scanRecord(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger record: %w", err)
	}
	return rec, nil
}

// BulkInsert persists a batch of records in a single statement. Either the
// whole batch commits or none of it does; callers surface a failure as a
// batch-level import error.
func (r *PostgresRepository) BulkInsert(ctx context.Context, records []Record) ([]Record, error) {
	if len(records) == 0 {
		return nil, nil
	}

	const cols = 17
	var (
		sb   strings.Builder
		args = make([]any, 0, len(records)*cols)
	)

	sb.WriteString(`INSERT INTO ledger_records (
		origin, mission_id, mission_name, aircraft,
		expense_category, expense_type, supplier, description,
		due_date, payment_date, amount_due, amount_paid, invoice_total,
		cost_center, fiscal_doc_type, fiscal_doc_number, notes
	) VALUES `)

	for i, rec := range records {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "$%d", i*cols+j+1)
		}
		sb.WriteString(")")

		args = append(args,
			rec.Origin, rec.MissionID, rec.MissionName, rec.Aircraft,
			rec.ExpenseCategory, rec.ExpenseType, rec.Supplier, rec.Description,
			rec.DueDate, rec.PaymentDate, rec.AmountDue, rec.AmountPaid, rec.InvoiceTotal,
			rec.CostCenter, rec.FiscalDocType, rec.FiscalDocNumber, rec.Notes,
		)
	}
	sb.WriteString(" RETURNING id, created_at, updated_at")

	inserted := make([]Record, len(records))
	copy(inserted, records)

	operation := func() error {
		rows, err := r.db.Query(ctx, sb.String(), args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		i := 0
		for rows.Next() {
			if i >= len(inserted) {
				return fmt.Errorf("bulk insert returned more rows than inserted")
			}
			if err := rows.Scan(&inserted[i].ID, &inserted[i].CreatedAt, &inserted[i].UpdatedAt); err != nil {
				return err
			}
			i++
		}
		return rows.Err()
	}

	if err := r.retrier.Retry(ctx, operation); err != nil {
		return nil, fmt.Errorf("failed to bulk insert %d ledger records: %w", len(records), err)
	}
	return inserted, nil
}

// Update replaces an existing record whole.
func (r *PostgresRepository) Update(ctx context.Context, rec *Record) error {
	query := `
		UPDATE ledger_records SET
			origin = $2, mission_id = $3, mission_name = $4, aircraft = $5,
			expense_category = $6, expense_type = $7, supplier = $8, description = $9,
			due_date = $10, payment_date = $11,
			amount_due = $12, amount_paid = $13, invoice_total = $14,
			cost_center = $15, fiscal_doc_type = $16, fiscal_doc_number = $17, notes = $18,
			updated_at = now()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRow(ctx, query,
		rec.ID,
		rec.Origin, rec.MissionID, rec.MissionName, rec.Aircraft,
		rec.ExpenseCategory, rec.ExpenseType, rec.Supplier, rec.Description,
		rec.DueDate, rec.PaymentDate,
		rec.AmountDue, rec.AmountPaid, rec.InvoiceTotal,
		rec.CostCenter, rec.FiscalDocType, rec.FiscalDocNumber, rec.Notes,
	).Scan(&rec.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update ledger record: %w", err)
	}
	return nil
}

// Delete removes a record by id.
func (r *PostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM ledger_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete ledger record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanRecord(row pgx.Row) (*Record, error) {
	rec := &Record{}
	err := row.Scan(
		&rec.ID, &rec.Origin, &rec.MissionID, &rec.MissionName, &rec.Aircraft,
		&rec.ExpenseCategory, &rec.ExpenseType, &rec.Supplier, &rec.Description,
		&rec.DueDate, &rec.PaymentDate,
		&rec.AmountDue, &rec.AmountPaid, &rec.InvoiceTotal,
		&rec.CostCenter, &rec.FiscalDocType, &rec.FiscalDocNumber, &rec.Notes,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return rec, nil
}
