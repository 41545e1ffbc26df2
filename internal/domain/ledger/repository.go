package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Filter narrows List queries. Zero values mean "no constraint".
type Filter struct {
	From          *time.Time // payment_date >= From
	To            *time.Time // payment_date < To
	Origin        *Origin
	CostCenter    string
	FiscalDocType string
}

// Repository is the persistence contract for ledger records. The core treats
// the store as a generic bag of records; schema enforcement is the store's
// concern.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Record, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Record, error)
	BulkInsert(ctx context.Context, records []Record) ([]Record, error)
	Update(ctx context.Context, record *Record) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Querier is the subset of pgxpool.Pool the repository needs. pgxmock
// satisfies it, which keeps repository tests off a live database.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}
