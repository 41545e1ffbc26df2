package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Service handles manual ledger maintenance: the entry form and row edits.
// Spreadsheet imports go through the ingestion pipeline instead and skip
// per-record validation.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService wires the ledger service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns the records matching the filter.
func (s *Service) List(ctx context.Context, filter Filter) ([]Record, error) {
	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing ledger records: %w", err)
	}
	return records, nil
}

// Get returns one record by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching ledger record %s: %w", id, err)
	}
	return record, nil
}

// Create validates and persists a manually entered record.
func (s *Service) Create(ctx context.Context, record *Record) (*Record, error) {
	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ledger record: %w", err)
	}
	inserted, err := s.repo.BulkInsert(ctx, []Record{*record})
	if err != nil {
		return nil, fmt.Errorf("creating ledger record: %w", err)
	}
	s.logger.Info("ledger record created",
		slog.String("id", inserted[0].ID.String()),
		slog.String("origin", string(inserted[0].Origin)))
	return &inserted[0], nil
}

// Update validates and replaces a record whole. Partial patches are not
// supported; the edit form always submits the full row.
func (s *Service) Update(ctx context.Context, record *Record) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("invalid ledger record: %w", err)
	}
	if err := s.repo.Update(ctx, record); err != nil {
		return fmt.Errorf("updating ledger record %s: %w", record.ID, err)
	}
	return nil
}

// Delete removes a record.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting ledger record %s: %w", id, err)
	}
	s.logger.Info("ledger record deleted", slog.String("id", id.String()))
	return nil
}
