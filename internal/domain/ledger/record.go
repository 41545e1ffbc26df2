// Package ledger defines the canonical financial ledger record and its
// persistence contract. Records are created by spreadsheet ingestion or by the
// manual entry form, replaced whole on edit, and never partially patched.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Origin classifies where an expense is attributed.
type Origin string

const (
	// OriginMission marks a cost attributed to a specific flight mission.
	OriginMission Origin = "mission"
	// OriginFixed marks a recurring fixed expense of the operation.
	OriginFixed Origin = "fixed"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("ledger record not found")

// Record is a single canonical financial entry.
type Record struct {
	ID     uuid.UUID `json:"id"`
	Origin Origin    `json:"origin"`

	MissionID   *int64 `json:"mission_id,omitempty"`
	MissionName string `json:"mission_name,omitempty"`
	Aircraft    string `json:"aircraft,omitempty"`

	ExpenseCategory string `json:"expense_category"`
	ExpenseType     string `json:"expense_type"`
	Supplier        string `json:"supplier,omitempty"`
	Description     string `json:"description,omitempty"`

	DueDate     *time.Time `json:"due_date,omitempty"`
	PaymentDate *time.Time `json:"payment_date,omitempty"`

	AmountDue    decimal.Decimal `json:"amount_due"`
	AmountPaid   decimal.Decimal `json:"amount_paid"`
	InvoiceTotal decimal.Decimal `json:"invoice_total"`

	CostCenter      string `json:"cost_center,omitempty"`
	FiscalDocType   string `json:"fiscal_doc_type,omitempty"`
	FiscalDocNumber string `json:"fiscal_doc_number,omitempty"`
	Notes           string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the record invariants before a manual create or replace.
// Ingestion does not call this per row; its normalizers already degrade bad
// cells to safe defaults.
func (r *Record) Validate() error {
	switch r.Origin {
	case OriginMission:
		if r.MissionID == nil && r.MissionName == "" {
			return errors.New("mission record requires a mission id or mission name")
		}
	case OriginFixed:
		// No mission fields required.
	default:
		return fmt.Errorf("invalid origin %q", r.Origin)
	}

	if r.AmountDue.IsNegative() || r.AmountPaid.IsNegative() || r.InvoiceTotal.IsNegative() {
		return errors.New("amounts must be non-negative")
	}
	return nil
}

// PaymentMonth returns the YYYY-MM bucket of the payment date, or "" when the
// record has no payment date.
func (r Record) PaymentMonth() string {
	if r.PaymentDate == nil {
		return ""
	}
	return r.PaymentDate.Format("2006-01")
}

// InvoiceKey returns the (fiscal doc type, number) grouping key, and false
// when the record carries no fiscal document.
func (r Record) InvoiceKey() (string, bool) {
	if r.FiscalDocType == "" {
		return "", false
	}
	return r.FiscalDocType + "|" + r.FiscalDocNumber, true
}
