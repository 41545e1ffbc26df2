// Package ingestion converts heterogeneous spreadsheet exports into canonical
// ledger records. Source files mix native dates, Excel serial numbers,
// Brazilian-formatted currency strings and inconsistent pt-BR headers; every
// normalizer here is total, degrading bad cells to safe defaults so one bad
// cell never aborts a batch.
package ingestion

import "time"

// CellKind tags the representation of a spreadsheet cell.
type CellKind int

const (
	KindEmpty CellKind = iota
	KindText
	KindNumber
	KindDate
)

// CellValue is the tagged variant for a spreadsheet cell. Exactly one of the
// payload fields is meaningful for a given Kind.
type CellValue struct {
	Kind   CellKind
	Text   string
	Number float64
	Date   time.Time
}

// EmptyCell returns the empty cell.
func EmptyCell() CellValue { return CellValue{Kind: KindEmpty} }

// TextCell wraps a string cell.
func TextCell(s string) CellValue { return CellValue{Kind: KindText, Text: s} }

// NumberCell wraps a numeric cell.
func NumberCell(n float64) CellValue { return CellValue{Kind: KindNumber, Number: n} }

// DateCell wraps a native date cell.
func DateCell(t time.Time) CellValue { return CellValue{Kind: KindDate, Date: t} }

// IsEmpty reports whether the cell carries no value at all.
func (c CellValue) IsEmpty() bool { return c.Kind == KindEmpty }

// RawRow maps a header string to the cell value under it, exactly as decoded
// from the uploaded file.
type RawRow map[string]CellValue

// RawBatch is one uploaded spreadsheet worth of rows.
type RawBatch struct {
	Headers []string
	Rows    []RawRow
}
