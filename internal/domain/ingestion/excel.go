package ingestion

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrTooManyRows is returned when an upload exceeds the configured row limit.
var ErrTooManyRows = errors.New("upload exceeds the row limit")

// ErrNoData is returned when a decoded file has a header row but no data.
var ErrNoData = errors.New("file contains no data rows")

// DecodeXLSX reads the first sheet of an XLSX upload into a raw batch. The
// first row is the header row. Cells are read raw, so dates arrive as Excel
// serial numbers and are typed as numeric cells. A file that cannot be opened
// or has no usable sheet is a fatal decode error; the ledger stays untouched.
func DecodeXLSX(r io.Reader, maxRows int) (*RawBatch, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	return buildBatch(rows, maxRows, xlsxCell)
}

// DecodeCSV reads a comma-separated upload into a raw batch. Every cell is
// textual; the normalizers sort out dates and amounts downstream.
func DecodeCSV(r io.Reader, maxRows int) (*RawBatch, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	return buildBatch(rows, maxRows, csvCell)
}

func buildBatch(rows [][]string, maxRows int, typeCell func(string) CellValue) (*RawBatch, error) {
	if len(rows) == 0 {
		return nil, ErrNoData
	}
	if maxRows > 0 && len(rows)-1 > maxRows {
		return nil, fmt.Errorf("%w: %d rows, limit %d", ErrTooManyRows, len(rows)-1, maxRows)
	}

	headers := make([]string, 0, len(rows[0]))
	for _, h := range rows[0] {
		headers = append(headers, strings.TrimSpace(h))
	}

	batch := &RawBatch{Headers: headers}
	for _, row := range rows[1:] {
		if rowIsBlank(row) {
			continue
		}
		raw := make(RawRow, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i >= len(row) {
				raw[header] = EmptyCell()
				continue
			}
			raw[header] = typeCell(row[i])
		}
		batch.Rows = append(batch.Rows, raw)
	}
	if len(batch.Rows) == 0 {
		return nil, ErrNoData
	}
	return batch, nil
}

// xlsxCell classifies a raw XLSX cell string. Raw cell values use invariant
// "."-decimal notation, so float-parseable cells become numeric and Excel
// date serials keep their native type.
func xlsxCell(s string) CellValue {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return EmptyCell()
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return NumberCell(n)
	}
	return TextCell(trimmed)
}

// csvCell classifies a CSV cell string. CSV cells carry pt-BR formatting
// where "." is a thousands separator, so "5.400" means five thousand four
// hundred and must stay textual for the money normalizer. Only digits-only
// cells (mission ids, document serials) are retyped as numbers.
func csvCell(s string) CellValue {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return EmptyCell()
	}
	if isDigits(trimmed) {
		if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return NumberCell(n)
		}
	}
	return TextCell(trimmed)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func rowIsBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
