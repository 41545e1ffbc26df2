package ingestion

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizeMoney converts a cell holding a monetary amount into a decimal.
// Brazilian formatting is assumed for text cells: "R$ 1.234,56" where "." is
// the thousands separator and "," the decimal mark. Unusable values become
// zero; the second return reports whether that defaulting happened.
func NormalizeMoney(cell CellValue) (decimal.Decimal, bool) {
	switch cell.Kind {
	case KindEmpty:
		return decimal.Zero, false

	case KindNumber:
		if math.IsNaN(cell.Number) || math.IsInf(cell.Number, 0) {
			return decimal.Zero, true
		}
		return decimal.NewFromFloat(cell.Number), false

	case KindText:
		return normalizeMoneyText(cell.Text)

	case KindDate:
		// A date where money was expected is never meaningful.
		return decimal.Zero, true
	}
	return decimal.Zero, true
}

func normalizeMoneyText(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, false
	}

	s = strings.ReplaceAll(s, "R$", "")
	s = strings.Join(strings.Fields(s), "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, true
	}
	return d, false
}
