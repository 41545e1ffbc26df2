package ingestion

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// canonicalDateLayout is the output format of NormalizeDate.
const canonicalDateLayout = "2006-01-02"

// excelEpoch is serial 0 of the Excel 1900 date system. It is 1899-12-30, not
// 1899-12-31, to compensate for Excel treating 1900 as a leap year.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// dateSentinels are textual tokens that mean "no date". Compared after
// trimming and uppercasing.
var dateSentinels = map[string]bool{
	"":          true,
	"N/A":       true,
	"-":         true,
	"NAN":       true,
	"UNDEFINED": true,
}

// NormalizeDate converts a cell of unknown representation into a canonical
// YYYY-MM-DD string, or "" when the cell carries no date. It never fails; the
// second return reports whether a present but unusable value was defaulted
// away, which cell-level tolerance otherwise makes invisible.
func NormalizeDate(cell CellValue) (string, bool) {
	switch cell.Kind {
	case KindEmpty:
		return "", false

	case KindDate:
		return cell.Date.Format(canonicalDateLayout), false

	case KindNumber:
		serial := int(math.Round(cell.Number))
		return excelEpoch.AddDate(0, 0, serial).Format(canonicalDateLayout), false

	case KindText:
		return normalizeDateText(cell.Text)
	}
	return "", true
}

func normalizeDateText(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if dateSentinels[strings.ToUpper(s)] {
		return "", false
	}

	if strings.Contains(s, "-") {
		// ISO date, possibly followed by a time component.
		isoPart := s
		if i := strings.IndexByte(s, ' '); i >= 0 {
			isoPart = s[:i]
		}
		t, err := time.Parse(canonicalDateLayout, isoPart)
		if err != nil {
			return "", true
		}
		return t.Format(canonicalDateLayout), false
	}

	if strings.Contains(s, "/") {
		return normalizeSlashDate(s)
	}

	return "", true
}

// normalizeSlashDate parses DD/MM/YYYY or DD/MM/YY. Two-digit years are
// expanded by prefixing "20".
func normalizeSlashDate(s string) (string, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return "", true
	}

	dayStr := strings.TrimSpace(parts[0])
	monthStr := strings.TrimSpace(parts[1])
	yearStr := strings.TrimSpace(parts[2])
	if len(yearStr) == 2 {
		yearStr = "20" + yearStr
	}

	day, err1 := strconv.Atoi(dayStr)
	month, err2 := strconv.Atoi(monthStr)
	year, err3 := strconv.Atoi(yearStr)
	if err1 != nil || err2 != nil || err3 != nil {
		return "", true
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (32/01 becomes 01/02); reject those.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return "", true
	}
	return t.Format(canonicalDateLayout), false
}

// ParseCanonicalDate turns a NormalizeDate output back into a time value.
func ParseCanonicalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(canonicalDateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid canonical date %q: %w", s, err)
	}
	return &t, nil
}
