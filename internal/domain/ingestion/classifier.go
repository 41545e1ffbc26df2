package ingestion

import (
	"strconv"
	"strings"
)

// Classification defaults filled in when a row omits the field.
const (
	defaultAircraft        = "Comercial"
	defaultMissionCategory = "Custo Missões"
	defaultFixedCategory   = "Despesa Fixa"
	defaultExpenseType     = "Outros"
)

// ParseMissionID extracts a positive integer mission identifier from a cell.
// Anything else, including zero and negative numbers, yields (0, false).
func ParseMissionID(cell CellValue) (int64, bool) {
	switch cell.Kind {
	case KindNumber:
		id := int64(cell.Number)
		if float64(id) != cell.Number || id <= 0 {
			return 0, false
		}
		return id, true

	case KindText:
		s := strings.TrimSpace(cell.Text)
		if s == "" {
			return 0, false
		}
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil || id <= 0 {
			return 0, false
		}
		return id, true
	}
	return 0, false
}

// Classification is the origin decision plus the origin-dependent defaults
// for a single normalized row.
type Classification struct {
	Origin          string
	MissionID       *int64
	Aircraft        string
	ExpenseCategory string
	ExpenseType     string
}

// Classify decides whether a row is a mission expense or a fixed expense and
// fills the defaults the source spreadsheets routinely leave blank. A row is
// mission-origin exactly when its mission-identifier cell holds a positive
// integer.
func Classify(missionCell CellValue, aircraft, expenseCategory, expenseType string) Classification {
	c := Classification{
		Aircraft:        strings.TrimSpace(aircraft),
		ExpenseCategory: strings.TrimSpace(expenseCategory),
		ExpenseType:     strings.TrimSpace(expenseType),
	}

	if id, ok := ParseMissionID(missionCell); ok {
		c.Origin = "mission"
		c.MissionID = &id
	} else {
		c.Origin = "fixed"
	}

	if c.Aircraft == "" {
		c.Aircraft = defaultAircraft
	}
	if c.ExpenseCategory == "" {
		if c.Origin == "mission" {
			c.ExpenseCategory = defaultMissionCategory
		} else {
			c.ExpenseCategory = defaultFixedCategory
		}
	}
	if c.ExpenseType == "" {
		c.ExpenseType = defaultExpenseType
	}
	return c
}
