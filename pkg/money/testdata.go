package money

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

// TestDataGenerator produces realistic Brazilian financial fixtures with
// gofakeit. Used by ingestion and analytics tests.
type TestDataGenerator struct {
	faker *gofakeit.Faker
}

// NewTestDataGenerator creates a generator with a specific seed for
// reproducibility.
func NewTestDataGenerator(seed int64) *TestDataGenerator {
	return &TestDataGenerator{faker: gofakeit.New(seed)}
}

// TestExpense is a generated expense entry.
type TestExpense struct {
	Supplier    string
	Description string
	CostCenter  string
	PaymentDate time.Time
	Amount      decimal.Decimal
}

var testCostCenters = []string{
	"Hangar", "Operações", "Manutenção", "Administrativo", "Tripulação",
}

// Expense generates a single expense within the given date range.
func (g *TestDataGenerator) Expense(from, to time.Time) TestExpense {
	cents := g.faker.Number(100, 5_000_000)
	return TestExpense{
		Supplier:    g.faker.Company(),
		Description: g.faker.ProductName(),
		CostCenter:  testCostCenters[g.faker.Number(0, len(testCostCenters)-1)],
		PaymentDate: g.faker.DateRange(from, to),
		Amount:      decimal.New(int64(cents), -2),
	}
}

// Expenses generates n expenses within the given date range.
func (g *TestDataGenerator) Expenses(n int, from, to time.Time) []TestExpense {
	out := make([]TestExpense, n)
	for i := range out {
		out[i] = g.Expense(from, to)
	}
	return out
}

// BRLString renders an amount the way Brazilian spreadsheet exports do,
// e.g. "R$ 1.234,56".
func (g *TestDataGenerator) BRLString(amount decimal.Decimal) string {
	return NewBRLFormatter().FormatMoney(amount)
}

// MixedDateString renders a date in one of the textual conventions seen in
// source spreadsheets (ISO or DD/MM/YYYY), chosen pseudo-randomly.
func (g *TestDataGenerator) MixedDateString(t time.Time) string {
	if g.faker.Bool() {
		return t.Format("2006-01-02")
	}
	return fmt.Sprintf("%02d/%02d/%04d", t.Day(), int(t.Month()), t.Year())
}
