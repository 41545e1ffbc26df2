// Package money provides currency-safe financial arithmetic for the ledger
// using integer centavos and the Fowler Money pattern, plus locale-aware
// display formatting for pt-BR.
package money

import (
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// BRL is the only currency the back office operates in.
const BRL = "BRL"

// Money represents a monetary value with currency.
// It wraps go-money for safe arithmetic and shopspring/decimal for precision.
type Money struct {
	m *money.Money
}

// New creates a new Money value from centavos (minor units).
func New(amountCents int64) *Money {
	return &Money{m: money.New(amountCents, BRL)}
}

// NewFromDecimal creates Money from a decimal amount in reais.
func NewFromDecimal(amount decimal.Decimal) *Money {
	currency := money.GetCurrency(BRL)
	multiplier := decimal.New(1, int32(currency.Fraction))
	cents := amount.Mul(multiplier).Round(0).IntPart()
	return New(cents)
}

// Zero returns a zero Money value.
func Zero() *Money {
	return New(0)
}

// Amount returns the amount in centavos.
func (m *Money) Amount() int64 {
	if m == nil || m.m == nil {
		return 0
	}
	return m.m.Amount()
}

// IsZero returns true if the amount is zero.
func (m *Money) IsZero() bool {
	return m == nil || m.m == nil || m.m.IsZero()
}

// IsNegative returns true if the amount is less than zero.
func (m *Money) IsNegative() bool {
	return m != nil && m.m != nil && m.m.IsNegative()
}

// Abs returns the absolute value.
func (m *Money) Abs() *Money {
	if m == nil || m.m == nil {
		return Zero()
	}
	return &Money{m: m.m.Absolute()}
}

// Add adds two Money values.
func (m *Money) Add(other *Money) *Money {
	if m == nil || m.m == nil {
		return other
	}
	if other == nil || other.m == nil {
		return m
	}
	result, err := m.m.Add(other.m)
	if err != nil {
		// Both operands are always BRL here.
		return m
	}
	return &Money{m: result}
}

// Subtract subtracts other from m.
func (m *Money) Subtract(other *Money) *Money {
	if other == nil || other.m == nil {
		return m
	}
	if m == nil || m.m == nil {
		return &Money{m: other.m.Negative()}
	}
	result, err := m.m.Subtract(other.m)
	if err != nil {
		return m
	}
	return &Money{m: result}
}

// ToDecimal converts to decimal.Decimal in reais.
func (m *Money) ToDecimal() decimal.Decimal {
	if m == nil || m.m == nil {
		return decimal.Zero
	}
	currency := m.m.Currency()
	d := decimal.NewFromInt(m.m.Amount())
	divisor := decimal.New(1, int32(currency.Fraction))
	return d.Div(divisor)
}

// PercentageOf calculates what percentage this amount is of another amount.
// Returns 0 when total is zero.
func (m *Money) PercentageOf(total *Money) decimal.Decimal {
	if m == nil || m.m == nil || total == nil || total.IsZero() {
		return decimal.Zero
	}
	return m.ToDecimal().Div(total.ToDecimal()).Mul(decimal.NewFromInt(100))
}

// Formatter renders monetary and numeric values for a fixed locale. It is
// constructed once and passed explicitly into aggregation and export code so
// formatting rules live in one place instead of ad hoc call sites.
type Formatter struct {
	Locale       string
	CurrencyCode string
	Symbol       string
	DecimalSep   string
	GroupSep     string
}

// NewBRLFormatter returns the pt-BR formatter used across the back office.
func NewBRLFormatter() *Formatter {
	return &Formatter{
		Locale:       "pt-BR",
		CurrencyCode: BRL,
		Symbol:       "R$",
		DecimalSep:   ",",
		GroupSep:     ".",
	}
}

// FormatDecimal renders a decimal amount with locale separators,
// e.g. 1234.5 -> "1.234,50". The amount is first snapped to centavos through
// Money, so sub-centavo inputs round half away from zero before display.
func (f *Formatter) FormatDecimal(d decimal.Decimal) string {
	cents := NewFromDecimal(d).Amount()
	fraction := money.GetCurrency(f.CurrencyCode).Fraction

	negative := cents < 0
	if negative {
		cents = -cents
	}
	digits := strconv.FormatInt(cents, 10)
	for len(digits) <= fraction {
		digits = "0" + digits
	}
	intPart := digits[:len(digits)-fraction]
	fracPart := digits[len(digits)-fraction:]

	var sb strings.Builder
	if negative {
		sb.WriteString("-")
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteString(f.GroupSep)
		}
		sb.WriteRune(r)
	}
	if fraction > 0 {
		sb.WriteString(f.DecimalSep)
		sb.WriteString(fracPart)
	}
	return sb.String()
}

// FormatMoney renders a decimal amount as currency, e.g. "R$ 1.234,50".
func (f *Formatter) FormatMoney(d decimal.Decimal) string {
	return f.Symbol + " " + f.FormatDecimal(d)
}

// FormatCents renders an integer centavo amount as currency.
func (f *Formatter) FormatCents(cents int64) string {
	return f.FormatMoney(New(cents).ToDecimal())
}
