package analytics

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aerogest/backoffice/internal/domain/ledger"
)

// FleetSide is one half of the commercial-versus-private comparison.
type FleetSide struct {
	Total        decimal.Decimal `json:"total"`
	ActiveMonths int             `json:"active_months"`
	Average      decimal.Decimal `json:"average"`
}

// FleetComparison contrasts average monthly spend of the commercial fleet
// against the private one. Economy is commercial average minus private
// average; a negative value means the commercial fleet runs cheaper.
type FleetComparison struct {
	Commercial     FleetSide       `json:"commercial"`
	Private        FleetSide       `json:"private"`
	Economy        decimal.Decimal `json:"economy"`
	EconomyPercent decimal.Decimal `json:"economy_percent"`
	Savings        bool            `json:"savings"`
}

// CompareFleet partitions records by whether the aircraft name contains
// "comercial" (case-insensitive) and averages each side's amountPaid over its
// distinct payment months. Dividing by active months rather than the calendar
// span keeps months with no flights from diluting the average.
func CompareFleet(records []ledger.Record) FleetComparison {
	var commercial, private fleetAccumulator
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Aircraft), "comercial") {
			commercial.add(r)
		} else {
			private.add(r)
		}
	}

	cmp := FleetComparison{
		Commercial: commercial.side(),
		Private:    private.side(),
	}
	cmp.Economy = cmp.Commercial.Average.Sub(cmp.Private.Average)
	cmp.Savings = cmp.Economy.IsNegative()
	if !cmp.Commercial.Average.IsZero() {
		cmp.EconomyPercent = cmp.Economy.Abs().
			Div(cmp.Commercial.Average).
			Mul(decimal.NewFromInt(100))
	}
	return cmp
}

type fleetAccumulator struct {
	total  decimal.Decimal
	months map[string]struct{}
}

func (a *fleetAccumulator) add(r ledger.Record) {
	a.total = a.total.Add(r.AmountPaid)
	if month := r.PaymentMonth(); month != "" {
		if a.months == nil {
			a.months = make(map[string]struct{})
		}
		a.months[month] = struct{}{}
	}
}

func (a *fleetAccumulator) side() FleetSide {
	side := FleetSide{Total: a.total, ActiveMonths: len(a.months)}
	if side.ActiveMonths > 0 {
		side.Average = a.total.Div(decimal.NewFromInt(int64(side.ActiveMonths)))
	}
	return side
}
