package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aerogest/backoffice/internal/domain/ledger"
)

func fleetRecord(aircraft, paid string, on *time.Time) ledger.Record {
	r := paidRecord(paid, on)
	r.Aircraft = aircraft
	return r
}

func TestCompareFleet_AveragesOverActiveMonths(t *testing.T) {
	records := []ledger.Record{
		// Commercial: 3000 across two active months (Jan, Mar).
		fleetRecord("Comercial", "1000.00", date(2024, time.January, 10)),
		fleetRecord("Aeronave comercial PP-XYZ", "1000.00", date(2024, time.January, 25)),
		fleetRecord("COMERCIAL", "1000.00", date(2024, time.March, 2)),
		// Private: 600 in one active month.
		fleetRecord("PP-ABC", "600.00", date(2024, time.January, 15)),
	}

	cmp := CompareFleet(records)

	assert.Equal(t, "3000", cmp.Commercial.Total.String())
	assert.Equal(t, 2, cmp.Commercial.ActiveMonths, "two distinct payment months, not the calendar span")
	assert.Equal(t, "1500", cmp.Commercial.Average.String())

	assert.Equal(t, "600", cmp.Private.Total.String())
	assert.Equal(t, 1, cmp.Private.ActiveMonths)
	assert.Equal(t, "600", cmp.Private.Average.String())

	assert.Equal(t, "900", cmp.Economy.String())
	assert.False(t, cmp.Savings, "commercial costs more per active month here")
	assert.Equal(t, "60", cmp.EconomyPercent.String())
}

func TestCompareFleet_CommercialCheaper(t *testing.T) {
	records := []ledger.Record{
		fleetRecord("Comercial", "500.00", date(2024, time.May, 1)),
		fleetRecord("PP-ABC", "800.00", date(2024, time.May, 1)),
	}

	cmp := CompareFleet(records)
	assert.Equal(t, "-300", cmp.Economy.String())
	assert.True(t, cmp.Savings)
	assert.Equal(t, "60", cmp.EconomyPercent.String())
}

func TestCompareFleet_NoCommercialSpend(t *testing.T) {
	records := []ledger.Record{
		fleetRecord("PP-ABC", "800.00", date(2024, time.May, 1)),
	}

	cmp := CompareFleet(records)
	assert.True(t, cmp.Commercial.Average.IsZero())
	assert.True(t, cmp.EconomyPercent.IsZero(), "percentage is guarded when there is no commercial average")
}

func TestCompareFleet_UndatedPaymentsCountInTotalsOnly(t *testing.T) {
	records := []ledger.Record{
		fleetRecord("Comercial", "1000.00", date(2024, time.June, 1)),
		fleetRecord("Comercial", "500.00", nil),
	}

	cmp := CompareFleet(records)
	assert.Equal(t, "1500", cmp.Commercial.Total.String())
	assert.Equal(t, 1, cmp.Commercial.ActiveMonths)
	assert.Equal(t, "1500", cmp.Commercial.Average.String())
}
