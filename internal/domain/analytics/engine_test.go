package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerogest/backoffice/internal/domain/ledger"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func paidRecord(paid string, on *time.Time) ledger.Record {
	return ledger.Record{
		Origin:     ledger.OriginFixed,
		AmountPaid: decimal.RequireFromString(paid),
		PaymentDate: on,
	}
}

func TestMonthlyTotals(t *testing.T) {
	records := []ledger.Record{
		paidRecord("100.00", date(2024, time.January, 5)),
		paidRecord("50.00", date(2024, time.January, 20)),
		paidRecord("200.00", date(2024, time.March, 1)),
		paidRecord("0", date(2024, time.February, 10)),
		paidRecord("75.00", nil),
	}

	series := MonthlyTotals(records, ByPaymentDate)

	require.Len(t, series.Points, 2, "zero-sum and undated buckets are dropped from the chart")
	assert.Equal(t, "2024-01", series.Points[0].Bucket)
	assert.Equal(t, "150", series.Points[0].Total.String())
	assert.Equal(t, "2024-03", series.Points[1].Bucket)
	assert.Equal(t, "200", series.Points[1].Total.String())

	assert.Equal(t, "425", series.Total.String(), "the grand total keeps every record")
}

func TestWeeklyTotals(t *testing.T) {
	records := []ledger.Record{
		paidRecord("10.00", date(2024, time.January, 1)),  // 2024-W01
		paidRecord("20.00", date(2024, time.January, 3)),  // 2024-W01
		paidRecord("30.00", date(2024, time.January, 10)), // 2024-W02
	}

	series := WeeklyTotals(records, ByPaymentDate)
	require.Len(t, series.Points, 2)
	assert.Equal(t, "2024-W01", series.Points[0].Bucket)
	assert.Equal(t, "30", series.Points[0].Total.String())
	assert.Equal(t, "2024-W02", series.Points[1].Bucket)
}

func TestDeltaPercent(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		previous string
		want     string
	}{
		{"both zero", "0", "0", "0"},
		{"from zero to positive", "50", "0", "100"},
		{"halved", "50", "100", "-50"},
		{"doubled", "200", "100", "100"},
		{"negative current from zero", "-10", "0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeltaPercent(
				decimal.RequireFromString(tt.current),
				decimal.RequireFromString(tt.previous),
			)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestRollingAverage(t *testing.T) {
	records := []ledger.Record{
		paidRecord("100.00", date(2024, time.January, 5)),
		paidRecord("150.00", date(2024, time.February, 5)),
		paidRecord("75.00", date(2024, time.March, 5)),
	}

	points := RollingAverage(MonthlyTotals(records, ByPaymentDate), 2)
	require.Len(t, points, 3)

	assert.Equal(t, "2024-01", points[0].Bucket)
	assert.Equal(t, "100", points[0].Average.String(), "a short head window averages what is there")
	assert.Equal(t, "125", points[1].Average.String())
	assert.Equal(t, "112.5", points[2].Average.String())

	wide := RollingAverage(MonthlyTotals(records, ByPaymentDate), 12)
	assert.Equal(t, "108.3333333333333333", wide[2].Average.StringFixed(16))

	clamped := RollingAverage(MonthlyTotals(records, ByPaymentDate), 0)
	assert.Equal(t, "75", clamped[2].Average.String(), "a window below one degrades to the point itself")
}

func TestMonthOverMonth(t *testing.T) {
	records := []ledger.Record{
		paidRecord("100.00", date(2024, time.January, 5)),
		paidRecord("150.00", date(2024, time.February, 5)),
		paidRecord("75.00", date(2024, time.March, 5)),
	}

	deltas := MonthOverMonth(MonthlyTotals(records, ByPaymentDate))
	require.Len(t, deltas, 3)

	assert.Equal(t, "2024-01", deltas[0].Month)
	assert.Equal(t, "100", deltas[0].Delta.String())
	assert.Equal(t, "100", deltas[0].DeltaPercent.String(), "the first month compares against zero")

	assert.Equal(t, "50", deltas[1].Delta.String())
	assert.Equal(t, "50", deltas[1].DeltaPercent.String())

	assert.Equal(t, "-75", deltas[2].Delta.String())
	assert.Equal(t, "-50", deltas[2].DeltaPercent.String())
}

func TestMonthOverMonth_GapMonth(t *testing.T) {
	records := []ledger.Record{
		paidRecord("100.00", date(2024, time.January, 5)),
		paidRecord("50.00", date(2024, time.March, 5)),
	}

	deltas := MonthOverMonth(MonthlyTotals(records, ByPaymentDate))
	require.Len(t, deltas, 3, "the empty month between two paid ones is reported")

	assert.Equal(t, "2024-02", deltas[1].Month)
	assert.Equal(t, "0", deltas[1].Total.String())
	assert.Equal(t, "-100", deltas[1].Delta.String())
	assert.Equal(t, "-100", deltas[1].DeltaPercent.String())

	assert.Equal(t, "2024-03", deltas[2].Month)
	assert.Equal(t, "50", deltas[2].Delta.String())
	assert.Equal(t, "100", deltas[2].DeltaPercent.String(), "spend after an empty month reads as a flat jump")
}
