// Package analytics computes the aggregation views of the ledger: monthly and
// weekly spend series, month-over-month deltas, fleet cost comparisons and
// cost-center rollups. Everything here is a pure function over records the
// caller already fetched and filtered; nothing touches the store.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aerogest/backoffice/internal/domain/ledger"
)

// DateSelector picks which date field drives bucketing.
type DateSelector func(ledger.Record) *time.Time

// ByPaymentDate buckets on the payment date. This is the default for spend
// reporting since unpaid entries carry no cash movement yet.
func ByPaymentDate(r ledger.Record) *time.Time { return r.PaymentDate }

// ByDueDate buckets on the due date, used for commitment forecasts.
func ByDueDate(r ledger.Record) *time.Time { return r.DueDate }

// Point is one bucket of a spend series.
type Point struct {
	Bucket string          `json:"bucket"`
	Total  decimal.Decimal `json:"total"`
}

// Series is a bucketed spend chart plus the grand total. Zero-sum buckets are
// dropped from Points but their records still count toward Total.
type Series struct {
	Points []Point         `json:"points"`
	Total  decimal.Decimal `json:"total"`
}

// MonthlyTotals sums amountPaid into YYYY-MM buckets.
func MonthlyTotals(records []ledger.Record, selector DateSelector) Series {
	return bucketTotals(records, selector, func(t time.Time) string {
		return t.Format("2006-01")
	})
}

// WeeklyTotals sums amountPaid into ISO-week buckets, keyed YYYY-Www.
func WeeklyTotals(records []ledger.Record, selector DateSelector) Series {
	return bucketTotals(records, selector, func(t time.Time) string {
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	})
}

func bucketTotals(records []ledger.Record, selector DateSelector, key func(time.Time) string) Series {
	sums := make(map[string]decimal.Decimal)
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.AmountPaid)
		t := selector(r)
		if t == nil {
			continue
		}
		k := key(*t)
		sums[k] = sums[k].Add(r.AmountPaid)
	}

	series := Series{Total: total}
	for bucket, sum := range sums {
		if sum.IsZero() {
			continue
		}
		series.Points = append(series.Points, Point{Bucket: bucket, Total: sum})
	}
	sort.Slice(series.Points, func(i, j int) bool {
		return series.Points[i].Bucket < series.Points[j].Bucket
	})
	return series
}

// Delta is the absolute month-over-month change.
func Delta(current, previous decimal.Decimal) decimal.Decimal {
	return current.Sub(previous)
}

// DeltaPercent is the relative month-over-month change. A zero previous value
// reports +100 when the current value is positive and 0 otherwise, so a month
// following an empty one reads as a flat jump instead of a division blowup.
func DeltaPercent(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsPositive() {
			return decimal.NewFromInt(100)
		}
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100))
}

// RollingPoint is one bucket of a rolling-average series.
type RollingPoint struct {
	Bucket  string          `json:"bucket"`
	Total   decimal.Decimal `json:"total"`
	Average decimal.Decimal `json:"average"`
}

// RollingAverage annotates each point of a series with the trailing mean over
// the last window points, the point itself included. Windows shorter than the
// requested size (the start of the series) average what is available.
func RollingAverage(series Series, window int) []RollingPoint {
	if window < 1 {
		window = 1
	}
	out := make([]RollingPoint, 0, len(series.Points))
	for i, p := range series.Points {
		lo := i - window + 1
		if lo < 0 {
			lo = 0
		}
		sum := decimal.Zero
		for _, q := range series.Points[lo : i+1] {
			sum = sum.Add(q.Total)
		}
		out = append(out, RollingPoint{
			Bucket:  p.Bucket,
			Total:   p.Total,
			Average: sum.Div(decimal.NewFromInt(int64(i - lo + 1))),
		})
	}
	return out
}

// MonthDelta is one month of a month-over-month report.
type MonthDelta struct {
	Month        string          `json:"month"`
	Total        decimal.Decimal `json:"total"`
	Delta        decimal.Decimal `json:"delta"`
	DeltaPercent decimal.Decimal `json:"delta_percent"`
}

// MonthOverMonth annotates a monthly series with the change from the
// preceding calendar month. Months with no spend between the first and last
// bucket appear with a zero total, so a skipped month reads as a drop to zero
// rather than vanishing from the report. The first month compares against
// zero.
func MonthOverMonth(series Series) []MonthDelta {
	points := fillMonthGaps(series.Points)
	deltas := make([]MonthDelta, 0, len(points))
	previous := decimal.Zero
	for _, p := range points {
		deltas = append(deltas, MonthDelta{
			Month:        p.Bucket,
			Total:        p.Total,
			Delta:        Delta(p.Total, previous),
			DeltaPercent: DeltaPercent(p.Total, previous),
		})
		previous = p.Total
	}
	return deltas
}

func fillMonthGaps(points []Point) []Point {
	if len(points) < 2 {
		return points
	}
	first, err := time.Parse("2006-01", points[0].Bucket)
	if err != nil {
		return points
	}
	last, err := time.Parse("2006-01", points[len(points)-1].Bucket)
	if err != nil {
		return points
	}

	byBucket := make(map[string]decimal.Decimal, len(points))
	for _, p := range points {
		byBucket[p.Bucket] = p.Total
	}
	filled := make([]Point, 0, len(points))
	for t := first; !t.After(last); t = t.AddDate(0, 1, 0) {
		bucket := t.Format("2006-01")
		filled = append(filled, Point{Bucket: bucket, Total: byBucket[bucket]})
	}
	return filled
}
