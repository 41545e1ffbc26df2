// Package reconciliation checks invoice line items against their declared
// totals. A divergence is a business observable shown to the back office, not
// an error condition.
package reconciliation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/aerogest/backoffice/internal/domain/ledger"
)

// divergenceTolerance absorbs rounding noise from spreadsheet arithmetic.
// One cent, exactly. Do not change it without the business owner.
var divergenceTolerance = decimal.RequireFromString("0.01")

// InvoiceGroup is every ledger record sharing one fiscal document, with the
// sum of its line items checked against the declared invoice total.
type InvoiceGroup struct {
	FiscalDocType   string          `json:"fiscal_doc_type"`
	FiscalDocNumber string          `json:"fiscal_doc_number"`
	Records         []ledger.Record `json:"records"`
	LineItemSum     decimal.Decimal `json:"line_item_sum"`
	DeclaredTotal   decimal.Decimal `json:"declared_total"`
	Difference      decimal.Decimal `json:"difference"`
	HasDivergence   bool            `json:"has_divergence"`
}

// GroupInvoices buckets records by (fiscalDocType, fiscalDocNumber), skipping
// records without a fiscal document. The declared total is taken from the
// first record seen in each group; members are assumed consistent. A group
// diverges when its line items drift from the declared total by more than the
// tolerance.
func GroupInvoices(records []ledger.Record) []InvoiceGroup {
	index := make(map[string]int)
	var groups []InvoiceGroup
	for _, r := range records {
		key, ok := r.InvoiceKey()
		if !ok {
			continue
		}
		i, seen := index[key]
		if !seen {
			i = len(groups)
			index[key] = i
			groups = append(groups, InvoiceGroup{
				FiscalDocType:   r.FiscalDocType,
				FiscalDocNumber: r.FiscalDocNumber,
				DeclaredTotal:   r.InvoiceTotal,
			})
		}
		groups[i].Records = append(groups[i].Records, r)
		groups[i].LineItemSum = groups[i].LineItemSum.Add(r.AmountPaid)
	}

	for i := range groups {
		g := &groups[i]
		g.Difference = g.LineItemSum.Sub(g.DeclaredTotal).Abs()
		g.HasDivergence = g.Difference.GreaterThan(divergenceTolerance)
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].FiscalDocType != groups[j].FiscalDocType {
			return groups[i].FiscalDocType < groups[j].FiscalDocType
		}
		return groups[i].FiscalDocNumber < groups[j].FiscalDocNumber
	})
	return groups
}

// CountDivergent returns how many groups diverge.
func CountDivergent(groups []InvoiceGroup) int {
	n := 0
	for _, g := range groups {
		if g.HasDivergence {
			n++
		}
	}
	return n
}
