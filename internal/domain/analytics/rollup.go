package analytics

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aerogest/backoffice/internal/domain/ledger"
)

// CostCenterGroup is one cost center's aggregated spend.
type CostCenterGroup struct {
	CostCenter string          `json:"cost_center"`
	Total      decimal.Decimal `json:"total"`
	Categories []string        `json:"categories"`
}

// RollupByCostCenter groups paid spend per cost center, sorted by total
// descending. Records with a blank cost center or a zero amountPaid are left
// out of the rollup; they stay in the ledger and in every other view.
func RollupByCostCenter(records []ledger.Record) []CostCenterGroup {
	type acc struct {
		total      decimal.Decimal
		categories map[string]struct{}
	}
	groups := make(map[string]*acc)
	for _, r := range records {
		cc := strings.TrimSpace(r.CostCenter)
		if cc == "" || r.AmountPaid.IsZero() {
			continue
		}
		g, ok := groups[cc]
		if !ok {
			g = &acc{categories: make(map[string]struct{})}
			groups[cc] = g
		}
		g.total = g.total.Add(r.AmountPaid)
		if r.ExpenseCategory != "" {
			g.categories[r.ExpenseCategory] = struct{}{}
		}
	}

	out := make([]CostCenterGroup, 0, len(groups))
	for cc, g := range groups {
		categories := make([]string, 0, len(g.categories))
		for c := range g.categories {
			categories = append(categories, c)
		}
		sort.Strings(categories)
		out = append(out, CostCenterGroup{CostCenter: cc, Total: g.total, Categories: categories})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].CostCenter < out[j].CostCenter
	})
	return out
}
