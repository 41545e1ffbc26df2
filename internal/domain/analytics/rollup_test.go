package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerogest/backoffice/internal/domain/ledger"
)

func ccRecord(costCenter, category, paid string) ledger.Record {
	r := paidRecord(paid, date(2024, time.April, 1))
	r.CostCenter = costCenter
	r.ExpenseCategory = category
	return r
}

func TestRollupByCostCenter(t *testing.T) {
	records := []ledger.Record{
		ccRecord("Operações", "Custo Missões", "500.00"),
		ccRecord("Operações", "Despesa Fixa", "250.00"),
		ccRecord("Manutenção", "Despesa Fixa", "900.00"),
		ccRecord("", "Custo Missões", "100.00"),      // blank cost center
		ccRecord("   ", "Custo Missões", "100.00"),   // whitespace cost center
		ccRecord("Hangar", "Despesa Fixa", "0"),      // zero paid
	}

	groups := RollupByCostCenter(records)
	require.Len(t, groups, 2)

	assert.Equal(t, "Manutenção", groups[0].CostCenter, "sorted by total descending")
	assert.Equal(t, "900", groups[0].Total.String())
	assert.Equal(t, []string{"Despesa Fixa"}, groups[0].Categories)

	assert.Equal(t, "Operações", groups[1].CostCenter)
	assert.Equal(t, "750", groups[1].Total.String())
	assert.Equal(t, []string{"Custo Missões", "Despesa Fixa"}, groups[1].Categories)
}

func TestRollupByCostCenter_ExclusionsAreIndependent(t *testing.T) {
	records := []ledger.Record{
		// A set cost center does not save a zero-paid record.
		ccRecord("Operações", "Despesa Fixa", "0"),
		// A positive amount does not save a blank cost center.
		ccRecord("  ", "Custo Missões", "400.00"),
	}
	assert.Empty(t, RollupByCostCenter(records))
}

func TestRollupByCostCenter_Empty(t *testing.T) {
	assert.Empty(t, RollupByCostCenter(nil))
}
