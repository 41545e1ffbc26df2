package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMissionID(t *testing.T) {
	tests := []struct {
		name string
		cell CellValue
		want int64
		ok   bool
	}{
		{"integer number", NumberCell(42), 42, true},
		{"numeric text", TextCell("17"), 17, true},
		{"padded text", TextCell("  8  "), 8, true},
		{"zero", NumberCell(0), 0, false},
		{"negative", NumberCell(-3), 0, false},
		{"fractional", NumberCell(4.5), 0, false},
		{"non numeric text", TextCell("MIS-42"), 0, false},
		{"empty text", TextCell(""), 0, false},
		{"empty cell", EmptyCell(), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseMissionID(tt.cell)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_MissionWithAllOtherFieldsBlank(t *testing.T) {
	c := Classify(NumberCell(101), "", "", "")
	assert.Equal(t, "mission", c.Origin)
	require.NotNil(t, c.MissionID)
	assert.Equal(t, int64(101), *c.MissionID)
	assert.Equal(t, "Custo Missões", c.ExpenseCategory)
	assert.Equal(t, "Comercial", c.Aircraft)
	assert.Equal(t, "Outros", c.ExpenseType)
}

func TestClassify_FixedDefaults(t *testing.T) {
	c := Classify(EmptyCell(), "", "", "")
	assert.Equal(t, "fixed", c.Origin)
	assert.Nil(t, c.MissionID)
	assert.Equal(t, "Despesa Fixa", c.ExpenseCategory)
	assert.Equal(t, "Comercial", c.Aircraft)
	assert.Equal(t, "Outros", c.ExpenseType)
}

func TestClassify_KeepsProvidedValues(t *testing.T) {
	c := Classify(TextCell("9"), " PP-ABC ", "Manutenção", "Hangar")
	assert.Equal(t, "mission", c.Origin)
	assert.Equal(t, "PP-ABC", c.Aircraft)
	assert.Equal(t, "Manutenção", c.ExpenseCategory)
	assert.Equal(t, "Hangar", c.ExpenseType)
}
