package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver()
	mapping := r.Resolve([]string{
		"Missão", "Fornecedor", "Data Pagamento", "Valor Pago",
		"Centro de Custo", "Coluna Desconhecida",
	})

	tests := []struct {
		field  Field
		header string
	}{
		{FieldMissionID, "Missão"},
		{FieldSupplier, "Fornecedor"},
		{FieldPaymentDate, "Data Pagamento"},
		{FieldAmountPaid, "Valor Pago"},
		{FieldCostCenter, "Centro de Custo"},
	}
	for _, tt := range tests {
		header, ok := mapping.Header(tt.field)
		require.True(t, ok, string(tt.field))
		assert.Equal(t, tt.header, header)
	}

	_, ok := mapping.Header(FieldNotes)
	assert.False(t, ok, "unknown headers map to nothing")
}

func TestResolver_CaseAndSpaceFolding(t *testing.T) {
	r := NewResolver()
	mapping := r.Resolve([]string{"  FORNECEDOR  ", "data pgto"})

	header, ok := mapping.Header(FieldSupplier)
	require.True(t, ok)
	assert.Equal(t, "  FORNECEDOR  ", header, "the original header is kept for row lookup")

	_, ok = mapping.Header(FieldPaymentDate)
	assert.True(t, ok)
}

func TestResolver_FirstHeaderWins(t *testing.T) {
	r := NewResolver()
	mapping := r.Resolve([]string{"Valor Pago", "Pago"})

	header, ok := mapping.Header(FieldAmountPaid)
	require.True(t, ok)
	assert.Equal(t, "Valor Pago", header)
}

func TestResolver_Suggest(t *testing.T) {
	r := NewResolver()
	suggestions := r.Suggest([]string{"Fornecedor", "Fornecedr", "Dta Pagamento"})

	require.Len(t, suggestions, 2, "resolved headers get no suggestions")
	assert.Equal(t, "Fornecedr", suggestions[0].Header)
	assert.Contains(t, suggestions[0].Candidates, "fornecedor")
	assert.Equal(t, "Dta Pagamento", suggestions[1].Header)
	assert.Contains(t, suggestions[1].Candidates, "data pagamento")
}
