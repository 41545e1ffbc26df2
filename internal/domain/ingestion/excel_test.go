package ingestion

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/aerogest/backoffice/internal/domain/ledger"
	"github.com/aerogest/backoffice/pkg/money"
)

func TestDecodeCSV(t *testing.T) {
	input := strings.Join([]string{
		"Missão,Fornecedor,Data Pagamento,Valor Pago",
		"12,Abastecedora Alfa,10/01/2024,\"R$ 5.400,00\"",
		",,,",
		",Hangar Beta,2024-02-01,\"1.200,50\"",
	}, "\n")

	batch, err := DecodeCSV(strings.NewReader(input), 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"Missão", "Fornecedor", "Data Pagamento", "Valor Pago"}, batch.Headers)
	require.Len(t, batch.Rows, 2, "fully blank rows are skipped")

	first := batch.Rows[0]
	assert.Equal(t, NumberCell(12), first["Missão"])
	assert.Equal(t, TextCell("Abastecedora Alfa"), first["Fornecedor"])
	assert.Equal(t, TextCell("10/01/2024"), first["Data Pagamento"])
	assert.Equal(t, TextCell("R$ 5.400,00"), first["Valor Pago"])

	second := batch.Rows[1]
	assert.True(t, second["Missão"].IsEmpty())
	assert.Equal(t, TextCell("1.200,50"), second["Valor Pago"])
}

func TestDecodeCSV_ThousandsDotStaysTextual(t *testing.T) {
	// "5.400" in a pt-BR sheet is R$ 5400, not 5.4. Retyping it as a float
	// would corrupt the amount a thousandfold.
	input := "Valor Pago\n5.400\n"

	batch, err := DecodeCSV(strings.NewReader(input), 0)
	require.NoError(t, err)
	require.Len(t, batch.Rows, 1)

	cell := batch.Rows[0]["Valor Pago"]
	assert.Equal(t, TextCell("5.400"), cell)

	amount, defaulted := NormalizeMoney(cell)
	assert.Equal(t, "5400", amount.String())
	assert.False(t, defaulted)
}

func TestDecodeCSV_RowLimit(t *testing.T) {
	input := "Fornecedor\na\nb\nc\n"
	_, err := DecodeCSV(strings.NewReader(input), 2)
	assert.ErrorIs(t, err, ErrTooManyRows)
}

func TestDecodeCSV_NoData(t *testing.T) {
	_, err := DecodeCSV(strings.NewReader("Fornecedor\n"), 0)
	assert.ErrorIs(t, err, ErrNoData)

	_, err = DecodeCSV(strings.NewReader(""), 0)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestDecodeXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Missão", "Data Pagamento", "Valor Pago"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{3, 44197, "R$ 150,00"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	batch, err := DecodeXLSX(&buf, 0)
	require.NoError(t, err)
	require.Len(t, batch.Rows, 1)

	row := batch.Rows[0]
	assert.Equal(t, NumberCell(3), row["Missão"])
	assert.Equal(t, NumberCell(44197), row["Data Pagamento"], "raw reads keep date serials numeric")
	assert.Equal(t, TextCell("R$ 150,00"), row["Valor Pago"])
}

func TestDecodeXLSX_Malformed(t *testing.T) {
	_, err := DecodeXLSX(strings.NewReader("this is not a workbook"), 0)
	assert.Error(t, err)
}

func TestExporter_WriteCSV(t *testing.T) {
	paid := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	missionID := int64(12)
	records := []ledger.Record{
		{
			Origin:          ledger.OriginMission,
			MissionID:       &missionID,
			Aircraft:        "PP-ABC",
			ExpenseCategory: "Custo Missões",
			ExpenseType:     "Combustível",
			Supplier:        "Abastecedora Alfa",
			PaymentDate:     &paid,
			AmountPaid:      decimal.RequireFromString("5400.00"),
		},
	}

	var buf bytes.Buffer
	exporter := NewExporter(money.NewBRLFormatter())
	require.NoError(t, exporter.WriteCSV(&buf, records))

	out := buf.String()
	assert.Contains(t, out, "Missão")
	assert.Contains(t, out, "Centro de Custo")
	assert.Contains(t, out, "12")
	assert.Contains(t, out, "15/03/2024")
	assert.Contains(t, out, "5.400,00")
}

func TestExporter_WriteXLSX(t *testing.T) {
	records := []ledger.Record{
		{
			Origin:          ledger.OriginFixed,
			ExpenseCategory: "Despesa Fixa",
			ExpenseType:     "Hangar",
			Supplier:        "Hangar Beta",
			AmountPaid:      decimal.RequireFromString("1200.50"),
		},
	}

	var buf bytes.Buffer
	exporter := NewExporter(money.NewBRLFormatter())
	require.NoError(t, exporter.WriteXLSX(&buf, records))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Lançamentos")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Fornecedor", rows[0][5])
	assert.Equal(t, "Hangar Beta", rows[1][5])
	assert.Equal(t, "1.200,50", rows[1][10])
}
