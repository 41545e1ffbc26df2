package ingestion

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"

	"github.com/aerogest/backoffice/internal/domain/ledger"
	"github.com/aerogest/backoffice/pkg/money"
)

// exportRow is the flat human-readable shape of a ledger record. Headers are
// pt-BR to match the spreadsheets the office already works with; they are not
// required to round-trip through the import synonyms.
type exportRow struct {
	Missao          string `csv:"Missão"`
	NomeMissao      string `csv:"Nome da Missão"`
	Aeronave        string `csv:"Aeronave"`
	Categoria       string `csv:"Categoria"`
	Tipo            string `csv:"Tipo"`
	Fornecedor      string `csv:"Fornecedor"`
	Descricao       string `csv:"Descrição"`
	Vencimento      string `csv:"Vencimento"`
	Pagamento       string `csv:"Pagamento"`
	ValorDevido     string `csv:"Valor Devido"`
	ValorPago       string `csv:"Valor Pago"`
	TotalNota       string `csv:"Total da Nota"`
	CentroDeCusto   string `csv:"Centro de Custo"`
	TipoDocumento   string `csv:"Tipo Doc"`
	NumeroDocumento string `csv:"Número Doc"`
	Observacoes     string `csv:"Observações"`
}

// Exporter renders ledger records back into spreadsheet formats.
type Exporter struct {
	formatter *money.Formatter
}

// NewExporter builds an exporter using the given monetary formatter.
func NewExporter(formatter *money.Formatter) *Exporter {
	return &Exporter{formatter: formatter}
}

func (e *Exporter) row(r ledger.Record) exportRow {
	return exportRow{
		Missao:          formatMissionID(r.MissionID),
		NomeMissao:      r.MissionName,
		Aeronave:        r.Aircraft,
		Categoria:       r.ExpenseCategory,
		Tipo:            r.ExpenseType,
		Fornecedor:      r.Supplier,
		Descricao:       r.Description,
		Vencimento:      formatExportDate(r.DueDate),
		Pagamento:       formatExportDate(r.PaymentDate),
		ValorDevido:     e.formatter.FormatDecimal(r.AmountDue),
		ValorPago:       e.formatter.FormatDecimal(r.AmountPaid),
		TotalNota:       e.formatter.FormatDecimal(r.InvoiceTotal),
		CentroDeCusto:   r.CostCenter,
		TipoDocumento:   r.FiscalDocType,
		NumeroDocumento: r.FiscalDocNumber,
		Observacoes:     r.Notes,
	}
}

// WriteCSV streams the records as UTF-8 CSV.
func (e *Exporter) WriteCSV(w io.Writer, records []ledger.Record) error {
	rows := make([]exportRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, e.row(r))
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("writing csv export: %w", err)
	}
	return nil
}

// WriteXLSX renders the records as a single-sheet workbook.
func (e *Exporter) WriteXLSX(w io.Writer, records []ledger.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Lançamentos"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	headers := []string{
		"Missão", "Nome da Missão", "Aeronave", "Categoria", "Tipo",
		"Fornecedor", "Descrição", "Vencimento", "Pagamento",
		"Valor Devido", "Valor Pago", "Total da Nota",
		"Centro de Custo", "Tipo Doc", "Número Doc", "Observações",
	}
	if err := writeSheetRow(f, sheet, 1, headers); err != nil {
		return err
	}

	for i, r := range records {
		row := e.row(r)
		cells := []string{
			row.Missao, row.NomeMissao, row.Aeronave, row.Categoria, row.Tipo,
			row.Fornecedor, row.Descricao, row.Vencimento, row.Pagamento,
			row.ValorDevido, row.ValorPago, row.TotalNota,
			row.CentroDeCusto, row.TipoDocumento, row.NumeroDocumento, row.Observacoes,
		}
		if err := writeSheetRow(f, sheet, i+2, cells); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeSheetRow(f *excelize.File, sheet string, rowNum int, cells []string) error {
	addr, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("addressing row %d: %w", rowNum, err)
	}
	values := make([]any, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	if err := f.SetSheetRow(sheet, addr, &values); err != nil {
		return fmt.Errorf("writing row %d: %w", rowNum, err)
	}
	return nil
}

func formatExportDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006")
}

func formatMissionID(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}
