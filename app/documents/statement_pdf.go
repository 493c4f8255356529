package documents

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	institutionName = "COLEGIATURA ANTIOQUEÑA DE BELLEZA SAS"
	institutionNIT  = "NIT: 901.363.247-8"

	retentionNote = "Nota aclaratoria: Solicito la aplicación de la tabla de retención en la fuente " +
		"establecida en el artículo 383 del Estatuto Tributario, la cual se le aplica a los pagos o " +
		"abonos en cuenta por concepto de ingresos por honorarios y por compensación por servicios personales."
)

// StatementData is the fully-resolved input for the cuenta de cobro document.
// Every field arrives ready to print; the renderer performs no lookups.
type StatementData struct {
	StatementNumber       int64
	InstructorName        string
	DocumentNumber        string
	MonthName             string
	TotalPayableFormatted string
	TotalPayableInWords   string
	BankName              string
	AccountTypeName       string
	AccountNumber         string
}

// StatementFileName builds the attachment name, e.g. "Cuenta_de_Cobro_003.pdf".
func StatementFileName(number int64) string {
	return fmt.Sprintf("Cuenta_de_Cobro_%03d.pdf", number)
}

// RenderStatementPDF produces the A4 cuenta de cobro document.
func RenderStatementPDF(data StatementData) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Issue date, top right, in Spanish.
	now := time.Now()
	issued := fmt.Sprintf("%d de %s de %d", now.Day(), MonthName(int(now.Month())), now.Year())
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 6, tr(issued), "", 1, "R", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 9, tr(fmt.Sprintf("CUENTA DE COBRO N° %03d", data.StatementNumber)), "", 1, "C", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 7, tr(institutionName), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 6, tr(institutionNIT), "", 1, "C", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 6, "DEBE A:", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 6, tr(data.InstructorName), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, tr("C.C. "+data.DocumentNumber), "", 1, "C", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 7, "LA SUMA DE:", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 16)
	pdf.CellFormat(0, 8, tr("$"+data.TotalPayableFormatted), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 6, tr(data.TotalPayableInWords+" PESOS COP"), "", 1, "C", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 6, "Por concepto de:", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	concept := fmt.Sprintf("PRESTACIÓN DE SERVICIOS POR HORA CÁTEDRA MES DE %s", strings.ToUpper(data.MonthName))
	pdf.CellFormat(0, 6, tr(concept), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, tr(retentionNote), "", "J", false)
	pdf.Ln(20)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 6, "ATENTAMENTE,", "", 1, "L", false, 0, "")
	pdf.Ln(15)
	pdf.CellFormat(0, 6, "___________________________", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 6, tr(data.InstructorName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("C.c. "+data.DocumentNumber), "", 1, "L", false, 0, "")

	accountType := data.AccountTypeName
	if accountType == "" {
		accountType = "ahorros"
	}
	accountLine := fmt.Sprintf("Cuenta %s %s %s", accountType, data.BankName, data.AccountNumber)
	pdf.CellFormat(0, 6, tr(accountLine), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
