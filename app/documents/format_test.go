package documents

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kokito32rios/horas-cole/app/models"
)

func TestMonthName(t *testing.T) {
	tests := []struct {
		month int
		want  string
	}{
		{1, "enero"},
		{8, "agosto"},
		{12, "diciembre"},
		{0, ""},
		{13, ""},
	}
	for _, tt := range tests {
		if got := MonthName(tt.month); got != tt.want {
			t.Errorf("MonthName(%d) = %q, want %q", tt.month, got, tt.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1.000"},
		{"80000", "80.000"},
		{"1234567", "1.234.567"},
		{"1234.5", "1.234,50"},
		{"80000.00", "80.000"},
		{"-2500", "-2.500"},
	}
	for _, tt := range tests {
		got := FormatMoney(decimal.RequireFromString(tt.amount))
		if got != tt.want {
			t.Errorf("FormatMoney(%s) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestDisposition(t *testing.T) {
	if got := Disposition(false, "Cuenta_de_Cobro_003.pdf"); got != `attachment; filename="Cuenta_de_Cobro_003.pdf"` {
		t.Errorf("attachment disposition = %q", got)
	}
	if got := Disposition(true, "Cuenta_de_Cobro_003.pdf"); got != `inline; filename="Cuenta_de_Cobro_003.pdf"` {
		t.Errorf("inline disposition = %q", got)
	}
}

func TestStatementFileName(t *testing.T) {
	if got := StatementFileName(3); got != "Cuenta_de_Cobro_003.pdf" {
		t.Errorf("StatementFileName(3) = %q", got)
	}
	if got := StatementFileName(120); got != "Cuenta_de_Cobro_120.pdf" {
		t.Errorf("StatementFileName(120) = %q", got)
	}
}

func TestRenderStatementPDF(t *testing.T) {
	data := StatementData{
		StatementNumber:       7,
		InstructorName:        "María Pérez",
		DocumentNumber:        "1020304050",
		MonthName:             "marzo",
		TotalPayableFormatted: "1.250.000",
		TotalPayableInWords:   "UN MILLÓN DOSCIENTOS CINCUENTA MIL",
		BankName:              "Bancolombia",
		AccountTypeName:       "ahorros",
		AccountNumber:         "123-456789-00",
	}

	out, err := RenderStatementPDF(data)
	if err != nil {
		t.Fatalf("RenderStatementPDF failed: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF document")
	}
}

func TestRenderPlannerXLSX(t *testing.T) {
	records := []*models.HourRecordDetail{
		{
			Date:      time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
			ClockIn:   "08:00",
			ClockOut:  "12:00",
			Hours:     decimal.RequireFromString("4"),
			Topic:     "Colorimetría",
			GroupCode: "G-01",
			GroupName: "Belleza integral",
			Program:   "Cosmetología",
			Module:    "Color",
			Value:     decimal.RequireFromString("80000"),
		},
	}

	out, err := RenderPlannerXLSX("María Pérez", records)
	if err != nil {
		t.Fatalf("RenderPlannerXLSX failed: %v", err)
	}
	// xlsx files are zip archives.
	if !bytes.HasPrefix(out, []byte("PK")) {
		t.Errorf("output does not look like an xlsx archive")
	}
}
