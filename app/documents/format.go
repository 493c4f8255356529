package documents

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var monthNames = []string{"",
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// MonthName returns the lower-case Spanish month name, or "" when out of range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month]
}

// Disposition builds the Content-Disposition header for a generated file,
// inline for in-browser preview or attachment for download.
func Disposition(inline bool, filename string) string {
	if inline {
		return `inline; filename="` + filename + `"`
	}
	return `attachment; filename="` + filename + `"`
}

// FormatMoney renders an amount in es-CO style: dot thousand separators and a
// comma before any fractional part (80000 -> "80.000", 1234.5 -> "1.234,50").
func FormatMoney(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	abs := amount.Abs()

	intPart := abs.Truncate(0)
	frac := abs.Sub(intPart)

	digits := intPart.String()
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	out := strings.Join(groups, ".")

	if !frac.IsZero() {
		cents := frac.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
		out += fmt.Sprintf(",%02d", cents)
	}
	if neg {
		out = "-" + out
	}
	return out
}
