package services

import (
	"fmt"
	"strings"
)

// Spanish number words for the "la suma de" line on statements.
var (
	wordUnits = []string{"", "UN", "DOS", "TRES", "CUATRO", "CINCO", "SEIS", "SIETE", "OCHO", "NUEVE"}
	wordTeens = []string{"", "ONCE", "DOCE", "TRECE", "CATORCE", "QUINCE", "DIECISEIS", "DIECISIETE", "DIECIOCHO", "DIECINUEVE"}
	wordTens  = []string{"", "DIEZ", "VEINTE", "TREINTA", "CUARENTA", "CINCUENTA", "SESENTA", "SETENTA", "OCHENTA", "NOVENTA"}
	wordHunds = []string{"", "CIENTO", "DOSCIENTOS", "TRESCIENTOS", "CUATROCIENTOS", "QUINIENTOS", "SEISCIENTOS", "SETECIENTOS", "OCHOCIENTOS", "NOVECIENTOS"}
)

const maxAmountInWords = 1_000_000_000

// AmountToWords renders a non-negative integer amount as upper-case Spanish
// words, without a currency suffix (the caller appends "PESOS COP").
// Negative amounts and amounts of a billion or more are rejected.
func AmountToWords(amount int64) (string, error) {
	if amount < 0 {
		return "", fmt.Errorf("amount must be non-negative, got %d", amount)
	}
	if amount >= maxAmountInWords {
		return "", fmt.Errorf("amount %d exceeds supported range (< %d)", amount, maxAmountInWords)
	}
	if amount == 0 {
		return "CERO", nil
	}

	millions := amount / 1_000_000
	thousands := (amount % 1_000_000) / 1_000
	remainder := amount % 1_000

	var parts []string
	if millions > 0 {
		if millions == 1 {
			parts = append(parts, "UN MILLÓN")
		} else {
			parts = append(parts, underThousandToWords(int(millions))+" MILLONES")
		}
	}
	if thousands > 0 {
		if thousands == 1 {
			parts = append(parts, "MIL")
		} else {
			parts = append(parts, underThousandToWords(int(thousands))+" MIL")
		}
	}
	if remainder > 0 {
		parts = append(parts, underThousandToWords(int(remainder)))
	}

	return strings.Join(parts, " "), nil
}

// underThousandToWords converts 1-999. Exactly 100 is the irregular "CIEN";
// any other hundreds value uses "CIENTO"-style words.
func underThousandToWords(n int) string {
	if n == 100 {
		return "CIEN"
	}
	if n < 10 {
		return wordUnits[n]
	}
	if n > 10 && n < 20 {
		return wordTeens[n-10]
	}
	if n < 100 {
		tens := n / 10
		units := n % 10
		if units == 0 {
			return wordTens[tens]
		}
		return wordTens[tens] + " Y " + wordUnits[units]
	}
	hundreds := n / 100
	rest := n % 100
	if rest == 0 {
		return wordHunds[hundreds]
	}
	return wordHunds[hundreds] + " " + underThousandToWords(rest)
}
