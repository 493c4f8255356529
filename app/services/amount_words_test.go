package services

import "testing"

func TestAmountToWords(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "CERO"},
		{1, "UN"},
		{9, "NUEVE"},
		{10, "DIEZ"},
		{11, "ONCE"},
		{15, "QUINCE"},
		{19, "DIECINUEVE"},
		{20, "VEINTE"},
		{21, "VEINTE Y UN"},
		{45, "CUARENTA Y CINCO"},
		{90, "NOVENTA"},
		{100, "CIEN"},
		{101, "CIENTO UN"},
		{111, "CIENTO ONCE"},
		{345, "TRESCIENTOS CUARENTA Y CINCO"},
		{500, "QUINIENTOS"},
		{999, "NOVECIENTOS NOVENTA Y NUEVE"},
		{1000, "MIL"},
		{1001, "MIL UN"},
		{1100, "MIL CIEN"},
		{2500, "DOS MIL QUINIENTOS"},
		{80000, "OCHENTA MIL"},
		{123456, "CIENTO VEINTE Y TRES MIL CUATROCIENTOS CINCUENTA Y SEIS"},
		{1000000, "UN MILLÓN"},
		{1000001, "UN MILLÓN UN"},
		{2500000, "DOS MILLONES QUINIENTOS MIL"},
		{999999999, "NOVECIENTOS NOVENTA Y NUEVE MILLONES NOVECIENTOS NOVENTA Y NUEVE MIL NOVECIENTOS NOVENTA Y NUEVE"},
	}

	for _, tt := range tests {
		got, err := AmountToWords(tt.amount)
		if err != nil {
			t.Errorf("AmountToWords(%d) unexpected error: %v", tt.amount, err)
			continue
		}
		if got != tt.want {
			t.Errorf("AmountToWords(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestAmountToWords_Rejected(t *testing.T) {
	for _, amount := range []int64{-1, -1000000, 1_000_000_000, 2_000_000_000} {
		if _, err := AmountToWords(amount); err == nil {
			t.Errorf("AmountToWords(%d) expected error, got none", amount)
		}
	}
}
