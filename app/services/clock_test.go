package services

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeHours(t *testing.T) {
	tests := []struct {
		name     string
		clockIn  string
		clockOut string
		want     string
	}{
		{name: "plain morning session", clockIn: "08:00", clockOut: "12:00", want: "4"},
		{name: "ninety minutes", clockIn: "14:00", clockOut: "15:30", want: "1.5"},
		{name: "fifty minutes rounds to two decimals", clockIn: "10:00", clockOut: "10:50", want: "0.83"},
		{name: "overnight wraparound", clockIn: "22:00", clockOut: "02:00", want: "4"},
		{name: "one minute before midnight to one after", clockIn: "23:59", clockOut: "00:01", want: "0.03"},
		{name: "equal times are zero, never twenty-four", clockIn: "09:00", clockOut: "09:00", want: "0"},
		{name: "midnight to midnight is zero", clockIn: "00:00", clockOut: "00:00", want: "0"},
		{name: "single minute", clockIn: "08:00", clockOut: "08:01", want: "0.02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := ParseClockTime(tt.clockIn)
			if err != nil {
				t.Fatalf("ParseClockTime(%q) error: %v", tt.clockIn, err)
			}
			out, err := ParseClockTime(tt.clockOut)
			if err != nil {
				t.Fatalf("ParseClockTime(%q) error: %v", tt.clockOut, err)
			}

			got := ComputeHours(in, out)
			want := decimal.RequireFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("ComputeHours(%s, %s) = %s, want %s", tt.clockIn, tt.clockOut, got, want)
			}
		})
	}
}

func TestComputeHours_WrapFormula(t *testing.T) {
	// For clockOut < clockIn the result must be (1440 - (in - out)) / 60.
	in, _ := ParseClockTime("18:30")
	out, _ := ParseClockTime("06:15")

	got := ComputeHours(in, out)
	want := decimal.RequireFromString("11.75") // 1440 - (1110 - 375) = 705 minutes
	if !got.Equal(want) {
		t.Errorf("ComputeHours(18:30, 06:15) = %s, want %s", got, want)
	}
}

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{input: "00:00", wantErr: false},
		{input: "23:59", wantErr: false},
		{input: "08:30", wantErr: false},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "-1:00", wantErr: true},
		{input: "8", wantErr: true},
		{input: "8:30:00", wantErr: true},
		{input: "ab:cd", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseClockTime(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseClockTime(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestClockTimeString(t *testing.T) {
	got := ClockTime{Hour: 7, Minute: 5}.String()
	if got != "07:05" {
		t.Errorf("String() = %q, want %q", got, "07:05")
	}
}
