package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ClockTime is a time of day with minute precision.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses an "HH:MM" string (0-23 hours, 0-59 minutes).
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return ClockTime{}, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return ClockTime{}, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("invalid minute in %q", s)
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}

func (t ClockTime) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

var sixty = decimal.NewFromInt(60)

// ComputeHours converts a clock-in/clock-out pair into billable hours with
// two decimal places. A negative difference is treated as crossing midnight
// exactly once. Equal timestamps are a zero-length session, never a full-day
// wraparound, so the wrap is applied only to strictly negative differences.
func ComputeHours(clockIn, clockOut ClockTime) decimal.Decimal {
	diff := clockOut.Minutes() - clockIn.Minutes()
	if diff < 0 {
		diff += 24 * 60
	}
	return decimal.NewFromInt(int64(diff)).DivRound(sixty, 2)
}
