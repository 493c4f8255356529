package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// HourRecord is one day's logged session for an instructor+group.
// At most one record exists per (instructor, group, date); a second
// submission for the same day replaces the first.
type HourRecord struct {
	ID           string          `json:"id"`
	InstructorID string          `json:"instructor_id"`
	GroupID      string          `json:"group_id"`
	Date         time.Time       `json:"date"`
	ClockIn      string          `json:"clock_in"`  // "HH:MM"
	ClockOut     string          `json:"clock_out"` // "HH:MM"
	Hours        decimal.Decimal `json:"hours"`     // derived, never supplied
	Topic        string          `json:"topic"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// HourRecordDetail is a history row joined with its group and rate.
type HourRecordDetail struct {
	Date       time.Time       `json:"date"`
	ClockIn    string          `json:"clock_in"`
	ClockOut   string          `json:"clock_out"`
	Hours      decimal.Decimal `json:"hours"`
	Topic      string          `json:"topic"`
	Notes      string          `json:"notes,omitempty"`
	GroupCode  string          `json:"group_code"`
	GroupName  string          `json:"group_name"`
	Program    string          `json:"program"`
	Module     string          `json:"module"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Value      decimal.Decimal `json:"value"` // hours * hourly_rate

	InstructorName string `json:"instructor,omitempty"` // admin views only
}

// BillableRecord is the minimal projection the statement aggregator needs:
// one logged session with the hourly rate of its group's course type.
type BillableRecord struct {
	Date       time.Time
	Hours      decimal.Decimal
	HourlyRate decimal.Decimal
}
