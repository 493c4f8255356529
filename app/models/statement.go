package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyStatement is the aggregated payable summary ("cuenta de cobro")
// for an instructor for one month/year. Unique per (instructor, month, year);
// regeneration updates the row in place.
type MonthlyStatement struct {
	ID           string          `json:"id"`
	Number       int64           `json:"number"`
	InstructorID string          `json:"instructor_id"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	TotalHours   decimal.Decimal `json:"total_hours"`
	TotalPayable decimal.Decimal `json:"total_payable"`
	GeneratedAt  time.Time       `json:"generated_at"`

	InstructorName     string `json:"instructor,omitempty"`
	InstructorDocument string `json:"instructor_document,omitempty"`
}
