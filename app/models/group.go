package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Group is a taught class section bound to one instructor and one course type.
type Group struct {
	ID           string    `json:"id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	CourseTypeID string    `json:"course_type_id"`
	InstructorID string    `json:"instructor_id"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	CourseTypeName string          `json:"course_type,omitempty"`
	Program        string          `json:"program,omitempty"`
	HourlyRate     decimal.Decimal `json:"hourly_rate,omitempty"`
	InstructorName string          `json:"instructor,omitempty"`
}
