package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bank is reference data for instructor payment accounts.
type Bank struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountType is reference data ('ahorros', 'corriente', ...).
type AccountType struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CourseType defines the hourly pay rate for groups of that type.
type CourseType struct {
	ID         string          `json:"id"`
	Program    string          `json:"program"`
	Module     string          `json:"module"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	IsActive   bool            `json:"is_active"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
