package models

import "time"

type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Document      string    `json:"document"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Password      string    `json:"-"`
	RoleID        string    `json:"role_id"`
	BankID        *string   `json:"bank_id,omitempty"`
	AccountTypeID *string   `json:"account_type_id,omitempty"`
	AccountNumber string    `json:"account_number,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	RoleName        string `json:"role,omitempty"`
	BankName        string `json:"bank,omitempty"`
	AccountTypeName string `json:"account_type,omitempty"`
}

type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"` // 'admin' or 'instructor'
}

const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
)

// InstructorProfile is the payment-relevant slice of a user, resolved with
// bank and account type names for the statement document.
type InstructorProfile struct {
	Name            string `json:"name"`
	Document        string `json:"document"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	BankName        string `json:"bank,omitempty"`
	AccountTypeName string `json:"account_type,omitempty"`
	AccountNumber   string `json:"account_number,omitempty"`
}
