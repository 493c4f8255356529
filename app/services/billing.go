package services

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kokito32rios/horas-cole/app/models"
)

// GroupStore answers group ownership questions.
type GroupStore interface {
	IsGroupOwnedBy(groupID, instructorID string) (bool, error)
}

// HourStore persists hour records and serves the monthly aggregation read.
type HourStore interface {
	// UpsertHourRecord atomically creates or replaces the record for the
	// (instructor, group, date) key and reports whether a row was created.
	UpsertHourRecord(record *models.HourRecord) (bool, error)
	GetMonthlyBillableRecords(instructorID string, month, year int) ([]*models.BillableRecord, error)
}

// StatementStore persists monthly statements keyed by (instructor, month, year).
type StatementStore interface {
	UpsertStatement(statement *models.MonthlyStatement) error
}

// BillingService implements the hour-tracking and billing rules: hour record
// submission with last-write-wins per day per group, and idempotent monthly
// statement generation.
type BillingService struct {
	groups     GroupStore
	hours      HourStore
	statements StatementStore
}

func NewBillingService(groups GroupStore, hours HourStore, statements StatementStore) *BillingService {
	return &BillingService{groups: groups, hours: hours, statements: statements}
}

// SubmitOutcome reports whether a submission created a new record or
// replaced an existing one.
type SubmitOutcome string

const (
	OutcomeCreated SubmitOutcome = "created"
	OutcomeUpdated SubmitOutcome = "updated"
)

type SubmitHourRecordInput struct {
	InstructorID string
	GroupID      string
	Date         time.Time
	ClockIn      ClockTime
	ClockOut     ClockTime
	Topic        string
	Notes        string
}

// SubmitHourRecord logs one work session. A second submission for the same
// (instructor, group, date) silently replaces the first; no merging of
// multiple sessions per day is supported.
func (s *BillingService) SubmitHourRecord(input SubmitHourRecordInput) (SubmitOutcome, *models.HourRecord, error) {
	if input.InstructorID == "" || input.GroupID == "" || input.Date.IsZero() {
		return "", nil, &ValidationError{Msg: "instructor, group and date are required"}
	}
	if strings.TrimSpace(input.Topic) == "" {
		return "", nil, &ValidationError{Msg: "topic is required"}
	}

	owned, err := s.groups.IsGroupOwnedBy(input.GroupID, input.InstructorID)
	if err != nil {
		return "", nil, &StorageError{Op: "check group ownership", Err: err}
	}
	if !owned {
		return "", nil, &AuthorizationError{Msg: "group is not assigned to this instructor"}
	}

	record := &models.HourRecord{
		InstructorID: input.InstructorID,
		GroupID:      input.GroupID,
		Date:         input.Date,
		ClockIn:      input.ClockIn.String(),
		ClockOut:     input.ClockOut.String(),
		Hours:        ComputeHours(input.ClockIn, input.ClockOut),
		Topic:        strings.TrimSpace(input.Topic),
		Notes:        strings.TrimSpace(input.Notes),
	}

	created, err := s.hours.UpsertHourRecord(record)
	if err != nil {
		return "", nil, &StorageError{Op: "save hour record", Err: err}
	}
	if created {
		return OutcomeCreated, record, nil
	}
	return OutcomeUpdated, record, nil
}

// StatementSummary is the aggregator's output: the persisted statement
// identity plus the computed totals.
type StatementSummary struct {
	StatementID  string          `json:"statement_id"`
	Number       int64           `json:"number"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	TotalHours   decimal.Decimal `json:"total_hours"`
	TotalPayable decimal.Decimal `json:"total_payable"`
	GeneratedAt  time.Time       `json:"generated_at"`
}

// GenerateStatement aggregates an instructor's hour records for one month
// into a persisted statement. Regenerating for the same period updates the
// existing statement in place; a period with no records fails with
// NoRecordsError and persists nothing.
func (s *BillingService) GenerateStatement(instructorID string, month, year int) (*StatementSummary, error) {
	if instructorID == "" {
		return nil, &ValidationError{Msg: "instructor is required"}
	}
	if month < 1 || month > 12 {
		return nil, &ValidationError{Msg: "month must be between 1 and 12"}
	}
	if year < 2000 || year > 2100 {
		return nil, &ValidationError{Msg: "year out of range"}
	}

	records, err := s.hours.GetMonthlyBillableRecords(instructorID, month, year)
	if err != nil {
		return nil, &StorageError{Op: "fetch monthly records", Err: err}
	}
	if len(records) == 0 {
		return nil, &NoRecordsError{Month: month, Year: year}
	}

	// Multiply-then-sum per record, in record order, so regenerated totals
	// are bit-identical to the first generation.
	totalHours := decimal.Zero
	totalPayable := decimal.Zero
	for _, record := range records {
		totalHours = totalHours.Add(record.Hours)
		totalPayable = totalPayable.Add(record.Hours.Mul(record.HourlyRate))
	}

	statement := &models.MonthlyStatement{
		InstructorID: instructorID,
		Month:        month,
		Year:         year,
		TotalHours:   totalHours,
		TotalPayable: totalPayable,
	}
	if err := s.statements.UpsertStatement(statement); err != nil {
		return nil, &StorageError{Op: "save statement", Err: err}
	}

	return &StatementSummary{
		StatementID:  statement.ID,
		Number:       statement.Number,
		Month:        month,
		Year:         year,
		TotalHours:   totalHours,
		TotalPayable: totalPayable,
		GeneratedAt:  statement.GeneratedAt,
	}, nil
}
