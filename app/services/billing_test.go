package services

import (
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kokito32rios/horas-cole/app/models"
)

// In-memory store fake mirroring the database's natural-key uniqueness so the
// billing rules can be exercised without Postgres.
type fakeStore struct {
	owners     map[string]string // group id -> instructor id
	rates      map[string]decimal.Decimal
	records    map[string]*models.HourRecord
	statements map[string]*models.MonthlyStatement
	nextNumber int64
	failWith   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		owners:     map[string]string{},
		rates:      map[string]decimal.Decimal{},
		records:    map[string]*models.HourRecord{},
		statements: map[string]*models.MonthlyStatement{},
	}
}

func (f *fakeStore) addGroup(groupID, instructorID string, rate string) {
	f.owners[groupID] = instructorID
	f.rates[groupID] = decimal.RequireFromString(rate)
}

func (f *fakeStore) IsGroupOwnedBy(groupID, instructorID string) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	return f.owners[groupID] == instructorID, nil
}

func recordKey(instructorID, groupID string, date time.Time) string {
	return instructorID + "|" + groupID + "|" + date.Format("2006-01-02")
}

func (f *fakeStore) UpsertHourRecord(record *models.HourRecord) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	key := recordKey(record.InstructorID, record.GroupID, record.Date)
	_, exists := f.records[key]
	copied := *record
	f.records[key] = &copied
	return !exists, nil
}

func (f *fakeStore) GetMonthlyBillableRecords(instructorID string, month, year int) ([]*models.BillableRecord, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []*models.BillableRecord
	for _, record := range f.records {
		if record.InstructorID != instructorID {
			continue
		}
		if int(record.Date.Month()) != month || record.Date.Year() != year {
			continue
		}
		out = append(out, &models.BillableRecord{
			Date:       record.Date,
			Hours:      record.Hours,
			HourlyRate: f.rates[record.GroupID],
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (f *fakeStore) UpsertStatement(statement *models.MonthlyStatement) error {
	if f.failWith != nil {
		return f.failWith
	}
	key := fmt.Sprintf("%s|%d|%d", statement.InstructorID, statement.Month, statement.Year)
	if existing, ok := f.statements[key]; ok {
		existing.TotalHours = statement.TotalHours
		existing.TotalPayable = statement.TotalPayable
		existing.GeneratedAt = time.Now()
		statement.ID = existing.ID
		statement.Number = existing.Number
		statement.GeneratedAt = existing.GeneratedAt
		return nil
	}
	f.nextNumber++
	statement.ID = fmt.Sprintf("stmt-%d", f.nextNumber)
	statement.Number = f.nextNumber
	statement.GeneratedAt = time.Now()
	copied := *statement
	f.statements[key] = &copied
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func mustClock(t *testing.T, s string) ClockTime {
	t.Helper()
	ct, err := ParseClockTime(s)
	if err != nil {
		t.Fatalf("ParseClockTime(%q): %v", s, err)
	}
	return ct
}

func submission(t *testing.T, groupID string, day int, in, out string) SubmitHourRecordInput {
	t.Helper()
	return SubmitHourRecordInput{
		InstructorID: "instructor-1",
		GroupID:      groupID,
		Date:         date(2026, time.March, day),
		ClockIn:      mustClock(t, in),
		ClockOut:     mustClock(t, out),
		Topic:        "Corte y peinado básico",
	}
}

func TestSubmitHourRecord_CreatedThenUpdated(t *testing.T) {
	store := newFakeStore()
	store.addGroup("group-1", "instructor-1", "20000")
	svc := NewBillingService(store, store, store)

	input := submission(t, "group-1", 10, "08:00", "12:00")

	outcome, record, err := svc.SubmitHourRecord(input)
	if err != nil {
		t.Fatalf("first submission failed: %v", err)
	}
	if outcome != OutcomeCreated {
		t.Errorf("first submission outcome = %q, want %q", outcome, OutcomeCreated)
	}
	if !record.Hours.Equal(decimal.RequireFromString("4")) {
		t.Errorf("computed hours = %s, want 4", record.Hours)
	}

	// Same key again: must replace, not duplicate.
	input.ClockOut = mustClock(t, "13:00")
	outcome, record, err = svc.SubmitHourRecord(input)
	if err != nil {
		t.Fatalf("second submission failed: %v", err)
	}
	if outcome != OutcomeUpdated {
		t.Errorf("second submission outcome = %q, want %q", outcome, OutcomeUpdated)
	}
	if !record.Hours.Equal(decimal.RequireFromString("5")) {
		t.Errorf("replaced hours = %s, want 5", record.Hours)
	}
	if len(store.records) != 1 {
		t.Errorf("store holds %d records for the key, want exactly 1", len(store.records))
	}
}

func TestSubmitHourRecord_EmptyTopicRejected(t *testing.T) {
	store := newFakeStore()
	store.addGroup("group-1", "instructor-1", "20000")
	svc := NewBillingService(store, store, store)

	input := submission(t, "group-1", 10, "08:00", "12:00")
	input.Topic = "   "

	_, _, err := svc.SubmitHourRecord(input)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(store.records) != 0 {
		t.Errorf("record persisted despite validation failure")
	}
}

func TestSubmitHourRecord_UnownedGroupRejected(t *testing.T) {
	store := newFakeStore()
	store.addGroup("group-1", "someone-else", "20000")
	svc := NewBillingService(store, store, store)

	_, _, err := svc.SubmitHourRecord(submission(t, "group-1", 10, "08:00", "12:00"))
	var authErr *AuthorizationError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthorizationError, got %v", err)
	}
	if len(store.records) != 0 {
		t.Errorf("record persisted despite authorization failure")
	}
}

func TestSubmitHourRecord_StorageFailureWrapped(t *testing.T) {
	store := newFakeStore()
	store.addGroup("group-1", "instructor-1", "20000")
	svc := NewBillingService(store, store, store)

	cause := errors.New("connection reset")
	store.failWith = cause

	_, _, err := svc.SubmitHourRecord(submission(t, "group-1", 10, "08:00", "12:00"))
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("StorageError should wrap the underlying cause")
	}
}

func TestGenerateStatement_EmptyPeriodFails(t *testing.T) {
	store := newFakeStore()
	svc := NewBillingService(store, store, store)

	_, err := svc.GenerateStatement("instructor-1", 3, 2026)
	var noRecords *NoRecordsError
	if !errors.As(err, &noRecords) {
		t.Fatalf("expected NoRecordsError, got %v", err)
	}
	if len(store.statements) != 0 {
		t.Errorf("zero-value statement was persisted")
	}
}

func TestGenerateStatement_Totals(t *testing.T) {
	store := newFakeStore()
	store.addGroup("group-1", "instructor-1", "20000")
	store.addGroup("group-2", "instructor-1", "25000")
	svc := NewBillingService(store, store, store)

	// 4h at 20000 and 1.5h at 25000.
	if _, _, err := svc.SubmitHourRecord(submission(t, "group-1", 10, "08:00", "12:00")); err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.SubmitHourRecord(submission(t, "group-2", 11, "14:00", "15:30")); err != nil {
		t.Fatal(err)
	}

	summary, err := svc.GenerateStatement("instructor-1", 3, 2026)
	if err != nil {
		t.Fatalf("GenerateStatement failed: %v", err)
	}
	if !summary.TotalHours.Equal(decimal.RequireFromString("5.5")) {
		t.Errorf("total hours = %s, want 5.5", summary.TotalHours)
	}
	if !summary.TotalPayable.Equal(decimal.RequireFromString("117500")) {
		t.Errorf("total payable = %s, want 117500", summary.TotalPayable)
	}
}

func TestGenerateStatement_Idempotent(t *testing.T) {
	store := newFakeStore()
	store.addGroup("group-1", "instructor-1", "20000")
	svc := NewBillingService(store, store, store)

	if _, _, err := svc.SubmitHourRecord(submission(t, "group-1", 10, "08:00", "12:00")); err != nil {
		t.Fatal(err)
	}

	first, err := svc.GenerateStatement("instructor-1", 3, 2026)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.GenerateStatement("instructor-1", 3, 2026)
	if err != nil {
		t.Fatal(err)
	}

	if len(store.statements) != 1 {
		t.Errorf("store holds %d statements for the period, want exactly 1", len(store.statements))
	}
	if first.StatementID != second.StatementID || first.Number != second.Number {
		t.Errorf("regeneration changed statement identity: %s/%d vs %s/%d",
			first.StatementID, first.Number, second.StatementID, second.Number)
	}
	if !first.TotalHours.Equal(second.TotalHours) || !first.TotalPayable.Equal(second.TotalPayable) {
		t.Errorf("regeneration with unchanged records changed totals")
	}
}

func TestGenerateStatement_MonotonicAfterNewRecord(t *testing.T) {
	store := newFakeStore()
	store.addGroup("group-1", "instructor-1", "20000")
	svc := NewBillingService(store, store, store)

	if _, _, err := svc.SubmitHourRecord(submission(t, "group-1", 10, "08:00", "12:00")); err != nil {
		t.Fatal(err)
	}
	before, err := svc.GenerateStatement("instructor-1", 3, 2026)
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := svc.SubmitHourRecord(submission(t, "group-1", 12, "08:00", "10:00")); err != nil {
		t.Fatal(err)
	}
	after, err := svc.GenerateStatement("instructor-1", 3, 2026)
	if err != nil {
		t.Fatal(err)
	}

	if !after.TotalHours.GreaterThan(before.TotalHours) {
		t.Errorf("total hours did not grow: %s -> %s", before.TotalHours, after.TotalHours)
	}
	if !after.TotalPayable.GreaterThan(before.TotalPayable) {
		t.Errorf("total payable did not grow: %s -> %s", before.TotalPayable, after.TotalPayable)
	}
	if len(store.statements) != 1 {
		t.Errorf("regeneration duplicated the statement row")
	}
}

func TestGenerateStatement_ScenarioFromRateCard(t *testing.T) {
	// 08:00-12:00 on a 20000/hour group contributes exactly 80000.
	store := newFakeStore()
	store.addGroup("group-1", "instructor-1", "20000")
	svc := NewBillingService(store, store, store)

	if _, _, err := svc.SubmitHourRecord(submission(t, "group-1", 5, "08:00", "12:00")); err != nil {
		t.Fatal(err)
	}
	summary, err := svc.GenerateStatement("instructor-1", 3, 2026)
	if err != nil {
		t.Fatal(err)
	}
	if !summary.TotalPayable.Equal(decimal.RequireFromString("80000")) {
		t.Errorf("total payable = %s, want 80000", summary.TotalPayable)
	}
}

func TestGenerateStatement_InvalidPeriod(t *testing.T) {
	store := newFakeStore()
	svc := NewBillingService(store, store, store)

	for _, tt := range []struct{ month, year int }{
		{0, 2026}, {13, 2026}, {6, 1900}, {6, 3000},
	} {
		_, err := svc.GenerateStatement("instructor-1", tt.month, tt.year)
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Errorf("GenerateStatement(month=%d, year=%d) expected ValidationError, got %v", tt.month, tt.year, err)
		}
	}
}
