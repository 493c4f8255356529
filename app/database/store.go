package database

import (
	"database/sql"

	"github.com/kokito32rios/horas-cole/app/models"
)

// Store adapts the query functions to the interfaces the billing service
// accepts, so the service can be exercised against fakes in tests.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) IsGroupOwnedBy(groupID, instructorID string) (bool, error) {
	return IsGroupOwnedBy(s.db, groupID, instructorID)
}

func (s *Store) UpsertHourRecord(record *models.HourRecord) (bool, error) {
	return UpsertHourRecord(s.db, record)
}

func (s *Store) GetMonthlyBillableRecords(instructorID string, month, year int) ([]*models.BillableRecord, error) {
	return GetMonthlyBillableRecords(s.db, instructorID, month, year)
}

func (s *Store) UpsertStatement(statement *models.MonthlyStatement) error {
	return UpsertStatement(s.db, statement)
}
