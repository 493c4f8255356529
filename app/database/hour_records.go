package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kokito32rios/horas-cole/app/models"
)

// UpsertHourRecord saves a logged session. The unique constraint on
// (instructor_id, group_id, date) makes a second submission for the same day
// replace the first in a single atomic statement, so two concurrent
// submissions can never both insert. Returns true when a new row was created.
func UpsertHourRecord(db *sql.DB, record *models.HourRecord) (bool, error) {
	record.ID = uuid.New().String()
	query := `INSERT INTO hour_records
			  (id, instructor_id, group_id, date, clock_in, clock_out, hours, topic, notes, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), NOW(), NOW())
			  ON CONFLICT (instructor_id, group_id, date)
			  DO UPDATE SET clock_in = EXCLUDED.clock_in, clock_out = EXCLUDED.clock_out,
						    hours = EXCLUDED.hours, topic = EXCLUDED.topic, notes = EXCLUDED.notes,
						    updated_at = NOW()
			  RETURNING id, created_at, updated_at, (xmax = 0) AS inserted`

	var inserted bool
	err := db.QueryRow(query,
		record.ID, record.InstructorID, record.GroupID, record.Date,
		record.ClockIn, record.ClockOut, record.Hours, record.Topic, record.Notes,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt, &inserted)
	if err != nil {
		return false, err
	}
	return inserted, nil
}

// HourHistoryFilters narrows a history listing. InstructorID only applies to
// the institution-wide view; the instructor's own listing is already scoped.
type HourHistoryFilters struct {
	From         *time.Time
	To           *time.Time
	GroupID      string
	InstructorID string
}

// GetHourHistory lists an instructor's sessions newest first, each joined
// with its group, course type and per-row value.
func GetHourHistory(db *sql.DB, instructorID string, filters HourHistoryFilters) ([]*models.HourRecordDetail, error) {
	query := `SELECT hr.date, hr.clock_in, hr.clock_out, hr.hours, hr.topic, COALESCE(hr.notes, ''),
			  g.code, g.name, ct.program, ct.module, ct.hourly_rate,
			  (hr.hours * ct.hourly_rate) AS value
			  FROM hour_records hr
			  JOIN groups g ON hr.group_id = g.id
			  JOIN course_types ct ON g.course_type_id = ct.id
			  WHERE hr.instructor_id = $1`

	args := []interface{}{instructorID}
	if filters.From != nil {
		args = append(args, *filters.From)
		query += fmt.Sprintf(` AND hr.date >= $%d`, len(args))
	}
	if filters.To != nil {
		args = append(args, *filters.To)
		query += fmt.Sprintf(` AND hr.date <= $%d`, len(args))
	}
	if filters.GroupID != "" {
		args = append(args, filters.GroupID)
		query += fmt.Sprintf(` AND hr.group_id = $%d`, len(args))
	}
	query += ` ORDER BY hr.date DESC, hr.clock_in DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.HourRecordDetail
	for rows.Next() {
		r := &models.HourRecordDetail{}
		err := rows.Scan(
			&r.Date, &r.ClockIn, &r.ClockOut, &r.Hours, &r.Topic, &r.Notes,
			&r.GroupCode, &r.GroupName, &r.Program, &r.Module, &r.HourlyRate, &r.Value,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetAllHourHistory lists every instructor's sessions for the admin overview,
// newest first, each joined with the instructor's name.
func GetAllHourHistory(db *sql.DB, filters HourHistoryFilters) ([]*models.HourRecordDetail, error) {
	query := `SELECT hr.date, hr.clock_in, hr.clock_out, hr.hours, hr.topic, COALESCE(hr.notes, ''),
			  g.code, g.name, ct.program, ct.module, ct.hourly_rate,
			  (hr.hours * ct.hourly_rate) AS value, u.name
			  FROM hour_records hr
			  JOIN groups g ON hr.group_id = g.id
			  JOIN course_types ct ON g.course_type_id = ct.id
			  JOIN users u ON hr.instructor_id = u.id
			  WHERE 1=1`

	var args []interface{}
	if filters.InstructorID != "" {
		args = append(args, filters.InstructorID)
		query += fmt.Sprintf(` AND hr.instructor_id = $%d`, len(args))
	}
	if filters.From != nil {
		args = append(args, *filters.From)
		query += fmt.Sprintf(` AND hr.date >= $%d`, len(args))
	}
	if filters.To != nil {
		args = append(args, *filters.To)
		query += fmt.Sprintf(` AND hr.date <= $%d`, len(args))
	}
	if filters.GroupID != "" {
		args = append(args, filters.GroupID)
		query += fmt.Sprintf(` AND hr.group_id = $%d`, len(args))
	}
	query += ` ORDER BY hr.date DESC, u.name, hr.clock_in DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.HourRecordDetail
	for rows.Next() {
		r := &models.HourRecordDetail{}
		err := rows.Scan(
			&r.Date, &r.ClockIn, &r.ClockOut, &r.Hours, &r.Topic, &r.Notes,
			&r.GroupCode, &r.GroupName, &r.Program, &r.Module, &r.HourlyRate, &r.Value,
			&r.InstructorName,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetMonthlyBillableRecords fetches the sessions that feed a monthly
// statement: every record for the period, each with the hourly rate of the
// course type bound to its group. Ordered by date so accumulation order is
// stable across regenerations.
func GetMonthlyBillableRecords(db *sql.DB, instructorID string, month, year int) ([]*models.BillableRecord, error) {
	query := `SELECT hr.date, hr.hours, ct.hourly_rate
			  FROM hour_records hr
			  JOIN groups g ON hr.group_id = g.id
			  JOIN course_types ct ON g.course_type_id = ct.id
			  WHERE hr.instructor_id = $1
			  AND EXTRACT(MONTH FROM hr.date) = $2
			  AND EXTRACT(YEAR FROM hr.date) = $3
			  ORDER BY hr.date`

	rows, err := db.Query(query, instructorID, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.BillableRecord
	for rows.Next() {
		r := &models.BillableRecord{}
		if err := rows.Scan(&r.Date, &r.Hours, &r.HourlyRate); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// SumHoursForMonth returns the instructor's total logged hours for a month.
// Used by the dashboards; the statement aggregator recomputes its own totals.
func SumHoursForMonth(db *sql.DB, instructorID string, month, year int) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(hours), 0) FROM hour_records
			  WHERE instructor_id = $1
			  AND EXTRACT(MONTH FROM date) = $2 AND EXTRACT(YEAR FROM date) = $3`
	err := db.QueryRow(query, instructorID, month, year).Scan(&total)
	return total, err
}
