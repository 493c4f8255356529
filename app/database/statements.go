package database

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/kokito32rios/horas-cole/app/models"
)

// UpsertStatement creates or regenerates the statement for
// (instructor, month, year) in one atomic statement. The statement number is
// assigned on first creation and survives regenerations.
func UpsertStatement(db *sql.DB, statement *models.MonthlyStatement) error {
	statement.ID = uuid.New().String()
	query := `INSERT INTO monthly_statements
			  (id, instructor_id, month, year, total_hours, total_payable, generated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW())
			  ON CONFLICT (instructor_id, month, year)
			  DO UPDATE SET total_hours = EXCLUDED.total_hours,
						    total_payable = EXCLUDED.total_payable,
						    generated_at = NOW()
			  RETURNING id, number, generated_at`

	return db.QueryRow(query,
		statement.ID, statement.InstructorID, statement.Month, statement.Year,
		statement.TotalHours, statement.TotalPayable,
	).Scan(&statement.ID, &statement.Number, &statement.GeneratedAt)
}

// GetStatementsByInstructor lists an instructor's statements, newest period first.
func GetStatementsByInstructor(db *sql.DB, instructorID string) ([]*models.MonthlyStatement, error) {
	query := `SELECT id, number, instructor_id, month, year, total_hours, total_payable, generated_at
			  FROM monthly_statements
			  WHERE instructor_id = $1
			  ORDER BY year DESC, month DESC`

	rows, err := db.Query(query, instructorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statements []*models.MonthlyStatement
	for rows.Next() {
		s := &models.MonthlyStatement{}
		err := rows.Scan(&s.ID, &s.Number, &s.InstructorID, &s.Month, &s.Year,
			&s.TotalHours, &s.TotalPayable, &s.GeneratedAt)
		if err != nil {
			return nil, err
		}
		statements = append(statements, s)
	}
	return statements, rows.Err()
}

// GetAllStatements lists every instructor's statements for the admin payroll
// overview, joined with the instructor's name and document.
func GetAllStatements(db *sql.DB) ([]*models.MonthlyStatement, error) {
	query := `SELECT s.id, s.number, s.instructor_id, s.month, s.year,
			  s.total_hours, s.total_payable, s.generated_at, u.name, u.document
			  FROM monthly_statements s
			  JOIN users u ON s.instructor_id = u.id
			  ORDER BY s.year DESC, s.month DESC, u.name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statements []*models.MonthlyStatement
	for rows.Next() {
		s := &models.MonthlyStatement{}
		err := rows.Scan(&s.ID, &s.Number, &s.InstructorID, &s.Month, &s.Year,
			&s.TotalHours, &s.TotalPayable, &s.GeneratedAt,
			&s.InstructorName, &s.InstructorDocument)
		if err != nil {
			return nil, err
		}
		statements = append(statements, s)
	}
	return statements, rows.Err()
}

// GetStatementByID fetches one statement without an owner scope. Admin only;
// instructor routes go through GetStatementForInstructor.
func GetStatementByID(db *sql.DB, statementID string) (*models.MonthlyStatement, error) {
	s := &models.MonthlyStatement{}
	query := `SELECT id, number, instructor_id, month, year, total_hours, total_payable, generated_at
			  FROM monthly_statements
			  WHERE id = $1`

	err := db.QueryRow(query, statementID).Scan(
		&s.ID, &s.Number, &s.InstructorID, &s.Month, &s.Year,
		&s.TotalHours, &s.TotalPayable, &s.GeneratedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetStatementForInstructor fetches one statement, scoped to its owner so a
// statement id alone never leaks another instructor's document.
func GetStatementForInstructor(db *sql.DB, statementID, instructorID string) (*models.MonthlyStatement, error) {
	s := &models.MonthlyStatement{}
	query := `SELECT id, number, instructor_id, month, year, total_hours, total_payable, generated_at
			  FROM monthly_statements
			  WHERE id = $1 AND instructor_id = $2`

	err := db.QueryRow(query, statementID, instructorID).Scan(
		&s.ID, &s.Number, &s.InstructorID, &s.Month, &s.Year,
		&s.TotalHours, &s.TotalPayable, &s.GeneratedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}
