package database

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/kokito32rios/horas-cole/app/models"
)

func GetAllBanks(db *sql.DB) ([]*models.Bank, error) {
	rows, err := db.Query(`SELECT id, name, is_active, created_at, updated_at FROM banks ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var banks []*models.Bank
	for rows.Next() {
		bank := &models.Bank{}
		if err := rows.Scan(&bank.ID, &bank.Name, &bank.IsActive, &bank.CreatedAt, &bank.UpdatedAt); err != nil {
			return nil, err
		}
		banks = append(banks, bank)
	}
	return banks, rows.Err()
}

func CreateBank(db *sql.DB, bank *models.Bank) error {
	bank.ID = uuid.New().String()
	query := `INSERT INTO banks (id, name, is_active, created_at, updated_at)
			  VALUES ($1, $2, true, NOW(), NOW())
			  RETURNING created_at, updated_at`
	return db.QueryRow(query, bank.ID, bank.Name).Scan(&bank.CreatedAt, &bank.UpdatedAt)
}

func UpdateBank(db *sql.DB, bankID, name string) error {
	_, err := db.Exec(`UPDATE banks SET name = $1, updated_at = NOW() WHERE id = $2`, name, bankID)
	return err
}

func SetBankActive(db *sql.DB, bankID string, active bool) error {
	_, err := db.Exec(`UPDATE banks SET is_active = $1, updated_at = NOW() WHERE id = $2`, active, bankID)
	return err
}

func DeleteBank(db *sql.DB, bankID string) error {
	_, err := db.Exec(`DELETE FROM banks WHERE id = $1`, bankID)
	return err
}

func GetAllAccountTypes(db *sql.DB) ([]*models.AccountType, error) {
	rows, err := db.Query(`SELECT id, name, is_active, created_at, updated_at FROM account_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []*models.AccountType
	for rows.Next() {
		t := &models.AccountType{}
		if err := rows.Scan(&t.ID, &t.Name, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func CreateAccountType(db *sql.DB, accountType *models.AccountType) error {
	accountType.ID = uuid.New().String()
	query := `INSERT INTO account_types (id, name, is_active, created_at, updated_at)
			  VALUES ($1, $2, true, NOW(), NOW())
			  RETURNING created_at, updated_at`
	return db.QueryRow(query, accountType.ID, accountType.Name).Scan(&accountType.CreatedAt, &accountType.UpdatedAt)
}

func UpdateAccountType(db *sql.DB, accountTypeID, name string) error {
	_, err := db.Exec(`UPDATE account_types SET name = $1, updated_at = NOW() WHERE id = $2`, name, accountTypeID)
	return err
}

func SetAccountTypeActive(db *sql.DB, accountTypeID string, active bool) error {
	_, err := db.Exec(`UPDATE account_types SET is_active = $1, updated_at = NOW() WHERE id = $2`, active, accountTypeID)
	return err
}

func DeleteAccountType(db *sql.DB, accountTypeID string) error {
	_, err := db.Exec(`DELETE FROM account_types WHERE id = $1`, accountTypeID)
	return err
}

func GetAllCourseTypes(db *sql.DB) ([]*models.CourseType, error) {
	rows, err := db.Query(`SELECT id, program, module, hourly_rate, is_active, created_at, updated_at
						   FROM course_types ORDER BY module`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []*models.CourseType
	for rows.Next() {
		t := &models.CourseType{}
		if err := rows.Scan(&t.ID, &t.Program, &t.Module, &t.HourlyRate, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func CreateCourseType(db *sql.DB, courseType *models.CourseType) error {
	courseType.ID = uuid.New().String()
	query := `INSERT INTO course_types (id, program, module, hourly_rate, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, true, NOW(), NOW())
			  RETURNING created_at, updated_at`
	return db.QueryRow(query, courseType.ID, courseType.Program, courseType.Module, courseType.HourlyRate).
		Scan(&courseType.CreatedAt, &courseType.UpdatedAt)
}

func UpdateCourseType(db *sql.DB, courseType *models.CourseType) error {
	_, err := db.Exec(`UPDATE course_types SET program = $1, module = $2, hourly_rate = $3, updated_at = NOW()
					   WHERE id = $4`,
		courseType.Program, courseType.Module, courseType.HourlyRate, courseType.ID)
	return err
}

func SetCourseTypeActive(db *sql.DB, courseTypeID string, active bool) error {
	_, err := db.Exec(`UPDATE course_types SET is_active = $1, updated_at = NOW() WHERE id = $2`, active, courseTypeID)
	return err
}

func DeleteCourseType(db *sql.DB, courseTypeID string) error {
	_, err := db.Exec(`DELETE FROM course_types WHERE id = $1`, courseTypeID)
	return err
}
