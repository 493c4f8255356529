package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if it does not exist and applies
// incremental updates. All statements are idempotent so the function is
// safe to run on every startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		`CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(30) NOT NULL UNIQUE
		)`,

		`INSERT INTO roles (name) VALUES ('admin'), ('instructor')
		 ON CONFLICT (name) DO NOTHING`,

		`CREATE TABLE IF NOT EXISTS banks (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(100) NOT NULL UNIQUE,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS account_types (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(50) NOT NULL UNIQUE,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(150) NOT NULL,
			document VARCHAR(30) NOT NULL UNIQUE,
			email VARCHAR(150),
			phone VARCHAR(30),
			password VARCHAR(100) NOT NULL,
			role_id UUID NOT NULL REFERENCES roles(id),
			bank_id UUID REFERENCES banks(id),
			account_type_id UUID REFERENCES account_types(id),
			account_number VARCHAR(50),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS course_types (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			program VARCHAR(100) NOT NULL,
			module VARCHAR(100) NOT NULL,
			hourly_rate NUMERIC(12,2) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS groups (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			code VARCHAR(30) NOT NULL UNIQUE,
			name VARCHAR(150) NOT NULL,
			course_type_id UUID NOT NULL REFERENCES course_types(id),
			instructor_id UUID NOT NULL REFERENCES users(id),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS hour_records (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			instructor_id UUID NOT NULL REFERENCES users(id),
			group_id UUID NOT NULL REFERENCES groups(id),
			date DATE NOT NULL,
			clock_in VARCHAR(5) NOT NULL,
			clock_out VARCHAR(5) NOT NULL,
			hours NUMERIC(6,2) NOT NULL,
			topic TEXT NOT NULL,
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (instructor_id, group_id, date)
		)`,

		`CREATE TABLE IF NOT EXISTS monthly_statements (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			number BIGSERIAL,
			instructor_id UUID NOT NULL REFERENCES users(id),
			month INT NOT NULL CHECK (month BETWEEN 1 AND 12),
			year INT NOT NULL,
			total_hours NUMERIC(10,2) NOT NULL,
			total_payable NUMERIC(14,2) NOT NULL,
			generated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (instructor_id, month, year)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_hour_records_instructor_date
			ON hour_records (instructor_id, date)`,

		`CREATE INDEX IF NOT EXISTS idx_groups_instructor
			ON groups (instructor_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
