package database

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kokito32rios/horas-cole/app/models"
)

// AdminStats summarizes the whole institution for the current month.
type AdminStats struct {
	TotalInstructors int             `json:"total_instructors"`
	TotalGroups      int             `json:"total_groups"`
	HoursThisMonth   decimal.Decimal `json:"hours_this_month"`
	PayableThisMonth decimal.Decimal `json:"payable_this_month"`
}

// InstructorStats summarizes one instructor's current month.
type InstructorStats struct {
	TotalGroups      int             `json:"total_groups"`
	HoursThisMonth   decimal.Decimal `json:"hours_this_month"`
	ClassesThisMonth int             `json:"classes_this_month"`
	PayableThisMonth decimal.Decimal `json:"payable_this_month"`
}

func GetAdminStats(db *sql.DB) (*AdminStats, error) {
	now := time.Now()
	stats := &AdminStats{}

	err := db.QueryRow(`SELECT COUNT(*) FROM users u
						JOIN roles r ON u.role_id = r.id
						WHERE r.name = $1 AND u.is_active = true`, models.RoleInstructor).
		Scan(&stats.TotalInstructors)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM groups WHERE is_active = true`).Scan(&stats.TotalGroups)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COALESCE(SUM(hours), 0) FROM hour_records
					   WHERE EXTRACT(MONTH FROM date) = $1 AND EXTRACT(YEAR FROM date) = $2`,
		int(now.Month()), now.Year()).Scan(&stats.HoursThisMonth)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COALESCE(SUM(hr.hours * ct.hourly_rate), 0)
					   FROM hour_records hr
					   JOIN groups g ON hr.group_id = g.id
					   JOIN course_types ct ON g.course_type_id = ct.id
					   WHERE EXTRACT(MONTH FROM hr.date) = $1 AND EXTRACT(YEAR FROM hr.date) = $2`,
		int(now.Month()), now.Year()).Scan(&stats.PayableThisMonth)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func GetInstructorStats(db *sql.DB, instructorID string) (*InstructorStats, error) {
	now := time.Now()
	stats := &InstructorStats{}

	err := db.QueryRow(`SELECT COUNT(*) FROM groups WHERE instructor_id = $1 AND is_active = true`, instructorID).
		Scan(&stats.TotalGroups)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COALESCE(SUM(hours), 0), COUNT(*) FROM hour_records
					   WHERE instructor_id = $1
					   AND EXTRACT(MONTH FROM date) = $2 AND EXTRACT(YEAR FROM date) = $3`,
		instructorID, int(now.Month()), now.Year()).Scan(&stats.HoursThisMonth, &stats.ClassesThisMonth)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COALESCE(SUM(hr.hours * ct.hourly_rate), 0)
					   FROM hour_records hr
					   JOIN groups g ON hr.group_id = g.id
					   JOIN course_types ct ON g.course_type_id = ct.id
					   WHERE hr.instructor_id = $1
					   AND EXTRACT(MONTH FROM hr.date) = $2 AND EXTRACT(YEAR FROM hr.date) = $3`,
		instructorID, int(now.Month()), now.Year()).Scan(&stats.PayableThisMonth)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
