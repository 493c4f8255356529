package database

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/kokito32rios/horas-cole/app/models"
)

// GetAllGroups lists every group with its course type and instructor resolved.
func GetAllGroups(db *sql.DB) ([]*models.Group, error) {
	query := `SELECT g.id, g.code, g.name, g.course_type_id, g.instructor_id, g.is_active,
			  g.created_at, g.updated_at,
			  ct.module, ct.program, ct.hourly_rate, u.name
			  FROM groups g
			  JOIN course_types ct ON g.course_type_id = ct.id
			  JOIN users u ON g.instructor_id = u.id
			  ORDER BY g.code`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		group := &models.Group{}
		err := rows.Scan(
			&group.ID, &group.Code, &group.Name, &group.CourseTypeID, &group.InstructorID,
			&group.IsActive, &group.CreatedAt, &group.UpdatedAt,
			&group.CourseTypeName, &group.Program, &group.HourlyRate, &group.InstructorName,
		)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, rows.Err()
}

// GetGroupsByInstructor lists the groups assigned to one instructor,
// with the course type and rate the instructor sees on the dashboard.
func GetGroupsByInstructor(db *sql.DB, instructorID string) ([]*models.Group, error) {
	query := `SELECT g.id, g.code, g.name, g.is_active,
			  ct.module, ct.program, ct.hourly_rate
			  FROM groups g
			  JOIN course_types ct ON g.course_type_id = ct.id
			  WHERE g.instructor_id = $1
			  ORDER BY g.code`

	rows, err := db.Query(query, instructorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		group := &models.Group{InstructorID: instructorID}
		err := rows.Scan(
			&group.ID, &group.Code, &group.Name, &group.IsActive,
			&group.CourseTypeName, &group.Program, &group.HourlyRate,
		)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, rows.Err()
}

// IsGroupOwnedBy reports whether the group is assigned to the instructor.
func IsGroupOwnedBy(db *sql.DB, groupID, instructorID string) (bool, error) {
	var exists bool
	err := db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM groups WHERE id = $1 AND instructor_id = $2)`,
		groupID, instructorID,
	).Scan(&exists)
	return exists, err
}

func CreateGroup(db *sql.DB, group *models.Group) error {
	group.ID = uuid.New().String()
	query := `INSERT INTO groups (id, code, name, course_type_id, instructor_id, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, true, NOW(), NOW())
			  RETURNING created_at, updated_at`
	return db.QueryRow(query, group.ID, group.Code, group.Name, group.CourseTypeID, group.InstructorID).
		Scan(&group.CreatedAt, &group.UpdatedAt)
}

func UpdateGroup(db *sql.DB, group *models.Group) error {
	_, err := db.Exec(`UPDATE groups SET code = $1, name = $2, course_type_id = $3, instructor_id = $4, updated_at = NOW()
					   WHERE id = $5`,
		group.Code, group.Name, group.CourseTypeID, group.InstructorID, group.ID)
	return err
}

func SetGroupActive(db *sql.DB, groupID string, active bool) error {
	_, err := db.Exec(`UPDATE groups SET is_active = $1, updated_at = NOW() WHERE id = $2`, active, groupID)
	return err
}

func DeleteGroup(db *sql.DB, groupID string) error {
	res, err := db.Exec(`DELETE FROM groups WHERE id = $1`, groupID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
