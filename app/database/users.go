package database

import (
	"database/sql"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kokito32rios/horas-cole/app/models"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GetUserByDocument finds a user by document number, joined with the role
// name. Used by login, so inactive users are returned too; the caller
// decides how to report them.
func GetUserByDocument(db *sql.DB, document string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT u.id, u.name, u.document, COALESCE(u.email, ''), COALESCE(u.phone, ''),
			  u.password, u.role_id, r.name, u.is_active, u.created_at, u.updated_at
			  FROM users u
			  JOIN roles r ON u.role_id = r.id
			  WHERE u.document = $1`

	err := db.QueryRow(query, document).Scan(
		&user.ID, &user.Name, &user.Document, &user.Email, &user.Phone,
		&user.Password, &user.RoleID, &user.RoleName, &user.IsActive,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT u.id, u.name, u.document, COALESCE(u.email, ''), COALESCE(u.phone, ''),
			  u.password, u.role_id, r.name, u.is_active, u.created_at, u.updated_at
			  FROM users u
			  JOIN roles r ON u.role_id = r.id
			  WHERE u.id = $1`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Name, &user.Document, &user.Email, &user.Phone,
		&user.Password, &user.RoleID, &user.RoleName, &user.IsActive,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetAllUsers lists every user with role, bank and account type resolved.
func GetAllUsers(db *sql.DB) ([]*models.User, error) {
	query := `SELECT u.id, u.name, u.document, COALESCE(u.email, ''), COALESCE(u.phone, ''),
			  u.role_id, r.name,
			  u.bank_id, COALESCE(b.name, ''),
			  u.account_type_id, COALESCE(at.name, ''),
			  COALESCE(u.account_number, ''), u.is_active, u.created_at, u.updated_at
			  FROM users u
			  JOIN roles r ON u.role_id = r.id
			  LEFT JOIN banks b ON u.bank_id = b.id
			  LEFT JOIN account_types at ON u.account_type_id = at.id
			  ORDER BY u.name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		err := rows.Scan(
			&user.ID, &user.Name, &user.Document, &user.Email, &user.Phone,
			&user.RoleID, &user.RoleName,
			&user.BankID, &user.BankName,
			&user.AccountTypeID, &user.AccountTypeName,
			&user.AccountNumber, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// CreateUser inserts a new user. The password must already be hashed.
func CreateUser(db *sql.DB, user *models.User) error {
	user.ID = uuid.New().String()
	query := `INSERT INTO users (id, name, document, email, phone, password, role_id,
			  bank_id, account_type_id, account_number, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8, $9, NULLIF($10, ''), true, NOW(), NOW())
			  RETURNING created_at, updated_at`

	return db.QueryRow(query,
		user.ID, user.Name, user.Document, user.Email, user.Phone, user.Password,
		user.RoleID, user.BankID, user.AccountTypeID, user.AccountNumber,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
}

func UpdateUser(db *sql.DB, user *models.User) error {
	query := `UPDATE users SET name = $1, document = $2, email = NULLIF($3, ''),
			  phone = NULLIF($4, ''), role_id = $5, bank_id = $6, account_type_id = $7,
			  account_number = NULLIF($8, ''), updated_at = NOW()
			  WHERE id = $9`

	_, err := db.Exec(query,
		user.Name, user.Document, user.Email, user.Phone, user.RoleID,
		user.BankID, user.AccountTypeID, user.AccountNumber, user.ID,
	)
	return err
}

func SetUserActive(db *sql.DB, userID string, active bool) error {
	_, err := db.Exec(`UPDATE users SET is_active = $1, updated_at = NOW() WHERE id = $2`, active, userID)
	return err
}

func UpdateUserPassword(db *sql.DB, userID string, hashedPassword string) error {
	_, err := db.Exec(`UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`, hashedPassword, userID)
	return err
}

// DeleteUser removes a user permanently. Fails with a foreign key violation
// when the user still owns groups or hour records.
func DeleteUser(db *sql.DB, userID string) error {
	res, err := db.Exec(`DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func GetAllRoles(db *sql.DB) ([]*models.Role, error) {
	rows, err := db.Query(`SELECT id, name FROM roles ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*models.Role
	for rows.Next() {
		role := &models.Role{}
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func GetRoleByName(db *sql.DB, name string) (*models.Role, error) {
	role := &models.Role{}
	err := db.QueryRow(`SELECT id, name FROM roles WHERE name = $1`, name).Scan(&role.ID, &role.Name)
	if err != nil {
		return nil, err
	}
	return role, nil
}

// GetActiveInstructors returns the instructors that can be assigned to groups.
func GetActiveInstructors(db *sql.DB) ([]*models.User, error) {
	query := `SELECT u.id, u.name, u.document
			  FROM users u
			  JOIN roles r ON u.role_id = r.id
			  WHERE r.name = $1 AND u.is_active = true
			  ORDER BY u.name`

	rows, err := db.Query(query, models.RoleInstructor)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var instructors []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Name, &user.Document); err != nil {
			return nil, err
		}
		instructors = append(instructors, user)
	}
	return instructors, rows.Err()
}

// GetInstructorProfile resolves the payment fields needed on the statement
// document: name, document number, bank, account type and account number.
func GetInstructorProfile(db *sql.DB, userID string) (*models.InstructorProfile, error) {
	profile := &models.InstructorProfile{}
	query := `SELECT u.name, u.document, COALESCE(u.email, ''), COALESCE(u.phone, ''),
			  COALESCE(b.name, ''), COALESCE(at.name, ''), COALESCE(u.account_number, '')
			  FROM users u
			  LEFT JOIN banks b ON u.bank_id = b.id
			  LEFT JOIN account_types at ON u.account_type_id = at.id
			  WHERE u.id = $1`

	err := db.QueryRow(query, userID).Scan(
		&profile.Name, &profile.Document, &profile.Email, &profile.Phone,
		&profile.BankName, &profile.AccountTypeName, &profile.AccountNumber,
	)
	if err != nil {
		return nil, err
	}
	return profile, nil
}
