package users

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/kokito32rios/horas-cole/app/config"
	"github.com/kokito32rios/horas-cole/app/database"
	"github.com/kokito32rios/horas-cole/app/models"
)

func GetUsersAPI(c *fiber.Ctx) error {
	users, err := database.GetAllUsers(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudieron obtener los usuarios"})
	}
	return c.JSON(fiber.Map{
		"users": users,
		"count": len(users),
	})
}

type userRequest struct {
	Name          string  `json:"name"`
	Document      string  `json:"document"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Password      string  `json:"password"`
	RoleID        string  `json:"role_id"`
	BankID        *string `json:"bank_id"`
	AccountTypeID *string `json:"account_type_id"`
	AccountNumber string  `json:"account_number"`
}

func CreateUserAPI(c *fiber.Ctx) error {
	var req userRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}
	if req.Name == "" || req.Document == "" || req.RoleID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Nombre, documento y rol son requeridos"})
	}

	// The document doubles as the initial password when none is given.
	password := req.Password
	if password == "" {
		password = req.Document
	}
	hashedPassword, err := database.HashPassword(password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo procesar la contraseña"})
	}

	user := &models.User{
		Name:          req.Name,
		Document:      req.Document,
		Email:         req.Email,
		Phone:         req.Phone,
		Password:      hashedPassword,
		RoleID:        req.RoleID,
		BankID:        req.BankID,
		AccountTypeID: req.AccountTypeID,
		AccountNumber: req.AccountNumber,
	}

	if err := database.CreateUser(config.GetDB(), user); err != nil {
		if database.IsUniqueViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "Ya existe un usuario con ese documento"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo crear el usuario"})
	}

	return c.Status(201).JSON(user)
}

func UpdateUserAPI(c *fiber.Ctx) error {
	userID := c.Params("id")

	var req userRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}
	if req.Name == "" || req.Document == "" || req.RoleID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Nombre, documento y rol son requeridos"})
	}

	user := &models.User{
		ID:            userID,
		Name:          req.Name,
		Document:      req.Document,
		Email:         req.Email,
		Phone:         req.Phone,
		RoleID:        req.RoleID,
		BankID:        req.BankID,
		AccountTypeID: req.AccountTypeID,
		AccountNumber: req.AccountNumber,
	}

	if err := database.UpdateUser(config.GetDB(), user); err != nil {
		if database.IsUniqueViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "Ya existe un usuario con ese documento"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo actualizar el usuario"})
	}

	return c.JSON(user)
}

func SetUserActiveAPI(c *fiber.Ctx) error {
	userID := c.Params("id")

	type activeRequest struct {
		IsActive bool `json:"is_active"`
	}
	var req activeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}

	if err := database.SetUserActive(config.GetDB(), userID, req.IsActive); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo actualizar el estado del usuario"})
	}

	return c.JSON(fiber.Map{"message": "Estado actualizado"})
}

// ResetPasswordAPI sets a new password for a user. Without an explicit
// password in the body it falls back to the document number.
func ResetPasswordAPI(c *fiber.Ctx) error {
	userID := c.Params("id")

	type resetRequest struct {
		NewPassword string `json:"new_password"`
	}
	var req resetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}

	newPassword := req.NewPassword
	if newPassword == "" {
		user, err := database.GetUserByID(config.GetDB(), userID)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.Status(404).JSON(fiber.Map{"error": "Usuario no encontrado"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Error de base de datos"})
		}
		newPassword = user.Document
	}

	hashedPassword, err := database.HashPassword(newPassword)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo procesar la contraseña"})
	}

	if err := database.UpdateUserPassword(config.GetDB(), userID, hashedPassword); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo restablecer la contraseña"})
	}

	return c.JSON(fiber.Map{"message": "Contraseña restablecida"})
}

func DeleteUserAPI(c *fiber.Ctx) error {
	userID := c.Params("id")

	if err := database.DeleteUser(config.GetDB(), userID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Usuario no encontrado"})
		}
		if database.IsForeignKeyViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "El usuario tiene grupos u horas registradas; desactívelo en su lugar"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo eliminar el usuario"})
	}

	return c.SendStatus(204)
}

func GetRolesAPI(c *fiber.Ctx) error {
	roles, err := database.GetAllRoles(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudieron obtener los roles"})
	}
	return c.JSON(fiber.Map{"roles": roles})
}

// GetActiveInstructorsAPI lists the instructors that can be assigned to a
// group.
func GetActiveInstructorsAPI(c *fiber.Ctx) error {
	instructors, err := database.GetActiveInstructors(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudieron obtener los docentes"})
	}
	return c.JSON(fiber.Map{
		"instructors": instructors,
		"count":       len(instructors),
	})
}
