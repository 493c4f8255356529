package auth

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kokito32rios/horas-cole/app/config"
	"github.com/kokito32rios/horas-cole/app/database"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Document string `json:"document"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}
	if req.Document == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Documento y contraseña son requeridos"})
	}

	user, err := database.GetUserByDocument(config.GetDB(), req.Document)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"error": "Usuario no encontrado"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Error de base de datos"})
	}

	if !user.IsActive {
		return c.Status(403).JSON(fiber.Map{"error": "Usuario inactivo. Contacte al administrador"})
	}

	if !database.CheckPasswordHash(req.Password, user.Password) {
		return c.Status(401).JSON(fiber.Map{"error": "Contraseña incorrecta"})
	}

	token, err := GenerateJWT(user.ID, user.Document, user.Name, user.RoleName)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo generar el token"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message": "Inicio de sesión exitoso",
		"user": fiber.Map{
			"id":       user.ID,
			"name":     user.Name,
			"document": user.Document,
			"role":     user.RoleName,
		},
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{"message": "Sesión cerrada"})
}

// SessionAPI reports the authenticated session, so the client can restore
// state after a page reload.
func SessionAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"id":       c.Locals("user_id"),
		"document": c.Locals("user_document"),
		"name":     c.Locals("user_name"),
		"role":     c.Locals("user_role"),
	})
}

func ChangePasswordAPI(c *fiber.Ctx) error {
	type ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}
	if len(req.NewPassword) < 6 {
		return c.Status(400).JSON(fiber.Map{"error": "La nueva contraseña debe tener al menos 6 caracteres"})
	}

	userID := c.Locals("user_id").(string)

	user, err := database.GetUserByID(config.GetDB(), userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error de base de datos"})
	}

	if !database.CheckPasswordHash(req.CurrentPassword, user.Password) {
		return c.Status(400).JSON(fiber.Map{"error": "La contraseña actual es incorrecta"})
	}

	hashedPassword, err := database.HashPassword(req.NewPassword)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo procesar la contraseña"})
	}

	if err := database.UpdateUserPassword(config.GetDB(), userID, hashedPassword); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo actualizar la contraseña"})
	}

	return c.JSON(fiber.Map{"message": "Contraseña actualizada correctamente"})
}
