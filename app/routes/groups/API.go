package groups

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/kokito32rios/horas-cole/app/config"
	"github.com/kokito32rios/horas-cole/app/database"
	"github.com/kokito32rios/horas-cole/app/models"
)

func GetGroupsAPI(c *fiber.Ctx) error {
	groups, err := database.GetAllGroups(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudieron obtener los grupos"})
	}
	return c.JSON(fiber.Map{
		"groups": groups,
		"count":  len(groups),
	})
}

type groupRequest struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	CourseTypeID string `json:"course_type_id"`
	InstructorID string `json:"instructor_id"`
}

func CreateGroupAPI(c *fiber.Ctx) error {
	var req groupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}
	if req.Code == "" || req.Name == "" || req.CourseTypeID == "" || req.InstructorID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Código, nombre, tipo de curso y docente son requeridos"})
	}

	group := &models.Group{
		Code:         req.Code,
		Name:         req.Name,
		CourseTypeID: req.CourseTypeID,
		InstructorID: req.InstructorID,
	}

	if err := database.CreateGroup(config.GetDB(), group); err != nil {
		if database.IsUniqueViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "Ya existe un grupo con ese código"})
		}
		if database.IsForeignKeyViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "El tipo de curso o el docente no existen"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo crear el grupo"})
	}

	return c.Status(201).JSON(group)
}

func UpdateGroupAPI(c *fiber.Ctx) error {
	var req groupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}
	if req.Code == "" || req.Name == "" || req.CourseTypeID == "" || req.InstructorID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Código, nombre, tipo de curso y docente son requeridos"})
	}

	group := &models.Group{
		ID:           c.Params("id"),
		Code:         req.Code,
		Name:         req.Name,
		CourseTypeID: req.CourseTypeID,
		InstructorID: req.InstructorID,
	}

	if err := database.UpdateGroup(config.GetDB(), group); err != nil {
		if database.IsUniqueViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "Ya existe un grupo con ese código"})
		}
		if database.IsForeignKeyViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "El tipo de curso o el docente no existen"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo actualizar el grupo"})
	}

	return c.JSON(group)
}

func SetGroupActiveAPI(c *fiber.Ctx) error {
	var req struct {
		IsActive bool `json:"is_active"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}
	if err := database.SetGroupActive(config.GetDB(), c.Params("id"), req.IsActive); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo actualizar el estado del grupo"})
	}
	return c.JSON(fiber.Map{"message": "Estado actualizado"})
}

func DeleteGroupAPI(c *fiber.Ctx) error {
	if err := database.DeleteGroup(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Grupo no encontrado"})
		}
		if database.IsForeignKeyViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "El grupo tiene horas registradas; desactívelo en su lugar"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo eliminar el grupo"})
	}
	return c.SendStatus(204)
}

func GetMyGroupsAPI(c *fiber.Ctx) error {
	instructorID := c.Locals("user_id").(string)
	groups, err := database.GetGroupsByInstructor(config.GetDB(), instructorID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudieron obtener los grupos"})
	}
	return c.JSON(fiber.Map{
		"groups": groups,
		"count":  len(groups),
	})
}
