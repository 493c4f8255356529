package catalog

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/kokito32rios/horas-cole/app/config"
	"github.com/kokito32rios/horas-cole/app/database"
	"github.com/kokito32rios/horas-cole/app/models"
)

func GetBanksAPI(c *fiber.Ctx) error {
	banks, err := database.GetAllBanks(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudieron obtener los bancos"})
	}
	return c.JSON(fiber.Map{"banks": banks})
}

func CreateBankAPI(c *fiber.Ctx) error {
	type bankRequest struct {
		Name string `json:"name"`
	}
	var req bankRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}
	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "El nombre es requerido"})
	}

	bank := &models.Bank{Name: req.Name}
	if err := database.CreateBank(config.GetDB(), bank); err != nil {
		if database.IsUniqueViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "Ya existe un banco con ese nombre"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo crear el banco"})
	}
	return c.Status(201).JSON(bank)
}

func UpdateBankAPI(c *fiber.Ctx) error {
	type bankRequest struct {
		Name string `json:"name"`
	}
	var req bankRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}
	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "El nombre es requerido"})
	}

	if err := database.UpdateBank(config.GetDB(), c.Params("id"), req.Name); err != nil {
		if database.IsUniqueViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "Ya existe un banco con ese nombre"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo actualizar el banco"})
	}
	return c.JSON(fiber.Map{"message": "Banco actualizado"})
}

func SetBankActiveAPI(c *fiber.Ctx) error {
	var req struct {
		IsActive bool `json:"is_active"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}
	if err := database.SetBankActive(config.GetDB(), c.Params("id"), req.IsActive); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo actualizar el estado"})
	}
	return c.JSON(fiber.Map{"message": "Estado actualizado"})
}

func DeleteBankAPI(c *fiber.Ctx) error {
	if err := database.DeleteBank(config.GetDB(), c.Params("id")); err != nil {
		if database.IsForeignKeyViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "El banco está asignado a usuarios; desactívelo en su lugar"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo eliminar el banco"})
	}
	return c.SendStatus(204)
}

func GetAccountTypesAPI(c *fiber.Ctx) error {
	types, err := database.GetAllAccountTypes(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudieron obtener los tipos de cuenta"})
	}
	return c.JSON(fiber.Map{"account_types": types})
}

func CreateAccountTypeAPI(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}
	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "El nombre es requerido"})
	}

	accountType := &models.AccountType{Name: req.Name}
	if err := database.CreateAccountType(config.GetDB(), accountType); err != nil {
		if database.IsUniqueViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "Ya existe un tipo de cuenta con ese nombre"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo crear el tipo de cuenta"})
	}
	return c.Status(201).JSON(accountType)
}

func UpdateAccountTypeAPI(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}
	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "El nombre es requerido"})
	}

	if err := database.UpdateAccountType(config.GetDB(), c.Params("id"), req.Name); err != nil {
		if database.IsUniqueViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "Ya existe un tipo de cuenta con ese nombre"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo actualizar el tipo de cuenta"})
	}
	return c.JSON(fiber.Map{"message": "Tipo de cuenta actualizado"})
}

func SetAccountTypeActiveAPI(c *fiber.Ctx) error {
	var req struct {
		IsActive bool `json:"is_active"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}
	if err := database.SetAccountTypeActive(config.GetDB(), c.Params("id"), req.IsActive); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo actualizar el estado"})
	}
	return c.JSON(fiber.Map{"message": "Estado actualizado"})
}

func DeleteAccountTypeAPI(c *fiber.Ctx) error {
	if err := database.DeleteAccountType(config.GetDB(), c.Params("id")); err != nil {
		if database.IsForeignKeyViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "El tipo de cuenta está asignado a usuarios; desactívelo en su lugar"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo eliminar el tipo de cuenta"})
	}
	return c.SendStatus(204)
}

func GetCourseTypesAPI(c *fiber.Ctx) error {
	types, err := database.GetAllCourseTypes(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudieron obtener los tipos de curso"})
	}
	return c.JSON(fiber.Map{"course_types": types})
}

type courseTypeRequest struct {
	Program    string `json:"program"`
	Module     string `json:"module"`
	HourlyRate string `json:"hourly_rate"`
}

func (r courseTypeRequest) parse() (*models.CourseType, error) {
	if r.Program == "" || r.Module == "" || r.HourlyRate == "" {
		return nil, fiber.NewError(400, "Programa, módulo y valor hora son requeridos")
	}
	rate, err := decimal.NewFromString(r.HourlyRate)
	if err != nil || rate.IsNegative() {
		return nil, fiber.NewError(400, "El valor hora debe ser un número positivo")
	}
	return &models.CourseType{Program: r.Program, Module: r.Module, HourlyRate: rate}, nil
}

func CreateCourseTypeAPI(c *fiber.Ctx) error {
	var req courseTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}

	courseType, err := req.parse()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreateCourseType(config.GetDB(), courseType); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo crear el tipo de curso"})
	}
	return c.Status(201).JSON(courseType)
}

func UpdateCourseTypeAPI(c *fiber.Ctx) error {
	var req courseTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}

	courseType, err := req.parse()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	courseType.ID = c.Params("id")

	if err := database.UpdateCourseType(config.GetDB(), courseType); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo actualizar el tipo de curso"})
	}
	return c.JSON(courseType)
}

func SetCourseTypeActiveAPI(c *fiber.Ctx) error {
	var req struct {
		IsActive bool `json:"is_active"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}
	if err := database.SetCourseTypeActive(config.GetDB(), c.Params("id"), req.IsActive); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo actualizar el estado"})
	}
	return c.JSON(fiber.Map{"message": "Estado actualizado"})
}

func DeleteCourseTypeAPI(c *fiber.Ctx) error {
	if err := database.DeleteCourseType(config.GetDB(), c.Params("id")); err != nil {
		if database.IsForeignKeyViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "El tipo de curso tiene grupos asociados; desactívelo en su lugar"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo eliminar el tipo de curso"})
	}
	return c.SendStatus(204)
}
