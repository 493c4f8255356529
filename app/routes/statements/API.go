package statements

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kokito32rios/horas-cole/app/config"
	"github.com/kokito32rios/horas-cole/app/database"
	"github.com/kokito32rios/horas-cole/app/documents"
	"github.com/kokito32rios/horas-cole/app/models"
	"github.com/kokito32rios/horas-cole/app/services"
)

func billing() *services.BillingService {
	store := database.NewStore(config.GetDB())
	return services.NewBillingService(store, store, store)
}

// GenerateStatementAPI creates or regenerates the cuenta de cobro for one
// month. Regenerating keeps the original statement number.
func GenerateStatementAPI(c *fiber.Ctx) error {
	type generateRequest struct {
		Month int `json:"month"`
		Year  int `json:"year"`
	}

	var req generateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}

	summary, err := billing().GenerateStatement(c.Locals("user_id").(string), req.Month, req.Year)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			return c.Status(400).JSON(fiber.Map{"error": validationErr.Msg})
		}
		var noRecordsErr *services.NoRecordsError
		if errors.As(err, &noRecordsErr) {
			return c.Status(400).JSON(fiber.Map{"error": "No hay horas registradas en el periodo seleccionado"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo generar la cuenta de cobro"})
	}

	return c.JSON(fiber.Map{
		"message":   "Cuenta de cobro generada",
		"statement": summary,
	})
}

func GetMyStatementsAPI(c *fiber.Ctx) error {
	instructorID := c.Locals("user_id").(string)
	statements, err := database.GetStatementsByInstructor(config.GetDB(), instructorID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudieron obtener las cuentas de cobro"})
	}
	return c.JSON(fiber.Map{
		"statements": statements,
		"count":      len(statements),
	})
}

// buildStatementData resolves everything the printable document needs from a
// stored statement and the owner's payment profile.
func buildStatementData(statement *models.MonthlyStatement, profile *models.InstructorProfile) (documents.StatementData, error) {
	// Statements carry whole pesos; the words line drops any cents.
	amountInWords, err := services.AmountToWords(statement.TotalPayable.Truncate(0).IntPart())
	if err != nil {
		return documents.StatementData{}, err
	}

	return documents.StatementData{
		StatementNumber:       statement.Number,
		InstructorName:        profile.Name,
		DocumentNumber:        profile.Document,
		MonthName:             documents.MonthName(statement.Month),
		TotalPayableFormatted: documents.FormatMoney(statement.TotalPayable),
		TotalPayableInWords:   amountInWords,
		BankName:              profile.BankName,
		AccountTypeName:       profile.AccountTypeName,
		AccountNumber:         profile.AccountNumber,
	}, nil
}

// sendStatementPDF renders and serves the document. ?inline=1 previews it in
// the browser instead of downloading.
func sendStatementPDF(c *fiber.Ctx, statement *models.MonthlyStatement) error {
	profile, err := database.GetInstructorProfile(config.GetDB(), statement.InstructorID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo obtener el perfil del docente"})
	}

	data, err := buildStatementData(statement, profile)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo expresar el valor en letras"})
	}

	out, err := documents.RenderStatementPDF(data)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo generar el documento"})
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", documents.Disposition(c.QueryBool("inline"), documents.StatementFileName(statement.Number)))
	return c.Send(out)
}

// DownloadStatementPDFAPI serves an instructor's own cuenta de cobro. The
// lookup is scoped to the requesting instructor.
func DownloadStatementPDFAPI(c *fiber.Ctx) error {
	instructorID := c.Locals("user_id").(string)

	statement, err := database.GetStatementForInstructor(config.GetDB(), c.Params("id"), instructorID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Cuenta de cobro no encontrada"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Error de base de datos"})
	}

	return sendStatementPDF(c, statement)
}

// AdminGetStatementsAPI lists every generated statement with its instructor,
// so the admin can see what the institution owes each month.
func AdminGetStatementsAPI(c *fiber.Ctx) error {
	statements, err := database.GetAllStatements(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudieron obtener las cuentas de cobro"})
	}
	return c.JSON(fiber.Map{
		"statements": statements,
		"count":      len(statements),
	})
}

// AdminDownloadStatementPDFAPI serves any instructor's statement document.
func AdminDownloadStatementPDFAPI(c *fiber.Ctx) error {
	statement, err := database.GetStatementByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Cuenta de cobro no encontrada"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Error de base de datos"})
	}

	return sendStatementPDF(c, statement)
}
