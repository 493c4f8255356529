package hours

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kokito32rios/horas-cole/app/config"
	"github.com/kokito32rios/horas-cole/app/database"
	"github.com/kokito32rios/horas-cole/app/documents"
	"github.com/kokito32rios/horas-cole/app/services"
)

func billing() *services.BillingService {
	store := database.NewStore(config.GetDB())
	return services.NewBillingService(store, store, store)
}

func serviceErrorResponse(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(400).JSON(fiber.Map{"error": validationErr.Msg})
	}
	var authorizationErr *services.AuthorizationError
	if errors.As(err, &authorizationErr) {
		return c.Status(403).JSON(fiber.Map{"error": "El grupo no está asignado a este docente"})
	}
	var noRecordsErr *services.NoRecordsError
	if errors.As(err, &noRecordsErr) {
		return c.Status(400).JSON(fiber.Map{"error": "No hay horas registradas en el periodo seleccionado"})
	}
	return c.Status(500).JSON(fiber.Map{"error": "Error de base de datos"})
}

// RegisterHourAPI logs a work session. Submitting twice for the same group
// and date replaces the earlier entry.
func RegisterHourAPI(c *fiber.Ctx) error {
	type registerRequest struct {
		GroupID  string `json:"group_id"`
		Date     string `json:"date"` // "2006-01-02"
		ClockIn  string `json:"clock_in"`
		ClockOut string `json:"clock_out"`
		Topic    string `json:"topic"`
		Notes    string `json:"notes"`
	}

	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Solicitud inválida"})
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Fecha inválida, se espera AAAA-MM-DD"})
	}
	clockIn, err := services.ParseClockTime(req.ClockIn)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Hora de ingreso inválida, se espera HH:MM"})
	}
	clockOut, err := services.ParseClockTime(req.ClockOut)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Hora de salida inválida, se espera HH:MM"})
	}

	outcome, record, err := billing().SubmitHourRecord(services.SubmitHourRecordInput{
		InstructorID: c.Locals("user_id").(string),
		GroupID:      req.GroupID,
		Date:         date,
		ClockIn:      clockIn,
		ClockOut:     clockOut,
		Topic:        req.Topic,
		Notes:        req.Notes,
	})
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	status := 200
	message := "Registro del día actualizado"
	if outcome == services.OutcomeCreated {
		status = 201
		message = "Hora registrada correctamente"
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"outcome": outcome,
		"record":  record,
	})
}

func parseHistoryFilters(c *fiber.Ctx) (database.HourHistoryFilters, error) {
	filters := database.HourHistoryFilters{GroupID: c.Query("grupo")}

	if desde := c.Query("desde"); desde != "" {
		from, err := time.Parse("2006-01-02", desde)
		if err != nil {
			return filters, err
		}
		filters.From = &from
	}
	if hasta := c.Query("hasta"); hasta != "" {
		to, err := time.Parse("2006-01-02", hasta)
		if err != nil {
			return filters, err
		}
		filters.To = &to
	}
	return filters, nil
}

func GetHourHistoryAPI(c *fiber.Ctx) error {
	filters, err := parseHistoryFilters(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Filtro de fecha inválido, se espera AAAA-MM-DD"})
	}

	instructorID := c.Locals("user_id").(string)
	records, err := database.GetHourHistory(config.GetDB(), instructorID, filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo obtener el historial"})
	}

	return c.JSON(fiber.Map{
		"records": records,
		"count":   len(records),
	})
}

// AdminGetHourHistoryAPI lists every instructor's sessions, optionally
// narrowed by docente, grupo and date range.
func AdminGetHourHistoryAPI(c *fiber.Ctx) error {
	filters, err := parseHistoryFilters(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Filtro de fecha inválido, se espera AAAA-MM-DD"})
	}
	filters.InstructorID = c.Query("docente")

	records, err := database.GetAllHourHistory(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo obtener el historial"})
	}

	return c.JSON(fiber.Map{
		"records": records,
		"count":   len(records),
	})
}

// ExportPlannerAPI downloads the filtered history as a spreadsheet.
// ?inline=1 serves it for preview instead.
func ExportPlannerAPI(c *fiber.Ctx) error {
	filters, err := parseHistoryFilters(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Filtro de fecha inválido, se espera AAAA-MM-DD"})
	}

	instructorID := c.Locals("user_id").(string)
	records, err := database.GetHourHistory(config.GetDB(), instructorID, filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo obtener el historial"})
	}

	// History comes newest first; the planner reads chronologically.
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	profile, err := database.GetInstructorProfile(config.GetDB(), instructorID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo obtener el perfil del docente"})
	}

	out, err := documents.RenderPlannerXLSX(profile.Name, records)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo generar el planeador"})
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", documents.Disposition(c.QueryBool("inline"), documents.PlannerFileName(profile.Document)))
	return c.Send(out)
}
