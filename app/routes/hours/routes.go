package hours

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kokito32rios/horas-cole/app/models"
	"github.com/kokito32rios/horas-cole/app/routes/auth"
)

func SetupHoursRoutes(app *fiber.App) {
	api := app.Group("/api/hours")
	api.Use(auth.AuthMiddleware, auth.RoleMiddleware(models.RoleInstructor))
	api.Post("/", RegisterHourAPI)
	api.Get("/", GetHourHistoryAPI)
	api.Get("/planner", ExportPlannerAPI)

	// Institution-wide history for payroll oversight.
	admin := app.Group("/api/admin/hours")
	admin.Use(auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))
	admin.Get("/", AdminGetHourHistoryAPI)
}
