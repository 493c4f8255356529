package statements

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kokito32rios/horas-cole/app/models"
	"github.com/kokito32rios/horas-cole/app/routes/auth"
)

func SetupStatementsRoutes(app *fiber.App) {
	api := app.Group("/api/statements")
	api.Use(auth.AuthMiddleware, auth.RoleMiddleware(models.RoleInstructor))
	api.Post("/", GenerateStatementAPI)
	api.Get("/", GetMyStatementsAPI)
	api.Get("/:id/pdf", DownloadStatementPDFAPI)

	// Payroll oversight: the admin sees and prints every statement.
	admin := app.Group("/api/admin/statements")
	admin.Use(auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))
	admin.Get("/", AdminGetStatementsAPI)
	admin.Get("/:id/pdf", AdminDownloadStatementPDFAPI)
}
