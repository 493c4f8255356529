package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kokito32rios/horas-cole/app/config"
	"github.com/kokito32rios/horas-cole/app/database"
	"github.com/kokito32rios/horas-cole/app/models"
	"github.com/kokito32rios/horas-cole/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	admin := app.Group("/api/admin")
	admin.Use(auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))
	admin.Get("/stats", GetAdminStatsAPI)

	instructor := app.Group("/api/instructor")
	instructor.Use(auth.AuthMiddleware, auth.RoleMiddleware(models.RoleInstructor))
	instructor.Get("/stats", GetInstructorStatsAPI)
	instructor.Get("/profile", GetInstructorProfileAPI)
}

func GetAdminStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetAdminStats(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudieron obtener las estadísticas"})
	}
	return c.JSON(stats)
}

func GetInstructorStatsAPI(c *fiber.Ctx) error {
	instructorID := c.Locals("user_id").(string)
	stats, err := database.GetInstructorStats(config.GetDB(), instructorID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudieron obtener las estadísticas"})
	}
	return c.JSON(stats)
}

// GetInstructorProfileAPI returns the instructor's own payment profile:
// bank, account type and account number alongside the contact data.
func GetInstructorProfileAPI(c *fiber.Ctx) error {
	instructorID := c.Locals("user_id").(string)
	profile, err := database.GetInstructorProfile(config.GetDB(), instructorID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "No se pudo obtener el perfil"})
	}
	return c.JSON(profile)
}
