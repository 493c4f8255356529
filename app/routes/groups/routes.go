package groups

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kokito32rios/horas-cole/app/models"
	"github.com/kokito32rios/horas-cole/app/routes/auth"
)

func SetupGroupsRoutes(app *fiber.App) {
	api := app.Group("/api/groups")
	api.Use(auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))
	api.Get("/", GetGroupsAPI)
	api.Post("/", CreateGroupAPI)
	api.Put("/:id", UpdateGroupAPI)
	api.Patch("/:id/active", SetGroupActiveAPI)
	api.Delete("/:id", DeleteGroupAPI)

	// Instructors only see their own assignments.
	mine := app.Group("/api/my/groups")
	mine.Use(auth.AuthMiddleware, auth.RoleMiddleware(models.RoleInstructor))
	mine.Get("/", GetMyGroupsAPI)
}
