package users

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kokito32rios/horas-cole/app/models"
	"github.com/kokito32rios/horas-cole/app/routes/auth"
)

func SetupUsersRoutes(app *fiber.App) {
	api := app.Group("/api/users")
	api.Use(auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))
	api.Get("/", GetUsersAPI)
	api.Post("/", CreateUserAPI)
	api.Put("/:id", UpdateUserAPI)
	api.Patch("/:id/active", SetUserActiveAPI)
	api.Post("/:id/reset-password", ResetPasswordAPI)
	api.Delete("/:id", DeleteUserAPI)

	roles := app.Group("/api/roles")
	roles.Use(auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))
	roles.Get("/", GetRolesAPI)

	instructors := app.Group("/api/instructors")
	instructors.Use(auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))
	instructors.Get("/", GetActiveInstructorsAPI)
}
