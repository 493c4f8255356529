package catalog

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kokito32rios/horas-cole/app/models"
	"github.com/kokito32rios/horas-cole/app/routes/auth"
)

// SetupCatalogRoutes mounts the admin-managed reference data: banks,
// account types and course types.
func SetupCatalogRoutes(app *fiber.App) {
	banks := app.Group("/api/banks")
	banks.Use(auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))
	banks.Get("/", GetBanksAPI)
	banks.Post("/", CreateBankAPI)
	banks.Put("/:id", UpdateBankAPI)
	banks.Patch("/:id/active", SetBankActiveAPI)
	banks.Delete("/:id", DeleteBankAPI)

	accountTypes := app.Group("/api/account-types")
	accountTypes.Use(auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))
	accountTypes.Get("/", GetAccountTypesAPI)
	accountTypes.Post("/", CreateAccountTypeAPI)
	accountTypes.Put("/:id", UpdateAccountTypeAPI)
	accountTypes.Patch("/:id/active", SetAccountTypeActiveAPI)
	accountTypes.Delete("/:id", DeleteAccountTypeAPI)

	courseTypes := app.Group("/api/course-types")
	courseTypes.Use(auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))
	courseTypes.Get("/", GetCourseTypesAPI)
	courseTypes.Post("/", CreateCourseTypeAPI)
	courseTypes.Put("/:id", UpdateCourseTypeAPI)
	courseTypes.Patch("/:id/active", SetCourseTypeActiveAPI)
	courseTypes.Delete("/:id", DeleteCourseTypeAPI)
}
