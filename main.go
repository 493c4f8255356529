package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/kokito32rios/horas-cole/app/config"
	"github.com/kokito32rios/horas-cole/app/database"
	"github.com/kokito32rios/horas-cole/app/routes/auth"
	"github.com/kokito32rios/horas-cole/app/routes/catalog"
	"github.com/kokito32rios/horas-cole/app/routes/dashboard"
	"github.com/kokito32rios/horas-cole/app/routes/groups"
	"github.com/kokito32rios/horas-cole/app/routes/hours"
	"github.com/kokito32rios/horas-cole/app/routes/statements"
	"github.com/kokito32rios/horas-cole/app/routes/users"
)

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Dates and statement periods follow Colombian local time.
	loc, err := time.LoadLocation("America/Bogota")
	if err != nil {
		log.Printf("Warning: failed to load America/Bogota location, falling back to UTC-5: %v", err)
		time.Local = time.FixedZone("COT", -5*60*60)
	} else {
		time.Local = loc
	}

	if err := config.Load(); err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	users.SetupUsersRoutes(app)
	catalog.SetupCatalogRoutes(app)
	groups.SetupGroupsRoutes(app)
	hours.SetupHoursRoutes(app)
	statements.SetupStatementsRoutes(app)

	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Recurso no encontrado")
	})

	log.Println("Server starting on :" + config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
