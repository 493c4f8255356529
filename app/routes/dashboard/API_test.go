package dashboard

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/kokito32rios/horas-cole/app/config"
	"github.com/kokito32rios/horas-cole/app/models"
	"github.com/kokito32rios/horas-cole/app/routes/auth"
)

func init() {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
}

func TestInstructorProfileRouteIsInstructorOnly(t *testing.T) {
	app := fiber.New()
	SetupDashboardRoutes(app)

	req := httptest.NewRequest("GET", "/api/instructor/profile", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("without token: got status %d, want 401", resp.StatusCode)
	}

	// Admins have no payment profile of their own on this route.
	token, err := auth.GenerateJWT("user-2", "9090909090", "Admin", models.RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}
	req = httptest.NewRequest("GET", "/api/instructor/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 403 {
		t.Errorf("admin on instructor profile: got status %d, want 403", resp.StatusCode)
	}
}
