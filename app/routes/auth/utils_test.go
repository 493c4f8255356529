package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/kokito32rios/horas-cole/app/config"
	"github.com/kokito32rios/horas-cole/app/models"
)

func init() {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-1", "1020304050", "María Pérez", models.RoleInstructor)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT failed: %v", err)
	}
	if claims.UserID != "user-1" || claims.Document != "1020304050" || claims.Role != models.RoleInstructor {
		t.Errorf("claims do not match: %+v", claims)
	}
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	if _, err := ValidateJWT("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestMiddlewareRoleEnforcement(t *testing.T) {
	app := fiber.New()
	app.Get("/admin-only", AuthMiddleware, RoleMiddleware(models.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// No token at all.
	req := httptest.NewRequest("GET", "/admin-only", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("without token: got status %d, want 401", resp.StatusCode)
	}

	// Instructor token on an admin route.
	token, err := GenerateJWT("user-1", "1020304050", "María Pérez", models.RoleInstructor)
	if err != nil {
		t.Fatal(err)
	}
	req = httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 403 {
		t.Errorf("wrong role: got status %d, want 403", resp.StatusCode)
	}

	// Admin token passes.
	token, err = GenerateJWT("user-2", "9090909090", "Admin", models.RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}
	req = httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("admin: got status %d, want 200", resp.StatusCode)
	}
}
