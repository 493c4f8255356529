package statements

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/kokito32rios/horas-cole/app/config"
	"github.com/kokito32rios/horas-cole/app/models"
	"github.com/kokito32rios/horas-cole/app/routes/auth"
)

func init() {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
}

func TestBuildStatementData(t *testing.T) {
	statement := &models.MonthlyStatement{
		Number:       12,
		Month:        3,
		TotalPayable: decimal.RequireFromString("1250000"),
	}
	profile := &models.InstructorProfile{
		Name:            "María Pérez",
		Document:        "1020304050",
		BankName:        "Bancolombia",
		AccountTypeName: "ahorros",
		AccountNumber:   "123-456789-00",
	}

	data, err := buildStatementData(statement, profile)
	if err != nil {
		t.Fatalf("buildStatementData failed: %v", err)
	}

	if data.StatementNumber != 12 {
		t.Errorf("StatementNumber = %d, want 12", data.StatementNumber)
	}
	if data.MonthName != "marzo" {
		t.Errorf("MonthName = %q, want %q", data.MonthName, "marzo")
	}
	if data.TotalPayableFormatted != "1.250.000" {
		t.Errorf("TotalPayableFormatted = %q, want %q", data.TotalPayableFormatted, "1.250.000")
	}
	if data.TotalPayableInWords != "UN MILLÓN DOSCIENTOS CINCUENTA MIL" {
		t.Errorf("TotalPayableInWords = %q", data.TotalPayableInWords)
	}
	if data.InstructorName != profile.Name || data.DocumentNumber != profile.Document {
		t.Errorf("instructor identity not carried through: %+v", data)
	}
	if data.BankName != profile.BankName || data.AccountNumber != profile.AccountNumber {
		t.Errorf("payment data not carried through: %+v", data)
	}
}

func TestBuildStatementDataRejectsUnrepresentableAmount(t *testing.T) {
	statement := &models.MonthlyStatement{
		Number:       1,
		Month:        1,
		TotalPayable: decimal.RequireFromString("1000000000"),
	}
	if _, err := buildStatementData(statement, &models.InstructorProfile{}); err == nil {
		t.Error("expected error for amount out of words range")
	}
}

func TestAdminStatementRoutesAreAdminOnly(t *testing.T) {
	app := fiber.New()
	SetupStatementsRoutes(app)

	// Unauthenticated.
	req := httptest.NewRequest("GET", "/api/admin/statements/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("without token: got status %d, want 401", resp.StatusCode)
	}

	// An instructor must not reach the institution-wide listing.
	token, err := auth.GenerateJWT("user-1", "1020304050", "María Pérez", models.RoleInstructor)
	if err != nil {
		t.Fatal(err)
	}
	req = httptest.NewRequest("GET", "/api/admin/statements/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 403 {
		t.Errorf("instructor on admin listing: got status %d, want 403", resp.StatusCode)
	}

	req = httptest.NewRequest("GET", "/api/admin/statements/some-id/pdf", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 403 {
		t.Errorf("instructor on admin pdf: got status %d, want 403", resp.StatusCode)
	}
}
