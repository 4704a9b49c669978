package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/wellnesshub/wellness-backend/db"
	"github.com/wellnesshub/wellness-backend/models"
	"github.com/wellnesshub/wellness-backend/routes"
	"gorm.io/gorm"
)

// newTestApp wires the full route surface against a fresh sqlite-backed
// store so handler tests exercise the same stack as production minus
// Postgres, Redis, and SMTP.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := gdb.AutoMigrate(&models.User{}, &models.Booking{}); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	db.DB = gdb

	app := fiber.New()
	routes.SetupAuthRoutes(app)
	routes.SetupUserRoutes(app)
	routes.SetupAdminRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupDegreeRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	resp.Body.Close()
	return out
}

func findUserByEmail(t *testing.T, email string) models.User {
	t.Helper()

	var user models.User
	if db.DB.Where("email = ?", email).First(&user).RowsAffected == 0 {
		t.Fatalf("user %s not found", email)
	}
	return user
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
