package controllers_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/wellnesshub/wellness-backend/db"
	"github.com/wellnesshub/wellness-backend/models"
)

func uploadDegree(t *testing.T, app *fiber.App, userID string, content []byte) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("userId", userID); err != nil {
		t.Fatalf("writing userId field: %v", err)
	}
	part, err := w.CreateFormFile("file", "degree.pdf")
	if err != nil {
		t.Fatalf("creating form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("writing file content: %v", err)
	}
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/degree/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("upload request: %v", err)
	}
	return resp
}

func TestUploadThenDownloadRoundTrip(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	t.Setenv("STORAGE_BACKEND", "")
	app := newTestApp(t)

	provider := models.User{
		Name: "Dr. Mehta", Email: "mehta@example.com", Password: "x",
		Role: models.RoleProvider, VerificationStatus: models.StatusPendingAdminReview,
	}
	db.DB.Create(&provider)

	content := []byte("%PDF-1.4 degree certificate bytes")
	resp := uploadDegree(t, app, itoa(provider.ID), content)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 on upload, got %d", resp.StatusCode)
	}

	updated := findUserByEmail(t, provider.Email)
	if updated.DegreeFile == "" {
		t.Fatal("expected the degree pointer to be stored")
	}
	if updated.VerificationStatus != models.StatusPending {
		t.Errorf("upload should reset the status to pending, got %q", updated.VerificationStatus)
	}

	download := doJSON(t, app, http.MethodGet, "/api/degree/"+itoa(provider.ID), "", nil)
	if download.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 on download, got %d", download.StatusCode)
	}
	got, err := io.ReadAll(download.Body)
	download.Body.Close()
	if err != nil {
		t.Fatalf("reading download body: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Error("downloaded bytes differ from the uploaded document")
	}
}

func TestDownloadWithoutUpload(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	app := newTestApp(t)

	user := models.User{Name: "N", Email: "n@example.com", Password: "x", Role: models.RoleProvider}
	db.DB.Create(&user)

	resp := doJSON(t, app, http.MethodGet, "/api/degree/"+itoa(user.ID), "", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for a user with no upload, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/degree/9999", "", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for an unknown user, got %d", resp.StatusCode)
	}
}

func TestUploadForUnknownUser(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	app := newTestApp(t)

	resp := uploadDegree(t, app, "9999", []byte("%PDF-1.4"))
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
