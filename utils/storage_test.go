package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveDegreePDFLocal(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("UPLOAD_DIR", dir)
	t.Setenv("STORAGE_BACKEND", "")

	content := []byte("%PDF-1.4 test degree")
	stored, err := SaveDegreePDF(42, bytes.NewReader(content))
	if err != nil {
		t.Fatalf("SaveDegreePDF failed: %v", err)
	}
	if stored != "uploads/degrees/42_degrees.pdf" {
		t.Errorf("unexpected stored pointer %q", stored)
	}

	got, err := os.ReadFile(filepath.Join(dir, "42_degrees.pdf"))
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Error("saved file does not match uploaded bytes")
	}

	// A second upload overwrites the first
	replacement := []byte("%PDF-1.4 replacement")
	if _, err := SaveDegreePDF(42, bytes.NewReader(replacement)); err != nil {
		t.Fatalf("second SaveDegreePDF failed: %v", err)
	}
	got, _ = os.ReadFile(filepath.Join(dir, "42_degrees.pdf"))
	if !bytes.Equal(got, replacement) {
		t.Error("second upload did not overwrite the first")
	}
}

func TestResolveDegreePath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("UPLOAD_DIR", dir)

	abs := filepath.Join(dir, "7_degrees.pdf")
	if got := ResolveDegreePath(abs); got != abs {
		t.Errorf("absolute path should pass through, got %q", got)
	}

	if got := ResolveDegreePath("uploads/degrees/7_degrees.pdf"); got != filepath.Join(dir, "7_degrees.pdf") {
		t.Errorf("relative path should re-root under the upload dir, got %q", got)
	}
}

func TestIsRemoteDegree(t *testing.T) {
	if !IsRemoteDegree("https://res.cloudinary.com/demo/degrees/1_degrees.pdf") {
		t.Error("expected https pointer to be remote")
	}
	if IsRemoteDegree("uploads/degrees/1_degrees.pdf") {
		t.Error("expected relative pointer to be local")
	}
}
