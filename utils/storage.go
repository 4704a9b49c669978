package utils

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/joho/godotenv"
)

// Degree documents live either on local disk (default) or in Cloudinary when
// STORAGE_BACKEND=cloudinary. Each user has at most one document, stored as
// <id>_degrees.pdf; a re-upload overwrites the previous one.

func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return filepath.Join("uploads", "degrees")
}

func degreeFileName(userID uint) string {
	return fmt.Sprintf("%d_degrees.pdf", userID)
}

// SaveDegreePDF persists the uploaded document and returns the pointer to
// store on the user record: a relative path for the local backend, a secure
// URL for Cloudinary.
func SaveDegreePDF(userID uint, file io.Reader) (string, error) {
	if strings.EqualFold(os.Getenv("STORAGE_BACKEND"), "cloudinary") {
		return uploadToCloudinary(userID, file)
	}

	dir := UploadDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := degreeFileName(userID)
	out, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return "", err
	}
	return filepath.ToSlash(filepath.Join("uploads", "degrees", name)), nil
}

// ResolveDegreePath maps a stored pointer to a readable local path. Absolute
// paths pass through untouched; relative ones are re-rooted under the upload
// directory so rows written against an older layout still resolve.
func ResolveDegreePath(stored string) string {
	if filepath.IsAbs(stored) {
		return stored
	}
	return filepath.Join(UploadDir(), filepath.Base(filepath.FromSlash(stored)))
}

// IsRemoteDegree reports whether the stored pointer is an object-storage URL.
func IsRemoteDegree(stored string) bool {
	return strings.HasPrefix(stored, "http://") || strings.HasPrefix(stored, "https://")
}

func initCloudinary() (*cloudinary.Cloudinary, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	return cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"))
}

func uploadToCloudinary(userID uint, file io.Reader) (string, error) {
	cld, err := initCloudinary()
	if err != nil {
		return "", err
	}

	resp, err := cld.Upload.Upload(context.Background(), file, uploader.UploadParams{
		PublicID:     fmt.Sprintf("%d_degrees", userID),
		Folder:       "degrees",
		UploadPreset: os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
	})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
