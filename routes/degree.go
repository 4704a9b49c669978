package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wellnesshub/wellness-backend/controllers"
)

// SetupDegreeRoutes configures degree document upload and download routes
func SetupDegreeRoutes(app *fiber.App) {
	degree := app.Group("/api/degree")

	degree.Post("/upload", controllers.UploadDegree)
	degree.Get("/:userId", controllers.DownloadDegree)
}
