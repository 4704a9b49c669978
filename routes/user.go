package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wellnesshub/wellness-backend/controllers"
	"github.com/wellnesshub/wellness-backend/middleware"
)

// SetupUserRoutes configures profile and practitioner listing routes
func SetupUserRoutes(app *fiber.App) {
	user := app.Group("/api/user")

	user.Get("/profile", middleware.Protected(), controllers.GetProfile)
	user.Put("/profile", middleware.Protected(), controllers.UpdateProfile)

	// Public marketplace listings
	user.Get("/practitioners", controllers.GetApprovedPractitioners)
	user.Get("/all-practitioners", controllers.GetAllPractitioners)
}
