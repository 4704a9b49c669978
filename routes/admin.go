package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wellnesshub/wellness-backend/controllers"
	"github.com/wellnesshub/wellness-backend/middleware"
	"github.com/wellnesshub/wellness-backend/models"
)

// SetupAdminRoutes configures the admin approval workflow routes
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/api/admin", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))

	admin.Get("/users", controllers.GetPractitioners)
	admin.Get("/all-users", controllers.GetAllSystemUsers)
	admin.Put("/approve/:id", controllers.Approve)
	admin.Put("/reject/:id", controllers.Reject)
	admin.Put("/request-reupload/:id", controllers.RequestReupload)
}
