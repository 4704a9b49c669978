package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wellnesshub/wellness-backend/controllers"
)

// SetupBookingRoutes configures booking creation and listing routes
func SetupBookingRoutes(app *fiber.App) {
	bookings := app.Group("/api/bookings")

	bookings.Post("/", controllers.CreateBooking)
	bookings.Get("/user/:userId", controllers.GetUserBookings)
	bookings.Get("/practitioner/:practitionerId", controllers.GetPractitionerBookings)
}
