package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wellnesshub/wellness-backend/db"
	"github.com/wellnesshub/wellness-backend/models"
)

// CreateBooking records a client booking against a practitioner. The
// booking date and the pending status are server-assigned.
func CreateBooking(c *fiber.Ctx) error {
	booking := new(models.Booking)
	if err := c.BodyParser(booking); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if booking.UserID == 0 || booking.PractitionerID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	booking.ID = 0
	booking.BookingDate = time.Now()
	booking.Status = models.BookingPending

	if err := db.DB.Create(booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create booking: " + err.Error(),
		})
	}

	return c.JSON(booking)
}

// GetUserBookings lists the bookings a client made.
func GetUserBookings(c *fiber.Ctx) error {
	var bookings []models.Booking
	if err := db.DB.Where("user_id = ?", c.Params("userId")).Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch bookings",
		})
	}
	return c.JSON(bookings)
}

// GetPractitionerBookings lists the bookings made against a practitioner.
func GetPractitionerBookings(c *fiber.Ctx) error {
	var bookings []models.Booking
	if err := db.DB.Where("practitioner_id = ?", c.Params("practitionerId")).Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch bookings",
		})
	}
	return c.JSON(bookings)
}
