package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/wellnesshub/wellness-backend/db"
	"github.com/wellnesshub/wellness-backend/models"
	"github.com/wellnesshub/wellness-backend/redis"
	"github.com/wellnesshub/wellness-backend/utils"
)

type AdminDecisionInput struct {
	Comment string `json:"comment"`
}

// GetPractitioners lists every provider account for the admin dashboard.
func GetPractitioners(c *fiber.Ctx) error {
	var practitioners []models.User
	if err := db.DB.Where("role = ?", models.RoleProvider).Find(&practitioners).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch practitioners",
		})
	}

	for i := range practitioners {
		practitioners[i].Password = ""
	}
	return c.JSON(practitioners)
}

// GetAllSystemUsers lists every non-admin account.
func GetAllSystemUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := db.DB.Where("role <> ?", models.RoleAdmin).Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch users",
		})
	}

	for i := range users {
		users[i].Password = ""
	}
	return c.JSON(users)
}

// Approve marks a practitioner approved. Callable regardless of the current
// status, so repeated calls converge on the same state.
func Approve(c *fiber.Ctx) error {
	var user models.User
	if db.DB.First(&user, c.Params("id")).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	user.VerificationStatus = models.StatusApproved
	user.Verified = true
	user.AdminComment = ""
	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update user",
		})
	}
	redis.InvalidatePractitioners()

	go func(email string) {
		if err := utils.SendApprovalEmail(email); err != nil {
			log.Printf("Email send failed: %v", err)
		}
	}(user.Email)

	return c.JSON(fiber.Map{
		"message": "User approved successfully",
	})
}

// Reject marks a practitioner rejected, keeping the admin's comment when one
// was provided. Idempotent like Approve.
func Reject(c *fiber.Ctx) error {
	var user models.User
	if db.DB.First(&user, c.Params("id")).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	user.VerificationStatus = models.StatusRejected
	user.Verified = false

	input := new(AdminDecisionInput)
	if err := c.BodyParser(input); err == nil && input.Comment != "" {
		user.AdminComment = input.Comment
	}

	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update user",
		})
	}
	redis.InvalidatePractitioners()

	go func(email string) {
		if err := utils.SendRejectionEmail(email); err != nil {
			log.Printf("Email send failed: %v", err)
		}
	}(user.Email)

	return c.JSON(fiber.Map{
		"message": "User rejected successfully",
	})
}

// RequestReupload asks a practitioner for a fresh degree document.
func RequestReupload(c *fiber.Ctx) error {
	var user models.User
	if db.DB.First(&user, c.Params("id")).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	user.VerificationStatus = models.StatusReuploadRequested
	user.Verified = false

	input := new(AdminDecisionInput)
	if err := c.BodyParser(input); err == nil && input.Comment != "" {
		user.AdminComment = input.Comment
	}

	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update user",
		})
	}
	redis.InvalidatePractitioners()

	return c.JSON(fiber.Map{
		"message": "Reupload requested successfully",
	})
}
