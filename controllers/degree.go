package controllers

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/wellnesshub/wellness-backend/db"
	"github.com/wellnesshub/wellness-backend/models"
	"github.com/wellnesshub/wellness-backend/redis"
	"github.com/wellnesshub/wellness-backend/utils"
)

// UploadDegree stores a practitioner's degree document and resets their
// verification back to pending for the admin to review.
func UploadDegree(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.FormValue("userId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid userId",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing file",
		})
	}

	var user models.User
	if db.DB.First(&user, uint(userID)).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	defer file.Close()

	stored, err := utils.SaveDegreePDF(user.ID, file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	user.DegreeFile = stored
	user.VerificationStatus = models.StatusPending
	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update user",
		})
	}
	redis.InvalidatePractitioners()

	return c.JSON(fiber.Map{
		"message": "Degree uploaded successfully",
	})
}

// DownloadDegree streams the stored document inline. Object-storage
// pointers redirect to their URL; local pointers resolve under the upload
// directory.
func DownloadDegree(c *fiber.Ctx) error {
	var user models.User
	if db.DB.First(&user, c.Params("userId")).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	if user.DegreeFile == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No degree file on record",
		})
	}

	if utils.IsRemoteDegree(user.DegreeFile) {
		return c.Redirect(user.DegreeFile, fiber.StatusFound)
	}

	path := utils.ResolveDegreePath(user.DegreeFile)
	if _, err := os.Stat(path); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Degree file not found",
		})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", fmt.Sprintf("%d_degrees.pdf", user.ID)))
	return c.SendFile(path)
}
