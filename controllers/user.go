package controllers

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/wellnesshub/wellness-backend/db"
	"github.com/wellnesshub/wellness-backend/models"
	"github.com/wellnesshub/wellness-backend/redis"
	"golang.org/x/crypto/bcrypt"
)

// GetProfile returns the logged-in user's record.
func GetProfile(c *fiber.Ctx) error {
	email, _ := c.Locals("email").(string)

	var user models.User
	if db.DB.Where("email = ?", email).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	user.Password = ""
	return c.JSON(user)
}

type ProfileUpdateInput struct {
	Name           *string `json:"name"`
	City           *string `json:"city"`
	Country        *string `json:"country"`
	Specialization *string `json:"specialization"`
	Password       *string `json:"password"`
}

// UpdateProfile applies a partial update to the logged-in user. Absent
// fields are left untouched; a non-empty password is rehashed.
func UpdateProfile(c *fiber.Ctx) error {
	email, _ := c.Locals("email").(string)

	var user models.User
	if db.DB.Where("email = ?", email).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	input := new(ProfileUpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.Name != nil && *input.Name != "" {
		user.Name = *input.Name
	}
	if input.City != nil {
		user.City = *input.City
	}
	if input.Country != nil {
		user.Country = *input.Country
	}
	if input.Specialization != nil {
		user.Specialization = *input.Specialization
	}
	if input.Password != nil && *input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to hash password",
			})
		}
		user.Password = string(hashed)
	}

	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update profile",
		})
	}

	user.Password = ""
	return c.JSON(user)
}

// GetApprovedPractitioners is the public marketplace listing: providers
// whose verification reached approved. The serialized listing is cached in
// Redis and rebuilt on a miss.
func GetApprovedPractitioners(c *fiber.Ctx) error {
	if cached := redis.GetPractitioners(); cached != "" {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	var providers []models.User
	if err := db.DB.Where("role = ?", models.RoleProvider).Find(&providers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch practitioners",
		})
	}

	approved := make([]models.User, 0, len(providers))
	for _, p := range providers {
		if strings.EqualFold(p.VerificationStatus, models.StatusApproved) {
			p.Password = ""
			approved = append(approved, p)
		}
	}

	if payload, err := json.Marshal(approved); err == nil {
		redis.SetPractitioners(string(payload))
	}

	return c.JSON(approved)
}

// GetAllPractitioners returns every provider regardless of status.
func GetAllPractitioners(c *fiber.Ctx) error {
	var providers []models.User
	if err := db.DB.Where("role = ?", models.RoleProvider).Find(&providers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch practitioners",
		})
	}

	for i := range providers {
		providers[i].Password = ""
	}
	return c.JSON(providers)
}
