package controllers

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/wellnesshub/wellness-backend/db"
	"github.com/wellnesshub/wellness-backend/middleware"
	"github.com/wellnesshub/wellness-backend/models"
	"github.com/wellnesshub/wellness-backend/utils"
	"golang.org/x/crypto/bcrypt"
)

const otpTTL = 10 * time.Minute

type RegisterInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Role           string `json:"role"`
	Specialization string `json:"specialization"`
	City           string `json:"city"`
	Country        string `json:"country"`
}

// Register creates a pending account and issues an OTP. Re-registering an
// email that never finished verification updates the record in place;
// a verified email is a conflict.
func Register(c *fiber.Ctx) error {
	input := new(RegisterInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.Email == "" || input.Password == "" || input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	role := strings.ToLower(input.Role)
	if role == "" {
		role = models.RoleClient
	}
	if role != models.RoleClient && role != models.RoleProvider {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid role",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}

	var user models.User
	if db.DB.Where("email = ?", input.Email).First(&user).RowsAffected > 0 {
		if user.EmailVerified {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Email already exists",
			})
		}
		// Unfinished registration, take the latest details
		user.Name = input.Name
		user.Password = string(hashedPassword)
		user.Role = role
		user.Specialization = input.Specialization
		user.City = input.City
		user.Country = input.Country
	} else {
		user = models.User{
			Name:               input.Name,
			Email:              input.Email,
			Password:           string(hashedPassword),
			Role:               role,
			Specialization:     input.Specialization,
			City:               input.City,
			Country:            input.Country,
			VerificationStatus: models.StatusPending,
		}
	}

	otp := utils.GenerateOTP()
	user.OTP = otp
	user.OTPExpiresAt = time.Now().Add(otpTTL)

	if err := db.DB.Save(&user).Error; err != nil {
		log.Printf("Error saving user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create user: " + err.Error(),
		})
	}

	go func(email, code string) {
		if err := utils.SendOTPEmail(email, code); err != nil {
			log.Printf("❌ Email dispatch failed for %s: %v", email, err)
		}
	}(user.Email, otp)

	return authResponse(c, &user)
}

// VerifyOTP confirms email ownership. A user who already verified gets a
// fresh token without any state change.
func VerifyOTP(c *fiber.Ctx) error {
	type VerifyInput struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}

	input := new(VerifyInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Email == "" || input.OTP == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and OTP are required",
		})
	}

	var user models.User
	if db.DB.Where("email = ?", input.Email).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "User not found with email: " + input.Email,
		})
	}

	if user.EmailVerified {
		return authResponse(c, &user)
	}

	if user.OTP == "" || user.OTP != input.OTP {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid OTP code",
		})
	}

	if user.OTPExpired(time.Now()) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "OTP has expired. Please request a new one.",
		})
	}

	user.EmailVerified = true
	user.OTP = ""
	user.OTPExpiresAt = time.Time{}

	// Clients are usable right away, practitioners wait for the admin
	switch {
	case user.HasRole(models.RoleClient):
		user.VerificationStatus = models.StatusApproved
	case user.HasRole(models.RoleProvider):
		user.VerificationStatus = models.StatusPendingAdminReview
	}

	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update user",
		})
	}

	return authResponse(c, &user)
}

// ResendOTP regenerates the code and expiry for an existing registration.
func ResendOTP(c *fiber.Ctx) error {
	type ResendInput struct {
		Email string `json:"email"`
	}

	input := new(ResendInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var user models.User
	if db.DB.Where("email = ?", input.Email).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	otp := utils.GenerateOTP()
	user.OTP = otp
	user.OTPExpiresAt = time.Now().Add(otpTTL)
	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update user",
		})
	}

	go func(email, code string) {
		if err := utils.SendOTPEmail(email, code); err != nil {
			log.Printf("❌ Email dispatch failed for %s: %v", email, err)
		}
	}(user.Email, otp)

	return c.JSON(fiber.Map{
		"message": "OTP resent successfully",
	})
}

// Login authenticates with email and password. Both failure modes return
// the same message so callers cannot probe which factor was wrong.
func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var user models.User
	if db.DB.Where("email = ?", input.Email).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid email or password",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid email or password",
		})
	}

	return authResponse(c, &user)
}

// ForgotPassword resets the credential to a random temporary password and
// mails it out. Admin accounts are excluded from the flow.
func ForgotPassword(c *fiber.Ctx) error {
	type ForgotInput struct {
		Email string `json:"email"`
	}

	input := new(ForgotInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var user models.User
	if db.DB.Where("email = ?", input.Email).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	if user.HasRole(models.RoleAdmin) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Action not allowed for Admin",
		})
	}

	newPassword := utils.GenerateTempPassword()
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}
	user.Password = string(hashed)
	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update user",
		})
	}

	go func(email, password string) {
		if err := utils.SendForgotPasswordEmail(email, password); err != nil {
			log.Printf("❌ Email dispatch failed for %s: %v", email, err)
		}
	}(user.Email, newPassword)

	return c.JSON(fiber.Map{
		"message": "Temporary password sent to your email",
	})
}

// VerifyEmail handles the legacy link-based verification kept for tokens
// issued before the OTP flow.
func VerifyEmail(c *fiber.Ctx) error {
	token := c.Query("token")

	var user models.User
	if token == "" || db.DB.Where("verification_token = ?", token).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid verification token",
		})
	}

	user.EmailVerified = true
	user.VerificationToken = ""
	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update user",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Email verified successfully",
	})
}

// IssueToken signs a 24h HS256 token carrying the user's email and role.
func IssueToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(middleware.Secret()))
}

func authResponse(c *fiber.Ctx, user *models.User) error {
	tokenString, err := IssueToken(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"token":      tokenString,
		"role":       user.Role,
		"name":       user.Name,
		"isVerified": user.EmailVerified,
	})
}
