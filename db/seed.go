package db

import (
	"log"
	"os"

	"github.com/wellnesshub/wellness-backend/models"
	"golang.org/x/crypto/bcrypt"
)

// Bootstrap runs the idempotent startup fixes: it creates or resets the
// admin account when ADMIN_EMAIL/ADMIN_PASSWORD are configured, and marks
// legacy users that predate the OTP flow as email-verified so they are not
// asked to verify again.
func Bootstrap() {
	seedAdmin()
	markLegacyUsersVerified()
}

func seedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin bootstrap")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Admin bootstrap failed to hash password: %v", err)
		return
	}

	var admin models.User
	if DB.Where("email = ?", email).First(&admin).RowsAffected == 0 {
		admin = models.User{
			Name:               "Administrator",
			Email:              email,
			Password:           string(hashed),
			Role:               models.RoleAdmin,
			VerificationStatus: models.StatusApproved,
			Verified:           true,
			EmailVerified:      true,
		}
		if err := DB.Create(&admin).Error; err != nil {
			log.Printf("Admin bootstrap failed to create admin: %v", err)
			return
		}
		log.Println("✅ Admin account created")
		return
	}

	admin.Password = string(hashed)
	admin.EmailVerified = true
	if err := DB.Save(&admin).Error; err != nil {
		log.Printf("Admin bootstrap failed to reset admin: %v", err)
		return
	}
	log.Println("✅ Admin account reset")
}

func markLegacyUsersVerified() {
	// Users created before email verification existed have neither a legacy
	// token nor an OTP in flight. Anyone mid-OTP keeps their pending state.
	result := DB.Model(&models.User{}).
		Where("email_verified = ?", false).
		Where("verification_token IS NULL OR verification_token = ''").
		Where("otp IS NULL OR otp = ''").
		Update("email_verified", true)
	if result.Error != nil {
		log.Printf("Legacy verification migration failed: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Marked %d legacy users as email-verified", result.RowsAffected)
	}
}
