package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/wellnesshub/wellness-backend/db"
	"github.com/wellnesshub/wellness-backend/models"
)

// StartCronJobs initializes the scheduler that clears expired OTP codes so
// stale secrets do not linger in the users table.
func StartCronJobs() {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()
	_, err := c.AddFunc("*/10 * * * *", PurgeExpiredOTPs)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for OTP cleanup")
}

// PurgeExpiredOTPs clears the OTP fields on every user whose code expired.
func PurgeExpiredOTPs() {
	result := db.DB.Model(&models.User{}).
		Where("otp <> '' AND otp_expires_at < ?", time.Now()).
		Updates(map[string]interface{}{
			"otp":            "",
			"otp_expires_at": time.Time{},
		})
	if result.Error != nil {
		log.Printf("Error purging expired OTPs: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Purged expired OTPs for %d users", result.RowsAffected)
	}
}
