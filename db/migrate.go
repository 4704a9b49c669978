package db

import (
	"fmt"
	"log"

	"github.com/wellnesshub/wellness-backend/models"
)

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Booking{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
