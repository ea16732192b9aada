package main

import (
	"log"

	"github.com/Ayewealth/coursehub/database"
	"github.com/Ayewealth/coursehub/models"
	"github.com/Ayewealth/coursehub/services"
	"gorm.io/gorm"
)

// Backfills profiles and group memberships for accounts created before role
// provisioning existed. Safe to run repeatedly.
func main() {
	database.ConnectDB()
	database.Migrate()

	var users []models.User
	if err := database.DB.Find(&users).Error; err != nil {
		log.Fatalf("🔥 Failed to load users: %v", err)
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for i := range users {
			if err := services.ProvisionUserRoles(tx, &users[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("🔥 Failed to assign roles: %v", err)
	}

	log.Printf("✅ Roles assigned successfully for %d users.", len(users))
}
