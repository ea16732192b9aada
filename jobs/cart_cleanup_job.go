package jobs

import (
	"log"
	"time"

	"github.com/Ayewealth/coursehub/database"
	"github.com/Ayewealth/coursehub/models"
	"gorm.io/gorm"
)

const abandonedCartAge = 30 * 24 * time.Hour

// PurgeAbandonedCarts deletes incomplete carts (and their items) that have
// sat untouched past the cutoff. Runs on the cron schedule set in main.
func PurgeAbandonedCarts() {
	log.Println("Running job: PurgeAbandonedCarts...")

	cutoff := time.Now().Add(-abandonedCartAge)

	var staleCartIDs []string
	err := database.DB.Model(&models.Cart{}).
		Where("completed = ? AND created < ?", false, cutoff).
		Pluck("id", &staleCartIDs).Error
	if err != nil {
		log.Printf("Error finding abandoned carts: %v", err)
		return
	}

	if len(staleCartIDs) == 0 {
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id IN ?", staleCartIDs).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", staleCartIDs).Delete(&models.Cart{}).Error
	})
	if err != nil {
		log.Printf("Error purging abandoned carts: %v", err)
		return
	}

	log.Printf("Purged %d abandoned carts", len(staleCartIDs))
}
