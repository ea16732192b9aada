package handlers

import (
	"github.com/Ayewealth/coursehub/database"
	"github.com/Ayewealth/coursehub/models"
	"github.com/Ayewealth/coursehub/services"
	"github.com/Ayewealth/coursehub/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WatchItemResponse struct {
	ID     uint                `json:"id"`
	Course services.CartCourse `json:"course"`
}

type WatchListResponse struct {
	ID    uuid.UUID           `json:"id"`
	Items []WatchItemResponse `json:"items"`
}

// GetWatchList returns the caller's saved courses. Rows are surfaced as-is:
// no grouping and no quantity, duplicates included.
func GetWatchList(c *fiber.Ctx) error {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		return err
	}

	var watchlist models.WatchList
	if err := database.DB.Where("user_id = ?", userID).
		FirstOrCreate(&watchlist, models.WatchList{UserID: &userID}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load watchlist"})
	}

	var items []models.WatchItem
	if err := database.DB.Preload("Course").Preload("Course.Instructor").
		Where("watch_list_id = ?", watchlist.ID).Order("id").Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load watchlist items"})
	}

	response := WatchListResponse{ID: watchlist.ID, Items: make([]WatchItemResponse, 0, len(items))}
	for _, item := range items {
		response.Items = append(response.Items, WatchItemResponse{
			ID:     item.ID,
			Course: services.NewCartCourse(item.Course),
		})
	}

	return c.JSON(response)
}

// AddWatchItem saves a course to the caller's watchlist. There is no
// duplicate check here: adding the same course twice creates two rows.
func AddWatchItem(c *fiber.Ctx) error {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		return err
	}

	var req cartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "course_id is required"})
	}

	var course models.Course
	if err := database.DB.Where("id = ?", req.CourseID).First(&course).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var watchlist models.WatchList
		if err := tx.Where("user_id = ?", userID).
			FirstOrCreate(&watchlist, models.WatchList{UserID: &userID}).Error; err != nil {
			return err
		}
		return tx.Create(&models.WatchItem{WatchListID: watchlist.ID, CourseID: course.ID}).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add item to watchlist"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"detail": "Item added to watchlist"})
}

// RemoveWatchItem deletes exactly one row matching the course, so each add
// needs its own remove.
func RemoveWatchItem(c *fiber.Ctx) error {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		return err
	}

	var req cartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "course_id is required"})
	}

	var watchlist models.WatchList
	if err := database.DB.Where("user_id = ?", userID).First(&watchlist).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found in watchlist"})
	}

	var item models.WatchItem
	if err := database.DB.Where("watch_list_id = ? AND course_id = ?", watchlist.ID, req.CourseID).
		Order("id").First(&item).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found in watchlist"})
	}

	if err := database.DB.Delete(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to remove item from watchlist"})
	}

	return c.JSON(fiber.Map{"detail": "Item removed from watchlist"})
}
