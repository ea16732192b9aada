package handlers

import (
	"errors"

	"github.com/Ayewealth/coursehub/database"
	"github.com/Ayewealth/coursehub/models"
	"github.com/Ayewealth/coursehub/services"
	"github.com/Ayewealth/coursehub/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errCourseInCart = errors.New("course is already in the cart")

type cartItemRequest struct {
	CourseID string `json:"course_id" validate:"required,uuid"`
}

type CartResponse struct {
	ID         uuid.UUID           `json:"id"`
	Items      []services.CartLine `json:"items"`
	TotalPrice float64             `json:"total_price"`
}

// GetCart returns the caller's active cart in aggregated form: one line per
// distinct course with its quantity, plus the order total.
func GetCart(c *fiber.Ctx) error {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		return err
	}

	var cart models.Cart
	if err := database.DB.Where("user_id = ? AND completed = ?", userID, false).
		FirstOrCreate(&cart, models.Cart{UserID: &userID}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load cart"})
	}

	var items []models.CartItem
	if err := database.DB.Preload("Course").Preload("Course.Instructor").
		Where("cart_id = ?", cart.ID).Order("id").Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load cart items"})
	}

	lines, total := services.AggregateCart(items)

	return c.JSON(CartResponse{ID: cart.ID, Items: lines, TotalPrice: total})
}

// AddCartItem puts a course into the caller's active cart. A course can sit
// in a cart only once; re-adding it is a conflict. The find-or-create of
// the cart and the duplicate check run in one transaction, and the unique
// index on (cart_id, course_id) catches whatever still slips through.
func AddCartItem(c *fiber.Ctx) error {
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
		var cart models.Cart
		if err := tx.Where("user_id = ? AND completed = ?", userID, false).
			FirstOrCreate(&cart, models.Cart{UserID: &userID}).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.CartItem{}).
			Where("cart_id = ? AND course_id = ?", cart.ID, course.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errCourseInCart
		}

		return tx.Create(&models.CartItem{CartID: cart.ID, CourseID: course.ID}).Error
	})
	if err != nil {
		if errors.Is(err, errCourseInCart) || errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Course is already in the cart"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add item to cart"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"detail": "Item added to cart"})
}

// RemoveCartItem deletes one line-item matching the course from the
// caller's active cart.
func RemoveCartItem(c *fiber.Ctx) error {
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

	var cart models.Cart
	if err := database.DB.Where("user_id = ? AND completed = ?", userID, false).First(&cart).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found in cart"})
	}

	var item models.CartItem
	if err := database.DB.Where("cart_id = ? AND course_id = ?", cart.ID, req.CourseID).
		Order("id").First(&item).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found in cart"})
	}

	if err := database.DB.Delete(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to remove item from cart"})
	}

	return c.JSON(fiber.Map{"detail": "Item removed from cart"})
}
