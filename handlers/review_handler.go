package handlers

import (
	"github.com/Ayewealth/coursehub/database"
	"github.com/Ayewealth/coursehub/models"
	"github.com/Ayewealth/coursehub/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	CourseID string `json:"course_id" validate:"required,uuid"`
	Rating   uint   `json:"rating"`
	Comment  string `json:"comment"`
}

type ReviewResponse struct {
	ID      uuid.UUID `json:"id"`
	User    string    `json:"user"`
	Course  string    `json:"course"`
	Rating  uint      `json:"rating"`
	Comment string    `json:"comment"`
}

func newReviewResponse(review models.Review) ReviewResponse {
	return ReviewResponse{
		ID:      review.ID,
		User:    displayName(&review.User),
		Course:  review.Course.Title,
		Rating:  review.Rating,
		Comment: review.Comment,
	}
}

// CreateReview records a rating and comment for a course. Nothing stops a
// user from reviewing the same course more than once, and the rating value
// is stored as sent.
func CreateReview(c *fiber.Ctx) error {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		return err
	}

	var req CreateReviewRequest
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

	review := models.Review{
		UserID:   userID,
		CourseID: course.ID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}
	if err := database.DB.Create(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create review"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"detail": "Review added"})
}

func ListReviews(c *fiber.Ctx) error {
	query := database.DB.Preload("User").Preload("Course").Order("created_at")

	if courseID := c.Query("course_id"); courseID != "" {
		query = query.Where("course_id = ?", courseID)
	}

	var reviews []models.Review
	if err := query.Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list reviews"})
	}

	response := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		response = append(response, newReviewResponse(review))
	}

	return c.JSON(response)
}

func GetReview(c *fiber.Ctx) error {
	var review models.Review
	if err := database.DB.Preload("User").Preload("Course").
		Where("id = ?", c.Params("id")).First(&review).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
	}
	return c.JSON(newReviewResponse(review))
}

// DeleteReview lets a review's author take it down.
func DeleteReview(c *fiber.Ctx) error {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		return err
	}

	var review models.Review
	if err := database.DB.Where("id = ?", c.Params("id")).First(&review).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
	}

	if review.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You can only delete your own reviews"})
	}

	if err := database.DB.Delete(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete review"})
	}

	return c.JSON(fiber.Map{"detail": "Review removed"})
}
