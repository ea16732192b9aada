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

type CreateCourseRequest struct {
	Title            string  `json:"title" validate:"required"`
	Image            *string `json:"image"`
	WhatYouLearn     *string `json:"what_you_learn"`
	Requirements     *string `json:"requirements"`
	Description      *string `json:"description"`
	TargetedAudience *string `json:"targeted_audience"`
	Price            float64 `json:"price" validate:"gte=0"`
	DurationInHours  uint    `json:"duration_in_hours" validate:"required"`
}

type CourseResponse struct {
	ID               uuid.UUID        `json:"id"`
	Image            *string          `json:"image"`
	Title            string           `json:"title"`
	WhatYouLearn     *string          `json:"what_you_learn"`
	Requirements     *string          `json:"requirements"`
	Description      *string          `json:"description"`
	TargetedAudience *string          `json:"targeted_audience"`
	Instructor       string           `json:"instructor"`
	Price            float64          `json:"price"`
	DurationInHours  uint             `json:"duration_in_hours"`
	Reviews          []ReviewResponse `json:"reviews"`
}

func newCourseResponse(course models.Course) CourseResponse {
	instructor := ""
	if course.Instructor.Name != nil {
		instructor = *course.Instructor.Name
	}

	reviews := make([]ReviewResponse, 0, len(course.Reviews))
	for _, review := range course.Reviews {
		reviews = append(reviews, newReviewResponse(review))
	}

	return CourseResponse{
		ID:               course.ID,
		Image:            course.Image,
		Title:            course.Title,
		WhatYouLearn:     course.WhatYouLearn,
		Requirements:     course.Requirements,
		Description:      course.Description,
		TargetedAudience: course.TargetedAudience,
		Instructor:       instructor,
		Price:            course.Price,
		DurationInHours:  course.DurationInHours,
		Reviews:          reviews,
	}
}

func ListCourses(c *fiber.Ctx) error {
	query := database.DB.Preload("Instructor").
		Preload("Reviews").Preload("Reviews.User").Preload("Reviews.Course").
		Order("created_at, updated_at")

	if title := c.Query("title"); title != "" {
		query = query.Where("title ILIKE ?", "%"+title+"%")
	}
	if instructor := c.Query("instructor"); instructor != "" {
		query = query.Joins("JOIN users ON users.id = courses.instructor_id").
			Where("users.username ILIKE ?", "%"+instructor+"%")
	}

	var courses []models.Course
	if err := query.Find(&courses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list courses"})
	}

	response := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		response = append(response, newCourseResponse(course))
	}

	return c.JSON(response)
}

// CreateCourse is instructor-only: membership in the Instructor group is
// checked against the database, not just the token claims.
func CreateCourse(c *fiber.Ctx) error {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		return err
	}

	isInstructor, err := services.IsInGroup(database.DB, userID, models.GroupInstructor)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if !isInstructor {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not allowed to create courses."})
	}

	var req CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	course := models.Course{
		Title:            req.Title,
		Image:            req.Image,
		WhatYouLearn:     req.WhatYouLearn,
		Requirements:     req.Requirements,
		Description:      req.Description,
		TargetedAudience: req.TargetedAudience,
		InstructorID:     userID,
		Price:            req.Price,
		DurationInHours:  req.DurationInHours,
	}

	if err := database.DB.Create(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create course"})
	}

	return c.Status(fiber.StatusCreated).JSON(course)
}

func GetCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := database.DB.Preload("Instructor").
		Preload("Reviews").Preload("Reviews.User").Preload("Reviews.Course").
		Where("id = ?", c.Params("id")).First(&course).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	return c.JSON(newCourseResponse(course))
}

func UpdateCourse(c *fiber.Ctx) error {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		return err
	}

	var course models.Course
	if err := database.DB.Where("id = ?", c.Params("id")).First(&course).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	if course.InstructorID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You can only update your own courses"})
	}

	type UpdateCourseRequest struct {
		Title            *string  `json:"title"`
		Image            *string  `json:"image"`
		WhatYouLearn     *string  `json:"what_you_learn"`
		Requirements     *string  `json:"requirements"`
		Description      *string  `json:"description"`
		TargetedAudience *string  `json:"targeted_audience"`
		Price            *float64 `json:"price"`
		DurationInHours  *uint    `json:"duration_in_hours"`
	}

	var req UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Image != nil {
		course.Image = req.Image
	}
	if req.WhatYouLearn != nil {
		course.WhatYouLearn = req.WhatYouLearn
	}
	if req.Requirements != nil {
		course.Requirements = req.Requirements
	}
	if req.Description != nil {
		course.Description = req.Description
	}
	if req.TargetedAudience != nil {
		course.TargetedAudience = req.TargetedAudience
	}
	if req.Price != nil {
		course.Price = *req.Price
	}
	if req.DurationInHours != nil {
		course.DurationInHours = *req.DurationInHours
	}

	if err := database.DB.Save(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update course"})
	}

	return c.JSON(course)
}

func DeleteCourse(c *fiber.Ctx) error {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		return err
	}

	var course models.Course
	if err := database.DB.Where("id = ?", c.Params("id")).First(&course).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	if course.InstructorID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You can only delete your own courses"})
	}

	if err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.WatchItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&course).Error
	}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete course"})
	}

	return c.JSON(fiber.Map{"detail": "Course deleted"})
}
