package handlers

import (
	"github.com/Ayewealth/coursehub/database"
	"github.com/Ayewealth/coursehub/models"
	"github.com/Ayewealth/coursehub/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type StudentProfileResponse struct {
	ID          uuid.UUID          `json:"id"`
	ProfilePics string             `json:"profile_pics"`
	User        models.User        `json:"user"`
	Bio         *string            `json:"bio"`
	Cart        *CartResponse      `json:"cart"`
	WatchList   *WatchListResponse `json:"watchlist"`
}

type InstructorProfileResponse struct {
	ID            uuid.UUID          `json:"id"`
	ProfilePics   string             `json:"profile_pics"`
	User          models.User        `json:"user"`
	Bio           *string            `json:"bio"`
	Cart          *CartResponse      `json:"cart"`
	WatchList     *WatchListResponse `json:"watchlist"`
	BankName      *string            `json:"bank_name"`
	AccountName   *string            `json:"account_name"`
	AccountNumber *string            `json:"account_number"`
	Courses       []CourseResponse   `json:"courses"`
}

// cartForUser loads and aggregates the user's active cart, nil when the
// user has never had one.
func cartForUser(userID uuid.UUID) *CartResponse {
	var cart models.Cart
	if err := database.DB.Where("user_id = ? AND completed = ?", userID, false).First(&cart).Error; err != nil {
		return nil
	}

	var items []models.CartItem
	database.DB.Preload("Course").Preload("Course.Instructor").
		Where("cart_id = ?", cart.ID).Order("id").Find(&items)

	lines, total := services.AggregateCart(items)
	return &CartResponse{ID: cart.ID, Items: lines, TotalPrice: total}
}

func watchlistForUser(userID uuid.UUID) *WatchListResponse {
	var watchlist models.WatchList
	if err := database.DB.Where("user_id = ?", userID).First(&watchlist).Error; err != nil {
		return nil
	}

	var items []models.WatchItem
	database.DB.Preload("Course").Preload("Course.Instructor").
		Where("watch_list_id = ?", watchlist.ID).Order("id").Find(&items)

	response := WatchListResponse{ID: watchlist.ID, Items: make([]WatchItemResponse, 0, len(items))}
	for _, item := range items {
		response.Items = append(response.Items, WatchItemResponse{
			ID:     item.ID,
			Course: services.NewCartCourse(item.Course),
		})
	}
	return &response
}

func newStudentProfileResponse(profile models.StudentProfile) StudentProfileResponse {
	return StudentProfileResponse{
		ID:          profile.ID,
		ProfilePics: profile.ProfilePics,
		User:        profile.User,
		Bio:         profile.Bio,
		Cart:        cartForUser(profile.UserID),
		WatchList:   watchlistForUser(profile.UserID),
	}
}

func newInstructorProfileResponse(profile models.InstructorProfile) InstructorProfileResponse {
	var courses []models.Course
	database.DB.Preload("Instructor").
		Preload("Reviews").Preload("Reviews.User").Preload("Reviews.Course").
		Where("instructor_id = ?", profile.UserID).
		Order("created_at, updated_at").Find(&courses)

	courseResponses := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		courseResponses = append(courseResponses, newCourseResponse(course))
	}

	return InstructorProfileResponse{
		ID:            profile.ID,
		ProfilePics:   profile.ProfilePics,
		User:          profile.User,
		Bio:           profile.Bio,
		Cart:          cartForUser(profile.UserID),
		WatchList:     watchlistForUser(profile.UserID),
		BankName:      profile.BankName,
		AccountName:   profile.AccountName,
		AccountNumber: profile.AccountNumber,
		Courses:       courseResponses,
	}
}

func ListStudentProfiles(c *fiber.Ctx) error {
	var profiles []models.StudentProfile
	if err := database.DB.Preload("User").Find(&profiles).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list profiles"})
	}

	response := make([]StudentProfileResponse, 0, len(profiles))
	for _, profile := range profiles {
		response = append(response, newStudentProfileResponse(profile))
	}
	return c.JSON(response)
}

func GetStudentProfile(c *fiber.Ctx) error {
	var profile models.StudentProfile
	if err := database.DB.Preload("User").Where("id = ?", c.Params("id")).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
	}
	return c.JSON(newStudentProfileResponse(profile))
}

type UpdateProfileRequest struct {
	ProfilePics   *string `json:"profile_pics"`
	Bio           *string `json:"bio"`
	BankName      *string `json:"bank_name"`
	AccountName   *string `json:"account_name"`
	AccountNumber *string `json:"account_number"`
}

func UpdateStudentProfile(c *fiber.Ctx) error {
	var profile models.StudentProfile
	if err := database.DB.Preload("User").Where("id = ?", c.Params("id")).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.ProfilePics != nil {
		profile.ProfilePics = *req.ProfilePics
	}
	if req.Bio != nil {
		profile.Bio = req.Bio
	}

	if err := database.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(newStudentProfileResponse(profile))
}

func ListInstructorProfiles(c *fiber.Ctx) error {
	var profiles []models.InstructorProfile
	if err := database.DB.Preload("User").Find(&profiles).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list profiles"})
	}

	response := make([]InstructorProfileResponse, 0, len(profiles))
	for _, profile := range profiles {
		response = append(response, newInstructorProfileResponse(profile))
	}
	return c.JSON(response)
}

func GetInstructorProfile(c *fiber.Ctx) error {
	var profile models.InstructorProfile
	if err := database.DB.Preload("User").Where("id = ?", c.Params("id")).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
	}
	return c.JSON(newInstructorProfileResponse(profile))
}

func UpdateInstructorProfile(c *fiber.Ctx) error {
	var profile models.InstructorProfile
	if err := database.DB.Preload("User").Where("id = ?", c.Params("id")).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.ProfilePics != nil {
		profile.ProfilePics = *req.ProfilePics
	}
	if req.Bio != nil {
		profile.Bio = req.Bio
	}
	if req.BankName != nil {
		profile.BankName = req.BankName
	}
	if req.AccountName != nil {
		profile.AccountName = req.AccountName
	}
	if req.AccountNumber != nil {
		profile.AccountNumber = req.AccountNumber
	}

	if err := database.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(newInstructorProfileResponse(profile))
}
