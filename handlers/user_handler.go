package handlers

import (
	"errors"

	"github.com/Ayewealth/coursehub/database"
	"github.com/Ayewealth/coursehub/models"
	"github.com/Ayewealth/coursehub/notifications"
	"github.com/Ayewealth/coursehub/services"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Name     *string `json:"name"`
	Username *string `json:"username"`
	Password string  `json:"password" validate:"required,min=6"`
}

// RegisterStudent handles POST /users: the public sign-up endpoint. The
// student flag is forced on regardless of the request body.
func RegisterStudent(c *fiber.Ctx) error {
	return registerUser(c, false)
}

// RegisterInstructor handles POST /instructors, forcing the instructor flag.
func RegisterInstructor(c *fiber.Ctx) error {
	return registerUser(c, true)
}

func registerUser(c *fiber.Ctx, asInstructor bool) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	newUser := models.User{
		Email:        req.Email,
		Name:         req.Name,
		Username:     req.Username,
		Password:     string(hashedPassword),
		IsStudent:    !asInstructor,
		IsInstructor: asInstructor,
		IsActive:     true,
	}

	// The user row and its role side effects (profile row, group
	// membership) land together or not at all.
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}
		return services.ProvisionUserRoles(tx, &newUser)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
	}

	go notifications.SendEmail(displayName(&newUser), newUser.Email, "Welcome to CourseHub!", "<h1>Welcome!</h1><p>Thank you for registering.</p>")

	return c.Status(fiber.StatusCreated).JSON(newUser)
}

// ListStudents handles GET /users. Mirrors the student listing of the old
// API: only accounts with the student flag, optional substring search on
// username and email.
func ListStudents(c *fiber.Ctx) error {
	return listUsers(c, "is_student")
}

func ListInstructors(c *fiber.Ctx) error {
	return listUsers(c, "is_instructor")
}

func listUsers(c *fiber.Ctx, roleColumn string) error {
	query := database.DB.Where(roleColumn+" = ?", true)

	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("username ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	var users []models.User
	if err := query.Order("created_at").Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list users"})
	}

	return c.JSON(users)
}

func GetUser(c *fiber.Ctx) error {
	var user models.User
	if err := database.DB.Where("id = ?", c.Params("id")).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(user)
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Username *string `json:"username"`
	Password *string `json:"password"`
	IsActive *bool   `json:"is_active"`
}

func UpdateUser(c *fiber.Ctx) error {
	var user models.User
	if err := database.DB.Where("id = ?", c.Params("id")).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.Name != nil {
		user.Name = req.Name
	}
	if req.Username != nil {
		user.Username = req.Username
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil && *req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
		}
		user.Password = string(hashedPassword)
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user"})
	}

	return c.JSON(user)
}

// DeleteUser removes the account and everything hanging off it: profiles,
// owned courses, carts, watchlists and reviews. Constraints are not created
// by the migrator, so the cascade is spelled out here.
func DeleteUser(c *fiber.Ctx) error {
	var user models.User
	if err := database.DB.Where("id = ?", c.Params("id")).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.InstructorProfile{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.StudentProfile{}).Error; err != nil {
			return err
		}

		var courseIDs []string
		if err := tx.Model(&models.Course{}).Where("instructor_id = ?", user.ID).Pluck("id", &courseIDs).Error; err != nil {
			return err
		}
		if len(courseIDs) > 0 {
			if err := tx.Where("course_id IN ?", courseIDs).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("course_id IN ?", courseIDs).Delete(&models.WatchItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("course_id IN ?", courseIDs).Delete(&models.Review{}).Error; err != nil {
				return err
			}
			if err := tx.Where("instructor_id = ?", user.ID).Delete(&models.Course{}).Error; err != nil {
				return err
			}
		}

		var cartIDs []string
		if err := tx.Model(&models.Cart{}).Where("user_id = ?", user.ID).Pluck("id", &cartIDs).Error; err != nil {
			return err
		}
		if len(cartIDs) > 0 {
			if err := tx.Where("cart_id IN ?", cartIDs).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", user.ID).Delete(&models.Cart{}).Error; err != nil {
				return err
			}
		}

		var watchListIDs []string
		if err := tx.Model(&models.WatchList{}).Where("user_id = ?", user.ID).Pluck("id", &watchListIDs).Error; err != nil {
			return err
		}
		if len(watchListIDs) > 0 {
			if err := tx.Where("watch_list_id IN ?", watchListIDs).Delete(&models.WatchItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", user.ID).Delete(&models.WatchList{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", user.ID).Delete(&models.Blog{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&user).Association("Groups").Clear(); err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete user"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
