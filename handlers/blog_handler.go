package handlers

import (
	"github.com/Ayewealth/coursehub/database"
	"github.com/Ayewealth/coursehub/models"
	"github.com/Ayewealth/coursehub/utils"
	"github.com/gofiber/fiber/v2"
)

type CreateBlogRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

func ListBlogs(c *fiber.Ctx) error {
	var blogs []models.Blog
	if err := database.DB.Order("created_at").Find(&blogs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list blogs"})
	}
	return c.JSON(blogs)
}

func CreateBlog(c *fiber.Ctx) error {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		return err
	}

	var req CreateBlogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	blog := models.Blog{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: userID,
	}
	if err := database.DB.Create(&blog).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create blog"})
	}

	return c.Status(fiber.StatusCreated).JSON(blog)
}

func GetBlog(c *fiber.Ctx) error {
	var blog models.Blog
	if err := database.DB.Where("id = ?", c.Params("id")).First(&blog).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Blog not found"})
	}
	return c.JSON(blog)
}

func DeleteBlog(c *fiber.Ctx) error {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		return err
	}

	var blog models.Blog
	if err := database.DB.Where("id = ?", c.Params("id")).First(&blog).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Blog not found"})
	}

	if blog.AuthorID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You can only delete your own blogs"})
	}

	if err := database.DB.Delete(&blog).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete blog"})
	}

	return c.JSON(fiber.Map{"detail": "Blog deleted"})
}
