package routes

import (
	"github.com/Ayewealth/coursehub/handlers"
	"github.com/Ayewealth/coursehub/middleware"
	"github.com/gofiber/fiber/v2"
)

func BlogRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	blogs := api.Group("/blogs")
	blogs.Get("", handlers.ListBlogs)
	blogs.Get("/:id", handlers.GetBlog)
	blogs.Post("", middleware.Protected(), handlers.CreateBlog)
	blogs.Delete("/:id", middleware.Protected(), handlers.DeleteBlog)
}
