package routes

import (
	"github.com/Ayewealth/coursehub/handlers"
	"github.com/Ayewealth/coursehub/middleware"
	"github.com/gofiber/fiber/v2"
)

func ReviewRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	reviews := api.Group("/reviews")
	reviews.Get("", handlers.ListReviews)
	reviews.Get("/:id", handlers.GetReview)
	reviews.Post("", middleware.Protected(), handlers.CreateReview)
	reviews.Delete("/:id", middleware.Protected(), handlers.DeleteReview)
}
