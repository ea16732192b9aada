package routes

import (
	"github.com/Ayewealth/coursehub/handlers"
	"github.com/Ayewealth/coursehub/middleware"
	"github.com/gofiber/fiber/v2"
)

func CartRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	cart := api.Group("/cart", middleware.Protected())
	cart.Get("", handlers.GetCart)
	cart.Post("/add-item", handlers.AddCartItem)
	cart.Delete("/remove-item", handlers.RemoveCartItem)
}
