package routes

import (
	"github.com/Ayewealth/coursehub/handlers"
	"github.com/Ayewealth/coursehub/middleware"
	"github.com/gofiber/fiber/v2"
)

func WatchListRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	watchlist := api.Group("/watch-list", middleware.Protected())
	watchlist.Get("", handlers.GetWatchList)
	watchlist.Post("/add-item", handlers.AddWatchItem)
	watchlist.Delete("/remove-item", handlers.RemoveWatchItem)
}
