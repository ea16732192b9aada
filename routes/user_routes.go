package routes

import (
	"github.com/Ayewealth/coursehub/handlers"
	"github.com/Ayewealth/coursehub/middleware"
	"github.com/gofiber/fiber/v2"
)

func UserRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	users := api.Group("/users")
	users.Post("", handlers.RegisterStudent)
	users.Get("", handlers.ListStudents)
	users.Get("/:id", handlers.GetUser)
	users.Put("/:id", middleware.Protected(), handlers.UpdateUser)
	users.Delete("/:id", middleware.Protected(), middleware.StaffRequired(), handlers.DeleteUser)

	instructors := api.Group("/instructors")
	instructors.Post("", handlers.RegisterInstructor)
	instructors.Get("", handlers.ListInstructors)
	instructors.Get("/:id", handlers.GetUser)
	instructors.Put("/:id", middleware.Protected(), handlers.UpdateUser)
	instructors.Delete("/:id", middleware.Protected(), middleware.StaffRequired(), handlers.DeleteUser)
}
