package routes

import (
	"github.com/Ayewealth/coursehub/handlers"
	"github.com/Ayewealth/coursehub/middleware"
	"github.com/gofiber/fiber/v2"
)

func CourseRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	courses := api.Group("/courses")
	courses.Get("", handlers.ListCourses)
	courses.Get("/:id", handlers.GetCourse)
	courses.Post("", middleware.Protected(), handlers.CreateCourse)
	courses.Put("/:id", middleware.Protected(), handlers.UpdateCourse)
	courses.Delete("/:id", middleware.Protected(), handlers.DeleteCourse)
}
