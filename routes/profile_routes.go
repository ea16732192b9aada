package routes

import (
	"github.com/Ayewealth/coursehub/handlers"
	"github.com/Ayewealth/coursehub/middleware"
	"github.com/gofiber/fiber/v2"
)

func ProfileRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	students := api.Group("/student-profiles", middleware.Protected())
	students.Get("", handlers.ListStudentProfiles)
	students.Get("/:id", handlers.GetStudentProfile)
	students.Put("/:id", handlers.UpdateStudentProfile)

	instructors := api.Group("/instructor-profiles", middleware.Protected())
	instructors.Get("", handlers.ListInstructorProfiles)
	instructors.Get("/:id", handlers.GetInstructorProfile)
	instructors.Put("/:id", handlers.UpdateInstructorProfile)
}
