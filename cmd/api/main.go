package main

import (
	"log"
	"time"

	"github.com/Ayewealth/coursehub/database"
	"github.com/Ayewealth/coursehub/jobs"
	"github.com/Ayewealth/coursehub/notifications"
	"github.com/Ayewealth/coursehub/routes"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	database.ConnectDB()
	database.Migrate()
	database.SeedAdmin()
	notifications.InitEmailService()

	c := cron.New()
	c.AddFunc("0 * * * *", jobs.PurgeAbandonedCarts)
	go c.Start()
	log.Println("✅ Cron job for cart cleanup scheduled successfully.")

	app := fiber.New(fiber.Config{
		Prefork:           false,
		AppName:           "CourseHub",
		CaseSensitive:     true,
		StrictRouting:     true,
		EnablePrintRoutes: true,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON([]string{
			"/api/v1/users", "/api/v1/users/:id",
			"/api/v1/instructors", "/api/v1/instructors/:id",
			"/api/v1/student-profiles", "/api/v1/instructor-profiles",
			"/api/v1/courses", "/api/v1/courses/:id",
			"/api/v1/cart", "/api/v1/watch-list",
			"/api/v1/reviews", "/api/v1/blogs",
		})
	})

	routes.AuthRoutes(app)
	routes.UserRoutes(app)
	routes.ProfileRoutes(app)
	routes.CourseRoutes(app)
	routes.CartRoutes(app)
	routes.WatchListRoutes(app)
	routes.ReviewRoutes(app)
	routes.BlogRoutes(app)
	routes.UploadRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	log.Println("✅ Server is running on port 8080")
	err := app.Listen(":8080")
	if err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
