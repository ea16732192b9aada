package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Ayewealth/coursehub/database"
	"github.com/Ayewealth/coursehub/middleware"
	"github.com/Ayewealth/coursehub/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

// newTestApp wires an in-memory database into the package-level DB handle
// and mounts the routes under test, mirroring the route files.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// One connection only, or every new connection sees an empty database.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.InstructorProfile{},
		&models.StudentProfile{},
		&models.Course{},
		&models.Cart{},
		&models.CartItem{},
		&models.WatchList{},
		&models.WatchItem{},
		&models.Review{},
		&models.Blog{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	database.DB = db

	app := fiber.New()

	users := app.Group("/api/v1/users")
	users.Post("", RegisterStudent)
	users.Get("", ListStudents)

	instructors := app.Group("/api/v1/instructors")
	instructors.Post("", RegisterInstructor)

	cart := app.Group("/api/v1/cart", middleware.Protected())
	cart.Get("", GetCart)
	cart.Post("/add-item", AddCartItem)
	cart.Delete("/remove-item", RemoveCartItem)

	watchlist := app.Group("/api/v1/watch-list", middleware.Protected())
	watchlist.Get("", GetWatchList)
	watchlist.Post("/add-item", AddWatchItem)
	watchlist.Delete("/remove-item", RemoveWatchItem)

	reviews := app.Group("/api/v1/reviews")
	reviews.Get("", ListReviews)
	reviews.Post("", middleware.Protected(), CreateReview)

	return app
}

func seedUser(t *testing.T, email string, isInstructor, isStudent bool) *models.User {
	t.Helper()

	user := models.User{
		Email:        email,
		Password:     "hashed",
		IsInstructor: isInstructor,
		IsStudent:    isStudent,
		IsActive:     true,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return &user
}

func seedCourse(t *testing.T, instructor *models.User, title string, price float64) *models.Course {
	t.Helper()

	course := models.Course{
		Title:           title,
		InstructorID:    instructor.ID,
		Price:           price,
		DurationInHours: 12,
	}
	if err := database.DB.Create(&course).Error; err != nil {
		t.Fatalf("failed to seed course: %v", err)
	}
	return &course
}

func tokenFor(t *testing.T, user *models.User) string {
	t.Helper()

	claims := jwt.MapClaims{
		"user_id":       user.ID.String(),
		"is_instructor": user.IsInstructor,
		"is_student":    user.IsStudent,
		"is_staff":      user.IsStaff,
		"exp":           time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}
