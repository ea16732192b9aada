package handlers

import (
	"net/http"
	"testing"

	"github.com/Ayewealth/coursehub/database"
	"github.com/Ayewealth/coursehub/models"
	"github.com/gofiber/fiber/v2"
)

func TestCreateReview_MissingCourseID(t *testing.T) {
	app := newTestApp(t)
	student := seedUser(t, "student@example.com", false, true)
	token := tokenFor(t, student)

	resp := doJSON(t, app, fiber.MethodPost, "/api/v1/reviews", token,
		fiber.Map{"rating": 4, "comment": "Great course"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestCreateReview_UnknownCourse(t *testing.T) {
	app := newTestApp(t)
	student := seedUser(t, "student@example.com", false, true)
	token := tokenFor(t, student)

	resp := doJSON(t, app, fiber.MethodPost, "/api/v1/reviews", token,
		fiber.Map{"course_id": "7a9f1f6c-08a1-4f0e-9a43-0f6fbe7a8f11", "rating": 4, "comment": "x"})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestCreateReview_SameUserMayReviewTwice(t *testing.T) {
	app := newTestApp(t)
	instructor := seedUser(t, "teach@example.com", true, false)
	course := seedCourse(t, instructor, "Course A", 25.50)
	student := seedUser(t, "student@example.com", false, true)
	token := tokenFor(t, student)

	body := fiber.Map{"course_id": course.ID.String(), "rating": 5, "comment": "Loved it"}

	for range 2 {
		resp := doJSON(t, app, fiber.MethodPost, "/api/v1/reviews", token, body)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201, got %d", resp.StatusCode)
		}
	}

	var count int64
	database.DB.Model(&models.Review{}).
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).Count(&count)
	if count != 2 {
		t.Fatalf("expected 2 reviews, got %d", count)
	}
}

func TestListReviews_FiltersByCourse(t *testing.T) {
	app := newTestApp(t)
	instructor := seedUser(t, "teach@example.com", true, false)
	courseA := seedCourse(t, instructor, "Course A", 25.50)
	courseB := seedCourse(t, instructor, "Course B", 10.00)
	student := seedUser(t, "student@example.com", false, true)
	token := tokenFor(t, student)

	doJSON(t, app, fiber.MethodPost, "/api/v1/reviews", token,
		fiber.Map{"course_id": courseA.ID.String(), "rating": 5, "comment": "A"})
	doJSON(t, app, fiber.MethodPost, "/api/v1/reviews", token,
		fiber.Map{"course_id": courseB.ID.String(), "rating": 2, "comment": "B"})

	resp := doJSON(t, app, fiber.MethodGet, "/api/v1/reviews?course_id="+courseA.ID.String(), "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var reviews []ReviewResponse
	decodeBody(t, resp, &reviews)
	if len(reviews) != 1 {
		t.Fatalf("expected 1 review for course A, got %d", len(reviews))
	}
	if reviews[0].Course != "Course A" {
		t.Fatalf("expected review for Course A, got %q", reviews[0].Course)
	}
}
