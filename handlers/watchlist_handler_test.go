package handlers

import (
	"net/http"
	"testing"

	"github.com/Ayewealth/coursehub/database"
	"github.com/Ayewealth/coursehub/models"
	"github.com/gofiber/fiber/v2"
)

func TestAddWatchItem_AllowsDuplicates(t *testing.T) {
	app := newTestApp(t)
	instructor := seedUser(t, "teach@example.com", true, false)
	course := seedCourse(t, instructor, "Course A", 25.50)
	student := seedUser(t, "student@example.com", false, true)
	token := tokenFor(t, student)

	body := fiber.Map{"course_id": course.ID.String()}

	for range 2 {
		resp := doJSON(t, app, fiber.MethodPost, "/api/v1/watch-list/add-item", token, body)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201, got %d", resp.StatusCode)
		}
	}

	var count int64
	database.DB.Model(&models.WatchItem{}).Where("course_id = ?", course.ID).Count(&count)
	if count != 2 {
		t.Fatalf("expected 2 watchlist rows, got %d", count)
	}

	resp := doJSON(t, app, fiber.MethodGet, "/api/v1/watch-list", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var watchlist WatchListResponse
	decodeBody(t, resp, &watchlist)
	if len(watchlist.Items) != 2 {
		t.Fatalf("expected both rows surfaced as-is, got %d", len(watchlist.Items))
	}
}

func TestRemoveWatchItem_RemovesOneRowPerCall(t *testing.T) {
	app := newTestApp(t)
	instructor := seedUser(t, "teach@example.com", true, false)
	course := seedCourse(t, instructor, "Course A", 25.50)
	student := seedUser(t, "student@example.com", false, true)
	token := tokenFor(t, student)

	body := fiber.Map{"course_id": course.ID.String()}

	for range 2 {
		doJSON(t, app, fiber.MethodPost, "/api/v1/watch-list/add-item", token, body)
	}

	resp := doJSON(t, app, fiber.MethodDelete, "/api/v1/watch-list/remove-item", token, body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 on first removal, got %d", resp.StatusCode)
	}

	var count int64
	database.DB.Model(&models.WatchItem{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 row after first removal, got %d", count)
	}

	resp = doJSON(t, app, fiber.MethodDelete, "/api/v1/watch-list/remove-item", token, body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 on second removal, got %d", resp.StatusCode)
	}

	database.DB.Model(&models.WatchItem{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no rows after second removal, got %d", count)
	}

	resp = doJSON(t, app, fiber.MethodDelete, "/api/v1/watch-list/remove-item", token, body)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 once the list is empty, got %d", resp.StatusCode)
	}
}

func TestAddWatchItem_UnknownCourse(t *testing.T) {
	app := newTestApp(t)
	student := seedUser(t, "student@example.com", false, true)
	token := tokenFor(t, student)

	resp := doJSON(t, app, fiber.MethodPost, "/api/v1/watch-list/add-item", token,
		fiber.Map{"course_id": "7a9f1f6c-08a1-4f0e-9a43-0f6fbe7a8f11"})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
