package handlers

import (
	"net/http"
	"testing"

	"github.com/Ayewealth/coursehub/database"
	"github.com/Ayewealth/coursehub/models"
	"github.com/gofiber/fiber/v2"
)

func TestRegisterStudent_ProvisionsProfileAndGroup(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/v1/users", "",
		fiber.Map{"email": "new@example.com", "password": "secret123", "name": "New Student"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var user models.User
	if err := database.DB.Where("email = ?", "new@example.com").First(&user).Error; err != nil {
		t.Fatalf("registered user not found: %v", err)
	}
	if !user.IsStudent || user.IsInstructor {
		t.Fatalf("expected the student flag forced on, got student=%v instructor=%v", user.IsStudent, user.IsInstructor)
	}

	var profiles int64
	database.DB.Model(&models.StudentProfile{}).Where("user_id = ?", user.ID).Count(&profiles)
	if profiles != 1 {
		t.Fatalf("expected exactly 1 student profile, got %d", profiles)
	}

	var memberships int64
	database.DB.Table("user_groups").
		Joins("JOIN groups ON groups.id = user_groups.group_id").
		Where("user_groups.user_id = ? AND groups.name = ?", user.ID, models.GroupStudent).
		Count(&memberships)
	if memberships != 1 {
		t.Fatalf("expected 1 Student group membership, got %d", memberships)
	}
}

func TestRegisterInstructor_ProvisionsInstructorSide(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/v1/instructors", "",
		fiber.Map{"email": "teach@example.com", "password": "secret123"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var user models.User
	if err := database.DB.Where("email = ?", "teach@example.com").First(&user).Error; err != nil {
		t.Fatalf("registered user not found: %v", err)
	}
	if !user.IsInstructor || user.IsStudent {
		t.Fatalf("expected the instructor flag forced on, got student=%v instructor=%v", user.IsStudent, user.IsInstructor)
	}

	var profiles int64
	database.DB.Model(&models.InstructorProfile{}).Where("user_id = ?", user.ID).Count(&profiles)
	if profiles != 1 {
		t.Fatalf("expected exactly 1 instructor profile, got %d", profiles)
	}
}

func TestRegisterStudent_DuplicateEmail(t *testing.T) {
	app := newTestApp(t)

	body := fiber.Map{"email": "dup@example.com", "password": "secret123"}

	resp := doJSON(t, app, fiber.MethodPost, "/api/v1/users", "", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 on first registration, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, fiber.MethodPost, "/api/v1/users", "", body)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate email, got %d", resp.StatusCode)
	}
}

func TestListStudents_OnlyStudents(t *testing.T) {
	app := newTestApp(t)
	seedUser(t, "student@example.com", false, true)
	seedUser(t, "teach@example.com", true, false)

	resp := doJSON(t, app, fiber.MethodGet, "/api/v1/users", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var users []models.User
	decodeBody(t, resp, &users)
	if len(users) != 1 {
		t.Fatalf("expected 1 student, got %d", len(users))
	}
	if users[0].Email != "student@example.com" {
		t.Fatalf("unexpected student %q", users[0].Email)
	}
}
