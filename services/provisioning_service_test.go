package services

import (
	"testing"

	"github.com/Ayewealth/coursehub/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	// The pool must stay on one connection or each new connection gets
	// its own empty in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
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

	return db
}

func createUser(t *testing.T, db *gorm.DB, email string, isInstructor, isStudent bool) *models.User {
	t.Helper()

	user := models.User{
		Email:        email,
		Password:     "hashed",
		IsInstructor: isInstructor,
		IsStudent:    isStudent,
		IsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return &user
}

func countRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()

	var count int64
	if err := db.Model(model).Where(query, args...).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}

func TestProvisionUserRoles_Student(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "student@example.com", false, true)

	if err := ProvisionUserRoles(db, user); err != nil {
		t.Fatalf("provisioning failed: %v", err)
	}

	if n := countRows(t, db, &models.StudentProfile{}, "user_id = ?", user.ID); n != 1 {
		t.Fatalf("expected 1 student profile, got %d", n)
	}
	if n := countRows(t, db, &models.InstructorProfile{}, "user_id = ?", user.ID); n != 0 {
		t.Fatalf("expected no instructor profile, got %d", n)
	}

	inGroup, err := IsInGroup(db, user.ID, models.GroupStudent)
	if err != nil {
		t.Fatalf("group lookup failed: %v", err)
	}
	if !inGroup {
		t.Fatalf("expected membership in the Student group")
	}
}

func TestProvisionUserRoles_RepeatRunAddsNothing(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "student@example.com", false, true)

	for range 3 {
		if err := ProvisionUserRoles(db, user); err != nil {
			t.Fatalf("provisioning failed: %v", err)
		}
	}

	if n := countRows(t, db, &models.StudentProfile{}, "user_id = ?", user.ID); n != 1 {
		t.Fatalf("expected 1 student profile after repeat runs, got %d", n)
	}

	var memberships int64
	if err := db.Table("user_groups").Where("user_id = ?", user.ID).Count(&memberships).Error; err != nil {
		t.Fatalf("failed to count memberships: %v", err)
	}
	if memberships != 1 {
		t.Fatalf("expected 1 group membership after repeat runs, got %d", memberships)
	}

	if n := countRows(t, db, &models.Group{}, "name = ?", models.GroupStudent); n != 1 {
		t.Fatalf("expected a single Student group row, got %d", n)
	}
}

func TestProvisionUserRoles_Instructor(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "instructor@example.com", true, false)

	if err := ProvisionUserRoles(db, user); err != nil {
		t.Fatalf("provisioning failed: %v", err)
	}

	if n := countRows(t, db, &models.InstructorProfile{}, "user_id = ?", user.ID); n != 1 {
		t.Fatalf("expected 1 instructor profile, got %d", n)
	}

	inGroup, err := IsInGroup(db, user.ID, models.GroupInstructor)
	if err != nil {
		t.Fatalf("group lookup failed: %v", err)
	}
	if !inGroup {
		t.Fatalf("expected membership in the Instructor group")
	}
}

func TestProvisionUserRoles_BothRoles(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "hybrid@example.com", true, true)

	if err := ProvisionUserRoles(db, user); err != nil {
		t.Fatalf("provisioning failed: %v", err)
	}

	if n := countRows(t, db, &models.InstructorProfile{}, "user_id = ?", user.ID); n != 1 {
		t.Fatalf("expected 1 instructor profile, got %d", n)
	}
	if n := countRows(t, db, &models.StudentProfile{}, "user_id = ?", user.ID); n != 1 {
		t.Fatalf("expected 1 student profile, got %d", n)
	}

	for _, group := range []string{models.GroupInstructor, models.GroupStudent} {
		inGroup, err := IsInGroup(db, user.ID, group)
		if err != nil {
			t.Fatalf("group lookup failed: %v", err)
		}
		if !inGroup {
			t.Fatalf("expected membership in the %s group", group)
		}
	}
}

func TestProvisionUserRoles_NoRoles(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "nobody@example.com", false, false)

	if err := ProvisionUserRoles(db, user); err != nil {
		t.Fatalf("provisioning failed: %v", err)
	}

	if n := countRows(t, db, &models.StudentProfile{}, "user_id = ?", user.ID); n != 0 {
		t.Fatalf("expected no student profile, got %d", n)
	}
	if n := countRows(t, db, &models.InstructorProfile{}, "user_id = ?", user.ID); n != 0 {
		t.Fatalf("expected no instructor profile, got %d", n)
	}
	if n := countRows(t, db, &models.Group{}, "1 = 1"); n != 0 {
		t.Fatalf("expected no groups created, got %d", n)
	}
}
