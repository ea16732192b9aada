package services

import (
	"github.com/Ayewealth/coursehub/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProvisionUserRoles creates the profile rows and group memberships that
// match a user's role flags. The registration handlers call it inside the
// same transaction that creates the user, and the assignroles command calls
// it to backfill existing accounts.
//
// Every step is a no-op when its row already exists, so re-running is safe:
// a user with IsStudent set ends up with exactly one StudentProfile and one
// "Student" membership no matter how often this runs. A user with both
// flags set is provisioned for both roles; with neither, nothing happens
// and the profile lookups on that account will report not found.
func ProvisionUserRoles(tx *gorm.DB, user *models.User) error {
	if user.IsInstructor {
		profile := models.InstructorProfile{UserID: user.ID}
		if err := tx.Where("user_id = ?", user.ID).FirstOrCreate(&profile).Error; err != nil {
			return err
		}
		if err := addToGroup(tx, user, models.GroupInstructor); err != nil {
			return err
		}
	}

	if user.IsStudent {
		profile := models.StudentProfile{UserID: user.ID}
		if err := tx.Where("user_id = ?", user.ID).FirstOrCreate(&profile).Error; err != nil {
			return err
		}
		if err := addToGroup(tx, user, models.GroupStudent); err != nil {
			return err
		}
	}

	return nil
}

func addToGroup(tx *gorm.DB, user *models.User, name string) error {
	var group models.Group
	if err := tx.Where("name = ?", name).FirstOrCreate(&group, models.Group{Name: name}).Error; err != nil {
		return err
	}
	return tx.Model(&group).Association("Users").Append(user)
}

// IsInGroup reports whether the user belongs to the named group. The course
// creation handler uses it to gate instructor-only actions.
func IsInGroup(tx *gorm.DB, userID uuid.UUID, name string) (bool, error) {
	var count int64
	err := tx.Table("user_groups").
		Joins("JOIN groups ON groups.id = user_groups.group_id").
		Where("user_groups.user_id = ? AND groups.name = ?", userID, name).
		Count(&count).Error
	return count > 0, err
}
