package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Authorization groups. Course creation is gated on membership in the
// "Instructor" group rather than on the raw role flag.
const (
	GroupInstructor = "Instructor"
	GroupStudent    = "Student"
)

type Group struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name  string    `gorm:"size:150;not null;unique" json:"name"`
	Users []*User   `gorm:"many2many:user_groups;" json:"-"`
}

func (g *Group) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
