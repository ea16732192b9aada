package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Cart struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid" json:"user_id"`
	Completed bool       `gorm:"default:false" json:"completed"`

	Items []CartItem `gorm:"foreignkey:CartID" json:"-"`

	Created time.Time `gorm:"autoCreateTime" json:"created"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// One row per add-to-cart action; there is no quantity column. The unique
// index backs the duplicate check in the add-item handler.
type CartItem struct {
	ID       uint      `gorm:"primary_key" json:"id"`
	CartID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_course" json:"cart_id"`
	CourseID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_course" json:"course_id"`

	Course Course `gorm:"foreignkey:CourseID" json:"course"`
}
