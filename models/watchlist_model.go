package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WatchList struct {
	ID     uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID *uuid.UUID `gorm:"type:uuid" json:"user_id"`

	Items []WatchItem `gorm:"foreignkey:WatchListID" json:"-"`

	Created time.Time `gorm:"autoCreateTime" json:"created"`
}

func (w *WatchList) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// Unlike cart items, repeated adds of the same course are allowed and each
// row is removable on its own.
type WatchItem struct {
	ID          uint      `gorm:"primary_key" json:"id"`
	WatchListID uuid.UUID `gorm:"type:uuid;not null;index" json:"watch_list_id"`
	CourseID    uuid.UUID `gorm:"type:uuid;not null" json:"course_id"`

	Course Course `gorm:"foreignkey:CourseID" json:"course"`
}
