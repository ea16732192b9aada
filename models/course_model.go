package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Course struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Image            *string   `gorm:"size:255" json:"image"`
	Title            string    `gorm:"size:255;not null" json:"title"`
	WhatYouLearn     *string   `gorm:"type:text" json:"what_you_learn"`
	Requirements     *string   `gorm:"type:text" json:"requirements"`
	Description      *string   `gorm:"type:text" json:"description"`
	TargetedAudience *string   `gorm:"type:text" json:"targeted_audience"`
	InstructorID     uuid.UUID `gorm:"type:uuid;not null" json:"instructor_id"`
	Price            float64   `gorm:"type:numeric(8,2);not null" json:"price"`
	DurationInHours  uint      `gorm:"not null" json:"duration_in_hours"`

	Instructor User     `gorm:"foreignkey:InstructorID" json:"-"`
	Reviews    []Review `gorm:"foreignkey:CourseID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
