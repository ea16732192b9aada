package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InstructorProfile struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;unique" json:"user_id"`
	ProfilePics   string    `gorm:"size:255;default:'default.png'" json:"profile_pics"`
	Bio           *string   `gorm:"type:text" json:"bio"`
	BankName      *string   `gorm:"size:255" json:"bank_name"`
	AccountName   *string   `gorm:"size:255;default:''" json:"account_name"`
	AccountNumber *string   `gorm:"size:255" json:"account_number"`

	User User `gorm:"foreignkey:UserID" json:"user"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (p *InstructorProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
