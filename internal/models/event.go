package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID string `gorm:"type:char(36);primaryKey" json:"id"`

	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	DateTime    time.Time `gorm:"not null" json:"date_time"`
	Location    string    `gorm:"size:255;not null" json:"location"`
	ImageURL    *string   `gorm:"size:255" json:"image_url"`

	OrganizerID string `gorm:"type:char(36);index" json:"organizer_id"`
	IsVerified  bool   `gorm:"default:false" json:"is_verified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
