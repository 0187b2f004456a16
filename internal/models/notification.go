package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Notification struct {
	ID string `gorm:"type:char(36);primaryKey" json:"id"`

	UserID  string `gorm:"type:char(36);not null;index" json:"user_id"`
	Type    string `gorm:"size:100;not null" json:"type"`
	Message string `gorm:"type:text;not null" json:"message"`
	Link    string `gorm:"type:text" json:"link"`

	EventName string `gorm:"size:255" json:"event_name"`
	DateTime  string `gorm:"size:100" json:"date_time"`
	Location  string `gorm:"size:255" json:"location"`
	Comments  string `gorm:"type:text" json:"comments"`

	IsRead bool `gorm:"default:false" json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
