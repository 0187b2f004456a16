package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RSVP is one user's attendance record for one event; a user may hold at
// most one RSVP per event.
type RSVP struct {
	ID string `gorm:"type:char(36);primaryKey" json:"id"`

	UserID  string `gorm:"type:char(36);not null;uniqueIndex:uq_rsvps_user_event" json:"user_id"`
	EventID string `gorm:"type:char(36);not null;uniqueIndex:uq_rsvps_user_event" json:"event_id"`
	Event   Event  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"event"`

	Status string `gorm:"size:50;not null;default:'confirmed'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *RSVP) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
