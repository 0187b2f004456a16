package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking reserves one facility time slot on one date. The composite
// unique index over (location, booking_date, time_slot, status) is the
// authority on slot conflicts: cancelled/completed duplicates are fine,
// a second confirmed row for the same slot is not.
type Booking struct {
	ID              string `gorm:"type:char(36);primaryKey" json:"id"`
	ReferenceNumber string `gorm:"size:50;uniqueIndex;not null" json:"reference_number"`

	Location    string    `gorm:"size:255;not null;uniqueIndex:uq_booking_slot_status" json:"location"`
	BookingDate time.Time `gorm:"type:date;not null;uniqueIndex:uq_booking_slot_status" json:"booking_date"`
	TimeSlot    string    `gorm:"size:100;not null;uniqueIndex:uq_booking_slot_status" json:"time_slot"`
	Status      string    `gorm:"size:50;default:'confirmed';uniqueIndex:uq_booking_slot_status" json:"status"`

	EventTitle        string  `gorm:"size:255;not null" json:"event_title"`
	InterestGroup     string  `gorm:"size:100;not null" json:"interest_group"`
	ActivityType      string  `gorm:"size:100;not null" json:"activity_type"`
	ExpectedAttendees int     `gorm:"not null;check:chk_expected_attendees_range,expected_attendees > 0 AND expected_attendees <= 1000" json:"expected_attendees"`
	EquipmentRequired *string `gorm:"type:text" json:"equipment_required"`
	EventDescription  *string `gorm:"type:text" json:"event_description"`

	OrganiserName     string `gorm:"size:255;not null" json:"organiser_name"`
	OrganiserEmail    string `gorm:"size:255;not null" json:"organiser_email"`
	OrganiserPhone    string `gorm:"size:20;not null" json:"organiser_phone"`
	AccessibilityHelp string `gorm:"size:10;not null" json:"accessibility_help"`

	BookedByUserID *string `gorm:"type:char(36);index" json:"booked_by_user_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
