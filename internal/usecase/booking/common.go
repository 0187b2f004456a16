package booking

import (
	"time"

	domain "github.com/seniorconnect-sg/community-api/internal/domain/booking"
	"github.com/seniorconnect-sg/community-api/internal/models"
)

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// applyValidated overwrites a booking's mutable fields from a validated
// input. Identity, location, reference, owner and status are untouched.
func applyValidated(b *models.Booking, v domain.Validated) {
	b.BookingDate = v.Date
	b.TimeSlot = v.TimeSlot
	b.EventTitle = v.EventTitle
	b.InterestGroup = v.InterestGroup
	b.ActivityType = v.ActivityType
	b.ExpectedAttendees = v.ExpectedAttendees
	b.EquipmentRequired = nilIfEmpty(v.EquipmentRequired)
	b.EventDescription = nilIfEmpty(v.EventDescription)
	b.OrganiserName = v.OrganiserName
	b.OrganiserEmail = v.OrganiserEmail
	b.OrganiserPhone = v.OrganiserPhone
	b.AccessibilityHelp = v.AccessibilityHelp
}

// bookingEvent is the payload published to the broker on lifecycle
// transitions.
type bookingEvent struct {
	BookingID       string `json:"booking_id"`
	ReferenceNumber string `json:"reference_number"`
	Location        string `json:"location"`
	BookingDate     string `json:"booking_date"`
	TimeSlot        string `json:"time_slot"`
	Status          string `json:"status"`
	OrganiserEmail  string `json:"organiser_email"`
}

func eventOf(b *models.Booking) bookingEvent {
	return bookingEvent{
		BookingID:       b.ID,
		ReferenceNumber: b.ReferenceNumber,
		Location:        b.Location,
		BookingDate:     b.BookingDate.Format("2006-01-02"),
		TimeSlot:        b.TimeSlot,
		Status:          b.Status,
		OrganiserEmail:  b.OrganiserEmail,
	}
}
