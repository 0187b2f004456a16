package booking

import (
	"time"

	"github.com/seniorconnect-sg/community-api/internal/models"
)

// Time-window predicates over a stored booking. Stored dates carry
// whatever location the database driver gave them, so they are re-anchored
// to now's location before combining with slot times.

func anchorDate(d, now time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
}

// HasEnded reports whether the booking's slot end lies strictly before
// now. When the label is unparseable the end is unknown, so only a date
// strictly before today counts as ended.
func HasEnded(b *models.Booking, now time.Time) bool {
	date := anchorDate(b.BookingDate, now)
	if end, ok := EndOf(b.TimeSlot, date); ok {
		return end.Before(now)
	}
	return date.Before(DateOnly(now))
}

// IsEditLocked reports whether the booking starts within the next 24
// hours. Bookings with unparseable start times are never locked, so a
// bad label cannot block a legitimate edit.
func IsEditLocked(b *models.Booking, now time.Time) bool {
	date := anchorDate(b.BookingDate, now)
	start, ok := StartOf(b.TimeSlot, date)
	if !ok {
		return false
	}
	return !start.Before(now) && !start.After(now.Add(24*time.Hour))
}

// IsOnOrAfterToday reports whether the booking's date is today or later.
func IsOnOrAfterToday(b *models.Booking, now time.Time) bool {
	return !anchorDate(b.BookingDate, now).Before(DateOnly(now))
}
