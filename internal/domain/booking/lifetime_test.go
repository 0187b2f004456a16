package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/seniorconnect-sg/community-api/internal/models"
)

func bookingOn(date time.Time, slot string) *models.Booking {
	return &models.Booking{
		BookingDate: date,
		TimeSlot:    slot,
		Status:      string(StatusConfirmed),
	}
}

func TestHasEnded(t *testing.T) {
	now := time.Date(2026, 4, 10, 15, 0, 0, 0, sgt())
	today := time.Date(2026, 4, 10, 0, 0, 0, 0, sgt())

	assert.True(t, HasEnded(bookingOn(today, "9:00 AM – 10:00 AM"), now))
	assert.False(t, HasEnded(bookingOn(today, "4:00 PM – 5:00 PM"), now))

	// End exactly now is not yet strictly past.
	assert.False(t, HasEnded(bookingOn(today, "1:00 PM – 3:00 PM"), now))

	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)
	assert.True(t, HasEnded(bookingOn(yesterday, "4:00 PM – 5:00 PM"), now))
	assert.False(t, HasEnded(bookingOn(tomorrow, "9:00 AM – 10:00 AM"), now))
}

// An unparseable label means the end is unknown: only a date strictly
// before today counts as ended.
func TestHasEndedUnparseableSlot(t *testing.T) {
	now := time.Date(2026, 4, 10, 23, 0, 0, 0, sgt())
	today := time.Date(2026, 4, 10, 0, 0, 0, 0, sgt())

	assert.False(t, HasEnded(bookingOn(today, "all day"), now))
	assert.True(t, HasEnded(bookingOn(today.AddDate(0, 0, -1), "all day"), now))
}

// A booking date stored in UTC still compares correctly against a
// Singapore-local now.
func TestHasEndedUTCStoredDate(t *testing.T) {
	now := time.Date(2026, 4, 10, 15, 0, 0, 0, sgt())
	utcDate := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

	assert.True(t, HasEnded(bookingOn(utcDate, "9:00 AM – 10:00 AM"), now))
	assert.False(t, HasEnded(bookingOn(utcDate, "4:00 PM – 5:00 PM"), now))
}

func TestIsEditLocked(t *testing.T) {
	now := time.Date(2026, 4, 10, 10, 0, 0, 0, sgt())

	today := time.Date(2026, 4, 10, 0, 0, 0, 0, sgt())
	tomorrow := today.AddDate(0, 0, 1)
	dayAfter := today.AddDate(0, 0, 2)

	// Starts 4 hours from now: locked.
	assert.True(t, IsEditLocked(bookingOn(today, "2:00 PM – 3:00 PM"), now))

	// Starts 23 hours from now: locked.
	assert.True(t, IsEditLocked(bookingOn(tomorrow, "9:00 AM – 10:00 AM"), now))

	// Starts exactly 24 hours from now: still locked (inclusive bound).
	assert.True(t, IsEditLocked(bookingOn(tomorrow, "10:00 AM – 11:00 AM"), now))

	// Starts 25 hours from now: not locked.
	assert.False(t, IsEditLocked(bookingOn(tomorrow, "11:00 AM – 12:00 PM"), now))

	// Two days out: not locked.
	assert.False(t, IsEditLocked(bookingOn(dayAfter, "9:00 AM – 10:00 AM"), now))

	// Already started: the lock window is start >= now only.
	assert.False(t, IsEditLocked(bookingOn(today, "9:00 AM – 10:00 AM"), now))
}

// A bad label can never lock out a legitimate edit.
func TestIsEditLockedUnparseableSlot(t *testing.T) {
	now := time.Date(2026, 4, 10, 10, 0, 0, 0, sgt())
	today := time.Date(2026, 4, 10, 0, 0, 0, 0, sgt())

	assert.False(t, IsEditLocked(bookingOn(today, "sometime soon"), now))
}

func TestIsOnOrAfterToday(t *testing.T) {
	now := time.Date(2026, 4, 10, 23, 59, 0, 0, sgt())
	today := time.Date(2026, 4, 10, 0, 0, 0, 0, sgt())

	assert.True(t, IsOnOrAfterToday(bookingOn(today, "x"), now))
	assert.True(t, IsOnOrAfterToday(bookingOn(today.AddDate(0, 0, 1), "x"), now))
	assert.False(t, IsOnOrAfterToday(bookingOn(today.AddDate(0, 0, -1), "x"), now))
}
