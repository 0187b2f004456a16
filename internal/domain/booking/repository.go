package booking

import (
	"context"
	"errors"
	"time"

	"github.com/seniorconnect-sg/community-api/internal/models"
)

// ErrSlotTaken is returned by Create/Update when the database's composite
// unique index rejects a second confirmed row for the same
// (location, date, slot). The index, not the application pre-check, is
// the concurrency backstop.
var ErrSlotTaken = errors.New("slot already taken")

type Repository interface {
	Create(ctx context.Context, b *models.Booking) error

	// FindConfirmedSlot returns the confirmed booking occupying the slot,
	// or (nil, nil) when the slot is free.
	FindConfirmedSlot(
		ctx context.Context,
		location string,
		date time.Time,
		slot string,
	) (*models.Booking, error)

	// FindByIDForUser returns (nil, nil) when the booking does not exist
	// or belongs to another user.
	FindByIDForUser(
		ctx context.Context,
		id string,
		userID string,
	) (*models.Booking, error)

	ListForUser(ctx context.Context, userID string) ([]models.Booking, error)

	// ListConfirmedForDay returns the confirmed bookings for one location
	// on one date, for availability checks.
	ListConfirmedForDay(
		ctx context.Context,
		location string,
		date time.Time,
	) ([]models.Booking, error)

	// HasConfirmedConflict reports whether a different confirmed booking
	// occupies the slot.
	HasConfirmedConflict(
		ctx context.Context,
		location string,
		date time.Time,
		slot string,
		excludeID string,
	) (bool, error)

	Update(ctx context.Context, b *models.Booking) error

	// ListConfirmedThrough returns confirmed bookings dated on or before
	// the given day, for the completion sweep.
	ListConfirmedThrough(ctx context.Context, day time.Time) ([]models.Booking, error)

	// MarkCompleted flips the given confirmed bookings to completed in a
	// single transaction.
	MarkCompleted(ctx context.Context, ids []string) error
}
