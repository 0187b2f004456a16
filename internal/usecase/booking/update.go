package booking

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/seniorconnect-sg/community-api/internal/clock"
	domain "github.com/seniorconnect-sg/community-api/internal/domain/booking"
	"github.com/seniorconnect-sg/community-api/internal/httperr"
	"github.com/seniorconnect-sg/community-api/internal/models"
)

// ======================================================
// UPDATE
// ======================================================

type UpdateBooking struct {
	repo   domain.Repository
	clock  clock.Clock
	logger *zap.Logger
}

func NewUpdateBooking(
	repo domain.Repository,
	clk clock.Clock,
	logger *zap.Logger,
) *UpdateBooking {
	return &UpdateBooking{
		repo:   repo,
		clock:  clk,
		logger: logger,
	}
}

// Execute rewrites a booking's mutable fields after full re-validation.
// Only the owner may edit, only while the booking is confirmed, not yet
// ended, and not inside the 24-hour pre-start window. The location is
// fixed at creation; a slot or date change re-runs the conflict check
// against other confirmed bookings.
func (uc *UpdateBooking) Execute(
	ctx context.Context,
	bookingID string,
	userID string,
	in domain.Input,
) (*models.Booking, error) {

	b, err := uc.repo.FindByIDForUser(ctx, bookingID, userID)
	if err != nil {
		return nil, uc.internal(bookingID, "load booking", err)
	}
	if b == nil {
		return nil, httperr.ErrBusiness(domain.CodeBookingNotFound)
	}

	now := uc.clock.Now()

	if domain.Status(b.Status) != domain.StatusConfirmed {
		return nil, httperr.ErrBusiness(domain.CodeEditLocked)
	}
	if domain.HasEnded(b, now) || domain.IsEditLocked(b, now) {
		return nil, httperr.ErrBusiness(domain.CodeEditLocked)
	}

	in.Location = b.Location
	v, err := domain.Validate(in, now)
	if err != nil {
		return nil, err
	}

	slotChanged := !sameDay(v.Date, b.BookingDate) || v.TimeSlot != domain.Normalize(b.TimeSlot)
	if slotChanged {
		conflict, err := uc.repo.HasConfirmedConflict(ctx, b.Location, v.Date, v.TimeSlot, b.ID)
		if err != nil {
			return nil, uc.internal(bookingID, "conflict check", err)
		}
		if conflict {
			return nil, httperr.ErrBusiness(domain.CodeSlotConflict)
		}
	}

	applyValidated(b, v)

	if err := uc.repo.Update(ctx, b); err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			return nil, httperr.ErrBusiness(domain.CodeSlotConflict)
		}
		return nil, uc.internal(bookingID, "save booking", err)
	}

	return b, nil
}

func (uc *UpdateBooking) internal(id, op string, err error) error {
	uc.logger.Error("booking update failed",
		zap.String("booking_id", id),
		zap.String("op", op),
		zap.Error(err),
	)
	return httperr.ErrBusiness(domain.CodeInternalError)
}
