package booking

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/seniorconnect-sg/community-api/internal/clock"
	domain "github.com/seniorconnect-sg/community-api/internal/domain/booking"
	"github.com/seniorconnect-sg/community-api/internal/httperr"
	"github.com/seniorconnect-sg/community-api/internal/models"
	"github.com/seniorconnect-sg/community-api/internal/mq"
	"github.com/seniorconnect-sg/community-api/internal/notify"
)

// ======================================================
// CANCEL
// ======================================================

type CancelBooking struct {
	repo   domain.Repository
	clock  clock.Clock
	notify *notify.Dispatcher
	events *mq.Publisher
	logger *zap.Logger
}

func NewCancelBooking(
	repo domain.Repository,
	clk clock.Clock,
	dispatcher *notify.Dispatcher,
	events *mq.Publisher,
	logger *zap.Logger,
) *CancelBooking {
	return &CancelBooking{
		repo:   repo,
		clock:  clk,
		notify: dispatcher,
		events: events,
		logger: logger,
	}
}

// Execute moves a confirmed future booking to cancelled. Cancellation is
// allowed right up to the slot's end, so a booking inside its 24-hour
// edit lock can still be cancelled. Irreversible.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID string,
	userID string,
) (*models.Booking, error) {

	b, err := uc.repo.FindByIDForUser(ctx, bookingID, userID)
	if err != nil {
		uc.logger.Error("booking cancel failed",
			zap.String("booking_id", bookingID),
			zap.Error(err),
		)
		return nil, httperr.ErrBusiness(domain.CodeInternalError)
	}
	if b == nil {
		return nil, httperr.ErrBusiness(domain.CodeBookingNotFound)
	}

	now := uc.clock.Now()

	if !domain.IsOnOrAfterToday(b, now) || domain.HasEnded(b, now) {
		return nil, httperr.ErrBusiness(domain.CodeEditLocked)
	}

	// Rejects terminal states.
	if err := domain.MarkCancelled(b); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, b); err != nil {
		uc.logger.Error("booking cancel failed",
			zap.String("booking_id", bookingID),
			zap.Error(err),
		)
		return nil, httperr.ErrBusiness(domain.CodeInternalError)
	}

	uc.notify.Dispatch(notify.Message{
		UserID:    userID,
		Type:      "booking_cancelled",
		Message:   fmt.Sprintf("Your booking %s at %s has been cancelled.", b.ReferenceNumber, b.Location),
		EventName: b.EventTitle,
		DateTime:  fmt.Sprintf("%s %s", b.BookingDate.Format("2006-01-02"), b.TimeSlot),
		Location:  b.Location,
	})

	if err := uc.events.PublishJSON(ctx, "booking.cancelled", eventOf(b)); err != nil {
		uc.logger.Warn("booking event publish failed",
			zap.String("reference", b.ReferenceNumber),
			zap.Error(err),
		)
	}

	return b, nil
}
