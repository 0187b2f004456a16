package booking

import (
	"context"
	"errors"
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
// CREATE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	clock  clock.Clock
	notify *notify.Dispatcher
	events *mq.Publisher
	logger *zap.Logger
}

func NewCreateBooking(
	repo domain.Repository,
	clk clock.Clock,
	dispatcher *notify.Dispatcher,
	events *mq.Publisher,
	logger *zap.Logger,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		clock:  clk,
		notify: dispatcher,
		events: events,
		logger: logger,
	}
}

// Execute validates and persists a new confirmed booking. Resubmitting an
// occupied slot is not an error: the existing booking comes back with
// duplicate=true, so double-clicks and network retries never create a
// second row. The composite unique index resolves the create/create race.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in domain.Input,
	userID string,
) (*models.Booking, bool, error) {

	now := uc.clock.Now()

	v, err := domain.Validate(in, now)
	if err != nil {
		return nil, false, err
	}

	existing, err := uc.repo.FindConfirmedSlot(ctx, v.Location, v.Date, v.TimeSlot)
	if err != nil {
		return nil, false, uc.internal("duplicate pre-check", err)
	}
	if existing != nil {
		return duplicateView(existing, userID), true, nil
	}

	b := &models.Booking{
		ReferenceNumber: domain.NewReference(now),
		Location:        v.Location,
		BookingDate:     v.Date,
		TimeSlot:        v.TimeSlot,
		Status:          string(domain.InitialStatus()),
		BookedByUserID:  nilIfEmpty(userID),
	}
	applyValidated(b, v)

	if err := uc.repo.Create(ctx, b); err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			// Lost the race to another request: return the winning row.
			winner, ferr := uc.repo.FindConfirmedSlot(ctx, v.Location, v.Date, v.TimeSlot)
			if ferr == nil && winner != nil {
				return duplicateView(winner, userID), true, nil
			}
			return nil, false, httperr.ErrBusiness(domain.CodeSlotConflict)
		}
		return nil, false, uc.internal("insert booking", err)
	}

	uc.notify.Dispatch(notify.Message{
		UserID:    userID,
		Type:      "booking_confirmed",
		Message:   fmt.Sprintf("Your booking %s at %s is confirmed.", b.ReferenceNumber, b.Location),
		EventName: b.EventTitle,
		DateTime:  fmt.Sprintf("%s %s", b.BookingDate.Format("2006-01-02"), b.TimeSlot),
		Location:  b.Location,
	})

	if err := uc.events.PublishJSON(ctx, "booking.confirmed", eventOf(b)); err != nil {
		uc.logger.Warn("booking event publish failed",
			zap.String("reference", b.ReferenceNumber),
			zap.Error(err),
		)
	}

	return b, false, nil
}

// duplicateView is what a resubmitted slot gets back. The owner sees
// their own row; anyone else only learns the slot is held and which
// reference holds it, never the holder's identity or contact details.
func duplicateView(b *models.Booking, userID string) *models.Booking {
	if b.BookedByUserID != nil && *b.BookedByUserID == userID {
		return b
	}
	return &models.Booking{
		ReferenceNumber: b.ReferenceNumber,
		Location:        b.Location,
		BookingDate:     b.BookingDate,
		TimeSlot:        b.TimeSlot,
		Status:          b.Status,
	}
}

func (uc *CreateBooking) internal(op string, err error) error {
	uc.logger.Error("booking create failed", zap.String("op", op), zap.Error(err))
	return httperr.ErrBusiness(domain.CodeInternalError)
}
