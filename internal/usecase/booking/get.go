package booking

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/seniorconnect-sg/community-api/internal/domain/booking"
	"github.com/seniorconnect-sg/community-api/internal/httperr"
	"github.com/seniorconnect-sg/community-api/internal/models"
)

// ======================================================
// GET (owner-scoped)
// ======================================================

type GetBooking struct {
	repo   domain.Repository
	logger *zap.Logger
}

func NewGetBooking(repo domain.Repository, logger *zap.Logger) *GetBooking {
	return &GetBooking{repo: repo, logger: logger}
}

// Execute returns the booking only to its owner; a missing booking and a
// foreign booking are indistinguishable to the caller.
func (uc *GetBooking) Execute(
	ctx context.Context,
	bookingID string,
	userID string,
) (*models.Booking, error) {

	b, err := uc.repo.FindByIDForUser(ctx, bookingID, userID)
	if err != nil {
		uc.logger.Error("booking get failed", zap.String("booking_id", bookingID), zap.Error(err))
		return nil, httperr.ErrBusiness(domain.CodeInternalError)
	}
	if b == nil {
		return nil, httperr.ErrBusiness(domain.CodeBookingNotFound)
	}
	return b, nil
}
