package booking

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/seniorconnect-sg/community-api/internal/clock"
	domain "github.com/seniorconnect-sg/community-api/internal/domain/booking"
	"github.com/seniorconnect-sg/community-api/internal/httperr"
	"github.com/seniorconnect-sg/community-api/internal/models"
)

// ======================================================
// LIST (owner-scoped)
// ======================================================

// UpcomingBooking is a confirmed future booking annotated with whether
// its 24-hour edit lock is active.
type UpcomingBooking struct {
	models.Booking
	EditLocked bool `json:"edit_locked"`
}

type ListBookings struct {
	repo   domain.Repository
	clock  clock.Clock
	sweep  *SweepBookings
	logger *zap.Logger
}

func NewListBookings(
	repo domain.Repository,
	clk clock.Clock,
	sweep *SweepBookings,
	logger *zap.Logger,
) *ListBookings {
	return &ListBookings{
		repo:   repo,
		clock:  clk,
		sweep:  sweep,
		logger: logger,
	}
}

// Execute partitions the user's bookings into upcoming and past. The
// completion sweep runs first so expired confirmed rows land in the past
// partition as completed; a sweep failure is logged inside the sweep and
// the listing proceeds with pre-sweep data.
func (uc *ListBookings) Execute(
	ctx context.Context,
	userID string,
) ([]UpcomingBooking, []models.Booking, error) {

	uc.sweep.Execute(ctx)

	rows, err := uc.repo.ListForUser(ctx, userID)
	if err != nil {
		uc.logger.Error("booking list failed", zap.String("user_id", userID), zap.Error(err))
		return nil, nil, httperr.ErrBusiness(domain.CodeInternalError)
	}

	now := uc.clock.Now()

	upcoming := make([]UpcomingBooking, 0, len(rows))
	past := make([]models.Booking, 0, len(rows))

	for i := range rows {
		b := rows[i]
		if domain.Status(b.Status) != domain.StatusConfirmed || domain.HasEnded(&b, now) {
			past = append(past, b)
			continue
		}
		upcoming = append(upcoming, UpcomingBooking{
			Booking:    b,
			EditLocked: domain.IsEditLocked(&b, now),
		})
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		a, b := upcoming[i], upcoming[j]
		if !sameDay(a.BookingDate, b.BookingDate) {
			return a.BookingDate.Before(b.BookingDate)
		}
		return slotSortKey(a.TimeSlot) < slotSortKey(b.TimeSlot)
	})

	sort.SliceStable(past, func(i, j int) bool {
		return past[i].BookingDate.After(past[j].BookingDate)
	})

	return upcoming, past, nil
}

// slotSortKey orders slots chronologically by start time; unparseable
// labels sort last.
func slotSortKey(label string) int {
	start, _, ok := domain.ParseLabel(label)
	if !ok {
		return 1 << 20
	}
	return start.Minutes()
}
