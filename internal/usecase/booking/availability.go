package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/seniorconnect-sg/community-api/internal/clock"
	domain "github.com/seniorconnect-sg/community-api/internal/domain/booking"
	"github.com/seniorconnect-sg/community-api/internal/httperr"
)

// ======================================================
// AVAILABILITY
// ======================================================

type CheckAvailability struct {
	repo   domain.Repository
	clock  clock.Clock
	logger *zap.Logger
}

func NewCheckAvailability(
	repo domain.Repository,
	clk clock.Clock,
	logger *zap.Logger,
) *CheckAvailability {
	return &CheckAvailability{
		repo:   repo,
		clock:  clk,
		logger: logger,
	}
}

type Availability struct {
	Location string   `json:"location"`
	Date     string   `json:"date"`
	AllSlots []string `json:"all_timeslots"`
	Booked   []string `json:"booked_timeslots"`
}

// Execute reports which catalog slots are already taken by confirmed
// bookings for a location on a date.
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	location string,
	dateStr string,
) (*Availability, error) {

	slots, ok := domain.SlotsFor(location)
	if !ok {
		return nil, httperr.ErrBusiness(domain.CodeInvalidLocation)
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, uc.clock.Now().Location())
	if err != nil {
		return nil, httperr.ErrBusiness(domain.CodeInvalidDateFormat)
	}

	rows, err := uc.repo.ListConfirmedForDay(ctx, location, date)
	if err != nil {
		uc.logger.Error("availability query failed",
			zap.String("location", location),
			zap.String("date", dateStr),
			zap.Error(err),
		)
		return nil, httperr.ErrBusiness(domain.CodeInternalError)
	}

	booked := make([]string, 0, len(rows))
	for i := range rows {
		booked = append(booked, domain.Normalize(rows[i].TimeSlot))
	}

	return &Availability{
		Location: location,
		Date:     dateStr,
		AllSlots: slots,
		Booked:   booked,
	}, nil
}
