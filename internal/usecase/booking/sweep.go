package booking

import (
	"context"

	"go.uber.org/zap"

	"github.com/seniorconnect-sg/community-api/internal/clock"
	domain "github.com/seniorconnect-sg/community-api/internal/domain/booking"
)

// ======================================================
// SWEEP (confirmed → completed)
// ======================================================

type SweepBookings struct {
	repo   domain.Repository
	clock  clock.Clock
	logger *zap.Logger
}

func NewSweepBookings(
	repo domain.Repository,
	clk clock.Clock,
	logger *zap.Logger,
) *SweepBookings {
	return &SweepBookings{
		repo:   repo,
		clock:  clk,
		logger: logger,
	}
}

// Execute completes every confirmed booking whose slot has ended. Runs
// opportunistically before listings rather than on a schedule. The whole
// batch commits or rolls back together; failures are logged and swallowed
// so the surrounding read still proceeds.
func (uc *SweepBookings) Execute(ctx context.Context) int {
	now := uc.clock.Now()

	rows, err := uc.repo.ListConfirmedThrough(ctx, domain.DateOnly(now))
	if err != nil {
		uc.logger.Error("booking sweep query failed", zap.Error(err))
		return 0
	}

	var ids []string
	for i := range rows {
		if domain.HasEnded(&rows[i], now) {
			ids = append(ids, rows[i].ID)
		}
	}
	if len(ids) == 0 {
		return 0
	}

	if err := uc.repo.MarkCompleted(ctx, ids); err != nil {
		uc.logger.Error("booking sweep failed", zap.Int("candidates", len(ids)), zap.Error(err))
		return 0
	}

	uc.logger.Info("bookings completed by sweep", zap.Int("count", len(ids)))
	return len(ids)
}
