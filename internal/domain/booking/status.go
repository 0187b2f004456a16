package booking

import (
	"github.com/seniorconnect-sg/community-api/internal/httperr"
	"github.com/seniorconnect-sg/community-api/internal/models"
)

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// cancelled and completed are terminal.
func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// transition is the single gate for status changes. The only legal moves
// are confirmed→cancelled and confirmed→completed.
func transition(from, to Status) error {
	if from == StatusConfirmed && (to == StatusCancelled || to == StatusCompleted) {
		return nil
	}
	return httperr.ErrBusiness(CodeEditLocked)
}

// ===============================
// Domain Actions
// ===============================

func MarkCancelled(b *models.Booking) error {
	if err := transition(Status(b.Status), StatusCancelled); err != nil {
		return err
	}
	b.Status = string(StatusCancelled)
	return nil
}

func MarkCompleted(b *models.Booking) error {
	if err := transition(Status(b.Status), StatusCompleted); err != nil {
		return err
	}
	b.Status = string(StatusCompleted)
	return nil
}

func InitialStatus() Status {
	return StatusConfirmed
}
