package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	domain "github.com/seniorconnect-sg/community-api/internal/domain/booking"
	"github.com/seniorconnect-sg/community-api/internal/httperr"
)

// friendlyMessages are the user-facing texts for each business code. The
// audience is senior citizens, so the wording stays plain and tells them
// what to do next.
var friendlyMessages = map[string]string{
	domain.CodeInvalidLocation:        "That facility does not exist. Please pick one from the list.",
	domain.CodeInvalidDateFormat:      "The date must be in YYYY-MM-DD format.",
	domain.CodePastDate:               "Bookings cannot be made for past dates. Please choose today or a future date.",
	domain.CodeSlotAlreadyStarted:     "That time slot has already started. Please choose a later slot.",
	domain.CodeInvalidSlotForLocation: "That time slot is not available at this facility. Please pick a slot from the list.",
	domain.CodeFieldTooLong:           "One of the fields is too long. Please shorten it and try again.",
	domain.CodeInvalidAttendeeCount:   "Expected attendees must be a whole number between 1 and 1000.",
	domain.CodeSlotConflict:           "Sorry, that slot was just taken. Please choose a different time.",
	domain.CodeBookingNotFound:        "We could not find that booking.",
	domain.CodeEditLocked:             "This booking can no longer be changed. Bookings lock 24 hours before the slot starts.",
	domain.CodeInternalError:          "Something went wrong on our side. Please try again in a moment.",
}

// writeBusinessError maps a business code onto an HTTP status. Anything
// unrecognised is treated as a bad request so new codes fail safe.
func writeBusinessError(c *gin.Context, err error) {
	code, ok := httperr.CodeOf(err)
	if !ok {
		httperr.Internal(c, domain.CodeInternalError, friendlyMessages[domain.CodeInternalError])
		return
	}

	msg, ok := friendlyMessages[code]
	if !ok {
		msg = "Your request could not be processed."
	}

	switch code {
	case domain.CodeBookingNotFound:
		httperr.NotFound(c, code, msg)
	case domain.CodeInternalError:
		httperr.Internal(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
