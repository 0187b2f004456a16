package booking

// Business error codes surfaced through httperr.BusinessError. Validation
// codes map to 400, not-found to 404 and internal to 500 at the HTTP
// boundary; not-found and not-owned are deliberately the same code so the
// API never leaks the existence of other users' bookings.
const (
	CodeInvalidLocation        = "invalid_location"
	CodeInvalidDateFormat      = "invalid_date_format"
	CodePastDate               = "past_date"
	CodeSlotAlreadyStarted     = "slot_already_started"
	CodeInvalidSlotForLocation = "invalid_slot_for_location"
	CodeFieldTooLong           = "field_too_long"
	CodeInvalidAttendeeCount   = "invalid_attendee_count"

	CodeSlotConflict    = "slot_conflict"
	CodeBookingNotFound = "booking_not_found"
	CodeEditLocked      = "edit_locked"
	CodeInternalError   = "internal_error"
)
