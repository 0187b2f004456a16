package booking

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/seniorconnect-sg/community-api/internal/httperr"
)

const dateLayout = "2006-01-02"

// Input is the flat field set a create/update request carries, exactly as
// the presentation layer hands it over. ExpectedAttendees stays a string
// until the validator has parsed it.
type Input struct {
	Location string
	Date     string
	TimeSlot string

	EventTitle        string
	InterestGroup     string
	ActivityType      string
	ExpectedAttendees string
	EquipmentRequired string
	EventDescription  string

	OrganiserName     string
	OrganiserEmail    string
	OrganiserPhone    string
	AccessibilityHelp string
}

// Validated is the parsed, catalog-checked form of an Input.
type Validated struct {
	Location string
	Date     time.Time // midnight on the booking date, in now's location
	TimeSlot string    // canonical label

	EventTitle        string
	InterestGroup     string
	ActivityType      string
	ExpectedAttendees int
	EquipmentRequired string
	EventDescription  string

	OrganiserName     string
	OrganiserEmail    string
	OrganiserPhone    string
	AccessibilityHelp string
}

var fieldLimits = []struct {
	name string
	max  int
	get  func(Input) string
}{
	{"event_title", 100, func(in Input) string { return in.EventTitle }},
	{"event_description", 1000, func(in Input) string { return in.EventDescription }},
	{"equipment_required", 500, func(in Input) string { return in.EquipmentRequired }},
	{"organiser_name", 100, func(in Input) string { return in.OrganiserName }},
	{"organiser_email", 100, func(in Input) string { return in.OrganiserEmail }},
	{"organiser_phone", 20, func(in Input) string { return in.OrganiserPhone }},
}

// Validate runs the ordered, fail-fast field checks. No side effects on
// failure; the first failing check wins.
func Validate(in Input, now time.Time) (Validated, error) {
	if !IsValidLocation(in.Location) {
		return Validated{}, httperr.ErrBusiness(CodeInvalidLocation)
	}

	date, err := time.ParseInLocation(dateLayout, in.Date, now.Location())
	if err != nil {
		return Validated{}, httperr.ErrBusiness(CodeInvalidDateFormat)
	}

	today := DateOnly(now)
	if date.Before(today) {
		return Validated{}, httperr.ErrBusiness(CodePastDate)
	}

	// Same-day bookings must start after the current time. Unparseable
	// start times skip the check: better a late booking than a blocked
	// legitimate one.
	if date.Equal(today) {
		if start, ok := StartOf(in.TimeSlot, date); ok && !start.After(now) {
			return Validated{}, httperr.ErrBusiness(CodeSlotAlreadyStarted)
		}
	}

	if !IsValidSlot(in.Location, in.TimeSlot) {
		return Validated{}, httperr.ErrBusiness(CodeInvalidSlotForLocation)
	}

	// Limits count characters, not bytes, so multibyte names and titles
	// are not penalised.
	for _, f := range fieldLimits {
		if utf8.RuneCountInString(f.get(in)) > f.max {
			return Validated{}, httperr.ErrBusiness(CodeFieldTooLong)
		}
	}

	attendees, err := strconv.Atoi(strings.TrimSpace(in.ExpectedAttendees))
	if err != nil || attendees < 1 || attendees > 1000 {
		return Validated{}, httperr.ErrBusiness(CodeInvalidAttendeeCount)
	}

	return Validated{
		Location: in.Location,
		Date:     date,
		TimeSlot: Normalize(in.TimeSlot),

		EventTitle:        strings.TrimSpace(in.EventTitle),
		InterestGroup:     strings.TrimSpace(in.InterestGroup),
		ActivityType:      strings.TrimSpace(in.ActivityType),
		ExpectedAttendees: attendees,
		EquipmentRequired: strings.TrimSpace(in.EquipmentRequired),
		EventDescription:  strings.TrimSpace(in.EventDescription),

		OrganiserName:     strings.TrimSpace(in.OrganiserName),
		OrganiserEmail:    strings.TrimSpace(in.OrganiserEmail),
		OrganiserPhone:    strings.TrimSpace(in.OrganiserPhone),
		AccessibilityHelp: strings.TrimSpace(in.AccessibilityHelp),
	}, nil
}

// DateOnly truncates an instant to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
