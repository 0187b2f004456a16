package booking

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seniorconnect-sg/community-api/internal/httperr"
)

func validInput() Input {
	return Input{
		Location: "Function Room",
		Date:     "2026-04-10",
		TimeSlot: "9:00 AM – 10:00 AM",

		EventTitle:        "Tai Chi Morning",
		InterestGroup:     "Tai Chi Club",
		ActivityType:      "Exercise",
		ExpectedAttendees: "25",

		OrganiserName:     "Tan Ah Kow",
		OrganiserEmail:    "ahkow@example.com",
		OrganiserPhone:    "91234567",
		AccessibilityHelp: "no",
	}
}

func testNow() time.Time {
	// A Tuesday morning well before the booking date above.
	return time.Date(2026, 4, 1, 9, 30, 0, 0, sgt())
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	got, ok := httperr.CodeOf(err)
	require.True(t, ok, "expected a business error, got %v", err)
	assert.Equal(t, code, got)
}

func TestValidateOK(t *testing.T) {
	v, err := Validate(validInput(), testNow())
	require.NoError(t, err)

	assert.Equal(t, "Function Room", v.Location)
	assert.Equal(t, time.Date(2026, 4, 10, 0, 0, 0, 0, sgt()), v.Date)
	assert.Equal(t, "9:00 AM – 10:00 AM", v.TimeSlot)
	assert.Equal(t, 25, v.ExpectedAttendees)
}

func TestValidateNormalizesSlot(t *testing.T) {
	in := validInput()
	in.TimeSlot = "9:00 AM - 10:00 AM"

	v, err := Validate(in, testNow())
	require.NoError(t, err)
	assert.Equal(t, "9:00 AM – 10:00 AM", v.TimeSlot)
}

func TestValidateUnknownLocation(t *testing.T) {
	in := validInput()
	in.Location = "Rooftop Bar"
	_, err := Validate(in, testNow())
	assertCode(t, err, CodeInvalidLocation)
}

func TestValidateBadDate(t *testing.T) {
	for _, d := range []string{"10/04/2026", "2026-4-10x", "tomorrow", ""} {
		in := validInput()
		in.Date = d
		_, err := Validate(in, testNow())
		assertCode(t, err, CodeInvalidDateFormat)
	}
}

func TestValidatePastDate(t *testing.T) {
	in := validInput()
	in.Date = "2026-03-31"
	_, err := Validate(in, testNow())
	assertCode(t, err, CodePastDate)
}

func TestValidateSameDayStartedSlot(t *testing.T) {
	in := validInput()
	in.Date = "2026-04-01"
	in.TimeSlot = "8:00 AM – 9:00 AM" // now is 9:30
	_, err := Validate(in, testNow())
	assertCode(t, err, CodeSlotAlreadyStarted)
}

func TestValidateSameDayFutureSlotOK(t *testing.T) {
	in := validInput()
	in.Date = "2026-04-01"
	in.TimeSlot = "1:00 PM – 2:00 PM"
	_, err := Validate(in, testNow())
	assert.NoError(t, err)
}

func TestValidateSlotNotInCatalogForLocation(t *testing.T) {
	in := validInput()
	in.Location = "Garden Pavilion" // afternoon/evening venue
	in.TimeSlot = "9:00 AM – 10:00 AM"
	_, err := Validate(in, testNow())
	assertCode(t, err, CodeInvalidSlotForLocation)
}

func TestValidateFieldTooLong(t *testing.T) {
	cases := []struct {
		mutate func(*Input)
	}{
		{func(in *Input) { in.EventTitle = strings.Repeat("a", 101) }},
		{func(in *Input) { in.EventDescription = strings.Repeat("a", 1001) }},
		{func(in *Input) { in.EquipmentRequired = strings.Repeat("a", 501) }},
		{func(in *Input) { in.OrganiserName = strings.Repeat("a", 101) }},
		{func(in *Input) { in.OrganiserEmail = strings.Repeat("a", 101) }},
		{func(in *Input) { in.OrganiserPhone = strings.Repeat("1", 21) }},
	}
	for _, tc := range cases {
		in := validInput()
		tc.mutate(&in)
		_, err := Validate(in, testNow())
		assertCode(t, err, CodeFieldTooLong)
	}
}

func TestValidateFieldAtLimitOK(t *testing.T) {
	in := validInput()
	in.EventTitle = strings.Repeat("a", 100)
	in.OrganiserPhone = strings.Repeat("1", 20)
	_, err := Validate(in, testNow())
	assert.NoError(t, err)
}

// Limits are in characters: a 100-rune Chinese title is three hundred
// bytes but still within bounds.
func TestValidateFieldLimitsCountRunes(t *testing.T) {
	in := validInput()
	in.EventTitle = strings.Repeat("茶", 100)
	_, err := Validate(in, testNow())
	assert.NoError(t, err)

	in.EventTitle = strings.Repeat("茶", 101)
	_, err = Validate(in, testNow())
	assertCode(t, err, CodeFieldTooLong)
}

func TestValidateAttendeeBounds(t *testing.T) {
	for _, bad := range []string{"0", "-3", "1001", "ten", "", "12.5"} {
		in := validInput()
		in.ExpectedAttendees = bad
		_, err := Validate(in, testNow())
		assertCode(t, err, CodeInvalidAttendeeCount)
	}

	for _, good := range []string{"1", "1000", " 42 "} {
		in := validInput()
		in.ExpectedAttendees = good
		_, err := Validate(in, testNow())
		assert.NoError(t, err, "attendees %q", good)
	}
}

// The first failing check wins: an input with several problems reports
// them in the documented order.
func TestValidateOrder(t *testing.T) {
	in := validInput()
	in.Location = "Rooftop Bar"
	in.Date = "garbage"
	in.ExpectedAttendees = "0"
	_, err := Validate(in, testNow())
	assertCode(t, err, CodeInvalidLocation)

	in = validInput()
	in.Date = "garbage"
	in.ExpectedAttendees = "0"
	_, err = Validate(in, testNow())
	assertCode(t, err, CodeInvalidDateFormat)

	in = validInput()
	in.Date = "2020-01-01"
	in.ExpectedAttendees = "0"
	_, err = Validate(in, testNow())
	assertCode(t, err, CodePastDate)
}
