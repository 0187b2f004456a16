package booking

import (
	"strings"
	"time"
)

// Slot labels are human-readable windows like "8:00 AM – 9:00 AM". Users,
// templates and old rows disagree on the dash character and spacing, so
// every comparison goes through Normalize and every time decision through
// ParseLabel. Unparseable is a distinct outcome, never folded into
// "started" or "ended".

const timeOfDayLayout = "3:04 PM"

var dashVariants = []string{"–", "—", "-"}

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// On anchors the time of day to a calendar date in that date's location.
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, 0, 0, date.Location())
}

// splitLabel cuts a label into its start and end halves on the first dash
// variant found. ok is false when no separator yields exactly two parts.
func splitLabel(label string) (start, end string, ok bool) {
	for _, dash := range dashVariants {
		if !strings.Contains(label, dash) {
			continue
		}
		parts := strings.SplitN(label, dash, 2)
		if len(parts) != 2 {
			continue
		}
		start = strings.TrimSpace(parts[0])
		end = strings.TrimSpace(parts[1])
		if start == "" || end == "" {
			continue
		}
		return start, end, true
	}
	return "", "", false
}

// Normalize returns the canonical form of a slot label: a single en-dash
// with one space on each side. Labels that cannot be split are returned
// trimmed, which keeps Normalize idempotent for any input.
func Normalize(label string) string {
	start, end, ok := splitLabel(label)
	if !ok {
		return strings.TrimSpace(label)
	}
	return start + " – " + end
}

// ParseLabel extracts the start and end times of day from a slot label.
// ok is false for malformed labels or unparseable clock times.
func ParseLabel(label string) (start, end TimeOfDay, ok bool) {
	s, e, ok := splitLabel(label)
	if !ok {
		return TimeOfDay{}, TimeOfDay{}, false
	}
	st, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return TimeOfDay{}, TimeOfDay{}, false
	}
	et, err := time.Parse(timeOfDayLayout, e)
	if err != nil {
		return TimeOfDay{}, TimeOfDay{}, false
	}
	return TimeOfDay{Hour: st.Hour(), Minute: st.Minute()},
		TimeOfDay{Hour: et.Hour(), Minute: et.Minute()},
		true
}

// StartOf returns the slot's start on the booking date. ok is false when
// the label cannot be parsed; callers must treat that as "not yet
// started", never as a past or future time.
func StartOf(label string, date time.Time) (time.Time, bool) {
	start, _, ok := ParseLabel(label)
	if !ok {
		return time.Time{}, false
	}
	return start.On(date), true
}

// EndOf returns the slot's end on the booking date. ok is false when the
// label cannot be parsed; callers must treat that as "not yet ended".
func EndOf(label string, date time.Time) (time.Time, bool) {
	_, end, ok := ParseLabel(label)
	if !ok {
		return time.Time{}, false
	}
	return end.On(date), true
}
