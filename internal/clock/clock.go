package clock

import "time"

// Every "is this in the past / within 24 hours" decision in the booking
// core goes through a Clock so tests can pin the current instant.

const DefaultTimezone = "Asia/Singapore"

type Clock interface {
	Now() time.Time
}

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// System reports wall-clock time in Singapore local time.
type System struct{}

func (System) Now() time.Time {
	return time.Now().In(Location())
}

// Fixed always reports the same instant.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}
