package booking

import "sort"

// Fixed catalog of bookable community-centre facilities and the time
// slots each one offers. Labels are stored in canonical form (see
// Normalize); membership checks normalize both sides.

var slotCatalog = map[string][]string{
	"Function Room": {
		"8:00 AM – 9:00 AM",
		"9:00 AM – 10:00 AM",
		"10:00 AM – 11:00 AM",
		"11:00 AM – 12:00 PM",
		"1:00 PM – 2:00 PM",
		"2:00 PM – 3:00 PM",
		"3:00 PM – 4:00 PM",
		"4:00 PM – 5:00 PM",
		"5:00 PM – 6:00 PM",
	},
	"Multi-Purpose Hall": {
		"8:00 AM – 10:00 AM",
		"10:00 AM – 12:00 PM",
		"1:00 PM – 3:00 PM",
		"3:00 PM – 5:00 PM",
		"6:00 PM – 8:00 PM",
		"8:00 PM – 10:00 PM",
	},
	"Activity Room": {
		"9:00 AM – 10:00 AM",
		"10:00 AM – 11:00 AM",
		"11:00 AM – 12:00 PM",
		"2:00 PM – 3:00 PM",
		"3:00 PM – 4:00 PM",
	},
	// Outdoor venue, afternoon and evening only.
	"Garden Pavilion": {
		"4:00 PM – 6:00 PM",
		"6:00 PM – 8:00 PM",
	},
	"Computer Room": {
		"10:00 AM – 12:00 PM",
		"2:00 PM – 4:00 PM",
	},
}

func Locations() []string {
	names := make([]string, 0, len(slotCatalog))
	for name := range slotCatalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func IsValidLocation(location string) bool {
	_, ok := slotCatalog[location]
	return ok
}

// SlotsFor returns the canonical slot labels for a location.
func SlotsFor(location string) ([]string, bool) {
	slots, ok := slotCatalog[location]
	if !ok {
		return nil, false
	}
	out := make([]string, len(slots))
	copy(out, slots)
	return out, true
}

// IsValidSlot reports whether the label denotes one of the location's
// catalog slots, comparing normalized forms.
func IsValidSlot(location, label string) bool {
	slots, ok := slotCatalog[location]
	if !ok {
		return false
	}
	want := Normalize(label)
	for _, s := range slots {
		if Normalize(s) == want {
			return true
		}
	}
	return false
}
