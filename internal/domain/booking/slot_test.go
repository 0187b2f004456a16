package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDashVariants(t *testing.T) {
	cases := []string{
		"8:00 AM – 9:00 AM",
		"8:00 AM — 9:00 AM",
		"8:00 AM - 9:00 AM",
		"8:00 AM-9:00 AM",
		"  8:00 AM –  9:00 AM  ",
	}
	for _, label := range cases {
		assert.Equal(t, "8:00 AM – 9:00 AM", Normalize(label), "label %q", label)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	labels := []string{
		"8:00 AM - 9:00 AM",
		"whenever",
		"",
		"  spaced out  ",
	}
	for _, label := range labels {
		once := Normalize(label)
		assert.Equal(t, once, Normalize(once), "label %q", label)
	}
}

func TestNormalizeUnsplittable(t *testing.T) {
	assert.Equal(t, "morning", Normalize("  morning  "))
	assert.Equal(t, "", Normalize(""))
}

func TestParseLabel(t *testing.T) {
	start, end, ok := ParseLabel("8:00 AM – 9:30 PM")
	require.True(t, ok)
	assert.Equal(t, TimeOfDay{Hour: 8, Minute: 0}, start)
	assert.Equal(t, TimeOfDay{Hour: 21, Minute: 30}, end)
}

func TestParseLabelMalformed(t *testing.T) {
	for _, label := range []string{"", "morning", "8:00 AM –", "lunch – dinner", "25:00 AM – 9:00 AM"} {
		_, _, ok := ParseLabel(label)
		assert.False(t, ok, "label %q", label)
	}
}

func TestStartOfEndOf(t *testing.T) {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, sgt())

	start, ok := StartOf("2:00 PM – 4:00 PM", date)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 14, 14, 0, 0, 0, sgt()), start)

	end, ok := EndOf("2:00 PM – 4:00 PM", date)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 14, 16, 0, 0, 0, sgt()), end)

	_, ok = StartOf("not a slot", date)
	assert.False(t, ok)
}

func sgt() *time.Location {
	loc, err := time.LoadLocation("Asia/Singapore")
	if err != nil {
		return time.UTC
	}
	return loc
}
