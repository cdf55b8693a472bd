package timefmt

import (
	"strings"
	"time"
)

// ClockLayout renders a zero-padded 24-hour time of day. Labels in this
// layout sort lexicographically in chronological order within one day.
const ClockLayout = "15:04"

var layouts = []string{
	"2006-01-02T15:04:05", // provider local time, no offset
	time.RFC3339,
	"2006-01-02T15:04:05-0700", // without colon
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Parse reads a provider timestamp. Timestamps without an offset are
// taken as airport-local wall clock and kept in UTC so the clock fields
// are preserved as given.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, &time.ParseError{
		Value:   s,
		Message: ": unable to parse timestamp",
	}
}

// Clock returns the "HH:mm" wall-clock label of a provider timestamp.
func Clock(s string) (string, error) {
	t, err := Parse(s)
	if err != nil {
		return "", err
	}
	return t.Format(ClockLayout), nil
}

// MinutesBetween returns the whole minutes from a to b, which is negative
// when b is before a.
func MinutesBetween(a, b time.Time) int {
	return int(b.Sub(a) / time.Minute)
}

// ClockMinutes converts an "HH:mm" label to minutes after midnight.
func ClockMinutes(label string) (int, error) {
	t, err := time.Parse(ClockLayout, label)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
