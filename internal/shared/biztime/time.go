// Package biztime provides business timezone calculations.
// Timestamps are stored in UTC. The business timezone is only used to find
// calendar-day boundaries: "today" for the overdue rule, the digest date, and
// scheduled dates, which are calendar dates rather than instants.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is used when no timezone is configured.
	DefaultTimezone = "UTC"

	// DateLayout is the wire and display format of calendar dates.
	DateLayout = "2006-01-02"
)

var (
	mu          sync.RWMutex
	bizLocation *time.Location
)

// Init sets the business timezone. An empty tz selects DefaultTimezone.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("failed to load business timezone %q: %w", tz, err)
	}
	mu.Lock()
	bizLocation = loc
	mu.Unlock()
	return nil
}

// MustInit initializes the business timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(err)
	}
}

// Location returns the business timezone, UTC until Init is called.
func Location() *time.Location {
	mu.RLock()
	defer mu.RUnlock()
	if bizLocation == nil {
		return time.UTC
	}
	return bizLocation
}

// StartOfDayUTC returns business-timezone midnight of the day containing t, in UTC.
func StartOfDayUTC(t time.Time) time.Time {
	b := t.In(Location())
	return time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, Location()).UTC()
}

// EndOfDayUTC returns the last nanosecond of the business day containing t, in UTC.
func EndOfDayUTC(t time.Time) time.Time {
	return StartOfDayUTC(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// DateOf normalizes t to the calendar date it falls on in the business timezone.
// Scheduled dates are always stored in this form.
func DateOf(t time.Time) time.Time {
	return StartOfDayUTC(t)
}

// IsBeforeToday reports whether the calendar date d is strictly earlier than the business day of now.
func IsBeforeToday(d, now time.Time) bool {
	return DateOf(d).Before(StartOfDayUTC(now))
}

// ParseDate parses YYYY-MM-DD as a business-timezone calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", s, err)
	}
	return t.UTC(), nil
}

// FormatDate renders t as YYYY-MM-DD in the business timezone.
func FormatDate(t time.Time) string {
	return t.In(Location()).Format(DateLayout)
}

// Format renders t in the business timezone with the given layout.
func Format(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}
