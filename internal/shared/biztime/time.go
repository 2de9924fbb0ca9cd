// Package biztime provides utilities for business date calculations.
// All storage and transport use UTC. Billing dates (start, expiry, renewal)
// are DATE-valued: UTC midnight on the wire format YYYY-MM-DD.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// DateLayout is the wire format for all billing dates.
const DateLayout = "2006-01-02"

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "UTC"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the business timezone location, initializing with the
// default timezone when Init was never called.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// Today returns the current business date truncated to UTC midnight.
func Today() time.Time {
	now := NowUTC().In(Location())
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a date string (YYYY-MM-DD) as UTC midnight.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", dateStr, err)
	}
	return t, nil
}

// FormatDate formats a time as a YYYY-MM-DD date string.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// AddDays adds a whole number of days to a date. Billing periods are counted
// in calendar days, never in hours, so DST shifts cannot change the date.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// TruncateToDate drops the time-of-day component, keeping UTC midnight of
// the same calendar day.
func TruncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfMonthUTC returns the first instant of the month in UTC.
func StartOfMonthUTC(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// EndOfMonthUTC returns the last instant of the month in UTC.
func EndOfMonthUTC(year int, month time.Month) time.Time {
	nextMonth := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	return nextMonth.Add(-time.Nanosecond)
}
