// Package utils provides utility functions for the application.
package utils

import (
	"time"
)

// CalendarDateLayout is the wire format for calendar dates (no time component)
const CalendarDateLayout = "2006-01-02"

// UTCNow returns the current time in UTC
func UTCNow() time.Time {
	return time.Now().UTC()
}

// UTCNowPtr returns a pointer to the current time in UTC
func UTCNowPtr() *time.Time {
	now := UTCNow()
	return &now
}

// UTCNowAdd returns the current UTC time plus the given duration
func UTCNowAdd(d time.Duration) time.Time {
	return UTCNow().Add(d)
}

// UTCNowRFC3339 returns the current UTC time in RFC3339 format
func UTCNowRFC3339() string {
	return UTCNow().Format(time.RFC3339)
}

// TodayCalendarDate returns today's date serialized as YYYY-MM-DD
func TodayCalendarDate() string {
	return UTCNow().Format(CalendarDateLayout)
}

// ParseCalendarDate parses a YYYY-MM-DD string into a UTC midnight time.
// The zone is irrelevant for calendar math; UTC keeps comparisons stable.
func ParseCalendarDate(s string) (time.Time, error) {
	return time.ParseInLocation(CalendarDateLayout, s, time.UTC)
}

// FormatCalendarDate serializes a time as YYYY-MM-DD
func FormatCalendarDate(t time.Time) string {
	return t.Format(CalendarDateLayout)
}

// IsExpired checks if the given time is in the past (expired)
func IsExpired(t time.Time) bool {
	return UTCNow().After(t)
}
