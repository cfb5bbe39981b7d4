package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// BrazilianLayout is the DD/MM/YYYY layout used in court documents
const BrazilianLayout = "02/01/2006"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// DateOnly returns the calendar day of date as midnight UTC
func DateOnly(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// FormatBR formats date as DD/MM/YYYY
func FormatBR(date time.Time) string {
	return date.Format(BrazilianLayout)
}

// ParseDate parses date string in the formats accepted on input forms.
// Time-of-day, when present, is kept; callers that need a calendar day
// should pass the result through DateOnly.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)

	formats := []string{
		"2006-01-02",
		BrazilianLayout,
		"02.01.2006",
		"02-01-2006",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05-0700",
		time.RFC3339,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format: %q", dateStr)
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}
