package calendar

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/username/prazo-calc/pkg/dateutil"
)

// Holiday sources
const (
	SourceNational  = "national"
	SourceBrasilAPI = "brasilapi"
	SourceFile      = "file"
)

// ErrYearOutOfRange is returned for dates outside a calendar's supported years
var ErrYearOutOfRange = errors.New("year outside supported calendar range")

// Holiday represents a named non-working day
type Holiday struct {
	Date   time.Time
	Name   string
	Source string
}

// Calendar answers holiday questions for Brazilian deadline counting
type Calendar interface {
	// HolidayName reports whether date is a holiday and its name, if known
	HolidayName(ctx context.Context, date time.Time) (string, bool, error)

	// Holidays returns the holidays of a year ordered by date
	Holidays(ctx context.Context, year int) ([]Holiday, error)
}

func dayKey(date time.Time) string {
	return dateutil.DateOnly(date).Format("2006-01-02")
}

func sortHolidays(holidays []Holiday) {
	sort.SliceStable(holidays, func(i, j int) bool {
		return holidays[i].Date.Before(holidays[j].Date)
	})
}
