package deadline

import (
	"context"
	"fmt"
	"time"

	"github.com/username/prazo-calc/pkg/dateutil"
)

// HolidayOracle answers holiday membership for a calendar day.
// Implementations must be safe for concurrent use.
type HolidayOracle interface {
	// HolidayName reports whether date is a holiday and, if known, its name.
	HolidayName(ctx context.Context, date time.Time) (name string, isHoliday bool, err error)
}

// DayKind is the classification of a calendar day for deadline counting
type DayKind int

const (
	BusinessDay DayKind = iota + 1
	Weekend
	Holiday
	Recess
)

var dayKindNames = map[DayKind]string{
	BusinessDay: "business_day",
	Weekend:     "weekend",
	Holiday:     "holiday",
	Recess:      "recess",
}

func (k DayKind) String() string {
	if name, ok := dayKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("DayKind(%d)", int(k))
}

func (k DayKind) MarshalText() ([]byte, error) {
	if _, ok := dayKindNames[k]; !ok {
		return nil, fmt.Errorf("invalid day kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *DayKind) UnmarshalText(text []byte) error {
	for kind, name := range dayKindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("invalid day kind %q", text)
}

// Classification is the outcome of classifying one day.
// HolidayName is only meaningful when Kind is Holiday and may be empty.
type Classification struct {
	Kind        DayKind `json:"kind"`
	HolidayName string  `json:"holiday_name,omitempty"`
}

// Counts reports whether the day is consumed by a business-day count.
func (c Classification) Counts() bool {
	return c.Kind == BusinessDay
}

// Forensic recess window of Article 220 CPC, inclusive on both ends.
const (
	recessStartDay = 20 // December
	recessEndDay   = 20 // January
)

// IsRecess reports whether date falls in the December 20 - January 20 recess.
func IsRecess(date Date) bool {
	return (date.Month == time.December && date.Day >= recessStartDay) ||
		(date.Month == time.January && date.Day <= recessEndDay)
}

// Classify returns the classification of date. The first matching rule wins:
// recess (when enabled), weekend, holiday, business day.
func Classify(ctx context.Context, date Date, oracle HolidayOracle, recessEnabled bool) (Classification, error) {
	if recessEnabled && IsRecess(date) {
		return Classification{Kind: Recess}, nil
	}

	if dateutil.IsWeekend(date.Time()) {
		return Classification{Kind: Weekend}, nil
	}

	name, isHoliday, err := oracle.HolidayName(ctx, date.Time())
	if err != nil {
		return Classification{}, fmt.Errorf("%w: %s: %w", ErrHolidayOracleFailure, date, err)
	}
	if isHoliday {
		return Classification{Kind: Holiday, HolidayName: name}, nil
	}

	return Classification{Kind: BusinessDay}, nil
}
