package calendar

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// CompositeCalendar implements Calendar with fallback strategy
// Primary: BrasilAPICalendar (API)
// Fallback: NationalCalendar (computed)
// A cancelled context is returned as is and never falls back.
type CompositeCalendar struct {
	primary  Calendar
	fallback Calendar
	logger   *zap.Logger
}

// NewCompositeCalendar creates a new CompositeCalendar
func NewCompositeCalendar(primary, fallback Calendar, logger *zap.Logger) *CompositeCalendar {
	return &CompositeCalendar{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// HolidayName checks if the given date is a holiday
func (cc *CompositeCalendar) HolidayName(ctx context.Context, date time.Time) (string, bool, error) {
	name, ok, err := cc.primary.HolidayName(ctx, date)
	if err == nil || ctx.Err() != nil {
		return name, ok, err
	}

	cc.logger.Warn("Primary calendar failed, falling back",
		zap.Time("date", date),
		zap.Error(err))

	return cc.fallback.HolidayName(ctx, date)
}

// Holidays returns the holidays of year ordered by date
func (cc *CompositeCalendar) Holidays(ctx context.Context, year int) ([]Holiday, error) {
	holidays, err := cc.primary.Holidays(ctx, year)
	if err == nil || ctx.Err() != nil {
		return holidays, err
	}

	cc.logger.Warn("Primary calendar failed, falling back",
		zap.Int("year", year),
		zap.Error(err))

	return cc.fallback.Holidays(ctx, year)
}

// UnionCalendar treats a day as a holiday when any member calendar does.
// The base calendar's name wins over overlays for the same day.
type UnionCalendar struct {
	members []Calendar
}

// NewUnionCalendar creates a new UnionCalendar
func NewUnionCalendar(base Calendar, overlays ...Calendar) *UnionCalendar {
	return &UnionCalendar{members: append([]Calendar{base}, overlays...)}
}

// HolidayName checks if the given date is a holiday in any member
func (uc *UnionCalendar) HolidayName(ctx context.Context, date time.Time) (string, bool, error) {
	for _, member := range uc.members {
		name, ok, err := member.HolidayName(ctx, date)
		if err != nil {
			return "", false, err
		}
		if ok {
			return name, true, nil
		}
	}
	return "", false, nil
}

// Holidays merges member holidays, one per day, ordered by date
func (uc *UnionCalendar) Holidays(ctx context.Context, year int) ([]Holiday, error) {
	seen := make(map[string]struct{})
	var merged []Holiday

	for _, member := range uc.members {
		holidays, err := member.Holidays(ctx, year)
		if err != nil {
			return nil, err
		}
		for _, h := range holidays {
			key := dayKey(h.Date)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, h)
		}
	}
	sortHolidays(merged)

	return merged, nil
}
