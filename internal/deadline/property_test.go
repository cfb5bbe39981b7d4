package deadline

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var propertyEpoch = NewDate(2018, time.January, 1)

// dayOffsets spans roughly ten years of dates from propertyEpoch.
func dayOffsets() gopter.Gen {
	return gen.IntRange(0, 3660)
}

func newProperties(t *testing.T) *gopter.Properties {
	t.Helper()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return gopter.NewProperties(parameters)
}

func TestClassifyProperties(t *testing.T) {
	properties := newProperties(t)

	properties.Property("every date has exactly one known classification", prop.ForAll(
		func(offset int, recess bool) bool {
			c, err := Classify(context.Background(), propertyEpoch.AddDays(offset), annualFederal, recess)
			if err != nil {
				return false
			}
			_, known := dayKindNames[c.Kind]
			return known
		},
		dayOffsets(), gen.Bool(),
	))

	properties.Property("recess window always classifies as recess when enabled", prop.ForAll(
		func(offset int) bool {
			d := propertyEpoch.AddDays(offset)
			c, err := Classify(context.Background(), d, annualFederal, true)
			if err != nil {
				return false
			}
			return IsRecess(d) == (c.Kind == Recess)
		},
		dayOffsets(),
	))

	properties.Property("recess never appears when disabled", prop.ForAll(
		func(offset int) bool {
			c, err := Classify(context.Background(), propertyEpoch.AddDays(offset), annualFederal, false)
			return err == nil && c.Kind != Recess
		},
		dayOffsets(),
	))

	properties.TestingRun(t)
}

func TestNextBusinessDayProperties(t *testing.T) {
	engine := newTestEngine(annualFederal)
	properties := newProperties(t)

	properties.Property("next business day is the first later business day", prop.ForAll(
		func(offset int, recess bool) bool {
			d := propertyEpoch.AddDays(offset)
			next, err := engine.NextBusinessDay(context.Background(), d, recess)
			if err != nil || !next.After(d) {
				return false
			}
			c, err := engine.Classify(context.Background(), next, recess)
			if err != nil || !c.Counts() {
				return false
			}
			for between := d.AddDays(1); between.Before(next); between = between.AddDays(1) {
				c, err := engine.Classify(context.Background(), between, recess)
				if err != nil || c.Counts() {
					return false
				}
			}
			return true
		},
		dayOffsets(), gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestCalculateProperties(t *testing.T) {
	engine := newTestEngine(annualFederal)
	properties := newProperties(t)

	properties.Property("ledger holds exactly the requested counted days ending on the due date", prop.ForAll(
		func(offset, days int, recess bool) bool {
			result, err := engine.Calculate(context.Background(), Request{
				TriggerDate:   propertyEpoch.AddDays(offset),
				TriggerType:   Availability,
				BusinessDays:  days,
				RecessEnabled: recess,
			})
			if err != nil {
				return false
			}

			counted := result.CountedEntries()
			if len(counted) != days {
				return false
			}
			for i, e := range counted {
				if e.Count != i+1 {
					return false
				}
			}

			last := result.Ledger[len(result.Ledger)-1]
			return last.Date == result.DueDate &&
				last.Count == days &&
				counted[days-1].Date == result.DueDate &&
				!result.Ledger[0].Date.Before(result.CountStart)
		},
		dayOffsets(), gen.IntRange(1, 60), gen.Bool(),
	))

	properties.Property("ledger dates are consecutive", prop.ForAll(
		func(offset, days int) bool {
			result, err := engine.Calculate(context.Background(), Request{
				TriggerDate:   propertyEpoch.AddDays(offset),
				TriggerType:   CertifiedPublication,
				BusinessDays:  days,
				RecessEnabled: true,
			})
			if err != nil {
				return false
			}
			for i := 1; i < len(result.Ledger); i++ {
				if result.Ledger[i].Date != result.Ledger[i-1].Date.AddDays(1) {
					return false
				}
			}
			return true
		},
		dayOffsets(), gen.IntRange(1, 30),
	))

	properties.Property("identical requests yield identical results", prop.ForAll(
		func(offset, days int, recess bool) bool {
			req := Request{
				TriggerDate:   propertyEpoch.AddDays(offset),
				TriggerType:   Availability,
				BusinessDays:  days,
				RecessEnabled: recess,
			}
			first, err1 := engine.Calculate(context.Background(), req)
			second, err2 := engine.Calculate(context.Background(), req)
			if err1 != nil || err2 != nil {
				return false
			}

			raw1, err1 := json.Marshal(first)
			raw2, err2 := json.Marshal(second)
			return err1 == nil && err2 == nil &&
				reflect.DeepEqual(first, second) &&
				string(raw1) == string(raw2)
		},
		dayOffsets(), gen.IntRange(1, 30), gen.Bool(),
	))

	properties.Property("due date is non-decreasing in the requested days", prop.ForAll(
		func(offset, days int, recess bool) bool {
			start := propertyEpoch.AddDays(offset)
			shorter, _, err1 := engine.Count(context.Background(), start, days, recess)
			longer, _, err2 := engine.Count(context.Background(), start, days+1, recess)
			return err1 == nil && err2 == nil && !longer.Before(shorter)
		},
		dayOffsets(), gen.IntRange(1, 60), gen.Bool(),
	))

	properties.TestingRun(t)
}
