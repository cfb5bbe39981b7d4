package deadline

import (
	"context"
	"errors"
	"time"
)

// stubOracle is a fixed set of holidays keyed by date.
type stubOracle map[Date]string

func (s stubOracle) HolidayName(_ context.Context, t time.Time) (string, bool, error) {
	name, ok := s[DateOf(t)]
	return name, ok, nil
}

// annualOracle repeats the same month/day holidays every year.
type annualOracle map[[2]int]string

func (a annualOracle) HolidayName(_ context.Context, t time.Time) (string, bool, error) {
	name, ok := a[[2]int{int(t.Month()), t.Day()}]
	return name, ok, nil
}

type failingOracle struct{ err error }

func (f failingOracle) HolidayName(context.Context, time.Time) (string, bool, error) {
	return "", false, f.err
}

// alwaysHoliday marks every day as a holiday, like a corrupted data source.
type alwaysHoliday struct{}

func (alwaysHoliday) HolidayName(context.Context, time.Time) (string, bool, error) {
	return "Feriado", true, nil
}

var errCalendarDown = errors.New("calendar unavailable")

// brazil2024 holds the federal holidays around the test scenarios.
var brazil2024 = stubOracle{
	NewDate(2024, time.November, 2):  "Finados",
	NewDate(2024, time.November, 15): "Proclamação da República",
	NewDate(2024, time.November, 20): "Dia Nacional de Zumbi e da Consciência Negra",
	NewDate(2024, time.December, 25): "Natal",
	NewDate(2025, time.January, 1):   "Confraternização Universal",
	NewDate(2025, time.April, 18):    "Sexta-feira Santa",
	NewDate(2025, time.April, 21):    "Tiradentes",
}

var annualFederal = annualOracle{
	{1, 1}:   "Confraternização Universal",
	{4, 21}:  "Tiradentes",
	{5, 1}:   "Dia do Trabalhador",
	{9, 7}:   "Independência do Brasil",
	{10, 12}: "Nossa Senhora Aparecida",
	{11, 2}:  "Finados",
	{11, 15}: "Proclamação da República",
	{11, 20}: "Dia Nacional de Zumbi e da Consciência Negra",
	{12, 25}: "Natal",
}
