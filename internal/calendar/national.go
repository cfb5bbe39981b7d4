package calendar

import (
	"context"
	"fmt"
	"sync"
	"time"

	cal "github.com/rickar/cal/v2"
	"go.uber.org/zap"
)

// Federal holidays (Lei 662/1949, Lei 6.802/1980, Lei 14.759/2023)
var (
	ConfraternizacaoUniversal = &cal.Holiday{
		Name:  "Confraternização Universal",
		Type:  cal.ObservancePublic,
		Month: time.January,
		Day:   1,
		Func:  cal.CalcDayOfMonth,
	}
	SextaFeiraSanta = &cal.Holiday{
		Name:   "Sexta-feira Santa",
		Type:   cal.ObservancePublic,
		Offset: -2,
		Func:   cal.CalcEasterOffset,
	}
	Tiradentes = &cal.Holiday{
		Name:  "Tiradentes",
		Type:  cal.ObservancePublic,
		Month: time.April,
		Day:   21,
		Func:  cal.CalcDayOfMonth,
	}
	DiaDoTrabalhador = &cal.Holiday{
		Name:  "Dia do Trabalhador",
		Type:  cal.ObservancePublic,
		Month: time.May,
		Day:   1,
		Func:  cal.CalcDayOfMonth,
	}
	IndependenciaDoBrasil = &cal.Holiday{
		Name:  "Independência do Brasil",
		Type:  cal.ObservancePublic,
		Month: time.September,
		Day:   7,
		Func:  cal.CalcDayOfMonth,
	}
	NossaSenhoraAparecida = &cal.Holiday{
		Name:  "Nossa Senhora Aparecida",
		Type:  cal.ObservancePublic,
		Month: time.October,
		Day:   12,
		Func:  cal.CalcDayOfMonth,
	}
	Finados = &cal.Holiday{
		Name:  "Finados",
		Type:  cal.ObservancePublic,
		Month: time.November,
		Day:   2,
		Func:  cal.CalcDayOfMonth,
	}
	ProclamacaoDaRepublica = &cal.Holiday{
		Name:  "Proclamação da República",
		Type:  cal.ObservancePublic,
		Month: time.November,
		Day:   15,
		Func:  cal.CalcDayOfMonth,
	}
	ConscienciaNegra = &cal.Holiday{
		Name:      "Dia Nacional de Zumbi e da Consciência Negra",
		Type:      cal.ObservancePublic,
		Month:     time.November,
		Day:       20,
		StartYear: 2024,
		Func:      cal.CalcDayOfMonth,
	}
	Natal = &cal.Holiday{
		Name:  "Natal",
		Type:  cal.ObservancePublic,
		Month: time.December,
		Day:   25,
		Func:  cal.CalcDayOfMonth,
	}

	// Federal optional days on which courts usually close

	CarnavalSegunda = &cal.Holiday{
		Name:   "Carnaval (segunda-feira)",
		Type:   cal.ObservanceOther,
		Offset: -48,
		Func:   cal.CalcEasterOffset,
	}
	CarnavalTerca = &cal.Holiday{
		Name:   "Carnaval (terça-feira)",
		Type:   cal.ObservanceOther,
		Offset: -47,
		Func:   cal.CalcEasterOffset,
	}
	CorpusChristi = &cal.Holiday{
		Name:   "Corpus Christi",
		Type:   cal.ObservanceOther,
		Offset: 60,
		Func:   cal.CalcEasterOffset,
	}

	// FederalHolidays are the national holidays counted by default
	FederalHolidays = []*cal.Holiday{
		ConfraternizacaoUniversal,
		SextaFeiraSanta,
		Tiradentes,
		DiaDoTrabalhador,
		IndependenciaDoBrasil,
		NossaSenhoraAparecida,
		Finados,
		ProclamacaoDaRepublica,
		ConscienciaNegra,
		Natal,
	}

	// OptionalHolidays are added with NationalOptions.IncludeOptional
	OptionalHolidays = []*cal.Holiday{
		CarnavalSegunda,
		CarnavalTerca,
		CorpusChristi,
	}
)

// NationalOptions configure a NationalCalendar
type NationalOptions struct {
	IncludeOptional bool
	// MinYear and MaxYear bound the supported years; zero means unbounded
	MinYear int
	MaxYear int
}

// NationalCalendar computes Brazilian federal holidays
type NationalCalendar struct {
	business *cal.BusinessCalendar
	holidays []*cal.Holiday
	minYear  int
	maxYear  int
	logger   *zap.Logger
	cache    map[int][]Holiday
	cacheMu  sync.RWMutex
}

// NewNationalCalendar creates a new NationalCalendar instance
func NewNationalCalendar(opts NationalOptions, logger *zap.Logger) *NationalCalendar {
	holidays := append([]*cal.Holiday{}, FederalHolidays...)
	if opts.IncludeOptional {
		holidays = append(holidays, OptionalHolidays...)
	}

	business := cal.NewBusinessCalendar()
	business.AddHoliday(holidays...)

	return &NationalCalendar{
		business: business,
		holidays: holidays,
		minYear:  opts.MinYear,
		maxYear:  opts.MaxYear,
		logger:   logger,
		cache:    make(map[int][]Holiday),
	}
}

// HolidayName checks if the given date is a holiday
func (nc *NationalCalendar) HolidayName(_ context.Context, date time.Time) (string, bool, error) {
	if err := nc.checkYear(date.Year()); err != nil {
		return "", false, err
	}

	actual, _, h := nc.business.IsHoliday(date)
	if !actual || h == nil {
		return "", false, nil
	}
	return h.Name, true, nil
}

// Holidays returns the holidays of year ordered by date
func (nc *NationalCalendar) Holidays(_ context.Context, year int) ([]Holiday, error) {
	if err := nc.checkYear(year); err != nil {
		return nil, err
	}

	nc.cacheMu.RLock()
	if cached, ok := nc.cache[year]; ok {
		nc.cacheMu.RUnlock()
		return append([]Holiday(nil), cached...), nil
	}
	nc.cacheMu.RUnlock()

	holidays := make([]Holiday, 0, len(nc.holidays))
	for _, h := range nc.holidays {
		if h.StartYear > 0 && year < h.StartYear {
			continue
		}
		actual, _ := h.Calc(year)
		if actual.IsZero() {
			continue
		}
		holidays = append(holidays, Holiday{
			Date:   time.Date(actual.Year(), actual.Month(), actual.Day(), 0, 0, 0, 0, time.UTC),
			Name:   h.Name,
			Source: SourceNational,
		})
	}
	sortHolidays(holidays)

	nc.cacheMu.Lock()
	nc.cache[year] = holidays
	nc.cacheMu.Unlock()

	nc.logger.Debug("National holidays computed",
		zap.Int("year", year),
		zap.Int("count", len(holidays)))

	return append([]Holiday(nil), holidays...), nil
}

func (nc *NationalCalendar) checkYear(year int) error {
	if (nc.minYear > 0 && year < nc.minYear) || (nc.maxYear > 0 && year > nc.maxYear) {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrYearOutOfRange, year, nc.minYear, nc.maxYear)
	}
	return nil
}
