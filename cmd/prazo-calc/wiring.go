package main

import (
	"fmt"

	"github.com/username/prazo-calc/internal/calendar"
	"github.com/username/prazo-calc/internal/config"
	"github.com/username/prazo-calc/internal/deadline"
	"go.uber.org/zap"
)

// initializeCalendar builds the holiday calendar selected in the config,
// overlaid with the extra holidays file when one is configured
func initializeCalendar(cfg *config.Config) (calendar.Calendar, error) {
	national := calendar.NewNationalCalendar(calendar.NationalOptions{
		IncludeOptional: cfg.Calendar.IncludeOptional,
		MinYear:         cfg.Calendar.MinYear,
		MaxYear:         cfg.Calendar.MaxYear,
	}, logger)

	var cal calendar.Calendar

	switch cfg.Calendar.Type {
	case config.CalendarNational:
		logger.Debug("Using computed national calendar")
		cal = national

	case config.CalendarBrasilAPI:
		logger.Debug("Using BrasilAPI calendar with national fallback",
			zap.String("api_url", cfg.Calendar.APIURL))
		remote := calendar.NewBrasilAPICalendar(
			cfg.Calendar.APIURL,
			cfg.Calendar.GetCacheTTL(),
			logger,
		)
		cal = calendar.NewCompositeCalendar(remote, national, logger)

	default:
		return nil, fmt.Errorf("unknown calendar type: %s", cfg.Calendar.Type)
	}

	if cfg.Calendar.ExtraFile != "" {
		extra := calendar.NewFileCalendar(cfg.Calendar.ExtraFile, logger)
		if err := extra.Load(); err != nil {
			return nil, fmt.Errorf("failed to load extra holidays: %w", err)
		}
		cal = calendar.NewUnionCalendar(cal, extra)
	}

	return cal, nil
}

func initializeEngine(cfg *config.Config) (*deadline.Engine, calendar.Calendar, error) {
	cal, err := initializeCalendar(cfg)
	if err != nil {
		return nil, nil, err
	}

	engine := deadline.NewEngine(cal, deadline.Options{
		IterationFactor: cfg.Deadline.IterationFactor,
	}, logger)

	return engine, cal, nil
}
