package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	brasilAPIBaseURL   = "https://brasilapi.com.br"
	defaultHTTPTimeout = 10 * time.Second
	defaultCacheTTL    = 24 * time.Hour
	defaultRetries     = 3
	defaultRetryDelay  = time.Second
	defaultFailureTTL  = time.Minute
)

// BrasilAPICalendar implements Calendar using the BrasilAPI national holidays endpoint
type BrasilAPICalendar struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	cache      map[int]*cachedYear
	failures   map[int]failedYear
	cacheMu    sync.RWMutex
	cacheTTL   time.Duration
	failureTTL time.Duration
	retries    int
	retryDelay time.Duration // grows linearly with the attempt number
}

// failedYear remembers an exhausted fetch so callers fail fast until failureTTL passes
type failedYear struct {
	err      error
	failedAt time.Time
}

type cachedYear struct {
	holidays  []Holiday
	byDay     map[string]string
	fetchedAt time.Time
}

// brasilAPIHoliday represents one element of GET /api/feriados/v1/{year}
type brasilAPIHoliday struct {
	Date string `json:"date"` // "YYYY-MM-DD"
	Name string `json:"name"`
	Type string `json:"type"` // "national"
}

// NewBrasilAPICalendar creates a new BrasilAPICalendar instance
func NewBrasilAPICalendar(baseURL string, cacheTTL time.Duration, logger *zap.Logger) *BrasilAPICalendar {
	if baseURL == "" {
		baseURL = brasilAPIBaseURL
	}
	if cacheTTL == 0 {
		cacheTTL = defaultCacheTTL
	}

	return &BrasilAPICalendar{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
		logger:     logger,
		cache:      make(map[int]*cachedYear),
		failures:   make(map[int]failedYear),
		cacheTTL:   cacheTTL,
		failureTTL: defaultFailureTTL,
		retries:    defaultRetries,
		retryDelay: defaultRetryDelay,
	}
}

// HolidayName checks if the given date is a holiday
func (c *BrasilAPICalendar) HolidayName(ctx context.Context, date time.Time) (string, bool, error) {
	year, err := c.getYear(ctx, date.Year())
	if err != nil {
		return "", false, err
	}

	name, ok := year.byDay[dayKey(date)]
	return name, ok, nil
}

// Holidays returns the holidays of year ordered by date
func (c *BrasilAPICalendar) Holidays(ctx context.Context, year int) ([]Holiday, error) {
	cached, err := c.getYear(ctx, year)
	if err != nil {
		return nil, err
	}
	return append([]Holiday(nil), cached.holidays...), nil
}

func (c *BrasilAPICalendar) getYear(ctx context.Context, year int) (*cachedYear, error) {
	c.cacheMu.RLock()
	if cached, ok := c.cache[year]; ok {
		if time.Since(cached.fetchedAt) < c.cacheTTL {
			c.cacheMu.RUnlock()
			return cached, nil
		}
	}
	if failed, ok := c.failures[year]; ok {
		if time.Since(failed.failedAt) < c.failureTTL {
			c.cacheMu.RUnlock()
			return nil, failed.err
		}
	}
	c.cacheMu.RUnlock()

	holidays, err := c.fetchYear(ctx, year)
	if err != nil {
		// A cancelled caller says nothing about the health of BrasilAPI.
		if ctx.Err() == nil {
			c.cacheMu.Lock()
			c.failures[year] = failedYear{err: err, failedAt: time.Now()}
			c.cacheMu.Unlock()
		}
		return nil, err
	}

	cached := &cachedYear{
		holidays:  holidays,
		byDay:     make(map[string]string, len(holidays)),
		fetchedAt: time.Now(),
	}
	for _, h := range holidays {
		cached.byDay[dayKey(h.Date)] = h.Name
	}

	c.cacheMu.Lock()
	c.cache[year] = cached
	delete(c.failures, year)
	c.cacheMu.Unlock()

	return cached, nil
}

// fetchYear fetches the holidays of a whole year from BrasilAPI, retrying
// network errors and 5xx/429 responses
func (c *BrasilAPICalendar) fetchYear(ctx context.Context, year int) ([]Holiday, error) {
	// Build URL: https://brasilapi.com.br/api/feriados/v1/2024
	url := fmt.Sprintf("%s/api/feriados/v1/%d", c.baseURL, year)

	var lastErr error
	for attempt := 1; attempt <= c.retries; attempt++ {
		holidays, retryable, err := c.fetchYearOnce(ctx, url, year)
		if err == nil {
			return holidays, nil
		}
		if !retryable || ctx.Err() != nil {
			return nil, err
		}

		lastErr = err
		c.logger.Warn("BrasilAPI request failed, retrying",
			zap.Int("attempt", attempt),
			zap.Int("max_retries", c.retries),
			zap.Error(err))

		if attempt < c.retries {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("BrasilAPI retry interrupted: %w", ctx.Err())
			case <-time.After(c.retryDelay * time.Duration(attempt)):
			}
		}
	}

	return nil, fmt.Errorf("BrasilAPI request failed after %d attempts: %w", c.retries, lastErr)
}

// fetchYearOnce performs a single request and reports whether a failure is worth retrying
func (c *BrasilAPICalendar) fetchYearOnce(ctx context.Context, url string, year int) ([]Holiday, bool, error) {
	c.logger.Debug("Fetching holidays from BrasilAPI",
		zap.String("url", url),
		zap.Int("year", year))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to build BrasilAPI request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		retryable := !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
		return nil, retryable, fmt.Errorf("failed to fetch holidays: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		retryable := resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests
		return nil, retryable, fmt.Errorf("BrasilAPI returned status %d for year %d", resp.StatusCode, year)
	}

	var apiHolidays []brasilAPIHoliday
	if err := json.NewDecoder(resp.Body).Decode(&apiHolidays); err != nil {
		return nil, false, fmt.Errorf("failed to parse BrasilAPI response: %w", err)
	}

	holidays := make([]Holiday, 0, len(apiHolidays))
	for _, h := range apiHolidays {
		date, err := time.Parse("2006-01-02", h.Date)
		if err != nil {
			c.logger.Warn("Failed to parse holiday date",
				zap.String("date", h.Date),
				zap.String("name", h.Name),
				zap.Error(err))
			continue
		}

		holidays = append(holidays, Holiday{
			Date:   date,
			Name:   h.Name,
			Source: SourceBrasilAPI,
		})
	}
	sortHolidays(holidays)

	c.logger.Info("Holidays fetched from BrasilAPI",
		zap.Int("year", year),
		zap.Int("count", len(holidays)))

	return holidays, false, nil
}

// ClearCache clears the cache
func (c *BrasilAPICalendar) ClearCache() {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	c.cache = make(map[int]*cachedYear)
	c.failures = make(map[int]failedYear)
	c.logger.Info("Calendar cache cleared")
}
