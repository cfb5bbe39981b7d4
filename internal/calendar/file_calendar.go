package calendar

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/username/prazo-calc/pkg/dateutil"
	"go.uber.org/zap"
)

// FileCalendar implements Calendar using a local text file of extra holidays,
// such as state, municipal or court-specific closures
type FileCalendar struct {
	filePath string
	logger   *zap.Logger
	mu       sync.RWMutex
	data     map[string]Holiday // key: "YYYY-MM-DD"
}

// NewFileCalendar creates a new FileCalendar instance
func NewFileCalendar(filePath string, logger *zap.Logger) *FileCalendar {
	return &FileCalendar{
		filePath: filePath,
		logger:   logger,
		data:     make(map[string]Holiday),
	}
}

// Load loads holiday data from file
func (fc *FileCalendar) Load() error {
	file, err := os.Open(fc.filePath)
	if err != nil {
		return fmt.Errorf("failed to open calendar file: %w", err)
	}
	defer file.Close()

	data := make(map[string]Holiday)
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Format: YYYY-MM-DD name
		// Example: 2024-12-08 Dia da Justiça
		dateStr, name, _ := strings.Cut(line, " ")
		name = strings.TrimSpace(name)

		date, err := dateutil.ParseDate(dateStr)
		if err != nil {
			fc.logger.Warn("Failed to parse date", zap.String("line", line), zap.Error(err))
			continue
		}

		date = dateutil.DateOnly(date)
		data[dayKey(date)] = Holiday{
			Date:   date,
			Name:   name,
			Source: SourceFile,
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading calendar file: %w", err)
	}

	fc.mu.Lock()
	fc.data = data
	fc.mu.Unlock()

	fc.logger.Info("Calendar file loaded",
		zap.String("file", fc.filePath),
		zap.Int("holidays", len(data)))

	return nil
}

// HolidayName checks if the given date is listed in the file
func (fc *FileCalendar) HolidayName(_ context.Context, date time.Time) (string, bool, error) {
	fc.mu.RLock()
	defer fc.mu.RUnlock()

	h, ok := fc.data[dayKey(date)]
	return h.Name, ok, nil
}

// Holidays returns the listed holidays of year ordered by date
func (fc *FileCalendar) Holidays(_ context.Context, year int) ([]Holiday, error) {
	fc.mu.RLock()
	defer fc.mu.RUnlock()

	var holidays []Holiday
	for _, h := range fc.data {
		if h.Date.Year() == year {
			holidays = append(holidays, h)
		}
	}
	sortHolidays(holidays)

	return holidays, nil
}
