package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestNationalCalendar_HolidayName(t *testing.T) {
	nc := NewNationalCalendar(NationalOptions{}, zap.NewNop())

	tests := []struct {
		name     string
		date     time.Time
		wantOK   bool
		wantName string
	}{
		{"new year", date(2025, time.January, 1), true, "Confraternização Universal"},
		{"good friday 2024", date(2024, time.March, 29), true, "Sexta-feira Santa"},
		{"good friday 2025", date(2025, time.April, 18), true, "Sexta-feira Santa"},
		{"tiradentes", date(2025, time.April, 21), true, "Tiradentes"},
		{"republic day", date(2024, time.November, 15), true, "Proclamação da República"},
		{"black consciousness 2024", date(2024, time.November, 20), true, "Dia Nacional de Zumbi e da Consciência Negra"},
		{"black consciousness before federal law", date(2023, time.November, 20), false, ""},
		{"christmas", date(2024, time.December, 25), true, "Natal"},
		{"ordinary day", date(2024, time.November, 19), false, ""},
		{"carnival is optional", date(2024, time.February, 13), false, ""},
		{"corpus christi is optional", date(2024, time.May, 30), false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, ok, err := nc.HolidayName(context.Background(), tt.date)
			if err != nil {
				t.Fatalf("HolidayName(%v) error = %v", tt.date, err)
			}
			if ok != tt.wantOK || name != tt.wantName {
				t.Errorf("HolidayName(%v) = (%q, %v), want (%q, %v)",
					tt.date.Format("2006-01-02"), name, ok, tt.wantName, tt.wantOK)
			}
		})
	}
}

func TestNationalCalendar_OptionalHolidays(t *testing.T) {
	nc := NewNationalCalendar(NationalOptions{IncludeOptional: true}, zap.NewNop())

	tests := []struct {
		date     time.Time
		wantName string
	}{
		{date(2024, time.February, 12), "Carnaval (segunda-feira)"},
		{date(2024, time.February, 13), "Carnaval (terça-feira)"},
		{date(2024, time.May, 30), "Corpus Christi"},
		{date(2025, time.March, 4), "Carnaval (terça-feira)"},
		{date(2025, time.June, 19), "Corpus Christi"},
	}

	for _, tt := range tests {
		t.Run(tt.date.Format("2006-01-02"), func(t *testing.T) {
			name, ok, err := nc.HolidayName(context.Background(), tt.date)
			if err != nil {
				t.Fatalf("HolidayName() error = %v", err)
			}
			if !ok || name != tt.wantName {
				t.Errorf("HolidayName() = (%q, %v), want %q", name, ok, tt.wantName)
			}
		})
	}
}

func TestNationalCalendar_Holidays(t *testing.T) {
	nc := NewNationalCalendar(NationalOptions{}, zap.NewNop())

	holidays, err := nc.Holidays(context.Background(), 2024)
	if err != nil {
		t.Fatalf("Holidays(2024) error = %v", err)
	}

	want := []time.Time{
		date(2024, time.January, 1),
		date(2024, time.March, 29),
		date(2024, time.April, 21),
		date(2024, time.May, 1),
		date(2024, time.September, 7),
		date(2024, time.October, 12),
		date(2024, time.November, 2),
		date(2024, time.November, 15),
		date(2024, time.November, 20),
		date(2024, time.December, 25),
	}
	if len(holidays) != len(want) {
		t.Fatalf("Holidays(2024) returned %d holidays, want %d: %+v", len(holidays), len(want), holidays)
	}
	for i, h := range holidays {
		if !h.Date.Equal(want[i]) {
			t.Errorf("holiday[%d] = %v (%s), want %v", i, h.Date.Format("2006-01-02"), h.Name, want[i].Format("2006-01-02"))
		}
		if h.Source != SourceNational {
			t.Errorf("holiday[%d].Source = %q, want %q", i, h.Source, SourceNational)
		}
	}

	older, err := nc.Holidays(context.Background(), 2023)
	if err != nil {
		t.Fatalf("Holidays(2023) error = %v", err)
	}
	if len(older) != 9 {
		t.Errorf("Holidays(2023) returned %d holidays, want 9", len(older))
	}

	// Cached copies must not leak mutations
	holidays[0].Name = "changed"
	again, _ := nc.Holidays(context.Background(), 2024)
	if again[0].Name != "Confraternização Universal" {
		t.Errorf("cache mutated through returned slice: %q", again[0].Name)
	}
}

func TestNationalCalendar_YearRange(t *testing.T) {
	nc := NewNationalCalendar(NationalOptions{MinYear: 2000, MaxYear: 2030}, zap.NewNop())

	if _, _, err := nc.HolidayName(context.Background(), date(2031, time.January, 2)); !errors.Is(err, ErrYearOutOfRange) {
		t.Errorf("HolidayName(2031) error = %v, want ErrYearOutOfRange", err)
	}
	if _, err := nc.Holidays(context.Background(), 1999); !errors.Is(err, ErrYearOutOfRange) {
		t.Errorf("Holidays(1999) error = %v, want ErrYearOutOfRange", err)
	}
	if _, _, err := nc.HolidayName(context.Background(), date(2030, time.December, 31)); err != nil {
		t.Errorf("HolidayName(2030) error = %v", err)
	}
}
