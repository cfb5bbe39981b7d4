package deadline

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestIsRecess(t *testing.T) {
	tests := []struct {
		date Date
		want bool
	}{
		{NewDate(2024, time.December, 19), false},
		{NewDate(2024, time.December, 20), true},
		{NewDate(2024, time.December, 31), true},
		{NewDate(2025, time.January, 1), true},
		{NewDate(2025, time.January, 20), true},
		{NewDate(2025, time.January, 21), false},
		{NewDate(2025, time.July, 20), false},
		{NewDate(1999, time.December, 25), true},
	}

	for _, tt := range tests {
		t.Run(tt.date.String(), func(t *testing.T) {
			if got := IsRecess(tt.date); got != tt.want {
				t.Errorf("IsRecess(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestClassify_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		date     Date
		recess   bool
		wantKind DayKind
		wantName string
	}{
		{"business day", NewDate(2024, time.November, 19), false, BusinessDay, ""},
		{"saturday", NewDate(2024, time.November, 16), false, Weekend, ""},
		{"holiday on weekday", NewDate(2024, time.November, 20), false, Holiday, "Dia Nacional de Zumbi e da Consciência Negra"},
		{"holiday on saturday reported as weekend", NewDate(2024, time.November, 2), false, Weekend, ""},
		{"christmas without recess", NewDate(2024, time.December, 25), false, Holiday, "Natal"},
		{"christmas inside recess", NewDate(2024, time.December, 25), true, Recess, ""},
		{"weekend inside recess", NewDate(2024, time.December, 21), true, Recess, ""},
		{"weekday inside recess", NewDate(2025, time.January, 20), true, Recess, ""},
		{"first day after recess", NewDate(2025, time.January, 21), true, BusinessDay, ""},
		{"holiday outside recess window with recess on", NewDate(2024, time.November, 15), true, Holiday, "Proclamação da República"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(context.Background(), tt.date, brazil2024, tt.recess)
			if err != nil {
				t.Fatalf("Classify(%v) error = %v", tt.date, err)
			}
			if got.Kind != tt.wantKind {
				t.Errorf("Classify(%v).Kind = %v, want %v", tt.date, got.Kind, tt.wantKind)
			}
			if got.HolidayName != tt.wantName {
				t.Errorf("Classify(%v).HolidayName = %q, want %q", tt.date, got.HolidayName, tt.wantName)
			}
		})
	}
}

func TestClassify_RecessSkipsOracle(t *testing.T) {
	// A failing oracle is never consulted inside the recess window or on weekends.
	oracle := failingOracle{err: errCalendarDown}

	if _, err := Classify(context.Background(), NewDate(2024, time.December, 23), oracle, true); err != nil {
		t.Errorf("recess day consulted oracle: %v", err)
	}
	if _, err := Classify(context.Background(), NewDate(2024, time.November, 17), oracle, false); err != nil {
		t.Errorf("weekend consulted oracle: %v", err)
	}
}

func TestClassify_OracleFailure(t *testing.T) {
	_, err := Classify(context.Background(), NewDate(2024, time.November, 19), failingOracle{err: errCalendarDown}, false)

	if !errors.Is(err, ErrHolidayOracleFailure) {
		t.Errorf("error = %v, want ErrHolidayOracleFailure", err)
	}
	if !errors.Is(err, errCalendarDown) {
		t.Errorf("error = %v, want wrapped cause", err)
	}
}

func TestDayKind_Text(t *testing.T) {
	for _, kind := range []DayKind{BusinessDay, Weekend, Holiday, Recess} {
		text, err := kind.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error = %v", kind, err)
		}

		var back DayKind
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%s) error = %v", text, err)
		}
		if back != kind {
			t.Errorf("round trip %v -> %s -> %v", kind, text, back)
		}
	}

	if _, err := DayKind(0).MarshalText(); err == nil {
		t.Error("MarshalText(0) expected error")
	}
}

func TestParseTriggerType(t *testing.T) {
	tests := []struct {
		input   string
		want    TriggerType
		wantErr bool
	}{
		{"availability", Availability, false},
		{"DJEN", Availability, false},
		{"disponibilização", Availability, false},
		{"publication", CertifiedPublication, false},
		{" Publicacao ", CertifiedPublication, false},
		{"intimacao", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTriggerType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTriggerType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrUnknownTriggerType) {
				t.Errorf("ParseTriggerType(%q) error = %v, want ErrUnknownTriggerType", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTriggerType(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
