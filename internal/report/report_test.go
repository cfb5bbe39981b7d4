package report

import (
	"context"
	"testing"
	"time"

	"github.com/username/prazo-calc/internal/calendar"
	"github.com/username/prazo-calc/internal/deadline"
	"go.uber.org/zap"
)

func calculate(t *testing.T, req deadline.Request) *deadline.Result {
	t.Helper()

	nc := calendar.NewNationalCalendar(calendar.NationalOptions{}, zap.NewNop())
	engine := deadline.NewEngine(nc, deadline.Options{}, zap.NewNop())

	res, err := engine.Calculate(context.Background(), req)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	return res
}

// availabilityNovember2024 spans a weekend block, Republic Day and Black Consciousness Day
func availabilityNovember2024(t *testing.T) *deadline.Result {
	return calculate(t, deadline.Request{
		TriggerDate:  deadline.NewDate(2024, time.November, 15),
		TriggerType:  deadline.Availability,
		BusinessDays: 15,
	})
}

// publicationDecember2024 crosses the year-end recess
func publicationDecember2024(t *testing.T) *deadline.Result {
	return calculate(t, deadline.Request{
		TriggerDate:   deadline.NewDate(2024, time.December, 10),
		TriggerType:   deadline.CertifiedPublication,
		BusinessDays:  10,
		RecessEnabled: true,
	})
}
