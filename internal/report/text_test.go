package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestWriteText(t *testing.T) {
	res := availabilityNovember2024(t)

	var buf bytes.Buffer
	if err := WriteText(&buf, res); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	out := buf.String()

	wants := []string{
		"Disponibilização (DJEN):  15/11/2024",
		"Publicação:               18/11/2024",
		"Início da Contagem:       19/11/2024",
		"15 dias úteis",
		"DATA FATAL (VENCIMENTO):     10/12/2024 (Terça-feira)",
		"Feriado (Dia Nacional de Zumbi e da Consciência Negra)",
		"15º Dia",
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "Recesso Forense") {
		t.Error("recess mentioned although disabled")
	}

	// one table row per ledger entry
	rows := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "  ") && strings.Count(line, " | ") == 3 && !strings.Contains(line, "Data ") {
			rows++
		}
	}
	if rows != len(res.Ledger) {
		t.Errorf("table rows = %d, want %d", rows, len(res.Ledger))
	}
}

func TestWriteText_Recess(t *testing.T) {
	res := publicationDecember2024(t)

	var buf bytes.Buffer
	if err := WriteText(&buf, res); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "1. Disponibilização (DJEN):  N/A") {
		t.Error("availability should be N/A for a publication trigger")
	}
	if !strings.Contains(out, "Recesso Forense (Art. 220 CPC)") {
		t.Error("recess rows missing")
	}
	if !strings.Contains(out, "23/01/2025") {
		t.Error("due date missing")
	}
}

type failingWriter struct{ calls int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.calls++
	return 0, bytes.ErrTooLarge
}

func TestWriteText_StopsOnWriteError(t *testing.T) {
	w := &failingWriter{}
	if err := WriteText(w, availabilityNovember2024(t)); err == nil {
		t.Fatal("expected error")
	}
	if w.calls != 1 {
		t.Errorf("writes after error = %d, want 1", w.calls)
	}
}

func TestWriteJSON(t *testing.T) {
	res := availabilityNovember2024(t)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, res); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var doc struct {
		Availability string `json:"availability"`
		Publication  string `json:"publication"`
		CountStart   string `json:"count_start"`
		TriggerType  string `json:"trigger_type"`
		DueDate      string `json:"due_date"`
		Ledger       []struct {
			Date           string `json:"date"`
			Classification struct {
				Kind string `json:"kind"`
			} `json:"classification"`
			Count int `json:"count"`
		} `json:"ledger"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if doc.Availability != "2024-11-15" || doc.Publication != "2024-11-18" || doc.CountStart != "2024-11-19" {
		t.Errorf("milestones = %s / %s / %s", doc.Availability, doc.Publication, doc.CountStart)
	}
	if doc.TriggerType != "availability" {
		t.Errorf("trigger_type = %q", doc.TriggerType)
	}
	if doc.DueDate != "2024-12-10" {
		t.Errorf("due_date = %q", doc.DueDate)
	}
	if len(doc.Ledger) != 22 {
		t.Fatalf("ledger rows = %d, want 22", len(doc.Ledger))
	}
	if doc.Ledger[1].Date != "2024-11-20" || doc.Ledger[1].Classification.Kind != "holiday" {
		t.Errorf("ledger[1] = %+v", doc.Ledger[1])
	}
	if doc.Ledger[21].Count != 15 {
		t.Errorf("last count = %d", doc.Ledger[21].Count)
	}
}
