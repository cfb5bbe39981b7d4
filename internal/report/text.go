package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/username/prazo-calc/internal/deadline"
)

const ruler = "═══════════════════════════════════════════════════════════════════════"

// WriteText writes the milestone summary and the day-by-day ledger as a table
func WriteText(w io.Writer, res *deadline.Result) error {
	p := &printer{w: w}

	p.println("📊 Resumo dos Marcos Temporais")
	p.println(ruler)
	if res.Availability != nil {
		p.printf("  1. Disponibilização (DJEN):  %s\n", res.Availability.Format())
	} else {
		p.printf("  1. Disponibilização (DJEN):  N/A\n")
	}
	p.printf("  2. Publicação:               %s\n", res.Publication.Format())
	p.printf("  3. Início da Contagem:       %s\n", res.CountStart.Format())
	p.printf("  Prazo Total:                 %d dias úteis\n", res.BusinessDays)
	if res.RecessEnabled {
		p.printf("  Recesso Forense:             considerado (20/12 a 20/01)\n")
	}
	p.printf("  DATA FATAL (VENCIMENTO):     %s (%s)\n",
		res.DueDate.Format(), deadline.WeekdayName(res.DueDate.Weekday()))

	statusWidth := 40
	if res.RecessEnabled {
		statusWidth = 48
	}

	p.println("\n📅 Detalhamento Dia a Dia")
	p.println(ruler)
	p.printf("  %-10s | %-13s | %-*s | %s\n", "Data", "Dia da Semana", statusWidth, "Status", "Contagem")
	p.printf("  %s+%s+%s+%s\n",
		strings.Repeat("-", 11), strings.Repeat("-", 15), strings.Repeat("-", statusWidth+2), strings.Repeat("-", 10))
	for _, e := range res.Ledger {
		p.printf("  %-10s | %-13s | %-*s | %s\n",
			e.Date.Format(), e.Weekday, statusWidth, StatusLabel(e.Classification), CountLabel(e))
	}

	p.printf("\nO prazo termina em %s (%s).\n",
		res.DueDate.Format(), deadline.WeekdayName(res.DueDate.Weekday()))

	return p.err
}

// WriteJSON writes the result as indented JSON
func WriteJSON(w io.Writer, res *deadline.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

// printer keeps the first write error so callers can check once
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, a ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, a...)
}

func (p *printer) println(a ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, a...)
}
