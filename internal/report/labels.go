// Package report renders deadline results for people: terminal tables,
// JSON documents and paginated PDF reports.
package report

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/username/prazo-calc/internal/deadline"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	labelBusinessDay = "Dia Útil"
	labelWeekend     = "Fim de Semana"
	labelHoliday     = "Feriado"
	labelRecess      = "Recesso Forense (Art. 220 CPC)"
	labelNotCounted  = "-"
)

// StatusLabel returns the Portuguese status of a ledger day
func StatusLabel(c deadline.Classification) string {
	switch c.Kind {
	case deadline.BusinessDay:
		return labelBusinessDay
	case deadline.Weekend:
		return labelWeekend
	case deadline.Holiday:
		if c.HolidayName == "" {
			return labelHoliday
		}
		return fmt.Sprintf("%s (%s)", labelHoliday, c.HolidayName)
	case deadline.Recess:
		return labelRecess
	default:
		return c.Kind.String()
	}
}

// CountLabel returns "Nº Dia" for counted days and "-" otherwise
func CountLabel(e deadline.Entry) string {
	if !e.Counted() {
		return labelNotCounted
	}
	return fmt.Sprintf("%dº Dia", e.Count)
}

// TriggerLabel names what the trigger date refers to
func TriggerLabel(t deadline.TriggerType) string {
	switch t {
	case deadline.Availability:
		return "Disponibilização (DJEN)"
	case deadline.CertifiedPublication:
		return "Publicação Certificada"
	default:
		return t.String()
	}
}

// FileName returns the suggested PDF file name, e.g. prazo_DERKIAM-ADVOCACIA_10-12-2024.pdf
func FileName(office string, due deadline.Date) string {
	stamp := fmt.Sprintf("%02d-%02d-%04d", due.Day, int(due.Month), due.Year)
	if slug := slugify(office); slug != "" {
		return fmt.Sprintf("prazo_%s_%s.pdf", slug, stamp)
	}
	return fmt.Sprintf("prazo_%s.pdf", stamp)
}

func slugify(s string) string {
	// transform.Chain keeps per-call state, so each call gets its own.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(stripMarks, s)
	if err != nil {
		plain = s
	}

	var words []string
	for _, field := range strings.Fields(plain) {
		word := strings.Map(func(r rune) rune {
			if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
				return r
			}
			return -1
		}, field)
		if word != "" {
			words = append(words, word)
		}
	}
	return strings.Join(words, "-")
}
