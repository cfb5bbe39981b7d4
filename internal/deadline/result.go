package deadline

import "time"

var weekdayNames = [...]string{
	time.Sunday:    "Domingo",
	time.Monday:    "Segunda-feira",
	time.Tuesday:   "Terça-feira",
	time.Wednesday: "Quarta-feira",
	time.Thursday:  "Quinta-feira",
	time.Friday:    "Sexta-feira",
	time.Saturday:  "Sábado",
}

// WeekdayName returns the Portuguese name of a weekday.
func WeekdayName(w time.Weekday) string {
	return weekdayNames[w]
}

// Entry is one ledger row: a calendar day visited while counting.
type Entry struct {
	Date           Date           `json:"date"`
	Weekday        string         `json:"weekday"`
	Classification Classification `json:"classification"`
	// Count is the 1-based number of business days consumed up to and
	// including this day. Zero means the day was not counted.
	Count int `json:"count,omitempty"`
}

// Counted reports whether the entry consumed a business day.
func (e Entry) Counted() bool {
	return e.Count > 0
}

// Milestones are the dates derived from the trigger date.
type Milestones struct {
	Availability *Date `json:"availability,omitempty"`
	Publication  Date  `json:"publication"`
	CountStart   Date  `json:"count_start"`
}

// Request holds the inputs of one deadline calculation.
type Request struct {
	TriggerDate   Date
	TriggerType   TriggerType
	BusinessDays  int
	RecessEnabled bool
}

// Result is a completed calculation. The ledger holds exactly BusinessDays
// counted entries and its last entry is the due date.
type Result struct {
	Milestones
	TriggerType   TriggerType `json:"trigger_type"`
	BusinessDays  int         `json:"business_days"`
	RecessEnabled bool        `json:"recess_enabled"`
	DueDate       Date        `json:"due_date"`
	Ledger        []Entry     `json:"ledger"`
}

// CountedEntries returns the ledger entries that consumed a business day.
func (r *Result) CountedEntries() []Entry {
	counted := make([]Entry, 0, r.BusinessDays)
	for _, e := range r.Ledger {
		if e.Counted() {
			counted = append(counted, e)
		}
	}
	return counted
}

// Summary returns the number of ledger days per classification.
func (r *Result) Summary() map[DayKind]int {
	summary := make(map[DayKind]int, len(dayKindNames))
	for _, e := range r.Ledger {
		summary[e.Classification.Kind]++
	}
	return summary
}
