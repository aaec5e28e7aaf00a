// Package insights derives momentum, streak, missed-day and behavioral
// metrics from a user's journal history.
//
// Every function here is pure: no clock reads, no I/O. The calendar day that
// counts as "today" is always passed in by the caller.
package insights

import (
	"math"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/calendar"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/domain"
)

// dayset is the set of calendar days with at least one completed entry.
type dayset map[calendar.Day]struct{}

func (s dayset) has(d calendar.Day) bool {
	_, ok := s[d]
	return ok
}

// countBetween counts filled days in [from, to].
func (s dayset) countBetween(from, to calendar.Day) int {
	n := 0
	for d := range s {
		if d.Between(from, to) {
			n++
		}
	}
	return n
}

type activity struct {
	completedDays    dayset
	completedEntries []*domain.JournalEntry
	firstEntry       calendar.Day
}

func collectActivity(entries []*domain.JournalEntry) activity {
	act := activity{completedDays: make(dayset)}

	for _, e := range entries {
		if e == nil || e.EntryDate.IsZero() {
			continue
		}
		if act.firstEntry.IsZero() || e.EntryDate.Before(act.firstEntry) {
			act.firstEntry = e.EntryDate
		}
		if !e.HasContent() {
			continue
		}
		act.completedDays[e.EntryDate] = struct{}{}
		act.completedEntries = append(act.completedEntries, e)
	}

	return act
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// percent is round(num/den*100), defined as 0 when den is not positive.
func percent(num, den int) int {
	if den <= 0 {
		return 0
	}
	return roundHalfUp(float64(num) / float64(den) * 100)
}
