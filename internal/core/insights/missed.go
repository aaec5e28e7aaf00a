package insights

import (
	"time"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/calendar"
)

// MaxMissedDates caps the list returned to clients.
const MaxMissedDates = 30

type MissedDays struct {
	Missed    int
	TotalDays int
	// Dates holds the oldest MaxMissedDates missed days.
	Dates []calendar.Day
}

// ProgramStart picks the baseline for missed-day accounting: the first entry,
// else the account creation day, else today. A start in the future is
// clamped to today.
func ProgramStart(firstEntry calendar.Day, accountCreatedAt *time.Time, loc *time.Location, today calendar.Day) calendar.Day {
	start := today
	switch {
	case !firstEntry.IsZero():
		start = firstEntry
	case accountCreatedAt != nil && !accountCreatedAt.IsZero():
		start = calendar.Today(*accountCreatedAt, loc)
	}

	if start.After(today) {
		return today
	}
	return start
}

// CountMissedDays walks start..today inclusive and classifies every day.
func CountMissedDays(start, today calendar.Day, filled map[calendar.Day]struct{}) MissedDays {
	res := MissedDays{Dates: []calendar.Day{}}

	for d := start; !d.After(today); d = d.AddDays(1) {
		res.TotalDays++
		if _, ok := filled[d]; ok {
			continue
		}
		res.Missed++
		if len(res.Dates) < MaxMissedDates {
			res.Dates = append(res.Dates, d)
		}
	}

	return res
}
