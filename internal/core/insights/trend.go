package insights

import (
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/calendar"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/domain"
)

type WeekOverWeek struct {
	LastWeek     int
	PreviousWeek int
	Delta        int
	Direction    domain.TrendDirection
}

// CompareWeeks counts filled days in [today-6, today] against
// [today-13, today-7].
func CompareWeeks(filled map[calendar.Day]struct{}, today calendar.Day) WeekOverWeek {
	days := dayset(filled)
	w := WeekOverWeek{
		LastWeek:     days.countBetween(today.AddDays(-6), today),
		PreviousWeek: days.countBetween(today.AddDays(-13), today.AddDays(-7)),
	}
	w.Delta = w.LastWeek - w.PreviousWeek

	switch {
	case w.Delta > 0:
		w.Direction = domain.TrendUp
	case w.Delta < 0:
		w.Direction = domain.TrendDown
	default:
		w.Direction = domain.TrendStable
	}

	return w
}
