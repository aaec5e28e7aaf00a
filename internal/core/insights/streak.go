package insights

import (
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/calendar"
)

const (
	// StreakLookbackDays bounds the backward walk.
	StreakLookbackDays = 90

	// MinActiveStreak is the shortest run reported as a streak. Shorter runs
	// report 0.
	MinActiveStreak = 3
)

// consecutiveDays counts filled days walking back from today until the first
// gap or the lookback limit.
func consecutiveDays(filled dayset, today calendar.Day) int {
	run := 0
	for i := 0; i < StreakLookbackDays; i++ {
		if !filled.has(today.AddDays(-i)) {
			break
		}
		run++
	}
	return run
}

// CurrentStreak returns the active streak ending today, or 0 when the run is
// shorter than MinActiveStreak.
func CurrentStreak(filled map[calendar.Day]struct{}, today calendar.Day) int {
	run := consecutiveDays(filled, today)
	if run < MinActiveStreak {
		return 0
	}
	return run
}
