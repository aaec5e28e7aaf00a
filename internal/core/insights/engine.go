package insights

import (
	"time"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/calendar"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/domain"
)

// Compute builds the full insights payload. It never fails: missing
// collections simply produce zeroed sub-metrics.
func Compute(in domain.InsightsInput) *domain.InsightsResult {
	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}
	today := calendar.Today(in.Now, loc)

	act := collectActivity(in.Entries)
	streak := CurrentStreak(act.completedDays, today)

	start := ProgramStart(act.firstEntry, in.AccountCreatedAt, loc, today)
	missed := CountMissedDays(start, today, act.completedDays)

	week := CompareWeeks(act.completedDays, today)
	weekly := WeeklyProgress(week.LastWeek)

	completedGoals, activeGoals := countGoals(in.Goals)
	goalsProgress := percent(completedGoals, completedGoals+activeGoals)

	momentum := ScoreMomentum(MomentumInput{
		DaysCompleted:       len(act.completedDays),
		CurrentStreak:       streak,
		GoalsCompleted:      completedGoals,
		ActiveGoals:         activeGoals,
		WeeklyProgress:      weekly,
		MissedDays:          missed.Missed,
		TotalDaysSinceStart: missed.TotalDays,
	})

	patterns := AnalyzePatterns(act.completedEntries)

	suggestions, recs := Recommend(Signals{
		CurrentStreak:       streak,
		DaysCompleted:       len(act.completedDays),
		MissedDays:          missed.Missed,
		TotalDaysSinceStart: missed.TotalDays,
		WeeklyProgress:      weekly,
		Week:                week,
		GoalsCompleted:      completedGoals,
		ActiveGoals:         activeGoals,
		GoalsProgress:       goalsProgress,
		MomentumScore:       momentum.Score,
		Patterns:            patterns,
	}, Rules)

	return &domain.InsightsResult{
		DaysCompleted:       len(act.completedDays),
		CurrentStreak:       streak,
		GoalsCompleted:      completedGoals,
		TotalGoals:          activeGoals,
		GoalsProgress:       goalsProgress,
		WeeklyProgress:      weekly,
		MomentumScore:       momentum.Score,
		ReviewsCompleted:    countReviews(in.Reviews),
		Trend:               week.Delta,
		TrendDirection:      week.Direction,
		FirstEntryDate:      act.firstEntry,
		MissedDays:          missed.Missed,
		TotalDaysSinceStart: missed.TotalDays,
		MissedDates:         missed.Dates,
		AISuggestions:       suggestions,
		AIRecommendations:   recs,
		PatternAnalysis:     patterns,
		ScoreExplanation:    momentum.Explanation,
	}
}

// countGoals splits goals into completed and active. Any status other than
// completed is active.
func countGoals(goals []*domain.Goal) (completed, active int) {
	for _, g := range goals {
		if g == nil {
			continue
		}
		if g.IsCompleted() {
			completed++
		} else {
			active++
		}
	}
	return completed, active
}

func countReviews(reviews []*domain.WeeklyReview) int {
	n := 0
	for _, r := range reviews {
		if r != nil {
			n++
		}
	}
	return n
}
