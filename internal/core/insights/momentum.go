package insights

import (
	"fmt"
	"math"
)

const (
	momentumHorizonDays = 90

	maxDaysPoints   = 30.0
	maxStreakPoints = 25.0
	maxGoalsPoints  = 25.0
	maxWeeklyPoints = 20.0

	maxPenaltyPct = 20.0
)

type MomentumInput struct {
	DaysCompleted       int
	CurrentStreak       int
	GoalsCompleted      int
	ActiveGoals         int
	WeeklyProgress      int
	MissedDays          int
	TotalDaysSinceStart int
}

type Momentum struct {
	Score       int
	Explanation []string

	DaysPoints   float64
	StreakPoints float64
	GoalsPoints  float64
	WeeklyPoints float64
	PenaltyPct   float64
}

// WeeklyProgress converts the number of filled days in the trailing week to
// a percentage capped at 100.
func WeeklyProgress(lastSevenDays int) int {
	return min(100, percent(lastSevenDays, 7))
}

// ScoreMomentum combines the weighted terms into a 0-100 score and itemizes
// how it was reached.
func ScoreMomentum(in MomentumInput) Momentum {
	m := Momentum{
		DaysPoints:   math.Min(maxDaysPoints, float64(in.DaysCompleted)/momentumHorizonDays*maxDaysPoints),
		StreakPoints: math.Min(maxStreakPoints, float64(in.CurrentStreak)/momentumHorizonDays*maxStreakPoints),
		WeeklyPoints: float64(min(100, max(0, in.WeeklyProgress))) / 100 * maxWeeklyPoints,
	}
	if goals := in.GoalsCompleted + in.ActiveGoals; goals > 0 {
		m.GoalsPoints = float64(in.GoalsCompleted) / float64(goals) * maxGoalsPoints
	}

	base := m.DaysPoints + m.StreakPoints + m.GoalsPoints + m.WeeklyPoints

	if in.TotalDaysSinceStart > 0 && in.MissedDays > 0 {
		m.PenaltyPct = math.Min(maxPenaltyPct, float64(in.MissedDays)/float64(in.TotalDaysSinceStart)*maxPenaltyPct)
	}

	m.Score = clampScore(roundHalfUp(math.Max(0, base*(1-m.PenaltyPct/100))))
	m.Explanation = explain(in, m)

	return m
}

func clampScore(s int) int {
	return max(0, min(100, s))
}

func explain(in MomentumInput, m Momentum) []string {
	lines := []string{
		bandMessage(m.Score),
		fmt.Sprintf("Days completed: %d of %d (+%.1f pts)", in.DaysCompleted, momentumHorizonDays, m.DaysPoints),
		fmt.Sprintf("Current streak: %d days (+%.1f pts)", in.CurrentStreak, m.StreakPoints),
		fmt.Sprintf("Goals completed: %d of %d (+%.1f pts)", in.GoalsCompleted, in.GoalsCompleted+in.ActiveGoals, m.GoalsPoints),
		fmt.Sprintf("This week: %d%% of days journaled (+%.1f pts)", in.WeeklyProgress, m.WeeklyPoints),
	}
	if m.PenaltyPct > 0 {
		lines = append(lines, fmt.Sprintf("Missed days: %d of %d (-%.1f%% penalty)", in.MissedDays, in.TotalDaysSinceStart, m.PenaltyPct))
	}
	return lines
}

func bandMessage(score int) string {
	switch {
	case score <= 0:
		return "Start by completing your first entry to build momentum."
	case score < 20:
		return "Your momentum is just getting started. Every entry counts."
	case score < 40:
		return "You're building momentum. Keep showing up each day."
	case score < 60:
		return "Good momentum! Your journaling habit is taking shape."
	case score < 80:
		return "Strong momentum! Your consistency is paying off."
	default:
		return "Outstanding momentum! You're operating at your best."
	}
}
