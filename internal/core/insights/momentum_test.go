package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyProgress(t *testing.T) {
	assert.Equal(t, 0, WeeklyProgress(0))
	assert.Equal(t, 14, WeeklyProgress(1))
	assert.Equal(t, 71, WeeklyProgress(5))
	assert.Equal(t, 100, WeeklyProgress(7))
	assert.Equal(t, 100, WeeklyProgress(12))
}

func TestScoreMomentum(t *testing.T) {
	t.Run("Empty input", func(t *testing.T) {
		m := ScoreMomentum(MomentumInput{})
		assert.Equal(t, 0, m.Score)
		assert.Zero(t, m.PenaltyPct)
		require.Len(t, m.Explanation, 5)
		assert.Equal(t, "Start by completing your first entry to build momentum.", m.Explanation[0])
	})

	t.Run("Breakdown order is fixed", func(t *testing.T) {
		m := ScoreMomentum(MomentumInput{
			DaysCompleted:       45,
			CurrentStreak:       18,
			GoalsCompleted:      1,
			ActiveGoals:         1,
			WeeklyProgress:      50,
			TotalDaysSinceStart: 45,
		})

		// 15 + 5 + 12.5 + 10
		assert.Equal(t, 43, m.Score)
		assert.Equal(t, []string{
			"Good momentum! Your journaling habit is taking shape.",
			"Days completed: 45 of 90 (+15.0 pts)",
			"Current streak: 18 days (+5.0 pts)",
			"Goals completed: 1 of 2 (+12.5 pts)",
			"This week: 50% of days journaled (+10.0 pts)",
		}, m.Explanation)
	})

	t.Run("Completed goals without active ones earn full points", func(t *testing.T) {
		m := ScoreMomentum(MomentumInput{GoalsCompleted: 3})
		assert.Equal(t, 25.0, m.GoalsPoints)
		assert.Equal(t, 25, m.Score)
	})

	t.Run("Penalty scales with missed ratio", func(t *testing.T) {
		m := ScoreMomentum(MomentumInput{
			DaysCompleted:       90,
			CurrentStreak:       90,
			GoalsCompleted:      1,
			WeeklyProgress:      100,
			MissedDays:          50,
			TotalDaysSinceStart: 100,
		})
		assert.InDelta(t, 10.0, m.PenaltyPct, 1e-9)
		assert.Equal(t, 90, m.Score)
		assert.Len(t, m.Explanation, 6)
	})

	t.Run("Score stays in range for extreme input", func(t *testing.T) {
		inputs := []MomentumInput{
			{DaysCompleted: 10000, CurrentStreak: 10000, GoalsCompleted: 50, WeeklyProgress: 500},
			{MissedDays: 400, TotalDaysSinceStart: 400},
			{DaysCompleted: 1, WeeklyProgress: -20, MissedDays: 1, TotalDaysSinceStart: 1},
		}
		for _, in := range inputs {
			m := ScoreMomentum(in)
			assert.GreaterOrEqual(t, m.Score, 0)
			assert.LessOrEqual(t, m.Score, 100)
		}
	})
}

func TestBandMessage(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "Start by completing your first entry"},
		{1, "just getting started"},
		{19, "just getting started"},
		{20, "building momentum"},
		{40, "Good momentum"},
		{60, "Strong momentum"},
		{79, "Strong momentum"},
		{80, "Outstanding momentum"},
		{100, "Outstanding momentum"},
	}

	for _, tt := range tests {
		assert.Contains(t, bandMessage(tt.score), tt.want, "score %d", tt.score)
	}
}
