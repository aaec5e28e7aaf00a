package insights_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/domain"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/insights"
)

func TestAnalyzePatterns(t *testing.T) {
	t.Run("Mixed history", func(t *testing.T) {
		entries := []*domain.JournalEntry{
			{
				Tasks:      domain.Tasks{{Text: "run", Completed: true}, {Text: "read"}, {Text: "  ", Completed: true}},
				Priority1:  "ship",
				Reflection: strings.Repeat("r", insights.DeepReflectionChars),
				Gratitude:  "sunshine",
				Mood:       " Happy ",
			},
			{Tasks: domain.Tasks{{Text: "stretch", Completed: true}}, Mood: "happy"},
			{Gratitude: "tea", Mood: "Calm"},
			{Reflection: "short"},
		}

		pa := insights.AnalyzePatterns(entries)

		assert.Equal(t, domain.PatternAnalysis{
			EntriesAnalyzed:     4,
			TotalTasks:          3,
			CompletedTasks:      2,
			TaskCompletionRate:  67,
			PriorityConsistency: 25,
			ReflectionDepth:     25,
			GratitudeFrequency:  50,
			DominantMood:        "happy",
			MoodFrequency:       50,
		}, pa)
	})

	t.Run("No entries yields zeros", func(t *testing.T) {
		assert.Equal(t, domain.PatternAnalysis{}, insights.AnalyzePatterns(nil))
	})

	t.Run("Mood ties resolve alphabetically", func(t *testing.T) {
		entries := []*domain.JournalEntry{{Mood: "focused"}, {Mood: "Calm"}, {Mood: "tired"}}
		for i := 0; i < 5; i++ {
			pa := insights.AnalyzePatterns(entries)
			assert.Equal(t, "calm", pa.DominantMood)
			assert.Equal(t, 33, pa.MoodFrequency)
		}
	})

	t.Run("Reflection length counts characters", func(t *testing.T) {
		short := strings.Repeat("é", insights.DeepReflectionChars-1)
		pa := insights.AnalyzePatterns([]*domain.JournalEntry{{Reflection: short}})
		assert.Equal(t, 0, pa.ReflectionDepth)
	})

	t.Run("Non-ASCII moods are folded", func(t *testing.T) {
		pa := insights.AnalyzePatterns([]*domain.JournalEntry{{Mood: "ÉNERGIQUE"}, {Mood: "énergique"}})
		assert.Equal(t, "énergique", pa.DominantMood)
		assert.Equal(t, 100, pa.MoodFrequency)
	})
}
