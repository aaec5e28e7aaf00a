package insights

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/domain"
)

// DeepReflectionChars is the length at which a reflection counts as deep.
const DeepReflectionChars = 50

// AnalyzePatterns computes behavioral metrics over completed entries.
// Callers pass only entries that satisfy HasContent.
func AnalyzePatterns(completed []*domain.JournalEntry) domain.PatternAnalysis {
	var (
		pa        domain.PatternAnalysis
		priority  int
		deep      int
		gratitude int
		moods     = make(map[string]int)
		lower     = cases.Lower(language.Und)
	)

	for _, e := range completed {
		if e == nil {
			continue
		}
		pa.EntriesAnalyzed++

		for _, t := range e.Tasks {
			if strings.TrimSpace(t.Text) == "" {
				continue
			}
			pa.TotalTasks++
			if t.Completed {
				pa.CompletedTasks++
			}
		}

		if e.HasPriority() {
			priority++
		}
		if utf8.RuneCountInString(strings.TrimSpace(e.Reflection)) >= DeepReflectionChars {
			deep++
		}
		if strings.TrimSpace(e.Gratitude) != "" {
			gratitude++
		}
		if mood := lower.String(strings.TrimSpace(e.Mood)); mood != "" {
			moods[mood]++
		}
	}

	pa.TaskCompletionRate = percent(pa.CompletedTasks, pa.TotalTasks)
	pa.PriorityConsistency = percent(priority, pa.EntriesAnalyzed)
	pa.ReflectionDepth = percent(deep, pa.EntriesAnalyzed)
	pa.GratitudeFrequency = percent(gratitude, pa.EntriesAnalyzed)

	mood, count := dominant(moods)
	pa.DominantMood = mood
	pa.MoodFrequency = percent(count, pa.EntriesAnalyzed)

	return pa
}

// dominant returns the most frequent key. Ties go to the alphabetically
// first mood so repeated runs agree.
func dominant(counts map[string]int) (string, int) {
	var (
		best  string
		count int
	)
	for mood, n := range counts {
		if n > count || (n == count && mood < best) {
			best, count = mood, n
		}
	}
	return best, count
}
