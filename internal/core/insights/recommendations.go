package insights

import (
	"fmt"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/domain"
)

// Signals is the metric snapshot the rule table reads.
type Signals struct {
	CurrentStreak       int
	DaysCompleted       int
	MissedDays          int
	TotalDaysSinceStart int
	WeeklyProgress      int
	Week                WeekOverWeek
	GoalsCompleted      int
	ActiveGoals         int
	GoalsProgress       int
	MomentumScore       int
	Patterns            domain.PatternAnalysis
}

func (s Signals) missedRatio() float64 {
	if s.TotalDaysSinceStart <= 0 {
		return 0
	}
	return float64(s.MissedDays) / float64(s.TotalDaysSinceStart)
}

// Advice is what a single rule contributes to the response.
type Advice struct {
	Suggestion     string
	Recommendation domain.Recommendation
}

type Rule struct {
	Name    string
	Applies func(Signals) bool
	Advise  func(Signals) Advice
}

// minMissedWindow keeps brand new accounts from being told they missed days.
const minMissedWindow = 3

var (
	negativeMoods = map[string]bool{
		"sad": true, "stressed": true, "anxious": true, "tired": true, "overwhelmed": true,
		"frustrated": true, "angry": true, "low": true, "down": true, "bad": true,
	}
	positiveMoods = map[string]bool{
		"happy": true, "great": true, "good": true, "grateful": true, "excited": true,
		"calm": true, "energized": true, "motivated": true, "content": true, "productive": true,
	}
)

// Rules is evaluated top to bottom. Each rule is gated independently and
// several may fire for one user.
var Rules = []Rule{
	{
		Name:    "streak-strong",
		Applies: func(s Signals) bool { return s.CurrentStreak >= 7 },
		Advise: func(s Signals) Advice {
			return Advice{
				Suggestion: fmt.Sprintf("Incredible %d-day streak! Protect it by journaling at the same time tonight.", s.CurrentStreak),
				Recommendation: domain.Recommendation{
					Type:        domain.RecommendationHabit,
					Title:       "Protect your streak",
					Description: fmt.Sprintf("You've journaled %d days in a row. A fixed daily slot keeps the chain alive.", s.CurrentStreak),
					Priority:    domain.PriorityLow,
				},
			}
		},
	},
	{
		Name:    "streak-building",
		Applies: func(s Signals) bool { return s.CurrentStreak >= MinActiveStreak && s.CurrentStreak < 7 },
		Advise: func(s Signals) Advice {
			return Advice{
				Suggestion: fmt.Sprintf("You're on a %d-day streak. Reach 7 days to lock in the habit.", s.CurrentStreak),
				Recommendation: domain.Recommendation{
					Type:        domain.RecommendationHabit,
					Title:       "Reach a 7-day streak",
					Description: fmt.Sprintf("%d more days gets you a full week of consistent journaling.", 7-s.CurrentStreak),
					Priority:    domain.PriorityMedium,
				},
			}
		},
	},
	{
		Name:    "streak-inactive",
		Applies: func(s Signals) bool { return s.CurrentStreak == 0 && s.DaysCompleted > 0 },
		Advise: func(s Signals) Advice {
			return Advice{
				Suggestion: "Complete 3 days in a row to activate your streak.",
				Recommendation: domain.Recommendation{
					Type:        domain.RecommendationHabit,
					Title:       "Activate your streak",
					Description: "Streaks start counting after 3 consecutive days. Journal today and keep going for the next two.",
					Priority:    domain.PriorityHigh,
				},
			}
		},
	},
	{
		Name: "missed-high",
		Applies: func(s Signals) bool {
			return s.TotalDaysSinceStart >= minMissedWindow && s.missedRatio() >= 0.5
		},
		Advise: func(s Signals) Advice {
			return Advice{
				Suggestion: fmt.Sprintf("You've missed %d of %d days since you started. Short entries still count.", s.MissedDays, s.TotalDaysSinceStart),
				Recommendation: domain.Recommendation{
					Type:        domain.RecommendationBarrier,
					Title:       "Reduce missed days",
					Description: "Missed days lower your momentum score by up to 20%. One priority or a single line of gratitude keeps the day alive.",
					Priority:    domain.PriorityHigh,
				},
			}
		},
	},
	{
		Name: "missed-moderate",
		Applies: func(s Signals) bool {
			r := s.missedRatio()
			return s.TotalDaysSinceStart >= minMissedWindow && r >= 0.2 && r < 0.5
		},
		Advise: func(s Signals) Advice {
			return Advice{
				Suggestion: fmt.Sprintf("You've missed %d of %d days. Aim to close the gaps this week.", s.MissedDays, s.TotalDaysSinceStart),
				Recommendation: domain.Recommendation{
					Type:        domain.RecommendationBarrier,
					Title:       "Close the gaps",
					Description: "Plan tomorrow's entry before bed so skipped days don't pile up.",
					Priority:    domain.PriorityMedium,
				},
			}
		},
	},
	{
		Name:    "weekly-strong",
		Applies: func(s Signals) bool { return s.WeeklyProgress >= 85 },
		Advise: func(s Signals) Advice {
			return Advice{
				Suggestion: fmt.Sprintf("Excellent week: you journaled on %d%% of days.", s.WeeklyProgress),
				Recommendation: domain.Recommendation{
					Type:        domain.RecommendationProgress,
					Title:       "Great weekly rhythm",
					Description: "Your week is nearly complete. Use your weekly review to capture what made it work.",
					Priority:    domain.PriorityLow,
				},
			}
		},
	},
	{
		Name:    "weekly-low",
		Applies: func(s Signals) bool { return s.DaysCompleted > 0 && s.WeeklyProgress < 50 },
		Advise: func(s Signals) Advice {
			return Advice{
				Suggestion: fmt.Sprintf("You journaled %d of the last 7 days. Aim for at least 4.", s.Week.LastWeek),
				Recommendation: domain.Recommendation{
					Type:        domain.RecommendationProgress,
					Title:       "Boost your weekly rhythm",
					Description: "Pick the days you usually skip and schedule a 2-minute entry for them.",
					Priority:    domain.PriorityMedium,
				},
			}
		},
	},
	{
		Name:    "goals-none",
		Applies: func(s Signals) bool { return s.GoalsCompleted+s.ActiveGoals == 0 },
		Advise: func(Signals) Advice {
			return Advice{
				Suggestion: "Set your first goal to give your daily entries direction.",
				Recommendation: domain.Recommendation{
					Type:        domain.RecommendationGoal,
					Title:       "Set a goal",
					Description: "Choose one meaningful goal and tie your daily priorities to it.",
					Priority:    domain.PriorityMedium,
				},
			}
		},
	},
	{
		Name:    "goals-stalled",
		Applies: func(s Signals) bool { return s.ActiveGoals > 0 && s.GoalsProgress < 25 },
		Advise: func(s Signals) Advice {
			return Advice{
				Suggestion: fmt.Sprintf("You have %d active goals. Break them into milestones you can finish this week.", s.ActiveGoals),
				Recommendation: domain.Recommendation{
					Type:        domain.RecommendationGoal,
					Title:       "Break goals into milestones",
					Description: "Smaller milestones are easier to finish and keep goal progress moving.",
					Priority:    domain.PriorityMedium,
				},
			}
		},
	},
	{
		Name:    "goals-achieved",
		Applies: func(s Signals) bool { return s.GoalsCompleted > 0 },
		Advise: func(s Signals) Advice {
			return Advice{
				Suggestion: fmt.Sprintf("You've completed %d goals. Set a new stretch goal to keep growing.", s.GoalsCompleted),
				Recommendation: domain.Recommendation{
					Type:        domain.RecommendationGoal,
					Title:       "Celebrate and stretch",
					Description: "Finished goals prove the system works. Raise the bar with your next one.",
					Priority:    domain.PriorityLow,
				},
			}
		},
	},
	{
		Name:    "trend-up",
		Applies: func(s Signals) bool { return s.Week.Delta > 0 },
		Advise: func(s Signals) Advice {
			return Advice{
				Suggestion: fmt.Sprintf("You journaled %d more days than the week before. Keep it up!", s.Week.Delta),
				Recommendation: domain.Recommendation{
					Type:        domain.RecommendationProgress,
					Title:       "Momentum is rising",
					Description: "Your consistency improved week over week.",
					Priority:    domain.PriorityLow,
				},
			}
		},
	},
	{
		Name:    "trend-down",
		Applies: func(s Signals) bool { return s.Week.Delta < 0 },
		Advise: func(s Signals) Advice {
			return Advice{
				Suggestion: fmt.Sprintf("You journaled %d fewer days than the week before.", -s.Week.Delta),
				Recommendation: domain.Recommendation{
					Type:        domain.RecommendationBarrier,
					Title:       "Consistency dipped",
					Description: "Look at what changed this week and plan around it.",
					Priority:    domain.PriorityMedium,
				},
			}
		},
	},
	{
		Name: "tasks-low",
		Applies: func(s Signals) bool {
			return s.Patterns.TotalTasks > 0 && s.Patterns.TaskCompletionRate < 50
		},
		Advise: func(s Signals) Advice {
			return Advice{
				Suggestion: fmt.Sprintf("You complete %d%% of your tasks. Try planning fewer, more focused tasks.", s.Patterns.TaskCompletionRate),
				Recommendation: domain.Recommendation{
					Type:        domain.RecommendationProgress,
					Title:       "Right-size your task list",
					Description: "Limit each day to the tasks you can realistically finish.",
					Priority:    domain.PriorityMedium,
				},
			}
		},
	},
	{
		Name: "priorities-low",
		Applies: func(s Signals) bool {
			return s.Patterns.EntriesAnalyzed > 0 && s.Patterns.PriorityConsistency < 50
		},
		Advise: func(Signals) Advice {
			return Advice{
				Suggestion: "Set your top 3 priorities each day to focus your energy.",
				Recommendation: domain.Recommendation{
					Type:        domain.RecommendationHabit,
					Title:       "Set daily priorities",
					Description: "Entries with clear priorities turn intentions into action.",
					Priority:    domain.PriorityMedium,
				},
			}
		},
	},
	{
		Name: "reflection-shallow",
		Applies: func(s Signals) bool {
			return s.Patterns.EntriesAnalyzed >= 3 && s.Patterns.ReflectionDepth < 30
		},
		Advise: func(Signals) Advice {
			return Advice{
				Suggestion: "Write a few sentences of reflection to uncover deeper insights.",
				Recommendation: domain.Recommendation{
					Type:        domain.RecommendationHabit,
					Title:       "Go deeper in reflection",
					Description: "Ask yourself what went well, what didn't, and what you'd change tomorrow.",
					Priority:    domain.PriorityLow,
				},
			}
		},
	},
	{
		Name: "gratitude-low",
		Applies: func(s Signals) bool {
			return s.Patterns.EntriesAnalyzed > 0 && s.Patterns.GratitudeFrequency < 50
		},
		Advise: func(Signals) Advice {
			return Advice{
				Suggestion: "Add one thing you're grateful for each day.",
				Recommendation: domain.Recommendation{
					Type:        domain.RecommendationHabit,
					Title:       "Practice daily gratitude",
					Description: "A single line of gratitude is enough to make the practice stick.",
					Priority:    domain.PriorityLow,
				},
			}
		},
	},
	{
		Name:    "mood-negative",
		Applies: func(s Signals) bool { return negativeMoods[s.Patterns.DominantMood] },
		Advise: func(s Signals) Advice {
			return Advice{
				Suggestion: fmt.Sprintf("Your most frequent mood lately is %q. Be kind to yourself and plan one small win each day.", s.Patterns.DominantMood),
				Recommendation: domain.Recommendation{
					Type:        domain.RecommendationBarrier,
					Title:       "Look after your energy",
					Description: "Note what drains you in your reflections and protect time for rest.",
					Priority:    domain.PriorityHigh,
				},
			}
		},
	},
	{
		Name:    "mood-positive",
		Applies: func(s Signals) bool { return positiveMoods[s.Patterns.DominantMood] },
		Advise: func(s Signals) Advice {
			return Advice{
				Suggestion: fmt.Sprintf("You've mostly felt %q. Note what's working so you can repeat it.", s.Patterns.DominantMood),
				Recommendation: domain.Recommendation{
					Type:        domain.RecommendationHabit,
					Title:       "Build on good days",
					Description: "Capture the routines behind your best days in your weekly review.",
					Priority:    domain.PriorityLow,
				},
			}
		},
	},
	{
		Name:    "barrier-irregular",
		Applies: func(s Signals) bool { return s.CurrentStreak == 0 && s.Week.LastWeek >= 3 },
		Advise: func(Signals) Advice {
			return Advice{
				Suggestion: "You journal often but not on consecutive days. Pick a fixed time each day.",
				Recommendation: domain.Recommendation{
					Type:        domain.RecommendationBarrier,
					Title:       "Irregular schedule",
					Description: "Anchor journaling to an existing routine such as your morning coffee.",
					Priority:    domain.PriorityMedium,
				},
			}
		},
	},
	{
		Name:    "barrier-lapsed",
		Applies: func(s Signals) bool { return s.DaysCompleted > 0 && s.Week.LastWeek == 0 },
		Advise: func(Signals) Advice {
			return Advice{
				Suggestion: "It's been over a week since your last entry. Restart with a 2-minute entry today.",
				Recommendation: domain.Recommendation{
					Type:        domain.RecommendationBarrier,
					Title:       "Restart gently",
					Description: "Don't try to catch up. One short entry today is enough to get going again.",
					Priority:    domain.PriorityHigh,
				},
			}
		},
	},
}

var fallbackAdvice = Advice{
	Suggestion: "Keep journaling daily to unlock personalized insights.",
	Recommendation: domain.Recommendation{
		Type:        domain.RecommendationHabit,
		Title:       "Keep going",
		Description: "Consistent entries help surface patterns and tailor recommendations to you.",
		Priority:    domain.PriorityMedium,
	},
}

// Recommend evaluates rules in order. The result always holds at least one
// suggestion and one recommendation.
func Recommend(s Signals, rules []Rule) ([]string, []domain.Recommendation) {
	suggestions := []string{}
	recs := []domain.Recommendation{}

	for _, r := range rules {
		if !r.Applies(s) {
			continue
		}
		a := r.Advise(s)
		suggestions = append(suggestions, a.Suggestion)
		recs = append(recs, a.Recommendation)
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, fallbackAdvice.Suggestion)
		recs = append(recs, fallbackAdvice.Recommendation)
	}

	return suggestions, recs
}
