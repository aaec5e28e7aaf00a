package domain

import (
	"time"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/calendar"
)

type RecommendationType string

const (
	RecommendationHabit    RecommendationType = "habit"
	RecommendationProgress RecommendationType = "progress"
	RecommendationBarrier  RecommendationType = "barrier"
	RecommendationGoal     RecommendationType = "goal"
)

type RecommendationPriority string

const (
	PriorityLow    RecommendationPriority = "low"
	PriorityMedium RecommendationPriority = "medium"
	PriorityHigh   RecommendationPriority = "high"
)

type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

type Recommendation struct {
	Type        RecommendationType     `json:"type"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Priority    RecommendationPriority `json:"priority"`
}

type PatternAnalysis struct {
	EntriesAnalyzed     int    `json:"entriesAnalyzed"`
	TotalTasks          int    `json:"totalTasks"`
	CompletedTasks      int    `json:"completedTasks"`
	TaskCompletionRate  int    `json:"taskCompletionRate"`
	PriorityConsistency int    `json:"priorityConsistency"`
	ReflectionDepth     int    `json:"reflectionDepth"`
	GratitudeFrequency  int    `json:"gratitudeFrequency"`
	DominantMood        string `json:"dominantMood"`
	MoodFrequency       int    `json:"moodFrequency"`
}

// InsightsResult is computed per request and never stored.
type InsightsResult struct {
	DaysCompleted       int              `json:"daysCompleted"`
	CurrentStreak       int              `json:"currentStreak"`
	GoalsCompleted      int              `json:"goalsCompleted"`
	TotalGoals          int              `json:"totalGoals"`
	GoalsProgress       int              `json:"goalsProgress"`
	WeeklyProgress      int              `json:"weeklyProgress"`
	MomentumScore       int              `json:"momentumScore"`
	ReviewsCompleted    int              `json:"reviewsCompleted"`
	Trend               int              `json:"trend"`
	TrendDirection      TrendDirection   `json:"trendDirection"`
	FirstEntryDate      calendar.Day     `json:"firstEntryDate"`
	MissedDays          int              `json:"missedDays"`
	TotalDaysSinceStart int              `json:"totalDaysSinceStart"`
	MissedDates         []calendar.Day   `json:"missedDates"`
	AISuggestions       []string         `json:"aiSuggestions"`
	AIRecommendations   []Recommendation `json:"aiRecommendations"`
	PatternAnalysis     PatternAnalysis  `json:"patternAnalysis"`
	ScoreExplanation    []string         `json:"scoreExplanation"`
}

// InsightsInput is everything one computation needs. Now is captured once by
// the caller and used for every date decision in that computation.
type InsightsInput struct {
	UserID           string
	AccountCreatedAt *time.Time
	Location         *time.Location
	Now              time.Time
	Entries          []*JournalEntry
	Goals            []*Goal
	Reviews          []*WeeklyReview
}
