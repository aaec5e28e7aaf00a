package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/calendar"
)

var (
	ErrGoalTitleEmpty    = errors.New("goal title cannot be empty")
	ErrGoalTitleTooLong  = errors.New("goal title is too long (max 200 chars)")
	ErrGoalDescTooLong   = errors.New("goal description is too long (max 1000 chars)")
	ErrGoalInvalidUserID = errors.New("invalid user id")
	ErrInvalidProgress   = errors.New("progress must be between 0 and 100")
)

const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"

	MaxGoalTitleLen = 200
	MaxGoalDescLen  = 1000
)

type Goal struct {
	ID          string       `json:"id" db:"id"`
	UserID      string       `json:"user_id" db:"user_id"`
	Title       string       `json:"title" db:"title"`
	Description string       `json:"description,omitempty" db:"description"`
	Progress    int          `json:"progress" db:"progress"`
	Status      string       `json:"status" db:"status"`
	TargetDate  calendar.Day `json:"target_date" db:"target_date"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" db:"updated_at"`
}

func NewGoal(userID, title, description string, target calendar.Day) (*Goal, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrGoalInvalidUserID
	}

	cleanTitle := strings.TrimSpace(title)
	if cleanTitle == "" {
		return nil, ErrGoalTitleEmpty
	}
	if utf8.RuneCountInString(cleanTitle) > MaxGoalTitleLen {
		return nil, ErrGoalTitleTooLong
	}

	cleanDesc := strings.TrimSpace(description)
	if utf8.RuneCountInString(cleanDesc) > MaxGoalDescLen {
		return nil, ErrGoalDescTooLong
	}

	now := time.Now().UTC()
	return &Goal{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       cleanTitle,
		Description: cleanDesc,
		Progress:    0,
		Status:      GoalStatusActive,
		TargetDate:  target,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// SetProgress marks the goal completed once it reaches 100. Lowering the
// progress of a completed goal reopens it.
func (g *Goal) SetProgress(progress int) error {
	if progress < 0 || progress > 100 {
		return ErrInvalidProgress
	}

	g.Progress = progress
	if progress == 100 {
		g.Status = GoalStatusCompleted
	} else if g.Status == GoalStatusCompleted {
		g.Status = GoalStatusActive
	}
	g.UpdatedAt = time.Now().UTC()
	return nil
}

// IsCompleted treats any status other than "completed" as still active.
func (g *Goal) IsCompleted() bool {
	return strings.EqualFold(strings.TrimSpace(g.Status), GoalStatusCompleted)
}
