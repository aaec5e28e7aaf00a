package domain

import (
	"context"
	"errors"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/calendar"
)

var (
	ErrUnauthorized          = errors.New("unauthorized")
	ErrEntryNotFound         = errors.New("journal entry not found")
	ErrGoalNotFound          = errors.New("goal not found")
	ErrReviewNotFound        = errors.New("weekly review not found")
	ErrCollectionUnavailable = errors.New("collection unavailable")
	ErrInvalidDateRange      = errors.New("invalid date range")
)

type JournalEntryRepository interface {
	// Upsert creates the entry or replaces the content of the existing entry
	// for the same user and day.
	Upsert(ctx context.Context, entry *JournalEntry) error

	GetByDate(ctx context.Context, userID string, date calendar.Day) (*JournalEntry, error)

	// ListByUserID returns the full history, oldest first.
	ListByUserID(ctx context.Context, userID string) ([]*JournalEntry, error)

	// ListByDateRange returns entries with from <= entry_date <= to, newest first.
	ListByDateRange(ctx context.Context, userID string, from, to calendar.Day) ([]*JournalEntry, error)

	Delete(ctx context.Context, userID string, date calendar.Day) error

	// UpdateStreak stores the advisory streak without touching updated_at.
	UpdateStreak(ctx context.Context, userID string, date calendar.Day, streak int) error
}

type GoalRepository interface {
	Create(ctx context.Context, goal *Goal) error
	GetByID(ctx context.Context, id string) (*Goal, error)
	ListByUserID(ctx context.Context, userID string) ([]*Goal, error)
	Update(ctx context.Context, goal *Goal) error
	Delete(ctx context.Context, id string) error
}

type WeeklyReviewRepository interface {
	// Upsert keeps one review per user and week.
	Upsert(ctx context.Context, review *WeeklyReview) error
	ListByUserID(ctx context.Context, userID string) ([]*WeeklyReview, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}
