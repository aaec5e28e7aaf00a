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
	ErrReviewInvalidUserID = errors.New("invalid user id")
	ErrReviewWeekRequired  = errors.New("week_start is required")
	ErrReviewInvalidRating = errors.New("rating must be between 1 and 5")
	ErrReviewFieldTooLong  = errors.New("review field is too long (max 5000 chars)")
)

type WeeklyReview struct {
	ID            string       `json:"id" db:"id"`
	UserID        string       `json:"user_id" db:"user_id"`
	WeekStart     calendar.Day `json:"week_start" db:"week_start"`
	Wins          string       `json:"wins" db:"wins"`
	Challenges    string       `json:"challenges" db:"challenges"`
	Lessons       string       `json:"lessons" db:"lessons"`
	NextWeekFocus string       `json:"next_week_focus" db:"next_week_focus"`
	Rating        int          `json:"rating,omitempty" db:"rating"`
	CreatedAt     time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at" db:"updated_at"`
}

// WeekStartOf returns the Monday of the week containing d. The zero day is
// returned unchanged.
func WeekStartOf(d calendar.Day) calendar.Day {
	if d.IsZero() {
		return d
	}
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDays(-offset)
}

func NewWeeklyReview(userID string, week calendar.Day) *WeeklyReview {
	now := time.Now().UTC()
	return &WeeklyReview{
		ID:        uuid.NewString(),
		UserID:    userID,
		WeekStart: WeekStartOf(week),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (r *WeeklyReview) Validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return ErrReviewInvalidUserID
	}
	if r.WeekStart.IsZero() {
		return ErrReviewWeekRequired
	}
	if r.Rating < 0 || r.Rating > 5 {
		return ErrReviewInvalidRating
	}
	for _, field := range []string{r.Wins, r.Challenges, r.Lessons, r.NextWeekFocus} {
		if utf8.RuneCountInString(field) > MaxEntryFieldLen {
			return ErrReviewFieldTooLong
		}
	}
	return nil
}
