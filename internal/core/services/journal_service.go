package services

import (
	"context"
	"errors"
	"time"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/calendar"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/domain"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/workers"
)

const (
	defaultListDays = 30
	maxListDays     = 366

	// futureSlackDays lets users ahead of UTC write the day that is already
	// today for them.
	futureSlackDays = 1
)

type JournalService struct {
	repo   domain.JournalEntryRepository
	worker *workers.StreakWorker
	now    func() time.Time
}

func NewJournalService(repo domain.JournalEntryRepository, worker *workers.StreakWorker) *JournalService {
	return &JournalService{
		repo:   repo,
		worker: worker,
		now:    time.Now,
	}
}

type SaveEntryInput struct {
	UserID     string
	Date       calendar.Day
	Gratitude  string
	Priority1  string
	Priority2  string
	Priority3  string
	Tasks      domain.Tasks
	Reflection string
	Mood       string
}

// Save writes the entry for a day, replacing whatever was stored for it.
func (s *JournalService) Save(ctx context.Context, input SaveEntryInput) (*domain.JournalEntry, error) {
	latest := calendar.Of(s.now().UTC()).AddDays(futureSlackDays)
	if input.Date.After(latest) {
		return nil, domain.ErrEntryInFuture
	}

	entry, err := s.repo.GetByDate(ctx, input.UserID, input.Date)
	switch {
	case errors.Is(err, domain.ErrEntryNotFound):
		entry = domain.NewJournalEntry(input.UserID, input.Date)
	case err != nil:
		return nil, err
	default:
		entry.UpdatedAt = s.now().UTC()
	}

	entry.Gratitude = input.Gratitude
	entry.Priority1 = input.Priority1
	entry.Priority2 = input.Priority2
	entry.Priority3 = input.Priority3
	entry.Tasks = input.Tasks
	entry.Reflection = input.Reflection
	entry.Mood = input.Mood

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, entry); err != nil {
		return nil, err
	}

	s.worker.Enqueue(entry.UserID, entry.EntryDate)

	return entry, nil
}

func (s *JournalService) Get(ctx context.Context, userID string, date calendar.Day) (*domain.JournalEntry, error) {
	return s.repo.GetByDate(ctx, userID, date)
}

// List returns entries between from and to inclusive, newest first. Missing
// bounds default to the last 30 days.
func (s *JournalService) List(ctx context.Context, userID string, from, to calendar.Day) ([]*domain.JournalEntry, error) {
	if to.IsZero() {
		to = calendar.Of(s.now().UTC())
	}
	if from.IsZero() {
		from = to.AddDays(-(defaultListDays - 1))
	}

	if from.After(to) || to.DaysSince(from) >= maxListDays {
		return nil, domain.ErrInvalidDateRange
	}

	return s.repo.ListByDateRange(ctx, userID, from, to)
}

func (s *JournalService) Delete(ctx context.Context, userID string, date calendar.Day) error {
	if err := s.repo.Delete(ctx, userID, date); err != nil {
		return err
	}

	s.worker.Enqueue(userID, date)

	return nil
}
