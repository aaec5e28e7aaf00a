package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/calendar"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/domain"
)

// The in-memory stores back STORAGE_BACKEND=memory and the end-to-end tests.
// They hand out copies so callers never share state with the store.

type InMemoryUserRepository struct {
	store map[string]domain.User

	mu sync.RWMutex
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		store: make(map[string]domain.User),
	}
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.store {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}

	r.store[user.ID] = *user
	return nil
}

func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.store {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.store[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

type entryKey struct {
	userID string
	date   calendar.Day
}

type InMemoryJournalRepository struct {
	store map[entryKey]domain.JournalEntry

	mu sync.RWMutex
}

func NewInMemoryJournalRepository() *InMemoryJournalRepository {
	return &InMemoryJournalRepository{
		store: make(map[entryKey]domain.JournalEntry),
	}
}

func copyEntry(e domain.JournalEntry) *domain.JournalEntry {
	if e.Tasks != nil {
		e.Tasks = append(domain.Tasks(nil), e.Tasks...)
	}
	return &e
}

func (r *InMemoryJournalRepository) Upsert(ctx context.Context, entry *domain.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := entryKey{userID: entry.UserID, date: entry.EntryDate}
	if existing, ok := r.store[key]; ok {
		entry.ID = existing.ID
		entry.CreatedAt = existing.CreatedAt
		entry.Streak = existing.Streak
	}

	r.store[key] = *copyEntry(*entry)
	return nil
}

func (r *InMemoryJournalRepository) GetByDate(ctx context.Context, userID string, date calendar.Day) (*domain.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.store[entryKey{userID: userID, date: date}]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	return copyEntry(e), nil
}

func (r *InMemoryJournalRepository) collect(userID string, keep func(calendar.Day) bool) []*domain.JournalEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := []*domain.JournalEntry{}
	for key, e := range r.store {
		if key.userID == userID && keep(key.date) {
			entries = append(entries, copyEntry(e))
		}
	}
	return entries
}

func (r *InMemoryJournalRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.JournalEntry, error) {
	entries := r.collect(userID, func(calendar.Day) bool { return true })

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].EntryDate.Before(entries[j].EntryDate)
	})

	return entries, nil
}

func (r *InMemoryJournalRepository) ListByDateRange(ctx context.Context, userID string, from, to calendar.Day) ([]*domain.JournalEntry, error) {
	entries := r.collect(userID, func(d calendar.Day) bool { return d.Between(from, to) })

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].EntryDate.After(entries[j].EntryDate)
	})

	return entries, nil
}

func (r *InMemoryJournalRepository) Delete(ctx context.Context, userID string, date calendar.Day) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := entryKey{userID: userID, date: date}
	if _, ok := r.store[key]; !ok {
		return domain.ErrEntryNotFound
	}

	delete(r.store, key)
	return nil
}

func (r *InMemoryJournalRepository) UpdateStreak(ctx context.Context, userID string, date calendar.Day, streak int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := entryKey{userID: userID, date: date}
	e, ok := r.store[key]
	if !ok {
		return nil
	}

	e.Streak = streak
	r.store[key] = e
	return nil
}

type InMemoryGoalRepository struct {
	store map[string]domain.Goal

	mu sync.RWMutex
}

func NewInMemoryGoalRepository() *InMemoryGoalRepository {
	return &InMemoryGoalRepository{
		store: make(map[string]domain.Goal),
	}
}

func (r *InMemoryGoalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[goal.ID] = *goal
	return nil
}

func (r *InMemoryGoalRepository) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.store[id]
	if !ok {
		return nil, domain.ErrGoalNotFound
	}
	return &g, nil
}

func (r *InMemoryGoalRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goals := []*domain.Goal{}
	for _, g := range r.store {
		if g.UserID == userID {
			goal := g
			goals = append(goals, &goal)
		}
	}

	sort.Slice(goals, func(i, j int) bool {
		if goals[i].CreatedAt.Equal(goals[j].CreatedAt) {
			return goals[i].ID < goals[j].ID
		}
		return goals[i].CreatedAt.Before(goals[j].CreatedAt)
	})

	return goals, nil
}

func (r *InMemoryGoalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[goal.ID]; !ok {
		return domain.ErrGoalNotFound
	}

	r.store[goal.ID] = *goal
	return nil
}

func (r *InMemoryGoalRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return domain.ErrGoalNotFound
	}

	delete(r.store, id)
	return nil
}

type InMemoryReviewRepository struct {
	store map[entryKey]domain.WeeklyReview

	mu sync.RWMutex
}

func NewInMemoryReviewRepository() *InMemoryReviewRepository {
	return &InMemoryReviewRepository{
		store: make(map[entryKey]domain.WeeklyReview),
	}
}

func (r *InMemoryReviewRepository) Upsert(ctx context.Context, review *domain.WeeklyReview) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := entryKey{userID: review.UserID, date: review.WeekStart}
	if existing, ok := r.store[key]; ok {
		review.ID = existing.ID
		review.CreatedAt = existing.CreatedAt
	}

	r.store[key] = *review
	return nil
}

func (r *InMemoryReviewRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.WeeklyReview, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reviews := []*domain.WeeklyReview{}
	for key, rv := range r.store {
		if key.userID == userID {
			review := rv
			reviews = append(reviews, &review)
		}
	}

	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].WeekStart.After(reviews[j].WeekStart)
	})

	return reviews, nil
}
