package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/calendar"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/domain"
)

type MockJournalRepo struct {
	mock.Mock
}

func (m *MockJournalRepo) Upsert(ctx context.Context, entry *domain.JournalEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockJournalRepo) GetByDate(ctx context.Context, userID string, date calendar.Day) (*domain.JournalEntry, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.JournalEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepo) ListByDateRange(ctx context.Context, userID string, from, to calendar.Day) ([]*domain.JournalEntry, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepo) Delete(ctx context.Context, userID string, date calendar.Day) error {
	return m.Called(ctx, userID, date).Error(0)
}

func (m *MockJournalRepo) UpdateStreak(ctx context.Context, userID string, date calendar.Day, streak int) error {
	return m.Called(ctx, userID, date, streak).Error(0)
}

type MockGoalRepo struct {
	mock.Mock
}

func (m *MockGoalRepo) Create(ctx context.Context, goal *domain.Goal) error {
	return m.Called(ctx, goal).Error(0)
}

func (m *MockGoalRepo) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Goal), args.Error(1)
}

func (m *MockGoalRepo) Update(ctx context.Context, goal *domain.Goal) error {
	return m.Called(ctx, goal).Error(0)
}

func (m *MockGoalRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) Upsert(ctx context.Context, review *domain.WeeklyReview) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockReviewRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.WeeklyReview, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.WeeklyReview), args.Error(1)
}

type MockObserver struct {
	mock.Mock
}

func (m *MockObserver) InsightsComputed(score int, _ time.Duration) {
	m.Called(score)
}

func (m *MockObserver) CollectionDegraded(collection string) {
	m.Called(collection)
}
