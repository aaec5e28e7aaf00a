package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/calendar"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/domain"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/workers"
)

func newTestJournalService(repo *MockJournalRepo, now time.Time) *JournalService {
	s := NewJournalService(repo, workers.NewStreakWorker(repo))
	s.now = func() time.Time { return now }
	return s
}

func TestJournalService_Save(t *testing.T) {
	ctx := context.Background()
	uid := "user-123"
	day := calendar.MustParse("2024-06-01")
	now := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)

	t.Run("Success: Should create a new entry for an empty day", func(t *testing.T) {
		repo := new(MockJournalRepo)
		service := newTestJournalService(repo, now)

		repo.On("GetByDate", ctx, uid, day).Return(nil, domain.ErrEntryNotFound)
		repo.On("Upsert", ctx, mock.AnythingOfType("*domain.JournalEntry")).Return(nil)

		entry, err := service.Save(ctx, SaveEntryInput{
			UserID:    uid,
			Date:      day,
			Gratitude: "slow morning",
			Tasks:     domain.Tasks{{Text: "inbox zero", Completed: true}},
			Mood:      "calm",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, entry.ID)
		assert.Equal(t, day, entry.EntryDate)
		assert.Equal(t, "slow morning", entry.Gratitude)
		assert.True(t, entry.HasContent())

		repo.AssertExpectations(t)
	})

	t.Run("Success: Should replace the content of an existing day", func(t *testing.T) {
		repo := new(MockJournalRepo)
		service := newTestJournalService(repo, now)

		existing := domain.NewJournalEntry(uid, day)
		existing.Reflection = "old"
		existing.Mood = "tired"
		originalID := existing.ID

		repo.On("GetByDate", ctx, uid, day).Return(existing, nil)
		repo.On("Upsert", ctx, existing).Return(nil)

		entry, err := service.Save(ctx, SaveEntryInput{UserID: uid, Date: day, Reflection: "new"})

		require.NoError(t, err)
		assert.Equal(t, originalID, entry.ID)
		assert.Equal(t, "new", entry.Reflection)
		assert.Empty(t, entry.Mood, "fields absent from the payload are cleared")
		assert.Equal(t, now, entry.UpdatedAt)
	})

	t.Run("Fail: Validation error stops the write", func(t *testing.T) {
		repo := new(MockJournalRepo)
		service := newTestJournalService(repo, now)

		repo.On("GetByDate", ctx, uid, day).Return(nil, domain.ErrEntryNotFound)

		_, err := service.Save(ctx, SaveEntryInput{UserID: uid, Date: day, Tasks: make(domain.Tasks, domain.MaxEntryTasks+1)})

		assert.ErrorIs(t, err, domain.ErrEntryTooManyTasks)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Fail: Lookup errors propagate", func(t *testing.T) {
		repo := new(MockJournalRepo)
		service := newTestJournalService(repo, now)

		dbErr := errors.New("db down")
		repo.On("GetByDate", ctx, uid, day).Return(nil, dbErr)

		_, err := service.Save(ctx, SaveEntryInput{UserID: uid, Date: day, Mood: "ok"})

		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("Fail: Days after tomorrow are rejected", func(t *testing.T) {
		repo := new(MockJournalRepo)
		service := newTestJournalService(repo, now)

		_, err := service.Save(ctx, SaveEntryInput{UserID: uid, Date: calendar.MustParse("2024-06-03"), Mood: "ok"})

		assert.ErrorIs(t, err, domain.ErrEntryInFuture)
		repo.AssertNotCalled(t, "GetByDate", mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Success: Tomorrow in UTC is accepted for zones ahead of UTC", func(t *testing.T) {
		repo := new(MockJournalRepo)
		service := newTestJournalService(repo, now)

		tomorrow := calendar.MustParse("2024-06-02")
		repo.On("GetByDate", ctx, uid, tomorrow).Return(nil, domain.ErrEntryNotFound)
		repo.On("Upsert", ctx, mock.AnythingOfType("*domain.JournalEntry")).Return(nil)

		entry, err := service.Save(ctx, SaveEntryInput{UserID: uid, Date: tomorrow, Mood: "ok"})

		require.NoError(t, err)
		assert.Equal(t, tomorrow, entry.EntryDate)
		repo.AssertExpectations(t)
	})
}

func TestJournalService_List(t *testing.T) {
	ctx := context.Background()
	uid := "user-123"
	now := time.Date(2024, 6, 30, 9, 0, 0, 0, time.UTC)

	t.Run("Defaults to the last 30 days", func(t *testing.T) {
		repo := new(MockJournalRepo)
		service := newTestJournalService(repo, now)

		from := calendar.MustParse("2024-06-01")
		to := calendar.MustParse("2024-06-30")
		repo.On("ListByDateRange", ctx, uid, from, to).Return([]*domain.JournalEntry{}, nil)

		entries, err := service.List(ctx, uid, calendar.Day{}, calendar.Day{})

		require.NoError(t, err)
		assert.Empty(t, entries)
		repo.AssertExpectations(t)
	})

	t.Run("Rejects inverted and oversized ranges", func(t *testing.T) {
		repo := new(MockJournalRepo)
		service := newTestJournalService(repo, now)

		_, err := service.List(ctx, uid, calendar.MustParse("2024-06-10"), calendar.MustParse("2024-06-01"))
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

		_, err = service.List(ctx, uid, calendar.MustParse("2022-01-01"), calendar.MustParse("2024-06-01"))
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

		repo.AssertNotCalled(t, "ListByDateRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestJournalService_Delete(t *testing.T) {
	ctx := context.Background()
	day := calendar.MustParse("2024-06-01")

	repo := new(MockJournalRepo)
	service := newTestJournalService(repo, time.Now())

	repo.On("Delete", ctx, "user-123", day).Return(nil).Once()
	repo.On("Delete", ctx, "user-123", day).Return(domain.ErrEntryNotFound).Once()

	assert.NoError(t, service.Delete(ctx, "user-123", day))
	assert.ErrorIs(t, service.Delete(ctx, "user-123", day), domain.ErrEntryNotFound)
}
