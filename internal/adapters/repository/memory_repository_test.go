package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/calendar"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/domain"
)

func TestInMemoryUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryUserRepository()

	user, err := domain.NewUser("user-1", "ada@example.com")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, user))

	err = repo.Create(ctx, &domain.User{ID: "user-2", Email: "ADA@example.com"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	found, err := repo.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user-1", found.ID)

	_, err = repo.GetByID(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestInMemoryJournalRepository(t *testing.T) {
	ctx := context.Background()
	day := func(d int) calendar.Day { return calendar.New(2024, time.May, d) }

	t.Run("Upsert replaces content but keeps identity", func(t *testing.T) {
		repo := NewInMemoryJournalRepository()

		first := domain.NewJournalEntry("user-1", day(1))
		first.Gratitude = "tea"
		require.NoError(t, repo.Upsert(ctx, first))
		require.NoError(t, repo.UpdateStreak(ctx, "user-1", day(1), 5))

		second := domain.NewJournalEntry("user-1", day(1))
		second.Reflection = "quiet day"
		require.NoError(t, repo.Upsert(ctx, second))

		assert.Equal(t, first.ID, second.ID)

		stored, err := repo.GetByDate(ctx, "user-1", day(1))
		require.NoError(t, err)
		assert.Empty(t, stored.Gratitude)
		assert.Equal(t, "quiet day", stored.Reflection)
		assert.Equal(t, 5, stored.Streak)
	})

	t.Run("Returned entries are copies", func(t *testing.T) {
		repo := NewInMemoryJournalRepository()

		entry := domain.NewJournalEntry("user-1", day(2))
		entry.Tasks = domain.Tasks{{Text: "walk"}}
		require.NoError(t, repo.Upsert(ctx, entry))

		got, err := repo.GetByDate(ctx, "user-1", day(2))
		require.NoError(t, err)
		got.Tasks[0].Completed = true

		again, err := repo.GetByDate(ctx, "user-1", day(2))
		require.NoError(t, err)
		assert.False(t, again.Tasks[0].Completed)
	})

	t.Run("Listing order and range", func(t *testing.T) {
		repo := NewInMemoryJournalRepository()
		for _, d := range []int{3, 1, 2, 9} {
			require.NoError(t, repo.Upsert(ctx, domain.NewJournalEntry("user-1", day(d))))
		}
		require.NoError(t, repo.Upsert(ctx, domain.NewJournalEntry("user-2", day(2))))

		all, err := repo.ListByUserID(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, all, 4)
		assert.Equal(t, day(1), all[0].EntryDate)
		assert.Equal(t, day(9), all[3].EntryDate)

		ranged, err := repo.ListByDateRange(ctx, "user-1", day(2), day(3))
		require.NoError(t, err)
		require.Len(t, ranged, 2)
		assert.Equal(t, day(3), ranged[0].EntryDate)
		assert.Equal(t, day(2), ranged[1].EntryDate)

		none, err := repo.ListByUserID(ctx, "user-3")
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})

	t.Run("Delete", func(t *testing.T) {
		repo := NewInMemoryJournalRepository()
		require.NoError(t, repo.Upsert(ctx, domain.NewJournalEntry("user-1", day(4))))

		require.NoError(t, repo.Delete(ctx, "user-1", day(4)))
		assert.ErrorIs(t, repo.Delete(ctx, "user-1", day(4)), domain.ErrEntryNotFound)

		_, err := repo.GetByDate(ctx, "user-1", day(4))
		assert.ErrorIs(t, err, domain.ErrEntryNotFound)
	})
}

func TestInMemoryGoalRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryGoalRepository()

	goal, err := domain.NewGoal("user-1", "Run 10k", "", calendar.Day{})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, goal))

	require.NoError(t, goal.SetProgress(100))
	require.NoError(t, repo.Update(ctx, goal))

	stored, err := repo.GetByID(ctx, goal.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsCompleted())

	list, err := repo.ListByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, goal.ID))
	assert.ErrorIs(t, repo.Delete(ctx, goal.ID), domain.ErrGoalNotFound)
	assert.ErrorIs(t, repo.Update(ctx, goal), domain.ErrGoalNotFound)
}

func TestInMemoryReviewRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryReviewRepository()

	first := domain.NewWeeklyReview("user-1", calendar.New(2024, time.May, 1))
	first.Wins = "shipped"
	require.NoError(t, repo.Upsert(ctx, first))

	sameWeek := domain.NewWeeklyReview("user-1", calendar.New(2024, time.May, 3))
	sameWeek.Wins = "shipped twice"
	require.NoError(t, repo.Upsert(ctx, sameWeek))
	assert.Equal(t, first.ID, sameWeek.ID)

	require.NoError(t, repo.Upsert(ctx, domain.NewWeeklyReview("user-1", calendar.New(2024, time.May, 8))))

	reviews, err := repo.ListByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, calendar.New(2024, time.May, 6), reviews[0].WeekStart)
	assert.Equal(t, "shipped twice", reviews[1].Wins)
}
