package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/calendar"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/domain"
)

func TestGoalService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockGoalRepo)
		service := NewGoalService(repo)

		repo.On("Create", ctx, mock.AnythingOfType("*domain.Goal")).Return(nil)

		goal, err := service.Create(ctx, CreateGoalInput{
			UserID:     "user-1",
			Title:      "Write a book",
			TargetDate: calendar.MustParse("2025-01-01"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Write a book", goal.Title)
		assert.Equal(t, domain.GoalStatusActive, goal.Status)
		repo.AssertExpectations(t)
	})

	t.Run("Fail: Invalid title never reaches the repository", func(t *testing.T) {
		repo := new(MockGoalRepo)
		service := NewGoalService(repo)

		_, err := service.Create(ctx, CreateGoalInput{UserID: "user-1", Title: "  "})

		assert.ErrorIs(t, err, domain.ErrGoalTitleEmpty)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGoalService_UpdateProgress(t *testing.T) {
	ctx := context.Background()

	newGoal := func() *domain.Goal {
		g, err := domain.NewGoal("owner", "Run 10k", "", calendar.Day{})
		require.NoError(t, err)
		return g
	}

	t.Run("Success: Reaching 100 completes the goal", func(t *testing.T) {
		repo := new(MockGoalRepo)
		service := NewGoalService(repo)
		goal := newGoal()

		repo.On("GetByID", ctx, goal.ID).Return(goal, nil)
		repo.On("Update", ctx, goal).Return(nil)

		updated, err := service.UpdateProgress(ctx, goal.ID, "owner", 100)

		require.NoError(t, err)
		assert.True(t, updated.IsCompleted())
		repo.AssertExpectations(t)
	})

	t.Run("Fail: Another user's goal", func(t *testing.T) {
		repo := new(MockGoalRepo)
		service := NewGoalService(repo)
		goal := newGoal()

		repo.On("GetByID", ctx, goal.ID).Return(goal, nil)

		_, err := service.UpdateProgress(ctx, goal.ID, "intruder", 50)

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Fail: Out of range progress", func(t *testing.T) {
		repo := new(MockGoalRepo)
		service := NewGoalService(repo)
		goal := newGoal()

		repo.On("GetByID", ctx, goal.ID).Return(goal, nil)

		_, err := service.UpdateProgress(ctx, goal.ID, "owner", 150)

		assert.ErrorIs(t, err, domain.ErrInvalidProgress)
	})

	t.Run("Fail: Missing goal", func(t *testing.T) {
		repo := new(MockGoalRepo)
		service := NewGoalService(repo)

		repo.On("GetByID", ctx, "nope").Return(nil, domain.ErrGoalNotFound)

		_, err := service.UpdateProgress(ctx, "nope", "owner", 10)

		assert.ErrorIs(t, err, domain.ErrGoalNotFound)
	})
}

func TestGoalService_Delete(t *testing.T) {
	ctx := context.Background()
	goal := &domain.Goal{ID: "g1", UserID: "owner"}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockGoalRepo)
		service := NewGoalService(repo)

		repo.On("GetByID", ctx, "g1").Return(goal, nil)
		repo.On("Delete", ctx, "g1").Return(nil)

		assert.NoError(t, service.Delete(ctx, "g1", "owner"))
		repo.AssertExpectations(t)
	})

	t.Run("Fail: Not the owner", func(t *testing.T) {
		repo := new(MockGoalRepo)
		service := NewGoalService(repo)

		repo.On("GetByID", ctx, "g1").Return(goal, nil)

		assert.ErrorIs(t, service.Delete(ctx, "g1", "someone-else"), domain.ErrUnauthorized)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
