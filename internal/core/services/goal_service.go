package services

import (
	"context"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/calendar"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/domain"
)

type GoalService struct {
	repo domain.GoalRepository
}

func NewGoalService(repo domain.GoalRepository) *GoalService {
	return &GoalService{
		repo: repo,
	}
}

type CreateGoalInput struct {
	UserID      string
	Title       string
	Description string
	TargetDate  calendar.Day
}

func (s *GoalService) Create(ctx context.Context, input CreateGoalInput) (*domain.Goal, error) {
	goal, err := domain.NewGoal(input.UserID, input.Title, input.Description, input.TargetDate)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

func (s *GoalService) List(ctx context.Context, userID string) ([]*domain.Goal, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *GoalService) GetByID(ctx context.Context, id, userID string) (*domain.Goal, error) {
	goal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if goal.UserID != userID {
		return nil, domain.ErrUnauthorized
	}

	return goal, nil
}

func (s *GoalService) UpdateProgress(ctx context.Context, id, userID string, progress int) (*domain.Goal, error) {
	goal, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if err := goal.SetProgress(progress); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

func (s *GoalService) Delete(ctx context.Context, id, userID string) error {
	if _, err := s.GetByID(ctx, id, userID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}
