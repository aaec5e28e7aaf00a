package services

import (
	"context"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/calendar"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/domain"
)

type ReviewService struct {
	repo domain.WeeklyReviewRepository
}

func NewReviewService(repo domain.WeeklyReviewRepository) *ReviewService {
	return &ReviewService{
		repo: repo,
	}
}

type SaveReviewInput struct {
	UserID        string
	Week          calendar.Day
	Wins          string
	Challenges    string
	Lessons       string
	NextWeekFocus string
	Rating        int
}

// Save stores the review of the week containing input.Week, replacing an
// earlier review of the same week.
func (s *ReviewService) Save(ctx context.Context, input SaveReviewInput) (*domain.WeeklyReview, error) {
	review := domain.NewWeeklyReview(input.UserID, input.Week)
	review.Wins = input.Wins
	review.Challenges = input.Challenges
	review.Lessons = input.Lessons
	review.NextWeekFocus = input.NextWeekFocus
	review.Rating = input.Rating

	if err := review.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

func (s *ReviewService) List(ctx context.Context, userID string) ([]*domain.WeeklyReview, error) {
	return s.repo.ListByUserID(ctx, userID)
}
