package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/domain"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/insights"
)

// InsightsObserver receives computation outcomes. Implemented by the metrics
// layer; a nil observer is allowed.
type InsightsObserver interface {
	InsightsComputed(score int, duration time.Duration)
	CollectionDegraded(collection string)
}

type InsightsConfig struct {
	DefaultLocation *time.Location
	FetchTimeout    time.Duration
}

type InsightsService struct {
	users    domain.UserRepository
	entries  domain.JournalEntryRepository
	goals    domain.GoalRepository
	reviews  domain.WeeklyReviewRepository
	cfg      InsightsConfig
	observer InsightsObserver
	now      func() time.Time
}

func NewInsightsService(
	users domain.UserRepository,
	entries domain.JournalEntryRepository,
	goals domain.GoalRepository,
	reviews domain.WeeklyReviewRepository,
	cfg InsightsConfig,
	observer InsightsObserver,
) *InsightsService {
	if cfg.DefaultLocation == nil {
		cfg.DefaultLocation = time.UTC
	}
	return &InsightsService{
		users:    users,
		entries:  entries,
		goals:    goals,
		reviews:  reviews,
		cfg:      cfg,
		observer: observer,
		now:      time.Now,
	}
}

// GetInsights fetches the user's history and runs the insights engine over
// it. An explicit tz overrides the stored timezone preference.
func (s *InsightsService) GetInsights(ctx context.Context, userID, tz string) (*domain.InsightsResult, error) {
	now := s.now()

	var requested *time.Location
	if tz = strings.TrimSpace(tz); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, domain.ErrInvalidTimezone
		}
		requested = loc
	}

	fetchCtx := ctx
	if s.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, s.cfg.FetchTimeout)
		defer cancel()
	}

	user, err := s.users.GetByID(fetchCtx, userID)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return nil, err
	case err != nil:
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logrus.WithError(err).WithField("user_id", userID).Warn("[INSIGHTS] user lookup failed, continuing without account data")
		user = nil
	}

	entries, err := optional(ctx, fetchCtx, s, userID, "journal_entries", s.entries.ListByUserID)
	if err != nil {
		return nil, err
	}
	goals, err := optional(ctx, fetchCtx, s, userID, "goals", s.goals.ListByUserID)
	if err != nil {
		return nil, err
	}
	reviews, err := optional(ctx, fetchCtx, s, userID, "weekly_reviews", s.reviews.ListByUserID)
	if err != nil {
		return nil, err
	}

	in := domain.InsightsInput{
		UserID:   userID,
		Location: requested,
		Now:      now,
		Entries:  entries,
		Goals:    goals,
		Reviews:  reviews,
	}
	if in.Location == nil {
		in.Location = user.Location(s.cfg.DefaultLocation)
	}
	if user != nil && !user.CreatedAt.IsZero() {
		created := user.CreatedAt
		in.AccountCreatedAt = &created
	}

	res := insights.Compute(in)

	if s.observer != nil {
		s.observer.InsightsComputed(res.MomentumScore, s.now().Sub(now))
	}

	return res, nil
}

// optional normalizes an unavailable collection to an empty one. Only the
// caller giving up aborts the request.
func optional[T any](
	ctx, fetchCtx context.Context,
	s *InsightsService,
	userID, collection string,
	fetch func(context.Context, string) ([]T, error),
) ([]T, error) {
	items, err := fetch(fetchCtx, userID)
	if err == nil {
		if items == nil {
			items = []T{}
		}
		return items, nil
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	logrus.WithError(err).WithFields(logrus.Fields{
		"user_id":    userID,
		"collection": collection,
		"missing":    errors.Is(err, domain.ErrCollectionUnavailable),
	}).Warn("[INSIGHTS] collection unavailable, using empty list")

	if s.observer != nil {
		s.observer.CollectionDegraded(collection)
	}

	return []T{}, nil
}
