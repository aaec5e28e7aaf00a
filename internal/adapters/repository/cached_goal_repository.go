package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/domain"
)

const DefaultGoalsCacheTTL = 30 * time.Minute

var _ domain.GoalRepository = (*CachedGoalRepository)(nil)

// CachedGoalRepository keeps each user's goal list in Redis. Any write for a
// user drops the cached list.
type CachedGoalRepository struct {
	next  domain.GoalRepository
	cache *redis.Client
	ttl   time.Duration
}

func NewCachedGoalRepository(next domain.GoalRepository, cache *redis.Client, ttl time.Duration) *CachedGoalRepository {
	if ttl <= 0 {
		ttl = DefaultGoalsCacheTTL
	}
	return &CachedGoalRepository{
		next:  next,
		cache: cache,
		ttl:   ttl,
	}
}

func (r *CachedGoalRepository) cacheKey(userID string) string {
	return fmt.Sprintf("goals:%s", userID)
}

func (r *CachedGoalRepository) invalidate(ctx context.Context, userID string) {
	if err := r.cache.Del(ctx, r.cacheKey(userID)).Err(); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Warn("[CACHE] failed to invalidate goals")
	}
}

func (r *CachedGoalRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Goal, error) {
	key := r.cacheKey(userID)

	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var goals []*domain.Goal
		if err := json.Unmarshal([]byte(val), &goals); err == nil {
			return goals, nil
		}

		logrus.WithField("user_id", userID).Warn("[CACHE] corrupted goals entry, cleaning up key")
		r.cache.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		logrus.WithError(err).Warn("[CACHE] redis read error")
	}

	goals, err := r.next.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(goals); err == nil {
		if setErr := r.cache.Set(ctx, key, data, r.ttl).Err(); setErr != nil {
			logrus.WithError(setErr).Warn("[CACHE] redis set error")
		}
	}

	return goals, nil
}

func (r *CachedGoalRepository) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	return r.next.GetByID(ctx, id)
}

func (r *CachedGoalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	if err := r.next.Create(ctx, goal); err != nil {
		return err
	}
	r.invalidate(ctx, goal.UserID)
	return nil
}

func (r *CachedGoalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	if err := r.next.Update(ctx, goal); err != nil {
		return err
	}
	r.invalidate(ctx, goal.UserID)
	return nil
}

func (r *CachedGoalRepository) Delete(ctx context.Context, id string) error {
	goal, err := r.next.GetByID(ctx, id)
	if err == nil && goal != nil {
		defer r.invalidate(ctx, goal.UserID)
	}

	return r.next.Delete(ctx, id)
}
