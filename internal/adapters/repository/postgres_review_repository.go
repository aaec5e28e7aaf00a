package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/domain"
)

const reviewColumns = `id, user_id, week_start,
	COALESCE(wins, '') AS wins,
	COALESCE(challenges, '') AS challenges,
	COALESCE(lessons, '') AS lessons,
	COALESCE(next_week_focus, '') AS next_week_focus,
	rating, created_at, updated_at`

type PostgresReviewRepository struct {
	db *sqlx.DB
}

func NewPostgresReviewRepository(db *sqlx.DB) *PostgresReviewRepository {
	return &PostgresReviewRepository{db: db}
}

func (r *PostgresReviewRepository) Upsert(ctx context.Context, review *domain.WeeklyReview) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query, args, err := sqlx.Named(`
		INSERT INTO weekly_reviews (
			id, user_id, week_start, wins, challenges, lessons, next_week_focus, rating, created_at, updated_at
		) VALUES (
			:id, :user_id, :week_start, :wins, :challenges, :lessons, :next_week_focus, :rating, :created_at, :updated_at
		)
		ON CONFLICT (user_id, week_start) DO UPDATE SET
			wins = EXCLUDED.wins,
			challenges = EXCLUDED.challenges,
			lessons = EXCLUDED.lessons,
			next_week_focus = EXCLUDED.next_week_focus,
			rating = EXCLUDED.rating,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`, review)
	if err != nil {
		return fmt.Errorf("repository: bind review failed: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, r.db.Rebind(query), args...).Scan(&review.ID, &review.CreatedAt); err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return domain.ErrUserNotFound
		}
		return wrapQueryError("upsert review", err)
	}

	return nil
}

func (r *PostgresReviewRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.WeeklyReview, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	reviews := []*domain.WeeklyReview{}
	err := r.db.SelectContext(ctx, &reviews,
		`SELECT `+reviewColumns+` FROM weekly_reviews WHERE user_id = $1 ORDER BY week_start DESC`, userID)
	if err != nil {
		return nil, wrapQueryError("list reviews", err)
	}

	return reviews, nil
}
