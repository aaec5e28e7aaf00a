package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/domain"
)

const goalColumns = `id, user_id, title, COALESCE(description, '') AS description,
	progress, status, target_date, created_at, updated_at`

type PostgresGoalRepository struct {
	db *sqlx.DB
}

func NewPostgresGoalRepository(db *sqlx.DB) *PostgresGoalRepository {
	return &PostgresGoalRepository{db: db}
}

func (r *PostgresGoalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		INSERT INTO goals (id, user_id, title, description, progress, status, target_date, created_at, updated_at)
		VALUES (:id, :user_id, :title, :description, :progress, :status, :target_date, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, goal); err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return domain.ErrUserNotFound
		}
		return wrapQueryError("create goal", err)
	}

	return nil
}

func (r *PostgresGoalRepository) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var goal domain.Goal
	err := r.db.GetContext(ctx, &goal, `SELECT `+goalColumns+` FROM goals WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || pgErrorCode(err) == pgInvalidTextRepr {
			return nil, domain.ErrGoalNotFound
		}
		return nil, wrapQueryError("get goal", err)
	}

	return &goal, nil
}

func (r *PostgresGoalRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Goal, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	goals := []*domain.Goal{}
	err := r.db.SelectContext(ctx, &goals,
		`SELECT `+goalColumns+` FROM goals WHERE user_id = $1 ORDER BY created_at ASC`, userID)
	if err != nil {
		return nil, wrapQueryError("list goals", err)
	}

	return goals, nil
}

func (r *PostgresGoalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		UPDATE goals SET
			title = :title, description = :description, progress = :progress,
			status = :status, target_date = :target_date, updated_at = :updated_at
		WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, query, goal)
	if err != nil {
		return wrapQueryError("update goal", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("repository: update goal failed: %w", err)
	}
	if rows == 0 {
		return domain.ErrGoalNotFound
	}

	return nil
}

func (r *PostgresGoalRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return wrapQueryError("delete goal", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("repository: delete goal failed: %w", err)
	}
	if rows == 0 {
		return domain.ErrGoalNotFound
	}

	return nil
}
