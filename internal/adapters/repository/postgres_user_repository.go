package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/domain"
)

const queryTimeout = 3 * time.Second

const userColumns = `id, email, password_hash, COALESCE(timezone, '') AS timezone, created_at, updated_at`

type PostgresUserRepository struct {
	db *sqlx.DB
}

func NewPostgresUserRepository(db *sqlx.DB) *PostgresUserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

func (r *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		INSERT INTO users (id, email, password_hash, timezone, created_at, updated_at)
		VALUES (:id, :email, :password_hash, :timezone, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("repository: create user failed: %w", err)
	}

	return nil
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, "get user by email", `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, "get user by id", `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *PostgresUserRepository) getOne(ctx context.Context, op, query string, arg any) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: %s failed: %w", op, err)
	}

	return &user, nil
}
