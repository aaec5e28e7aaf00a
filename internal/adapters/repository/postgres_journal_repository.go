package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/calendar"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/domain"
)

const entryColumns = `id, user_id, entry_date, streak,
	COALESCE(gratitude, '') AS gratitude,
	COALESCE(priority_1, '') AS priority_1,
	COALESCE(priority_2, '') AS priority_2,
	COALESCE(priority_3, '') AS priority_3,
	tasks,
	COALESCE(reflection, '') AS reflection,
	COALESCE(mood, '') AS mood,
	created_at, updated_at`

type PostgresJournalRepository struct {
	db *sqlx.DB
}

func NewPostgresJournalRepository(db *sqlx.DB) *PostgresJournalRepository {
	return &PostgresJournalRepository{db: db}
}

func (r *PostgresJournalRepository) Upsert(ctx context.Context, entry *domain.JournalEntry) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query, args, err := sqlx.Named(`
		INSERT INTO journal_entries (
			id, user_id, entry_date, streak, gratitude, priority_1, priority_2, priority_3,
			tasks, reflection, mood, created_at, updated_at
		) VALUES (
			:id, :user_id, :entry_date, :streak, :gratitude, :priority_1, :priority_2, :priority_3,
			:tasks, :reflection, :mood, :created_at, :updated_at
		)
		ON CONFLICT (user_id, entry_date) DO UPDATE SET
			gratitude = EXCLUDED.gratitude,
			priority_1 = EXCLUDED.priority_1,
			priority_2 = EXCLUDED.priority_2,
			priority_3 = EXCLUDED.priority_3,
			tasks = EXCLUDED.tasks,
			reflection = EXCLUDED.reflection,
			mood = EXCLUDED.mood,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`, entry)
	if err != nil {
		return fmt.Errorf("repository: bind entry failed: %w", err)
	}

	err = r.db.QueryRowxContext(ctx, r.db.Rebind(query), args...).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return domain.ErrUserNotFound
		}
		return wrapQueryError("upsert entry", err)
	}

	return nil
}

func (r *PostgresJournalRepository) GetByDate(ctx context.Context, userID string, date calendar.Day) (*domain.JournalEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var entry domain.JournalEntry
	err := r.db.GetContext(ctx, &entry,
		`SELECT `+entryColumns+` FROM journal_entries WHERE user_id = $1 AND entry_date = $2`,
		userID, date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, wrapQueryError("get entry", err)
	}

	return &entry, nil
}

func (r *PostgresJournalRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.JournalEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	entries := []*domain.JournalEntry{}
	err := r.db.SelectContext(ctx, &entries,
		`SELECT `+entryColumns+` FROM journal_entries WHERE user_id = $1 ORDER BY entry_date ASC`,
		userID)
	if err != nil {
		return nil, wrapQueryError("list entries", err)
	}

	return entries, nil
}

func (r *PostgresJournalRepository) ListByDateRange(ctx context.Context, userID string, from, to calendar.Day) ([]*domain.JournalEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	entries := []*domain.JournalEntry{}
	err := r.db.SelectContext(ctx, &entries,
		`SELECT `+entryColumns+` FROM journal_entries
		WHERE user_id = $1 AND entry_date BETWEEN $2 AND $3
		ORDER BY entry_date DESC`,
		userID, from, to)
	if err != nil {
		return nil, wrapQueryError("list entries by range", err)
	}

	return entries, nil
}

func (r *PostgresJournalRepository) Delete(ctx context.Context, userID string, date calendar.Day) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM journal_entries WHERE user_id = $1 AND entry_date = $2`, userID, date)
	if err != nil {
		return wrapQueryError("delete entry", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("repository: delete entry failed: %w", err)
	}
	if rows == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

func (r *PostgresJournalRepository) UpdateStreak(ctx context.Context, userID string, date calendar.Day, streak int) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`UPDATE journal_entries SET streak = $1 WHERE user_id = $2 AND entry_date = $3`,
		streak, userID, date)
	if err != nil {
		return wrapQueryError("update streak", err)
	}

	return nil
}
