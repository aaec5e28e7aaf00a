package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/domain"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgUndefinedTable      = "42P01"
	pgInvalidTextRepr     = "22P02"
)

// pgErrorCode extracts the SQLSTATE from either supported driver.
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	return ""
}

// wrapQueryError marks a missing table as an unavailable collection so the
// insights service can degrade instead of failing.
func wrapQueryError(op string, err error) error {
	if pgErrorCode(err) == pgUndefinedTable {
		return fmt.Errorf("repository: %s: %w: %w", op, domain.ErrCollectionUnavailable, err)
	}
	return fmt.Errorf("repository: %s failed: %w", op, err)
}
