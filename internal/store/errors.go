package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// mapError converts driver errors into store sentinels, keeping the entity
// and key in the message. Context errors pass through unchanged.
func mapError(err error, entity, key string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s %s: %w", entity, key, err)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, key, ErrNotFound)
	}

	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%s %s: %w", entity, key, ErrAlreadyExists)
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%s %s: %w", entity, key, ErrNotFound)
		}
	}
	return fmt.Errorf("%s %s: %w", entity, key, err)
}

// expectAffected turns a zero-row update or delete into ErrNotFound.
func expectAffected(res sql.Result, entity, key string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %s: rows affected: %w", entity, key, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, key, ErrNotFound)
	}
	return nil
}
