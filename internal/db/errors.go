package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors the repositories surface instead of raw driver errors.
// Callers use errors.Is; the original driver error stays wrapped underneath.
var (
	// ErrNotFound is returned when a query matches no rows.
	ErrNotFound = errors.New("db: record not found")

	// ErrDuplicateKey is returned on unique constraint violations.
	ErrDuplicateKey = errors.New("db: duplicate key")

	// ErrForeignKey is returned when a foreign key constraint is violated.
	ErrForeignKey = errors.New("db: foreign key violation")
)

func IsNotFound(err error) bool     { return errors.Is(err, ErrNotFound) }
func IsDuplicateKey(err error) bool { return errors.Is(err, ErrDuplicateKey) }

// dbError wraps a sentinel with the original driver error.
type dbError struct {
	sentinel error
	cause    error
}

func (e *dbError) Error() string        { return e.sentinel.Error() + ": " + e.cause.Error() }
func (e *dbError) Is(target error) bool { return errors.Is(e.sentinel, target) }
func (e *dbError) Unwrap() error        { return e.cause }

// mapErr translates modernc.org/sqlite driver errors into sentinels.
// The driver reports constraint violations as extended result-code strings,
// e.g. "constraint failed: UNIQUE constraint failed: user_accounts.email (2067)".
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if err == sql.ErrNoRows {
		return &dbError{sentinel: ErrNotFound, cause: err}
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return &dbError{sentinel: ErrDuplicateKey, cause: err}
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return &dbError{sentinel: ErrForeignKey, cause: err}
	}
	return err
}

// DuplicateKeyStub builds the same error shape the driver mapping produces
// for a unique violation on the given "table.column". Used by mocks so
// service-level duplicate handling can be exercised without a real database.
func DuplicateKeyStub(column string) error {
	return &dbError{sentinel: ErrDuplicateKey, cause: fmt.Errorf("constraint failed: UNIQUE constraint failed: %s (2067)", column)}
}

// ConstraintColumn extracts the "table.column" that a unique violation names,
// or "" if the error carries none. Lets callers tell which uniqueness
// invariant broke when a table has more than one unique column.
func ConstraintColumn(err error) string {
	if err == nil {
		return ""
	}
	const marker = "UNIQUE constraint failed: "
	msg := err.Error()
	i := strings.Index(msg, marker)
	if i < 0 {
		return ""
	}
	rest := msg[i+len(marker):]
	if j := strings.IndexAny(rest, " ("); j >= 0 {
		rest = rest[:j]
	}
	return strings.TrimSpace(rest)
}
