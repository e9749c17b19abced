package repository

import (
	"errors"
	"fmt"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrNotFound is wrapped by every lookup that matches no row.
var ErrNotFound = errors.New("not found")

// ErrConflict is wrapped when a write violates a uniqueness constraint, such
// as a second chessboard for the same complex.
var ErrConflict = errors.New("conflict")

// ErrComplexTaken is the ErrConflict raised when a second chessboard would
// reference the same complex.
var ErrComplexTaken = fmt.Errorf("complex already has a chessboard: %w", ErrConflict)

// isUniqueViolation reports whether err is SQLite rejecting a duplicate key.
func isUniqueViolation(err error) bool {
	code, ok := sqliteCode(err)
	if !ok {
		return false
	}
	switch code {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		// Primary code only; extended codes were not enabled on this connection.
		return strings.Contains(err.Error(), "UNIQUE constraint failed")
	}
	return false
}

// conflictError maps a unique violation on the chessboards table to the
// matching sentinel. SQLite names the offending column in the message.
func conflictError(op string, err error) error {
	if strings.Contains(err.Error(), "chessboards.complex_id") {
		return fmt.Errorf("%s: %w", op, ErrComplexTaken)
	}
	return fmt.Errorf("%s: %w: %v", op, ErrConflict, err)
}

func sqliteCode(err error) (int, bool) {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return 0, false
	}
	return se.Code(), true
}

// IsBusy reports whether the store rejected the operation because another
// writer holds the lock.
func IsBusy(err error) bool {
	code, ok := sqliteCode(err)
	return ok && (code&0xff == sqlite3.SQLITE_BUSY || code&0xff == sqlite3.SQLITE_LOCKED)
}

// IsExhausted reports a full disk or database.
func IsExhausted(err error) bool {
	code, ok := sqliteCode(err)
	return ok && (code&0xff == sqlite3.SQLITE_FULL || code&0xff == sqlite3.SQLITE_NOMEM)
}

// IsPermissionDenied reports a store opened read-only or denied by the OS.
func IsPermissionDenied(err error) bool {
	code, ok := sqliteCode(err)
	return ok && (code&0xff == sqlite3.SQLITE_READONLY || code&0xff == sqlite3.SQLITE_PERM || code&0xff == sqlite3.SQLITE_AUTH)
}

// IsConstraint reports any constraint violation other than those already
// mapped to ErrConflict.
func IsConstraint(err error) bool {
	code, ok := sqliteCode(err)
	return ok && code&0xff == sqlite3.SQLITE_CONSTRAINT
}
