package sqlite

import (
	"errors"
	"fmt"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// mapSQLiteError wraps err with op and, for busy databases and constraint failures, the
// matching apperrors sentinel.
func mapSQLiteError(op string, err error) error {
	if err == nil {
		return nil
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		switch code {
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%s: %w: %w", op, apperrors.ErrNotFound, err)
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%s: %w: %w", op, apperrors.ErrDuplicate, err)
		case sqlite3.SQLITE_CONSTRAINT_CHECK:
			return fmt.Errorf("%s: %w: %w", op, apperrors.ErrValidation, err)
		}
		// Primary result code lives in the low byte.
		switch code & 0xff {
		case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
			return fmt.Errorf("%s: %w: %w", op, apperrors.ErrConflict, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func invalidTokenError(err error) error {
	return apperrors.NewAppError(400, "invalid nextToken", errors.Join(apperrors.ErrValidation, err))
}
