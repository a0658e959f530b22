package pgsql

import (
	"errors"
	"fmt"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the repositories translate into application errors.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeForeignKeyViolation  = "23503"
	codeUniqueViolation      = "23505"
	codeCheckViolation       = "23514"
)

// mapPgError wraps err with op and, for the codes above, the matching apperrors sentinel.
func mapPgError(op string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeSerializationFailure, codeDeadlockDetected:
			return fmt.Errorf("%s: %w: %w", op, apperrors.ErrConflict, err)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s: %w: %w", op, apperrors.ErrNotFound, err)
		case codeUniqueViolation:
			return fmt.Errorf("%s: %w: %w", op, apperrors.ErrDuplicate, err)
		case codeCheckViolation:
			return fmt.Errorf("%s: %w: %w", op, apperrors.ErrValidation, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func invalidTokenError(err error) error {
	return apperrors.NewAppError(400, "invalid nextToken", errors.Join(apperrors.ErrValidation, err))
}
