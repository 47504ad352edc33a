// internal/adapters/db/errors.go
package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ibubooks/consign-be/internal/core/domain"
)

const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgUniqueViolation      = "23505"
)

// mapError translates driver-level failures into the domain error taxonomy.
// Serialization failures and deadlocks surface as ErrConcurrentUpdate so the
// service layer can retry; unique violations surface as ErrDuplicateKey so
// find-or-create can re-resolve.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return domain.ErrStoreTimeout
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgSerializationFailure, pgDeadlockDetected:
			return domain.ErrConcurrentUpdate
		case pgUniqueViolation:
			return domain.ErrDuplicateKey
		}
	}

	return err
}
