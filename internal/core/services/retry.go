// internal/core/services/retry.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ibubooks/consign-be/internal/core/domain"
	"github.com/ibubooks/consign-be/internal/core/ports"
)

const retryBaseDelay = 25 * time.Millisecond

// runTxWithRetry executes fn inside a transaction, retrying the whole
// transaction up to maxRetries times when it fails with ErrConcurrentUpdate.
// Every other error, including validation and invalid-state errors, aborts
// immediately.
func runTxWithRetry(ctx context.Context, db ports.Database, logger *slog.Logger,
	maxRetries int, fn func(pgx.Tx) error) error {

	var err error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			delay := retryBaseDelay * time.Duration(1<<(attempt-1))
			logger.WarnContext(ctx, "retrying after concurrent update",
				slog.Int("attempt", attempt),
				slog.Duration("delay", delay))

			select {
			case <-ctx.Done():
				return mapContextErr(ctx.Err())
			case <-time.After(delay):
			}
		}

		err = db.Transaction(ctx, fn)
		if !errors.Is(err, domain.ErrConcurrentUpdate) {
			return mapContextErr(err)
		}
	}

	return fmt.Errorf("gave up after %d retries: %w", maxRetries, domain.ErrConcurrentUpdate)
}

func mapContextErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.ErrStoreTimeout
	}
	return err
}
