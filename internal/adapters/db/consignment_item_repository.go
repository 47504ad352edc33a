// internal/adapters/db/consignment_item_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ibubooks/consign-be/internal/core/domain"
	"github.com/ibubooks/consign-be/internal/core/ports"
)

// consignmentItemRepository implements ports.ConsignmentItemRepository
type consignmentItemRepository struct {
	q      querier
	logger *slog.Logger
}

// NewConsignmentItemRepository creates a new consignment item repository
func NewConsignmentItemRepository(db *Database, logger *slog.Logger) ports.ConsignmentItemRepository {
	return &consignmentItemRepository{
		q:      db,
		logger: logger.With(slog.String("repository", "consignment_item")),
	}
}

// WithTx returns a copy of the repository bound to tx
func (r *consignmentItemRepository) WithTx(tx pgx.Tx) ports.ConsignmentItemRepository {
	return &consignmentItemRepository{
		q:      txQuerier{tx: tx},
		logger: r.logger,
	}
}

const itemColumns = `
	item_id, consignor_id, book_id, price, current_state,
	created_at, updated_at`

// Save inserts a new consignment item
func (r *consignmentItemRepository) Save(ctx context.Context, item *domain.ConsignmentItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO consignment_items (
			item_id, consignor_id, book_id, price, current_state,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.q.Exec(ctx, query,
		item.ItemID, item.ConsignorID, item.BookID, item.Price,
		item.CurrentState, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save consignment item: %w", mapError(err))
	}

	r.logger.DebugContext(ctx, "consignment item saved",
		slog.String("item_id", item.ItemID.String()),
		slog.String("book_id", item.BookID.String()))

	return nil
}

// FindByID retrieves a consignment item by id
func (r *consignmentItemRepository) FindByID(ctx context.Context, itemID uuid.UUID) (*domain.ConsignmentItem, error) {
	query := `SELECT` + itemColumns + `
		FROM consignment_items
		WHERE item_id = $1`

	item, err := scanItemRow(r.q.QueryRow(ctx, query, itemID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to find consignment item: %w", mapError(err))
	}

	return item, nil
}

// LockForUpdate reads an item with FOR UPDATE so its state cannot change
// underneath the current transaction.
func (r *consignmentItemRepository) LockForUpdate(ctx context.Context, itemID uuid.UUID) (*domain.ConsignmentItem, error) {
	query := `SELECT` + itemColumns + `
		FROM consignment_items
		WHERE item_id = $1
		FOR UPDATE`

	item, err := scanItemRow(r.q.QueryRow(ctx, query, itemID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to lock consignment item: %w", mapError(err))
	}

	return item, nil
}

// UpdateState persists the item's new lifecycle state
func (r *consignmentItemRepository) UpdateState(ctx context.Context, itemID uuid.UUID, state domain.ConsignmentState) error {
	query := `
		UPDATE consignment_items
		SET current_state = $2, updated_at = NOW()
		WHERE item_id = $1`

	tag, err := r.q.Exec(ctx, query, itemID, state)
	if err != nil {
		return fmt.Errorf("failed to update item state: %w", mapError(err))
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}

	r.logger.DebugContext(ctx, "item state updated",
		slog.String("item_id", itemID.String()),
		slog.String("state", string(state)))

	return nil
}

// ListByConsignor retrieves every item belonging to a consignor
func (r *consignmentItemRepository) ListByConsignor(ctx context.Context, consignorID uuid.UUID) ([]domain.ConsignmentItem, error) {
	query := `SELECT` + itemColumns + `
		FROM consignment_items
		WHERE consignor_id = $1
		ORDER BY created_at DESC`

	rows, err := r.q.Query(ctx, query, consignorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query consignment items: %w", mapError(err))
	}
	defer rows.Close()

	var items []domain.ConsignmentItem
	for rows.Next() {
		item, err := scanItemRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan consignment item: %w", err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, nil
}

// CountByState returns item counts grouped by lifecycle state
func (r *consignmentItemRepository) CountByState(ctx context.Context) (map[domain.ConsignmentState]int64, error) {
	query := `
		SELECT current_state, COUNT(*)
		FROM consignment_items
		GROUP BY current_state`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count items by state: %w", mapError(err))
	}
	defer rows.Close()

	counts := make(map[domain.ConsignmentState]int64)
	for rows.Next() {
		var state domain.ConsignmentState
		var count int64
		if err := rows.Scan(&state, &count); err != nil {
			return nil, fmt.Errorf("failed to scan state count: %w", err)
		}
		counts[state] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return counts, nil
}

func scanItemRow(row pgx.Row) (*domain.ConsignmentItem, error) {
	item := &domain.ConsignmentItem{}

	err := row.Scan(
		&item.ItemID, &item.ConsignorID, &item.BookID, &item.Price,
		&item.CurrentState, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return item, nil
}
