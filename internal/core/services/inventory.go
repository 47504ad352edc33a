// internal/core/services/inventory.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ibubooks/consign-be/internal/core/domain"
	"github.com/ibubooks/consign-be/internal/core/ports"
)

const bookCacheTTL = 5 * time.Minute

// InventoryService maintains the derived copies_available counts. Every
// state transition adjusts the owning book's count by the contribution
// delta inside the same transaction that records the transition, keeping
// the count equal to the number of available items at all times.
type InventoryService struct {
	books      ports.BookRepository
	items      ports.ConsignmentItemRepository
	db         ports.Database
	cache      ports.CacheRepository
	logger     *slog.Logger
	maxRetries int
}

// Statically assert that *InventoryService implements the InventoryService interface.
var _ ports.InventoryService = (*InventoryService)(nil)

// NewInventoryService creates a new inventory service
func NewInventoryService(
	books ports.BookRepository,
	items ports.ConsignmentItemRepository,
	db ports.Database,
	cache ports.CacheRepository,
	maxRetries int,
	logger *slog.Logger,
) *InventoryService {
	return &InventoryService{
		books:      books,
		items:      items,
		db:         db,
		cache:      cache,
		maxRetries: maxRetries,
		logger:     logger.With(slog.String("service", "inventory")),
	}
}

// ChangeState transitions an item to next and adjusts the owning book's
// copies_available by the contribution delta. The target state is checked
// before anything is read or written, so an unknown state never mutates
// the store. A transition with a zero delta only records the new state.
func (s *InventoryService) ChangeState(ctx context.Context, itemID uuid.UUID, next domain.ConsignmentState) (*domain.ConsignmentItem, error) {
	if !domain.ValidState(next) {
		return nil, &domain.InvalidStateError{State: string(next)}
	}

	var updated *domain.ConsignmentItem
	err := runTxWithRetry(ctx, s.db, s.logger, s.maxRetries, func(tx pgx.Tx) error {
		items := s.items.WithTx(tx)
		books := s.books.WithTx(tx)

		item, err := items.LockForUpdate(ctx, itemID)
		if err != nil {
			return err
		}

		delta, err := domain.StateDelta(item.CurrentState, next)
		if err != nil {
			return err
		}

		if err := items.UpdateState(ctx, itemID, next); err != nil {
			return err
		}

		if delta != 0 {
			if _, err := books.IncrementCopies(ctx, item.BookID, delta); err != nil {
				return err
			}
		}

		item.CurrentState = next
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateBookCache(ctx, updated.BookID)

	s.logger.InfoContext(ctx, "item state changed",
		slog.String("item_id", itemID.String()),
		slog.String("state", string(next)))

	return updated, nil
}

// GetItem retrieves a consignment item by id
func (s *InventoryService) GetItem(ctx context.Context, itemID uuid.UUID) (*domain.ConsignmentItem, error) {
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get consignment item: %w", err)
	}
	return item, nil
}

// GetBook retrieves a book by isbn, serving from cache when warm
func (s *InventoryService) GetBook(ctx context.Context, isbn string) (*domain.Book, error) {
	var book domain.Book
	err := s.cache.GetOrSet(ctx, bookCacheKey(isbn), &book, func() (interface{}, error) {
		return s.books.FindByISBN(ctx, isbn)
	}, bookCacheTTL)
	if err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			return nil, domain.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return &book, nil
}

// ListBooks retrieves books with filtering and pagination
func (s *InventoryService) ListBooks(ctx context.Context, params ports.BookListParams) (*ports.BookListResult, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = 50
	}

	books, totalCount, err := s.books.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	totalPages := int(totalCount) / params.PageSize
	if int(totalCount)%params.PageSize > 0 {
		totalPages++
	}

	return &ports.BookListResult{
		Books:      books,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}, nil
}

// Audit recomputes every book's copies_available from the consignment item
// states and repairs drift in place. Returns the isbns of corrected books.
// The derived count should only drift if rows were edited outside the
// application, but the audit makes the repair cheap to run on a schedule.
func (s *InventoryService) Audit(ctx context.Context) ([]string, error) {
	var corrected []string

	err := s.db.Transaction(ctx, func(tx pgx.Tx) error {
		repairQuery := `
			UPDATE books b
			SET copies_available = c.available, updated_at = NOW()
			FROM (
				SELECT book_id, COUNT(*) FILTER (WHERE current_state = 'available') AS available
				FROM consignment_items
				GROUP BY book_id
			) c
			WHERE b.book_id = c.book_id AND b.copies_available <> c.available
			RETURNING b.isbn`

		rows, err := tx.Query(ctx, repairQuery)
		if err != nil {
			return fmt.Errorf("failed to repair book counts: %w", err)
		}
		corrected, err = collectISBNs(rows)
		if err != nil {
			return err
		}

		// Books with no items at all must sit at zero.
		orphanQuery := `
			UPDATE books b
			SET copies_available = 0, updated_at = NOW()
			WHERE b.copies_available <> 0
			  AND NOT EXISTS (
				SELECT 1 FROM consignment_items i WHERE i.book_id = b.book_id
			  )
			RETURNING b.isbn`

		rows, err = tx.Query(ctx, orphanQuery)
		if err != nil {
			return fmt.Errorf("failed to zero orphaned books: %w", err)
		}
		orphaned, err := collectISBNs(rows)
		if err != nil {
			return err
		}

		corrected = append(corrected, orphaned...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, isbn := range corrected {
		if err := s.cache.Delete(ctx, bookCacheKey(isbn)); err != nil {
			s.logger.WarnContext(ctx, "failed to invalidate book cache",
				slog.String("isbn", isbn), slog.Any("error", err))
		}
	}

	if len(corrected) > 0 {
		s.logger.WarnContext(ctx, "audit corrected drifted book counts",
			slog.Int("count", len(corrected)))
	} else {
		s.logger.InfoContext(ctx, "audit found no drift")
	}

	return corrected, nil
}

// Dashboard aggregates store-wide inventory figures
func (s *InventoryService) Dashboard(ctx context.Context) (*ports.DashboardData, error) {
	data := &ports.DashboardData{}

	err := s.db.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(copies_available), 0)
		FROM books`).Scan(&data.TotalBooks, &data.TotalCopies)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate books: %w", err)
	}

	err = s.db.QueryRow(ctx, `SELECT COUNT(*) FROM consignors`).Scan(&data.TotalConsignors)
	if err != nil {
		return nil, fmt.Errorf("failed to count consignors: %w", err)
	}

	counts, err := s.items.CountByState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count items by state: %w", err)
	}
	data.ItemsByState = counts

	return data, nil
}

func (s *InventoryService) invalidateBookCache(ctx context.Context, bookID uuid.UUID) {
	book, err := s.books.FindByID(ctx, bookID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to load book for cache invalidation",
			slog.String("book_id", bookID.String()), slog.Any("error", err))
		return
	}
	if err := s.cache.Delete(ctx, bookCacheKey(book.ISBN)); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate book cache",
			slog.String("isbn", book.ISBN), slog.Any("error", err))
	}
}

func bookCacheKey(isbn string) string {
	return "book:isbn:" + isbn
}

func collectISBNs(rows pgx.Rows) ([]string, error) {
	defer rows.Close()

	var isbns []string
	for rows.Next() {
		var isbn string
		if err := rows.Scan(&isbn); err != nil {
			return nil, fmt.Errorf("failed to scan isbn: %w", err)
		}
		isbns = append(isbns, isbn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return isbns, nil
}
