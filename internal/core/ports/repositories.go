// internal/core/ports/repositories.go
package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ibubooks/consign-be/internal/core/domain"
)

// ConsignorRepository defines the persistence port for consignors.
// WithTx returns a view of the repository bound to an open transaction so
// the intake workflow can span consignor, book and item writes atomically.
type ConsignorRepository interface {
	WithTx(tx pgx.Tx) ConsignorRepository
	FindByID(ctx context.Context, consignorID uuid.UUID) (*domain.Consignor, error)
	FindByStudentID(ctx context.Context, studentID string) (*domain.Consignor, error)
	// FindOrCreate resolves a consignor by its student id, creating the
	// record when absent. Under a concurrent identical submission the
	// earlier-created record wins and is returned.
	FindOrCreate(ctx context.Context, consignor *domain.Consignor) (*domain.Consignor, error)
}

// BookRepository defines the persistence port for books.
type BookRepository interface {
	WithTx(tx pgx.Tx) BookRepository
	FindByID(ctx context.Context, bookID uuid.UUID) (*domain.Book, error)
	FindByISBN(ctx context.Context, isbn string) (*domain.Book, error)
	FindOrCreate(ctx context.Context, book *domain.Book) (*domain.Book, error)
	// IncrementCopies applies a signed delta to copies_available as a single
	// atomic update and returns the book with the new count. This is the
	// only write path for copies_available.
	IncrementCopies(ctx context.Context, bookID uuid.UUID, delta int) (*domain.Book, error)
	List(ctx context.Context, params BookListParams) ([]*domain.Book, int64, error)
}

// ConsignmentItemRepository defines the persistence port for consignment items.
type ConsignmentItemRepository interface {
	WithTx(tx pgx.Tx) ConsignmentItemRepository
	Save(ctx context.Context, item *domain.ConsignmentItem) error
	FindByID(ctx context.Context, itemID uuid.UUID) (*domain.ConsignmentItem, error)
	// LockForUpdate reads an item with a row lock so the previous persisted
	// state is stable for the remainder of the transaction.
	LockForUpdate(ctx context.Context, itemID uuid.UUID) (*domain.ConsignmentItem, error)
	UpdateState(ctx context.Context, itemID uuid.UUID, state domain.ConsignmentState) error
	ListByConsignor(ctx context.Context, consignorID uuid.UUID) ([]domain.ConsignmentItem, error)
	CountByState(ctx context.Context) (map[domain.ConsignmentState]int64, error)
}

// BookListParams holds filter and pagination parameters for listing books
type BookListParams struct {
	Search        string
	Course        string
	Author        string
	AvailableOnly bool
	SortBy        string
	SortOrder     string
	Page          int
	PageSize      int
}

// BookListResult holds a page of books
type BookListResult struct {
	Books      []*domain.Book `json:"books"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalCount int64          `json:"total_count"`
	TotalPages int            `json:"total_pages"`
}
