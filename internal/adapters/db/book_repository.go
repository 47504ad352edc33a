// internal/adapters/db/book_repository.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ibubooks/consign-be/internal/core/domain"
	"github.com/ibubooks/consign-be/internal/core/ports"
)

// bookRepository implements ports.BookRepository
type bookRepository struct {
	q      querier
	logger *slog.Logger
}

// NewBookRepository creates a new book repository
func NewBookRepository(db *Database, logger *slog.Logger) ports.BookRepository {
	return &bookRepository{
		q:      db,
		logger: logger.With(slog.String("repository", "book")),
	}
}

// WithTx returns a copy of the repository bound to tx
func (r *bookRepository) WithTx(tx pgx.Tx) ports.BookRepository {
	return &bookRepository{
		q:      txQuerier{tx: tx},
		logger: r.logger,
	}
}

const bookColumns = `
	book_id, isbn, title, author, edition, courses,
	copies_available, created_at, updated_at`

// FindByID retrieves a book by its surrogate id
func (r *bookRepository) FindByID(ctx context.Context, bookID uuid.UUID) (*domain.Book, error) {
	query := `SELECT` + bookColumns + `
		FROM books
		WHERE book_id = $1`

	book, err := scanBookRow(r.q.QueryRow(ctx, query, bookID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to find book: %w", mapError(err))
	}

	return book, nil
}

// FindByISBN retrieves a book by the isbn business key
func (r *bookRepository) FindByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	query := `SELECT` + bookColumns + `
		FROM books
		WHERE isbn = $1`

	book, err := scanBookRow(r.q.QueryRow(ctx, query, isbn))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to find book by isbn: %w", mapError(err))
	}

	return book, nil
}

// FindOrCreate resolves a book by isbn, inserting when absent. New books
// start with copies_available 0; the reconciliation engine adjusts the
// count as items arrive.
func (r *bookRepository) FindOrCreate(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	existing, err := r.FindByISBN(ctx, book.ISBN)
	if err == nil {
		return existing, nil
	}
	if err != domain.ErrBookNotFound {
		return nil, err
	}

	book.PrepareForStorage()
	book.CopiesAvailable = 0

	query := `
		INSERT INTO books (
			book_id, isbn, title, author, edition, courses,
			copies_available, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (isbn) DO NOTHING`

	tag, err := r.q.Exec(ctx, query,
		book.BookID, book.ISBN, book.Title, book.Author, book.Edition,
		book.CoursesString(), book.CopiesAvailable, book.CreatedAt, book.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", mapError(err))
	}

	if tag.RowsAffected() == 0 {
		return r.FindByISBN(ctx, book.ISBN)
	}

	r.logger.DebugContext(ctx, "book created",
		slog.String("book_id", book.BookID.String()),
		slog.String("isbn", book.ISBN))

	return book, nil
}

// IncrementCopies adjusts copies_available by delta in a single atomic
// update. The read-modify-write happens inside the database so concurrent
// adjustments cannot lose increments.
func (r *bookRepository) IncrementCopies(ctx context.Context, bookID uuid.UUID, delta int) (*domain.Book, error) {
	query := `
		UPDATE books
		SET copies_available = copies_available + $2, updated_at = NOW()
		WHERE book_id = $1
		RETURNING` + bookColumns

	book, err := scanBookRow(r.q.QueryRow(ctx, query, bookID, delta))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to adjust copies for book %s: %w", bookID, mapError(err))
	}

	r.logger.DebugContext(ctx, "copies adjusted",
		slog.String("book_id", bookID.String()),
		slog.Int("delta", delta),
		slog.Int("copies_available", book.CopiesAvailable))

	return book, nil
}

// List retrieves books with filtering and pagination
func (r *bookRepository) List(ctx context.Context, params ports.BookListParams) ([]*domain.Book, int64, error) {
	qb := applyBookFilters(squirrel.Select(
		"book_id", "isbn", "title", "author", "edition", "courses",
		"copies_available", "created_at", "updated_at",
	).From("books").
		PlaceholderFormat(squirrel.Dollar), params)

	countQb := applyBookFilters(squirrel.Select("COUNT(*)").From("books").
		PlaceholderFormat(squirrel.Dollar), params)
	countSQL, countArgs, err := countQb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var totalCount int64
	err = r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount)
	if err != nil && err != pgx.ErrNoRows {
		return nil, 0, fmt.Errorf("failed to count books: %w", mapError(err))
	}

	orderBy := "title ASC"
	if params.SortBy != "" {
		direction := "ASC"
		if params.SortOrder == "desc" {
			direction = "DESC"
		}

		switch params.SortBy {
		case "author":
			orderBy = fmt.Sprintf("author %s", direction)
		case "copies":
			orderBy = fmt.Sprintf("copies_available %s", direction)
		case "created":
			orderBy = fmt.Sprintf("created_at %s", direction)
		default:
			orderBy = fmt.Sprintf("title %s", direction)
		}
	}
	qb = qb.OrderBy(orderBy)

	if params.PageSize > 0 {
		qb = qb.Limit(uint64(params.PageSize))
		if params.Page > 1 {
			qb = qb.Offset(uint64((params.Page - 1) * params.PageSize))
		}
	}

	listSQL, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.q.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query books: %w", mapError(err))
	}
	defer rows.Close()

	var books []*domain.Book
	for rows.Next() {
		book, err := scanBookRow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return books, totalCount, nil
}

func applyBookFilters(qb squirrel.SelectBuilder, params ports.BookListParams) squirrel.SelectBuilder {
	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		qb = qb.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"author": pattern},
			squirrel.Eq{"isbn": params.Search},
		})
	}
	if params.Course != "" {
		qb = qb.Where("courses LIKE ?", "%"+params.Course+"%")
	}
	if params.Author != "" {
		qb = qb.Where(squirrel.Eq{"author": params.Author})
	}
	if params.AvailableOnly {
		qb = qb.Where(squirrel.Gt{"copies_available": 0})
	}
	return qb
}

func scanBookRow(row pgx.Row) (*domain.Book, error) {
	book := &domain.Book{}
	var courses sql.NullString

	err := row.Scan(
		&book.BookID, &book.ISBN, &book.Title, &book.Author, &book.Edition,
		&courses, &book.CopiesAvailable, &book.CreatedAt, &book.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	book.SetCoursesString(courses.String)
	return book, nil
}
