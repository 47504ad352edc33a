// internal/adapters/db/consignor_repository.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/google/uuid"

	"github.com/ibubooks/consign-be/internal/core/domain"
	"github.com/ibubooks/consign-be/internal/core/ports"
)

// querier is satisfied by both *Database and pgx.Tx so repositories can run
// against the pool or inside a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// txQuerier adapts pgx.Tx to the querier interface. pgx.Tx declares its
// variadic arguments as ...any which is identical to ...interface{}.
type txQuerier struct {
	tx pgx.Tx
}

func (t txQuerier) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	return t.tx.Query(ctx, sql, args...)
}

func (t txQuerier) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	return t.tx.QueryRow(ctx, sql, args...)
}

func (t txQuerier) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	return t.tx.Exec(ctx, sql, args...)
}

// consignorRepository implements ports.ConsignorRepository
type consignorRepository struct {
	q      querier
	logger *slog.Logger
}

// NewConsignorRepository creates a new consignor repository
func NewConsignorRepository(db *Database, logger *slog.Logger) ports.ConsignorRepository {
	return &consignorRepository{
		q:      db,
		logger: logger.With(slog.String("repository", "consignor")),
	}
}

// WithTx returns a copy of the repository bound to tx
func (r *consignorRepository) WithTx(tx pgx.Tx) ports.ConsignorRepository {
	return &consignorRepository{
		q:      txQuerier{tx: tx},
		logger: r.logger,
	}
}

const consignorColumns = `
	consignor_id, student_id, first_name, last_name, email,
	phone_number, faculty, created_at, updated_at`

// FindByID retrieves a consignor by its surrogate id
func (r *consignorRepository) FindByID(ctx context.Context, consignorID uuid.UUID) (*domain.Consignor, error) {
	query := `SELECT` + consignorColumns + `
		FROM consignors
		WHERE consignor_id = $1`

	consignor, err := r.scanConsignor(r.q.QueryRow(ctx, query, consignorID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrConsignorNotFound
		}
		return nil, fmt.Errorf("failed to find consignor: %w", mapError(err))
	}

	return consignor, nil
}

// FindByStudentID retrieves a consignor by the student id business key
func (r *consignorRepository) FindByStudentID(ctx context.Context, studentID string) (*domain.Consignor, error) {
	query := `SELECT` + consignorColumns + `
		FROM consignors
		WHERE student_id = $1`

	consignor, err := r.scanConsignor(r.q.QueryRow(ctx, query, studentID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrConsignorNotFound
		}
		return nil, fmt.Errorf("failed to find consignor by student id: %w", mapError(err))
	}

	return consignor, nil
}

// FindOrCreate resolves a consignor by student id, inserting when absent.
// The insert uses ON CONFLICT DO NOTHING so two concurrent submissions for
// the same student converge on the single row the unique index permits.
func (r *consignorRepository) FindOrCreate(ctx context.Context, consignor *domain.Consignor) (*domain.Consignor, error) {
	existing, err := r.FindByStudentID(ctx, consignor.StudentID)
	if err == nil {
		return existing, nil
	}
	if err != domain.ErrConsignorNotFound {
		return nil, err
	}

	consignor.PrepareForStorage()

	query := `
		INSERT INTO consignors (
			consignor_id, student_id, first_name, last_name, email,
			phone_number, faculty, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (student_id) DO NOTHING`

	tag, err := r.q.Exec(ctx, query,
		consignor.ConsignorID, consignor.StudentID, consignor.FirstName,
		consignor.LastName, consignor.Email, nullIfEmpty(consignor.PhoneNumber),
		consignor.Faculty, consignor.CreatedAt, consignor.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create consignor: %w", mapError(err))
	}

	if tag.RowsAffected() == 0 {
		// Lost the race; the winner's row is the canonical one.
		return r.FindByStudentID(ctx, consignor.StudentID)
	}

	r.logger.DebugContext(ctx, "consignor created",
		slog.String("consignor_id", consignor.ConsignorID.String()),
		slog.String("student_id", consignor.StudentID))

	return consignor, nil
}

func (r *consignorRepository) scanConsignor(row pgx.Row) (*domain.Consignor, error) {
	consignor := &domain.Consignor{}
	var phoneNumber sql.NullString

	err := row.Scan(
		&consignor.ConsignorID, &consignor.StudentID, &consignor.FirstName,
		&consignor.LastName, &consignor.Email, &phoneNumber,
		&consignor.Faculty, &consignor.CreatedAt, &consignor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	consignor.PhoneNumber = phoneNumber.String
	return consignor, nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
