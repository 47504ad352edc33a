// internal/core/services/intake.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ibubooks/consign-be/internal/core/domain"
	"github.com/ibubooks/consign-be/internal/core/ports"
)

// IntakeService handles consignment submissions at the counter. The entire
// workflow runs inside one transaction: the consignor, the books, the items
// and the availability adjustments all commit together or not at all, so a
// retried submission after a failure cannot leave partial state behind.
type IntakeService struct {
	consignors   ports.ConsignorRepository
	books        ports.BookRepository
	items        ports.ConsignmentItemRepository
	db           ports.Database
	logger       *slog.Logger
	maxRetries   int
	storeTimeout time.Duration
}

// Statically assert that *IntakeService implements the IntakeService interface.
var _ ports.IntakeService = (*IntakeService)(nil)

// NewIntakeService creates a new intake service
func NewIntakeService(
	consignors ports.ConsignorRepository,
	books ports.BookRepository,
	items ports.ConsignmentItemRepository,
	db ports.Database,
	maxRetries int,
	storeTimeout time.Duration,
	logger *slog.Logger,
) *IntakeService {
	return &IntakeService{
		consignors:   consignors,
		books:        books,
		items:        items,
		db:           db,
		maxRetries:   maxRetries,
		storeTimeout: storeTimeout,
		logger:       logger.With(slog.String("service", "intake")),
	}
}

// SubmitConsignment validates and persists a consignment submission. Each
// book entry becomes one consignment item in the available state, and the
// owning book's copies_available is incremented by that item's contribution
// within the same transaction.
func (s *IntakeService) SubmitConsignment(ctx context.Context, submission ports.ConsignmentSubmission) (*ports.ConsignmentConfirmation, error) {
	if err := ValidateSubmission(submission); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	var confirmation *ports.ConsignmentConfirmation
	err := runTxWithRetry(ctx, s.db, s.logger, s.maxRetries, func(tx pgx.Tx) error {
		result, err := s.submitInTx(ctx, tx, submission)
		if err != nil {
			return err
		}
		confirmation = result
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "consignment accepted",
		slog.String("consignor_id", confirmation.ConsignorID.String()),
		slog.String("student_id", confirmation.StudentID),
		slog.Int("items", len(confirmation.Items)))

	return confirmation, nil
}

func (s *IntakeService) submitInTx(ctx context.Context, tx pgx.Tx, submission ports.ConsignmentSubmission) (*ports.ConsignmentConfirmation, error) {
	consignors := s.consignors.WithTx(tx)
	books := s.books.WithTx(tx)
	items := s.items.WithTx(tx)

	consignor, err := consignors.FindOrCreate(ctx, &domain.Consignor{
		StudentID:   submission.StudentID,
		FirstName:   submission.FirstName,
		LastName:    submission.LastName,
		Email:       submission.Email,
		PhoneNumber: submission.PhoneNumber,
		Faculty:     submission.Faculty,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve consignor: %w", err)
	}

	confirmation := &ports.ConsignmentConfirmation{
		ConsignorID: consignor.ConsignorID,
		StudentID:   consignor.StudentID,
		Items:       make([]ports.ConfirmedItem, 0, len(submission.Books)),
	}

	for _, entry := range submission.Books {
		book, err := books.FindOrCreate(ctx, &domain.Book{
			ISBN:    entry.ISBN,
			Title:   entry.Title,
			Author:  entry.Author,
			Edition: entry.Edition,
			Courses: entry.Courses,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to resolve book %s: %w", entry.ISBN, err)
		}

		item := &domain.ConsignmentItem{
			ConsignorID: consignor.ConsignorID,
			BookID:      book.BookID,
			Price:       entry.Price,
		}
		item.PrepareForStorage()

		if err := items.Save(ctx, item); err != nil {
			return nil, fmt.Errorf("failed to save item for book %s: %w", entry.ISBN, err)
		}

		contribution, err := domain.Contribution(item.CurrentState)
		if err != nil {
			return nil, err
		}

		if contribution != 0 {
			book, err = books.IncrementCopies(ctx, book.BookID, contribution)
			if err != nil {
				return nil, fmt.Errorf("failed to reconcile book %s: %w", entry.ISBN, err)
			}
		}

		confirmation.Items = append(confirmation.Items, ports.ConfirmedItem{
			ItemID:          item.ItemID,
			BookID:          book.BookID,
			ISBN:            book.ISBN,
			Title:           book.Title,
			Price:           item.Price,
			State:           item.CurrentState,
			CopiesAvailable: book.CopiesAvailable,
		})
	}

	return confirmation, nil
}
