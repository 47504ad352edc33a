// internal/core/ports/services.go
package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ibubooks/consign-be/internal/core/domain"
)

// Note: We define the submission and confirmation DTOs here rather than in
// the services package to avoid circular dependencies.

// ConsignorSubmission is the consignor portion of an intake request. Fields
// carrying zero values are treated as missing during validation.
type ConsignorSubmission struct {
	StudentID   string `json:"studentId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Faculty     string `json:"faculty"`
}

// BookSubmission is one book entry of an intake request.
type BookSubmission struct {
	ISBN    string          `json:"isbn"`
	Title   string          `json:"title"`
	Author  string          `json:"author"`
	Edition string          `json:"edition"`
	Courses []string        `json:"courses"`
	Price   decimal.Decimal `json:"price"`
}

// ConsignmentSubmission is a full intake request. The payload is flat: the
// consignor fields sit at the top level next to the book list. Each book
// entry becomes one consignment item.
type ConsignmentSubmission struct {
	ConsignorSubmission
	Books []BookSubmission `json:"books"`
}

// ConfirmedItem pairs a created consignment item with its resolved book.
type ConfirmedItem struct {
	ItemID          uuid.UUID               `json:"item_id"`
	BookID          uuid.UUID               `json:"book_id"`
	ISBN            string                  `json:"isbn"`
	Title           string                  `json:"title"`
	Price           decimal.Decimal         `json:"price"`
	State           domain.ConsignmentState `json:"state"`
	CopiesAvailable int                     `json:"copies_available"`
}

// ConsignmentConfirmation is the result of a successful intake.
type ConsignmentConfirmation struct {
	ConsignorID uuid.UUID       `json:"consignor_id"`
	StudentID   string          `json:"student_id"`
	Items       []ConfirmedItem `json:"items"`
}

// IntakeService accepts consignment submissions at the counter.
type IntakeService interface {
	// SubmitConsignment validates the submission, resolves the consignor and
	// books, creates one consignment item per book and reconciles the
	// availability counts, all inside a single transaction.
	SubmitConsignment(ctx context.Context, submission ConsignmentSubmission) (*ConsignmentConfirmation, error)
}

// InventoryService maintains the derived availability counts as items move
// through the consignment lifecycle.
type InventoryService interface {
	// ChangeState transitions an item to the given state and adjusts the
	// owning book's copies_available by the contribution delta.
	ChangeState(ctx context.Context, itemID uuid.UUID, next domain.ConsignmentState) (*domain.ConsignmentItem, error)

	GetItem(ctx context.Context, itemID uuid.UUID) (*domain.ConsignmentItem, error)
	GetBook(ctx context.Context, isbn string) (*domain.Book, error)
	ListBooks(ctx context.Context, params BookListParams) (*BookListResult, error)

	// Audit recomputes every book's copies_available from the item states
	// and repairs any drift, returning the isbns it corrected.
	Audit(ctx context.Context) ([]string, error)

	Dashboard(ctx context.Context) (*DashboardData, error)
}

// DashboardData aggregates store-wide inventory figures.
type DashboardData struct {
	TotalBooks      int64                             `json:"total_books"`
	TotalCopies     int64                             `json:"total_copies"`
	ItemsByState    map[domain.ConsignmentState]int64 `json:"items_by_state"`
	TotalConsignors int64                             `json:"total_consignors"`
}
