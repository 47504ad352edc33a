// internal/core/domain/consignment.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConsignmentState represents the lifecycle state of a consignment item
type ConsignmentState string

// The closed set of consignment states. Adding a state requires updating
// the contribution table below and nothing else.
const (
	StateAvailable  ConsignmentState = "available"
	StateNotInStore ConsignmentState = "not_in_store"
	StateSold       ConsignmentState = "sold"
	StateComplete   ConsignmentState = "consignment_complete"
)

// contributions maps each state to the number of available copies a
// consignment item in that state contributes to its book. This table is the
// sole source of truth for how state affects stock.
var contributions = map[ConsignmentState]int{
	StateAvailable:  1,
	StateNotInStore: 0,
	StateSold:       0,
	StateComplete:   0,
}

// Contribution returns the inventory contribution of a state, failing with
// InvalidStateError for anything outside the enumerated set.
func Contribution(state ConsignmentState) (int, error) {
	c, ok := contributions[state]
	if !ok {
		return 0, &InvalidStateError{State: string(state)}
	}
	return c, nil
}

// StateDelta computes the signed adjustment to a book's available-copy
// count when an item moves from prev to next. Both states are validated
// before any arithmetic; the result is always in {-1, 0, +1}.
func StateDelta(prev, next ConsignmentState) (int, error) {
	prevC, err := Contribution(prev)
	if err != nil {
		return 0, err
	}
	nextC, err := Contribution(next)
	if err != nil {
		return 0, err
	}
	return nextC - prevC, nil
}

// ValidState reports whether state is a member of the enumerated set.
func ValidState(state ConsignmentState) bool {
	_, ok := contributions[state]
	return ok
}

// ConsignmentItem represents one consignor's offer of one book at one price.
// The item references exactly one book; packaged multi-book items are not
// supported.
type ConsignmentItem struct {
	ItemID       uuid.UUID        `json:"item_id"`
	ConsignorID  uuid.UUID        `json:"consignor_id"`
	BookID       uuid.UUID        `json:"book_id"`
	Price        decimal.Decimal  `json:"price"`
	CurrentState ConsignmentState `json:"current_state"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// Validate performs domain validation on the consignment item
func (i *ConsignmentItem) Validate() error {
	if i.ConsignorID == uuid.Nil {
		return &InvalidItemError{Reason: "consignor reference is required"}
	}
	if i.BookID == uuid.Nil {
		return &InvalidItemError{Reason: "book reference is required"}
	}
	if i.Price.IsNegative() {
		return &InvalidItemError{Reason: "price cannot be negative"}
	}
	if !ValidState(i.CurrentState) {
		return &InvalidStateError{State: string(i.CurrentState)}
	}
	return nil
}

// PrepareForStorage assigns an id and timestamps ahead of persistence
func (i *ConsignmentItem) PrepareForStorage() {
	if i.ItemID == uuid.Nil {
		i.ItemID = uuid.New()
	}
	now := time.Now()
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	i.UpdatedAt = now
	if i.CurrentState == "" {
		i.CurrentState = StateAvailable
	}
}
