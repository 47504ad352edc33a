// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Use errors.Is() to check these.
var (
	// ErrConcurrentUpdate indicates an inventory update lost the race after
	// bounded retries; the caller should retry the whole operation.
	ErrConcurrentUpdate = errors.New("concurrent inventory update")

	// ErrDuplicateKey indicates a unique business key (student id, isbn)
	// collided during creation; the caller should retry resolution.
	ErrDuplicateKey = errors.New("duplicate business key")

	// ErrStoreTimeout indicates a store operation exceeded its deadline.
	ErrStoreTimeout = errors.New("store operation timed out")

	// ErrConsignorNotFound indicates the requested consignor does not exist.
	ErrConsignorNotFound = errors.New("consignor not found")

	// ErrBookNotFound indicates the requested book does not exist.
	ErrBookNotFound = errors.New("book not found")

	// ErrItemNotFound indicates the requested consignment item does not exist.
	ErrItemNotFound = errors.New("consignment item not found")
)

// InvalidStateError reports a consignment state outside the enumerated set.
// It is raised before any mutation is attempted.
type InvalidStateError struct {
	State string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid consignment state: %q", e.State)
}

// InvalidItemError reports a structurally invalid consignment item.
type InvalidItemError struct {
	Reason string
}

func (e *InvalidItemError) Error() string {
	return "invalid consignment item: " + e.Reason
}

// ValidationError aggregates every problem found in a submission. The
// messages are user-correctable and returned wholesale, never one at a
// time; no writes are performed when validation fails.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "submission validation failed: " + strings.Join(e.Messages, "; ")
}

// IsValidation reports whether err is a ValidationError and returns it.
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// IsInvalidState reports whether err is an InvalidStateError.
func IsInvalidState(err error) bool {
	var se *InvalidStateError
	return errors.As(err, &se)
}
