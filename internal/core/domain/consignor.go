// internal/core/domain/consignor.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Consignor is the student selling books through the store. StudentID is
// the unique business key; a consignor is created once per student id and
// never deleted.
type Consignor struct {
	ConsignorID uuid.UUID `json:"consignor_id"`
	StudentID   string    `json:"student_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Faculty     string    `json:"faculty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PrepareForStorage assigns an id and timestamps ahead of persistence
func (c *Consignor) PrepareForStorage() {
	if c.ConsignorID == uuid.Nil {
		c.ConsignorID = uuid.New()
	}
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
}
