// internal/core/domain/book.go
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Book is a catalog title. ISBN is the unique business key. CopiesAvailable
// is derived from the states of the consignment items referencing the book
// and is owned exclusively by the reconciliation engine; no other component
// writes it.
type Book struct {
	BookID          uuid.UUID `json:"book_id"`
	ISBN            string    `json:"isbn"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Edition         string    `json:"edition"`
	Courses         []string  `json:"courses,omitempty"`
	CopiesAvailable int       `json:"copies_available"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PrepareForStorage assigns an id and timestamps ahead of persistence
func (b *Book) PrepareForStorage() {
	if b.BookID == uuid.Nil {
		b.BookID = uuid.New()
	}
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

// CoursesString renders the course codes as the comma-separated form stored
// in the database.
func (b *Book) CoursesString() string {
	return strings.Join(b.Courses, ",")
}

// SetCoursesString parses the stored comma-separated course codes.
func (b *Book) SetCoursesString(s string) {
	if s == "" {
		b.Courses = nil
		return
	}
	b.Courses = strings.Split(s, ",")
}
