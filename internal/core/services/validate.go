// internal/core/services/validate.go
package services

import (
	"strings"

	"github.com/ibubooks/consign-be/internal/core/domain"
	"github.com/ibubooks/consign-be/internal/core/ports"
)

// Required submission fields, in the order they are reported.
var (
	consignorFields = []string{"studentId", "firstName", "lastName", "email", "faculty"}
	bookFields      = []string{"isbn", "title", "author", "edition", "courses", "price"}
)

// ValidateSubmission checks a consignment submission and aggregates every
// problem into a single ValidationError. A field holding its type's zero
// value counts as missing, so a zero price or an empty course list is
// reported the same way as an absent field. Nothing is written when this
// returns an error.
func ValidateSubmission(sub ports.ConsignmentSubmission) error {
	var messages []string

	if missing := missingConsignorFields(sub.ConsignorSubmission); len(missing) > 0 {
		messages = append(messages,
			"Some consignor fields are missing: "+strings.Join(missing, ", "))
	}

	if len(sub.Books) == 0 {
		messages = append(messages, "There are no items in the consignment.")
	} else if missing := missingBookFields(sub.Books); len(missing) > 0 {
		messages = append(messages,
			"Some books are missing these fields: "+strings.Join(missing, ", "))
	}

	if len(messages) > 0 {
		return &domain.ValidationError{Messages: messages}
	}

	return nil
}

func missingConsignorFields(c ports.ConsignorSubmission) []string {
	present := map[string]bool{
		"studentId": c.StudentID != "",
		"firstName": c.FirstName != "",
		"lastName":  c.LastName != "",
		"email":     c.Email != "",
		"faculty":   c.Faculty != "",
	}

	var missing []string
	for _, field := range consignorFields {
		if !present[field] {
			missing = append(missing, field)
		}
	}
	return missing
}

// missingBookFields reports the union of missing fields across all book
// entries, each field named once.
func missingBookFields(books []ports.BookSubmission) []string {
	missing := make(map[string]bool)
	for _, b := range books {
		if b.ISBN == "" {
			missing["isbn"] = true
		}
		if b.Title == "" {
			missing["title"] = true
		}
		if b.Author == "" {
			missing["author"] = true
		}
		if b.Edition == "" {
			missing["edition"] = true
		}
		if len(b.Courses) == 0 {
			missing["courses"] = true
		}
		if b.Price.IsZero() {
			missing["price"] = true
		}
	}

	var result []string
	for _, field := range bookFields {
		if missing[field] {
			result = append(result, field)
		}
	}
	return result
}
