// internal/core/services/validate_test.go
package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibubooks/consign-be/internal/core/domain"
	"github.com/ibubooks/consign-be/internal/core/ports"
	"github.com/ibubooks/consign-be/internal/core/services"
)

func validSubmission() ports.ConsignmentSubmission {
	return ports.ConsignmentSubmission{
		ConsignorSubmission: ports.ConsignorSubmission{
			StudentID: "s1234567",
			FirstName: "Maya",
			LastName:  "Osei",
			Email:     "maya.osei@university.edu",
			Faculty:   "Engineering",
		},
		Books: []ports.BookSubmission{
			{
				ISBN:    "9780131103627",
				Title:   "The C Programming Language",
				Author:  "Kernighan & Ritchie",
				Edition: "2nd",
				Courses: []string{"CS101"},
				Price:   decimal.NewFromFloat(25.50),
			},
		},
	}
}

func TestValidateSubmission(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(*ports.ConsignmentSubmission)
		wantMessages []string
	}{
		{
			name:   "valid_submission_passes",
			mutate: func(s *ports.ConsignmentSubmission) {},
		},
		{
			name: "missing_consignor_fields",
			mutate: func(s *ports.ConsignmentSubmission) {
				s.StudentID = ""
				s.Email = ""
			},
			wantMessages: []string{"Some consignor fields are missing: studentId, email"},
		},
		{
			name: "no_books",
			mutate: func(s *ports.ConsignmentSubmission) {
				s.Books = nil
			},
			wantMessages: []string{"There are no items in the consignment."},
		},
		{
			name: "missing_book_fields",
			mutate: func(s *ports.ConsignmentSubmission) {
				s.Books[0].ISBN = ""
				s.Books[0].Edition = ""
			},
			wantMessages: []string{"Some books are missing these fields: isbn, edition"},
		},
		{
			name: "zero_price_counts_as_missing",
			mutate: func(s *ports.ConsignmentSubmission) {
				s.Books[0].Price = decimal.Zero
			},
			wantMessages: []string{"Some books are missing these fields: price"},
		},
		{
			name: "empty_course_list_counts_as_missing",
			mutate: func(s *ports.ConsignmentSubmission) {
				s.Books[0].Courses = []string{}
			},
			wantMessages: []string{"Some books are missing these fields: courses"},
		},
		{
			name: "problems_are_aggregated",
			mutate: func(s *ports.ConsignmentSubmission) {
				s.Faculty = ""
				s.Books[0].Title = ""
			},
			wantMessages: []string{
				"Some consignor fields are missing: faculty",
				"Some books are missing these fields: title",
			},
		},
		{
			name: "missing_fields_reported_once_across_books",
			mutate: func(s *ports.ConsignmentSubmission) {
				second := s.Books[0]
				second.ISBN = ""
				second.Author = ""
				s.Books[0].Author = ""
				s.Books = append(s.Books, second)
			},
			wantMessages: []string{"Some books are missing these fields: isbn, author"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.mutate(&sub)

			err := services.ValidateSubmission(sub)
			if len(tt.wantMessages) == 0 {
				require.NoError(t, err)
				return
			}

			ve, ok := domain.IsValidation(err)
			require.True(t, ok, "expected ValidationError, got %v", err)
			assert.Equal(t, tt.wantMessages, ve.Messages)
		})
	}
}

func TestValidateSubmission_EmptySubmission(t *testing.T) {
	err := services.ValidateSubmission(ports.ConsignmentSubmission{})

	ve, ok := domain.IsValidation(err)
	require.True(t, ok)
	assert.Len(t, ve.Messages, 2)
	assert.Contains(t, ve.Error(), "studentId, firstName, lastName, email, faculty")
	assert.Contains(t, ve.Error(), "There are no items in the consignment.")
}
