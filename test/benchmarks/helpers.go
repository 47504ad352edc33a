// test/benchmarks/helpers.go
package benchmarks

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ibubooks/consign-be/internal/core/ports"
)

var benchTitles = []struct {
	isbn, title, author, edition string
	courses                      []string
}{
	{"9780131103627", "The C Programming Language", "Kernighan & Ritchie", "2nd", []string{"CSC201"}},
	{"9780262033848", "Introduction to Algorithms", "Cormen et al.", "3rd", []string{"CSC263"}},
	{"9780134685991", "Effective Java", "Joshua Bloch", "3rd", []string{"CSC207"}},
	{"9781492078005", "Designing Data-Intensive Applications", "Martin Kleppmann", "1st", []string{"CSC343"}},
	{"9780321573513", "Algorithms", "Robert Sedgewick", "4th", []string{"CSC263"}},
}

// createSubmission builds an intake request with the given number of books
func createSubmission(studentIdx, numBooks int) ports.ConsignmentSubmission {
	books := make([]ports.BookSubmission, 0, numBooks)
	for i := 0; i < numBooks; i++ {
		t := benchTitles[i%len(benchTitles)]
		books = append(books, ports.BookSubmission{
			ISBN:    t.isbn,
			Title:   t.title,
			Author:  t.author,
			Edition: t.edition,
			Courses: t.courses,
			Price:   decimal.NewFromInt(int64(20 + i)),
		})
	}

	return ports.ConsignmentSubmission{
		ConsignorSubmission: ports.ConsignorSubmission{
			StudentID: fmt.Sprintf("s%07d", 1000000+studentIdx),
			FirstName: "Bench",
			LastName:  "Student",
			Email:     fmt.Sprintf("bench%d@mail.university.edu", studentIdx),
			Faculty:   "Engineering",
		},
		Books: books,
	}
}

// createInvalidSubmission builds a request missing consignor and book fields
func createInvalidSubmission() ports.ConsignmentSubmission {
	return ports.ConsignmentSubmission{
		ConsignorSubmission: ports.ConsignorSubmission{
			StudentID: "s1234567",
		},
		Books: []ports.BookSubmission{
			{ISBN: "9780131103627"},
			{Title: "Orphan Title"},
		},
	}
}
