//go:build integration
// +build integration

package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/ibubooks/consign-be/internal/adapters/db"
	"github.com/ibubooks/consign-be/internal/core/domain"
	"github.com/ibubooks/consign-be/internal/core/ports"
	"github.com/ibubooks/consign-be/test/helpers"
)

type RepositoriesSuite struct {
	suite.Suite
	testDB     *helpers.TestDB
	consignors ports.ConsignorRepository
	books      ports.BookRepository
	items      ports.ConsignmentItemRepository
	ctx        context.Context
}

func (s *RepositoriesSuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	logger := helpers.TestLogger()
	s.consignors = db.NewConsignorRepository(s.testDB.Database, logger)
	s.books = db.NewBookRepository(s.testDB.Database, logger)
	s.items = db.NewConsignmentItemRepository(s.testDB.Database, logger)
	s.ctx = context.Background()
}

func (s *RepositoriesSuite) SetupTest() {
	helpers.TruncateAllTables(s.T(), s.testDB.PgxPool)
}

func (s *RepositoriesSuite) TestConsignorFindOrCreate() {
	consignor := helpers.CreateTestConsignor(func(c *domain.Consignor) {
		c.ConsignorID = uuid.Nil
	})

	created, err := s.consignors.FindOrCreate(s.ctx, consignor)
	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, created.ConsignorID)

	// A second submission from the same student resolves to the same row
	again := helpers.CreateTestConsignor(func(c *domain.Consignor) {
		c.ConsignorID = uuid.Nil
	})
	found, err := s.consignors.FindOrCreate(s.ctx, again)
	s.Require().NoError(err)
	s.Equal(created.ConsignorID, found.ConsignorID)

	byStudent, err := s.consignors.FindByStudentID(s.ctx, consignor.StudentID)
	s.Require().NoError(err)
	s.Equal(created.ConsignorID, byStudent.ConsignorID)
}

func (s *RepositoriesSuite) TestConsignorNotFound() {
	_, err := s.consignors.FindByStudentID(s.ctx, "s0000000")
	s.ErrorIs(err, domain.ErrConsignorNotFound)
}

func (s *RepositoriesSuite) TestBookFindOrCreateAndIncrement() {
	book := helpers.CreateTestBook(func(b *domain.Book) {
		b.BookID = uuid.Nil
	})

	created, err := s.books.FindOrCreate(s.ctx, book)
	s.Require().NoError(err)
	s.Equal(0, created.CopiesAvailable)

	// New copies arriving
	updated, err := s.books.IncrementCopies(s.ctx, created.BookID, 2)
	s.Require().NoError(err)
	s.Equal(2, updated.CopiesAvailable)

	// A sale
	updated, err = s.books.IncrementCopies(s.ctx, created.BookID, -1)
	s.Require().NoError(err)
	s.Equal(1, updated.CopiesAvailable)

	// Same ISBN resolves to the existing row, count untouched
	dup := helpers.CreateTestBook(func(b *domain.Book) {
		b.BookID = uuid.Nil
	})
	found, err := s.books.FindOrCreate(s.ctx, dup)
	s.Require().NoError(err)
	s.Equal(created.BookID, found.BookID)
	s.Equal(1, found.CopiesAvailable)
}

func (s *RepositoriesSuite) TestBookList() {
	for i := 0; i < 5; i++ {
		book := helpers.CreateTestBook(func(b *domain.Book) {
			b.BookID = uuid.Nil
			b.ISBN = fmt.Sprintf("978013110362%d", i)
			b.Title = fmt.Sprintf("Title %d", i)
		})
		_, err := s.books.FindOrCreate(s.ctx, book)
		s.Require().NoError(err)
	}

	books, total, err := s.books.List(s.ctx, ports.BookListParams{
		Page:      1,
		PageSize:  3,
		SortBy:    "title",
		SortOrder: "asc",
	})
	s.Require().NoError(err)
	s.Equal(int64(5), total)
	s.Len(books, 3)
	s.Equal("Title 0", books[0].Title)
}

func (s *RepositoriesSuite) TestItemLifecycle() {
	consignor := helpers.CreateTestConsignor()
	book := helpers.CreateTestBook()
	helpers.SeedConsignment(s.T(), s.testDB.PgxPool, consignor, book, nil)

	item := helpers.CreateTestItem(consignor.ConsignorID, book.BookID, func(i *domain.ConsignmentItem) {
		i.ItemID = uuid.Nil
		i.Price = decimal.NewFromFloat(30.50)
	})
	item.PrepareForStorage()

	s.Require().NoError(s.items.Save(s.ctx, item))

	fetched, err := s.items.FindByID(s.ctx, item.ItemID)
	s.Require().NoError(err)
	s.Equal(domain.StateAvailable, fetched.CurrentState)
	s.True(fetched.Price.Equal(item.Price))

	s.Require().NoError(s.items.UpdateState(s.ctx, item.ItemID, domain.StateSold))

	fetched, err = s.items.FindByID(s.ctx, item.ItemID)
	s.Require().NoError(err)
	s.Equal(domain.StateSold, fetched.CurrentState)

	counts, err := s.items.CountByState(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), counts[domain.StateSold])

	byConsignor, err := s.items.ListByConsignor(s.ctx, consignor.ConsignorID)
	s.Require().NoError(err)
	s.Len(byConsignor, 1)
}

func (s *RepositoriesSuite) TestItemNotFound() {
	_, err := s.items.FindByID(s.ctx, uuid.New())
	s.ErrorIs(err, domain.ErrItemNotFound)

	err = s.items.UpdateState(s.ctx, uuid.New(), domain.StateSold)
	s.ErrorIs(err, domain.ErrItemNotFound)
}

func TestRepositoriesSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(RepositoriesSuite))
}
