package benchmarks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ibubooks/consign-be/internal/adapters/db"
	"github.com/ibubooks/consign-be/internal/core/domain"
	"github.com/ibubooks/consign-be/internal/core/ports"
	"github.com/ibubooks/consign-be/internal/core/services"
	"github.com/ibubooks/consign-be/test/helpers"
)

func BenchmarkValidateSubmission(b *testing.B) {
	valid := createSubmission(1, 5)
	invalid := createInvalidSubmission()

	b.Run("Valid", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = services.ValidateSubmission(valid)
		}
	})

	b.Run("Invalid", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = services.ValidateSubmission(invalid)
		}
	})
}

func BenchmarkIntakeOperations(b *testing.B) {
	// Setup
	testDB := helpers.SetupTestDB(&testing.T{})
	defer testDB.Database.Close()

	logger := helpers.TestLogger()
	consignorRepo := db.NewConsignorRepository(testDB.Database, logger)
	bookRepo := db.NewBookRepository(testDB.Database, logger)
	itemRepo := db.NewConsignmentItemRepository(testDB.Database, logger)

	cfg := helpers.LoadTestConfig()
	intake := services.NewIntakeService(
		consignorRepo, bookRepo, itemRepo, testDB.Database,
		cfg.Intake.MaxRetries, cfg.Intake.StoreTimeout, logger)

	ctx := context.Background()

	b.Run("SubmitConsignment", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = intake.SubmitConsignment(ctx, createSubmission(i, 3))
		}
	})

	b.Run("FindBookByISBN", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = bookRepo.FindByISBN(ctx, benchTitles[i%len(benchTitles)].isbn)
		}
	})

	b.Run("ListBooks", func(b *testing.B) {
		params := ports.BookListParams{
			Page:     1,
			PageSize: 50,
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _, _ = bookRepo.List(ctx, params)
		}
	})

	b.Run("SearchBooks", func(b *testing.B) {
		params := ports.BookListParams{
			Search:   "algorithms",
			Page:     1,
			PageSize: 50,
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _, _ = bookRepo.List(ctx, params)
		}
	})
}

// Memory allocation benchmarks
func BenchmarkMemoryAllocation(b *testing.B) {
	b.Run("ConsignmentItem", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = &domain.ConsignmentItem{
				ItemID:       uuid.New(),
				ConsignorID:  uuid.New(),
				BookID:       uuid.New(),
				Price:        decimal.NewFromFloat(45.99),
				CurrentState: domain.StateAvailable,
			}
		}
	})

	b.Run("BookListResult", func(b *testing.B) {
		books := make([]*domain.Book, 100)
		for i := range books {
			books[i] = helpers.CreateTestBook()
		}

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = &ports.BookListResult{
				Books:      books,
				Page:       1,
				PageSize:   50,
				TotalCount: 100,
				TotalPages: 2,
			}
		}
	})
}
