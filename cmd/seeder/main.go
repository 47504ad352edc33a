package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tealeg/xlsx/v3"
)

// seedBook is one title to load into the catalog
type seedBook struct {
	ISBN    string
	Title   string
	Author  string
	Edition string
	Courses string
}

// seedConsignor is one student selling books
type seedConsignor struct {
	StudentID string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Faculty   string
}

var itemStates = []string{"available", "available", "available", "not_in_store", "sold", "consignment_complete"}

var faculties = []string{"Engineering", "Science", "Arts", "Commerce", "Medicine", "Law"}

var firstNames = []string{"Maya", "Kwame", "Lin", "Amara", "Diego", "Fatima", "Noah", "Priya", "Tomás", "Zainab"}

var lastNames = []string{"Osei", "Chen", "Mensah", "García", "Okafor", "Novak", "Haddad", "Singh", "Mbeki", "Kowalski"}

// defaultCatalog seeds a usable catalog when no Excel file is provided
var defaultCatalog = []seedBook{
	{"9780131103627", "The C Programming Language", "Kernighan & Ritchie", "2nd", "CSC201,CSC207"},
	{"9780262033848", "Introduction to Algorithms", "Cormen et al.", "3rd", "CSC263,CSC373"},
	{"9780134685991", "Effective Java", "Joshua Bloch", "3rd", "CSC207"},
	{"9781492078005", "Designing Data-Intensive Applications", "Martin Kleppmann", "1st", "CSC343,CSC443"},
	{"9780321573513", "Algorithms", "Robert Sedgewick", "4th", "CSC263"},
	{"9780073383095", "Vector Mechanics for Engineers", "Beer & Johnston", "11th", "MIE100"},
	{"9781305271760", "Calculus: Early Transcendentals", "James Stewart", "8th", "MAT135,MAT136"},
	{"9780321982384", "Campbell Biology", "Urry et al.", "11th", "BIO120"},
	{"9781259696527", "Organic Chemistry", "Carey & Giuliano", "10th", "CHM247"},
	{"9780134093413", "Principles of Economics", "Case & Fair", "12th", "ECO101,ECO102"},
}

func main() {
	// Parse flags
	var (
		catalogFile = flag.String("catalog", "", "Optional Excel file with the book catalog")
		consignors  = flag.Int("consignors", 20, "Number of consignors to generate")
		itemsPer    = flag.Int("items", 4, "Maximum consignment items per consignor")
		seed        = flag.Int64("seed", 42, "Random seed for reproducible data")
		logLevel    = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun      = flag.Bool("dry-run", false, "Preview changes without modifying database")
	)
	flag.Parse()

	// Setup logging
	var slogLevel slog.Level
	switch *logLevel {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: slogLevel,
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, opts))
	slog.SetDefault(logger)

	// Database connection
	dbURL := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		getEnv("DB_USER", "consign"),
		getEnv("DB_PASSWORD", "consign_dev_2025"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "consign_inventory"),
		getEnv("DB_SSL_MODE", "disable"),
	)

	ctx := context.Background()

	var db *pgxpool.Pool
	var err error

	if !*dryRun {
		db, err = pgxpool.New(ctx, dbURL)
		if err != nil {
			logger.Error("Failed to connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer db.Close()
	}

	rng := rand.New(rand.NewSource(*seed))

	// Load the catalog
	catalog := defaultCatalog
	if *catalogFile != "" {
		loaded, err := loadCatalogFromExcel(*catalogFile)
		if err != nil {
			logger.Error("Failed to load catalog file", slog.String("error", err.Error()))
			os.Exit(1)
		}
		catalog = loaded
		logger.Info("catalog loaded from Excel",
			slog.String("file", *catalogFile),
			slog.Int("books", len(catalog)))
	}

	people := generateConsignors(rng, *consignors)

	if *dryRun {
		fmt.Printf("[DRY RUN] Would seed %d books, %d consignors, up to %d items each\n",
			len(catalog), len(people), *itemsPer)
		return
	}

	totalItems := 0
	stateCounts := map[string]int{}

	err = pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		bookIDs := make([]uuid.UUID, len(catalog))
		for i, b := range catalog {
			id, err := insertBook(ctx, tx, b)
			if err != nil {
				return fmt.Errorf("failed to insert book %s: %w", b.ISBN, err)
			}
			bookIDs[i] = id
		}

		// Consignor upserts go out as a single batch round trip
		batch := &pgx.Batch{}
		for _, c := range people {
			batch.Queue(`
				INSERT INTO consignors (consignor_id, student_id, first_name, last_name, email, phone_number, faculty, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
				ON CONFLICT (student_id) DO UPDATE SET updated_at = NOW()
				RETURNING consignor_id`,
				uuid.New(), c.StudentID, c.FirstName, c.LastName, c.Email, c.Phone, c.Faculty)
		}

		consignorIDs := make([]uuid.UUID, len(people))
		br := tx.SendBatch(ctx, batch)
		for i := range people {
			if err := br.QueryRow().Scan(&consignorIDs[i]); err != nil {
				br.Close()
				return fmt.Errorf("failed to insert consignor %s: %w", people[i].StudentID, err)
			}
		}
		if err := br.Close(); err != nil {
			return fmt.Errorf("failed to close consignor batch: %w", err)
		}

		// Items are generated in memory and bulk loaded with COPY
		now := time.Now()
		var itemRows [][]interface{}
		for _, consignorID := range consignorIDs {
			n := 1 + rng.Intn(*itemsPer)
			for j := 0; j < n; j++ {
				bookIdx := rng.Intn(len(bookIDs))
				state := itemStates[rng.Intn(len(itemStates))]
				// Plain float keeps the COPY rows binary-encodable
				price := float64(10+rng.Intn(90)) + 0.99

				itemRows = append(itemRows, []interface{}{
					uuid.New(), consignorID, bookIDs[bookIdx], price, state, now, now,
				})
				stateCounts[state]++
			}
		}

		copied, err := tx.CopyFrom(ctx,
			pgx.Identifier{"consignment_items"},
			[]string{"item_id", "consignor_id", "book_id", "price", "current_state", "created_at", "updated_at"},
			pgx.CopyFromRows(itemRows),
		)
		if err != nil {
			return fmt.Errorf("failed to bulk load items: %w", err)
		}
		totalItems = int(copied)

		// Derive copies_available from the items just written
		_, err = tx.Exec(ctx, `
			UPDATE books b SET copies_available = (
				SELECT COUNT(*) FROM consignment_items i
				WHERE i.book_id = b.book_id AND i.current_state = 'available'
			)`)
		return err
	})
	if err != nil {
		logger.Error("Seed operation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Summary
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("📊 SEEDING OPERATION SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Books Seeded: %d\n", len(catalog))
	fmt.Printf("Consignors Seeded: %d\n", len(people))
	fmt.Printf("Consignment Items Seeded: %d\n", totalItems)
	for state, count := range stateCounts {
		fmt.Printf("  - %s: %d\n", state, count)
	}

	logger.Info("Seed operation completed",
		slog.Int("books", len(catalog)),
		slog.Int("consignors", len(people)),
		slog.Int("items", totalItems))
}

func generateConsignors(rng *rand.Rand, count int) []seedConsignor {
	out := make([]seedConsignor, 0, count)
	for i := 0; i < count; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		studentID := fmt.Sprintf("s%07d", 1000000+i)

		out = append(out, seedConsignor{
			StudentID: studentID,
			FirstName: first,
			LastName:  last,
			Email:     fmt.Sprintf("%s.%s.%d@mail.university.edu", strings.ToLower(first), strings.ToLower(last), i),
			Phone:     fmt.Sprintf("416-555-%04d", rng.Intn(10000)),
			Faculty:   faculties[rng.Intn(len(faculties))],
		})
	}
	return out
}

// loadCatalogFromExcel reads a catalog sheet with columns
// ISBN, Title, Author, Edition, Courses. The first row is a header.
func loadCatalogFromExcel(path string) ([]seedBook, error) {
	file, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}

	if len(file.Sheets) == 0 {
		return nil, fmt.Errorf("no sheets in %s", path)
	}

	sheet := file.Sheets[0]
	var books []seedBook

	err = sheet.ForEachRow(func(row *xlsx.Row) error {
		var cells []string
		row.ForEachCell(func(cell *xlsx.Cell) error {
			cells = append(cells, strings.TrimSpace(cell.Value))
			return nil
		})

		if len(cells) < 3 || strings.EqualFold(cells[0], "isbn") {
			return nil
		}

		book := seedBook{ISBN: cells[0], Title: cells[1], Author: cells[2]}
		if len(cells) > 3 {
			book.Edition = cells[3]
		}
		if len(cells) > 4 {
			book.Courses = cells[4]
		}
		books = append(books, book)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog rows: %w", err)
	}

	return books, nil
}

func insertBook(ctx context.Context, tx pgx.Tx, b seedBook) (uuid.UUID, error) {
	id := uuid.New()
	var existing uuid.UUID

	err := tx.QueryRow(ctx, `
		INSERT INTO books (book_id, isbn, title, author, edition, courses, copies_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, NOW(), NOW())
		ON CONFLICT (isbn) DO UPDATE SET updated_at = NOW()
		RETURNING book_id`,
		id, b.ISBN, b.Title, b.Author, b.Edition, b.Courses,
	).Scan(&existing)
	if err != nil {
		return uuid.Nil, err
	}

	return existing, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
