// internal/workers/export_processor.go
package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/hibiken/asynq"
	"github.com/tealeg/xlsx/v3"

	"github.com/ibubooks/consign-be/internal/adapters/storage"
	"github.com/ibubooks/consign-be/internal/core/ports"
)

// ExportProcessor writes periodic catalog snapshots to object storage so
// staff can pull the full consignment catalog without hitting the API.
type ExportProcessor struct {
	db      ports.Database
	storage storage.StorageClient
	logger  *slog.Logger
}

// NewExportProcessor creates a new export processor
func NewExportProcessor(db ports.Database, storageClient storage.StorageClient, logger *slog.Logger) *ExportProcessor {
	return &ExportProcessor{
		db:      db,
		storage: storageClient,
		logger:  logger.With(slog.String("processor", "export")),
	}
}

// snapshotRow is one book of the snapshot, with per-state item counts
// alongside the derived availability.
type snapshotRow struct {
	ISBN            string    `json:"isbn"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Edition         string    `json:"edition"`
	Courses         string    `json:"courses"`
	CopiesAvailable int       `json:"copies_available"`
	ItemsTotal      int       `json:"items_total"`
	ItemsSold       int       `json:"items_sold"`
	ItemsComplete   int       `json:"items_complete"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ProcessSnapshot handles catalog snapshot tasks
func (p *ExportProcessor) ProcessSnapshot(ctx context.Context, t *asynq.Task) error {
	var payload ExportSnapshotPayload
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to unmarshal payload: %w", err)
		}
	}
	if payload.Format == "" {
		payload.Format = "xlsx"
	}

	p.logger.InfoContext(ctx, "starting catalog snapshot",
		slog.String("format", payload.Format))

	rows, err := p.fetchCatalog(ctx)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to fetch catalog",
			slog.String("error", err.Error()))
		return err
	}

	var data []byte
	var contentType string
	switch payload.Format {
	case "json":
		data, err = json.Marshal(rows)
		contentType = "application/json"
	case "xlsx":
		data, err = p.buildWorkbook(rows)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return fmt.Errorf("unsupported snapshot format: %s", payload.Format)
	}
	if err != nil {
		return fmt.Errorf("failed to build %s snapshot: %w", payload.Format, err)
	}

	key := fmt.Sprintf("snapshots/catalog_%s.%s",
		time.Now().UTC().Format("20060102_150405"), payload.Format)

	location, err := p.storage.Upload(ctx, key, bytes.NewReader(data), contentType)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to upload snapshot",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return err
	}

	p.logger.InfoContext(ctx, "catalog snapshot uploaded",
		slog.String("location", location),
		slog.Int("books", len(rows)),
		slog.Int("bytes", len(data)))

	if err := p.pruneSnapshots(ctx); err != nil {
		// The fresh snapshot is already stored, retention can catch up next run
		p.logger.WarnContext(ctx, "failed to prune old snapshots",
			slog.String("error", err.Error()))
	}

	return nil
}

// snapshotRetention is how many historical snapshots are kept per prefix.
const snapshotRetention = 30

// pruneSnapshots deletes the oldest snapshots beyond the retention window.
// Keys embed a UTC timestamp so lexicographic order is chronological.
func (p *ExportProcessor) pruneSnapshots(ctx context.Context) error {
	keys, err := p.storage.List(ctx, "snapshots/")
	if err != nil {
		return err
	}
	if len(keys) <= snapshotRetention {
		return nil
	}

	for _, key := range keys[:len(keys)-snapshotRetention] {
		if err := p.storage.Delete(ctx, key); err != nil {
			return err
		}
		p.logger.InfoContext(ctx, "pruned old snapshot", slog.String("key", key))
	}

	return nil
}

func (p *ExportProcessor) fetchCatalog(ctx context.Context) ([]snapshotRow, error) {
	query := `
		SELECT
			b.isbn, b.title, b.author, b.edition, b.courses,
			b.copies_available,
			COUNT(i.item_id) AS items_total,
			COUNT(i.item_id) FILTER (WHERE i.current_state = 'sold') AS items_sold,
			COUNT(i.item_id) FILTER (WHERE i.current_state = 'consignment_complete') AS items_complete,
			b.created_at, b.updated_at
		FROM books b
		LEFT JOIN consignment_items i ON i.book_id = b.book_id
		GROUP BY b.book_id
		ORDER BY b.title ASC`

	dbRows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer dbRows.Close()

	var rows []snapshotRow
	for dbRows.Next() {
		var row snapshotRow
		err := dbRows.Scan(
			&row.ISBN, &row.Title, &row.Author, &row.Edition, &row.Courses,
			&row.CopiesAvailable, &row.ItemsTotal, &row.ItemsSold,
			&row.ItemsComplete, &row.CreatedAt, &row.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}
		rows = append(rows, row)
	}

	if err := dbRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating catalog rows: %w", err)
	}

	return rows, nil
}

var snapshotHeaders = []string{
	"ISBN", "Title", "Author", "Edition", "Courses",
	"Copies Available", "Items Total", "Items Sold", "Items Complete",
	"Created At", "Updated At",
}

func (p *ExportProcessor) buildWorkbook(rows []snapshotRow) ([]byte, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Catalog")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, header := range snapshotHeaders {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
	}

	for _, row := range rows {
		dataRow := sheet.AddRow()
		for _, value := range []string{
			row.ISBN, row.Title, row.Author, row.Edition, row.Courses,
			strconv.Itoa(row.CopiesAvailable), strconv.Itoa(row.ItemsTotal),
			strconv.Itoa(row.ItemsSold), strconv.Itoa(row.ItemsComplete),
			row.CreatedAt.Format("2006-01-02 15:04:05"),
			row.UpdatedAt.Format("2006-01-02 15:04:05"),
		} {
			cell := dataRow.AddCell()
			cell.Value = value
		}
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buffer.Bytes(), nil
}
