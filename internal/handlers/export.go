// internal/handlers/export.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/tealeg/xlsx/v3"

	redis_a "github.com/ibubooks/consign-be/internal/adapters/redis_adapter"
	"github.com/ibubooks/consign-be/internal/core/ports"
)

// ExportParams defines parameters for export operations
type ExportParams struct {
	AvailableOnly bool       `json:"available_only"`
	DateFrom      *time.Time `json:"date_from"`
	DateTo        *time.Time `json:"date_to"`
}

// CatalogExportRow is one book of the catalog export, with per-state item
// counts alongside the derived availability.
type CatalogExportRow struct {
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

// JSONExportResponse represents the JSON export response structure
type JSONExportResponse struct {
	Catalog  []CatalogExportRow `json:"catalog"`
	Metadata ExportMetadata     `json:"metadata"`
}

// ExportMetadata contains metadata about the export
type ExportMetadata struct {
	ExportDate    time.Time `json:"export_date"`
	TotalBooks    int       `json:"total_books"`
	AvailableOnly bool      `json:"available_only"`
}

// ExportHandler handles export operations
type ExportHandler struct {
	db     ports.Database
	cache  ports.CacheRepository
	logger *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(db ports.Database, cache ports.CacheRepository, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		db:     db,
		cache:  cache,
		logger: logger.With(slog.String("handler", "export")),
	}
}

// ExportExcel handles GET /api/v1/export/excel
func (h *ExportHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params := h.parseExportParams(r)

	data, err := h.getCatalogData(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to retrieve catalog data", slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve data")
		return
	}

	excelData, err := h.generateExcelFile(data)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate Excel file", slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to generate Excel file")
		return
	}

	filename := fmt.Sprintf("catalog_export_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(excelData)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if _, err := w.Write(excelData); err != nil {
		h.logger.ErrorContext(ctx, "failed to write Excel response", slog.String("error", err.Error()))
		return
	}

	h.logger.InfoContext(ctx, "excel export completed",
		slog.Int("total_rows", len(data)),
		slog.String("filename", filename))
}

// ExportJSON handles GET /api/v1/export/json
func (h *ExportHandler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params := h.parseExportParams(r)

	cacheKey := redis_a.BuildKey(redis_a.PrefixExport, "json", h.getCacheKeyFromParams(params))
	var cachedData []byte
	if err := h.cache.Get(ctx, cacheKey, &cachedData); err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "HIT")
		w.Header().Set("Content-Length", strconv.Itoa(len(cachedData)))

		if _, err := w.Write(cachedData); err != nil {
			h.logger.ErrorContext(ctx, "failed to write cached JSON response", slog.String("error", err.Error()))
		}
		return
	}

	data, err := h.getCatalogData(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to retrieve catalog data", slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve data")
		return
	}

	response := JSONExportResponse{
		Catalog: data,
		Metadata: ExportMetadata{
			ExportDate:    time.Now(),
			TotalBooks:    len(data),
			AvailableOnly: params.AvailableOnly,
		},
	}

	responseData, err := json.Marshal(response)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to marshal JSON response", slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to generate JSON")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "MISS")
	w.Header().Set("Content-Length", strconv.Itoa(len(responseData)))

	if _, err := w.Write(responseData); err != nil {
		h.logger.ErrorContext(ctx, "failed to write JSON response", slog.String("error", err.Error()))
		return
	}

	go func() {
		cacheCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := h.cache.SetWithTTL(cacheCtx, cacheKey, responseData, 5*time.Minute); err != nil {
			h.logger.WarnContext(cacheCtx, "failed to cache JSON response", slog.String("error", err.Error()))
		}
	}()

	h.logger.InfoContext(ctx, "json export completed",
		slog.Int("total_rows", len(data)))
}

// Helper methods

func (h *ExportHandler) parseExportParams(r *http.Request) *ExportParams {
	params := &ExportParams{}

	params.AvailableOnly = r.URL.Query().Get("available") == "true"

	if from := r.URL.Query().Get("date_from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			params.DateFrom = &t
		}
	}

	if to := r.URL.Query().Get("date_to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			params.DateTo = &t
		}
	}

	return params
}

// getCatalogData retrieves the export rows, joining per-state item counts
// onto each book.
func (h *ExportHandler) getCatalogData(ctx context.Context, params *ExportParams) ([]CatalogExportRow, error) {
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
		WHERE 1=1`

	args := []interface{}{}
	argCount := 1

	if params.AvailableOnly {
		query += " AND b.copies_available > 0"
	}
	if params.DateFrom != nil {
		query += fmt.Sprintf(" AND b.created_at >= $%d", argCount)
		args = append(args, *params.DateFrom)
		argCount++
	}
	if params.DateTo != nil {
		query += fmt.Sprintf(" AND b.created_at <= $%d", argCount)
		args = append(args, *params.DateTo)
		argCount++
	}

	query += `
		GROUP BY b.book_id
		ORDER BY b.title ASC`

	rows, err := h.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog data: %w", err)
	}
	defer rows.Close()

	var data []CatalogExportRow
	for rows.Next() {
		var row CatalogExportRow
		err := rows.Scan(
			&row.ISBN, &row.Title, &row.Author, &row.Edition, &row.Courses,
			&row.CopiesAvailable, &row.ItemsTotal, &row.ItemsSold,
			&row.ItemsComplete, &row.CreatedAt, &row.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}
		data = append(data, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating catalog rows: %w", err)
	}

	return data, nil
}

var exportHeaders = []string{
	"ISBN", "Title", "Author", "Edition", "Courses",
	"Copies Available", "Items Total", "Items Sold", "Items Complete",
	"Created At", "Updated At",
}

// generateExcelFile creates an Excel file in memory from the data
func (h *ExportHandler) generateExcelFile(data []CatalogExportRow) ([]byte, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Catalog")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, header := range exportHeaders {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	for _, row := range data {
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

	for i := 0; i < len(exportHeaders); i++ {
		sheet.SetColWidth(i, i, 15)
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write Excel file to buffer: %w", err)
	}

	return buffer.Bytes(), nil
}

func (h *ExportHandler) getCacheKeyFromParams(params *ExportParams) string {
	key := fmt.Sprintf("avail_%t", params.AvailableOnly)
	if params.DateFrom != nil {
		key += fmt.Sprintf("_from_%s", params.DateFrom.Format("20060102"))
	}
	if params.DateTo != nil {
		key += fmt.Sprintf("_to_%s", params.DateTo.Format("20060102"))
	}
	return key
}

func (h *ExportHandler) respondError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
