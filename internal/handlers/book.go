// internal/handlers/book.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ibubooks/consign-be/internal/core/domain"
	"github.com/ibubooks/consign-be/internal/core/ports"
)

// BookHandler handles book catalog HTTP requests
type BookHandler struct {
	inventory ports.InventoryService
	logger    *slog.Logger
}

// NewBookHandler creates a new book handler
func NewBookHandler(inventory ports.InventoryService, logger *slog.Logger) *BookHandler {
	return &BookHandler{
		inventory: inventory,
		logger:    logger.With(slog.String("handler", "book")),
	}
}

// GetBook handles GET /api/v1/books/{isbn}
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	isbn := r.PathValue("isbn")

	if isbn == "" {
		h.respondError(w, http.StatusBadRequest, "ISBN is required")
		return
	}

	book, err := h.inventory.GetBook(ctx, isbn)
	if err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			h.respondError(w, http.StatusNotFound, "Book not found")
			return
		}

		h.logger.ErrorContext(ctx, "failed to get book",
			slog.String("isbn", isbn),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve book")
		return
	}

	h.respondJSON(w, http.StatusOK, book)
}

// ListBooks handles GET /api/v1/books
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params := h.parseListParams(r)

	result, err := h.inventory.ListBooks(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list books",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to list books")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// parseListParams parses query parameters for listing books
func (h *BookHandler) parseListParams(r *http.Request) ports.BookListParams {
	params := ports.BookListParams{
		Page:      1,
		PageSize:  50,
		SortBy:    "title",
		SortOrder: "asc",
	}

	if page := r.URL.Query().Get("page"); page != "" {
		if p, err := strconv.Atoi(page); err == nil && p > 0 {
			params.Page = p
		}
	}

	if limit := r.URL.Query().Get("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil && l > 0 {
			if l > 100 {
				params.PageSize = 100
			} else {
				params.PageSize = l
			}
		}
	}

	params.Search = r.URL.Query().Get("search")
	params.Course = r.URL.Query().Get("course")
	params.Author = r.URL.Query().Get("author")
	params.AvailableOnly = r.URL.Query().Get("available") == "true"

	if sortBy := r.URL.Query().Get("sort"); sortBy != "" {
		params.SortBy = sortBy
	}

	if order := r.URL.Query().Get("order"); order == "asc" || order == "desc" {
		params.SortOrder = order
	}

	return params
}

func (h *BookHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *BookHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
