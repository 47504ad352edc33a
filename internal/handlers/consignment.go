// internal/handlers/consignment.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/ibubooks/consign-be/internal/core/domain"
	"github.com/ibubooks/consign-be/internal/core/ports"
)

// ConsignmentHandler handles consignment-related HTTP requests
type ConsignmentHandler struct {
	intake    ports.IntakeService
	inventory ports.InventoryService
	logger    *slog.Logger
}

// NewConsignmentHandler creates a new consignment handler
func NewConsignmentHandler(intake ports.IntakeService, inventory ports.InventoryService, logger *slog.Logger) *ConsignmentHandler {
	return &ConsignmentHandler{
		intake:    intake,
		inventory: inventory,
		logger:    logger.With(slog.String("handler", "consignment")),
	}
}

// SubmitConsignment handles POST /api/v1/consignments
func (h *ConsignmentHandler) SubmitConsignment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var submission ports.ConsignmentSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	confirmation, err := h.intake.SubmitConsignment(ctx, submission)
	if err != nil {
		if ve, ok := domain.IsValidation(err); ok {
			h.respondJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"error":    "Validation failed",
				"messages": ve.Messages,
			})
			return
		}

		h.logger.ErrorContext(ctx, "failed to submit consignment",
			slog.String("student_id", submission.StudentID),
			slog.String("error", err.Error()))
		h.respondDomainError(w, err, "Failed to submit consignment")
		return
	}

	h.respondJSON(w, http.StatusCreated, confirmation)
}

// GetItem handles GET /api/v1/items/{id}
func (h *ConsignmentHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	itemID, err := uuid.Parse(idStr)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	item, err := h.inventory.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			h.respondError(w, http.StatusNotFound, "Consignment item not found")
			return
		}

		h.logger.ErrorContext(ctx, "failed to get consignment item",
			slog.String("item_id", idStr),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve consignment item")
		return
	}

	h.respondJSON(w, http.StatusOK, item)
}

// ChangeStateRequest represents the request body for a state transition
type ChangeStateRequest struct {
	State string `json:"state"`
}

// ChangeItemState handles PATCH /api/v1/items/{id}/state
func (h *ConsignmentHandler) ChangeItemState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idStr := r.PathValue("id")

	itemID, err := uuid.Parse(idStr)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	var req ChangeStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.inventory.ChangeState(ctx, itemID, domain.ConsignmentState(req.State))
	if err != nil {
		if domain.IsInvalidState(err) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrItemNotFound) {
			h.respondError(w, http.StatusNotFound, "Consignment item not found")
			return
		}

		h.logger.ErrorContext(ctx, "failed to change item state",
			slog.String("item_id", idStr),
			slog.String("state", req.State),
			slog.String("error", err.Error()))
		h.respondDomainError(w, err, "Failed to change item state")
		return
	}

	h.logger.InfoContext(ctx, "item state changed",
		slog.String("item_id", idStr),
		slog.String("state", req.State))

	h.respondJSON(w, http.StatusOK, item)
}

// Audit handles POST /api/v1/admin/audit
func (h *ConsignmentHandler) Audit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	corrected, err := h.inventory.Audit(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "inventory audit failed",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Inventory audit failed")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"corrected_isbns": corrected,
		"corrected_count": len(corrected),
	})
}

// respondDomainError maps store-level failures to status codes
func (h *ConsignmentHandler) respondDomainError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrConcurrentUpdate):
		h.respondError(w, http.StatusConflict, "Inventory is being updated concurrently, please retry")
	case errors.Is(err, domain.ErrStoreTimeout):
		h.respondError(w, http.StatusGatewayTimeout, "The store took too long to respond")
	case errors.Is(err, domain.ErrDuplicateKey):
		h.respondError(w, http.StatusConflict, "A conflicting record already exists")
	default:
		h.respondError(w, http.StatusInternalServerError, fallback)
	}
}

func (h *ConsignmentHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *ConsignmentHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
