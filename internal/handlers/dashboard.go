package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	redis_a "github.com/ibubooks/consign-be/internal/adapters/redis_adapter"
	"github.com/ibubooks/consign-be/internal/core/ports"
)

// DashboardHandler handles dashboard operations
type DashboardHandler struct {
	inventory ports.InventoryService
	cache     ports.CacheRepository
	logger    *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(inventory ports.InventoryService, cache ports.CacheRepository, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		inventory: inventory,
		cache:     cache,
		logger:    logger.With(slog.String("handler", "dashboard")),
	}
}

// GetDashboard handles GET /api/v1/dashboard
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cacheKey := redis_a.BuildKey(redis_a.PrefixDashboard, "main")
	var dashboard ports.DashboardData

	err := h.cache.GetOrSet(ctx, cacheKey, &dashboard, func() (interface{}, error) {
		return h.inventory.Dashboard(ctx)
	}, time.Minute)

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load dashboard",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	h.respondJSON(w, http.StatusOK, dashboard)
}

// Helper methods

func (h *DashboardHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *DashboardHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
