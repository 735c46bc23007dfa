package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/blackjack-go/internal/api/apierr"
	"github.com/mcoot/blackjack-go/internal/api/response"
	"github.com/mcoot/blackjack-go/internal/services/registry"
	"github.com/mcoot/blackjack-go/internal/storage"
	"github.com/mcoot/blackjack-go/internal/web/sse"
)

// HealthHandler reports whether the server and its storage are usable
type HealthHandler struct {
	storage    storage.Storage
	registry   *registry.Registry
	hubManager *sse.HubManager
	logger     *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store storage.Storage, reg *registry.Registry, hubManager *sse.HubManager, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		storage:    store,
		registry:   reg,
		hubManager: hubManager,
		logger:     logger,
	}
}

// Check handles GET /api/v1/health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.storage.Ping(r.Context()); err != nil {
		h.logger.Warn("health check failed", slog.String("error", err.Error()))
		WriteError(w, apierr.NewUnavailableError("storage unavailable"))
		return
	}

	response.JSON(w, http.StatusOK, response.Health{
		Status:    "ok",
		LiveGames: h.registry.Count(),
		Watched:   h.hubManager.HubCount(),
	})
}
