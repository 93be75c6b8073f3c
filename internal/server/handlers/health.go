package handlers

import (
	"log/slog"
	"net/http"

	"github.com/vulnlab/accesslab/pkg/api"
)

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	logger  *slog.Logger
	version string
}

// NewHealthHandler создает новый handler для health check
func NewHealthHandler(logger *slog.Logger, version string) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		version: version,
	}
}

// Health обрабатывает GET /api/v1/health.
// Единственный маршрут без требования токена.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, api.HealthResponse{
		Status:  "ok",
		Version: h.version,
	}, http.StatusOK)
}
