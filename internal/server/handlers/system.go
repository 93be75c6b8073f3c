package handlers

import (
	"log/slog"
	"net/http"

	"github.com/vulnlab/accesslab/internal/server/audit"
	"github.com/vulnlab/accesslab/internal/server/config"
	"github.com/vulnlab/accesslab/internal/server/storage"
	"github.com/vulnlab/accesslab/pkg/api"
)

// SystemHandler отдает конфигурацию системы
type SystemHandler struct {
	logger *slog.Logger
	store  storage.UserStore
	cfg    *config.Config
	audit  *audit.Recorder
}

// NewSystemHandler создает новый handler системной информации
func NewSystemHandler(logger *slog.Logger, store storage.UserStore, cfg *config.Config, recorder *audit.Recorder) *SystemHandler {
	return &SystemHandler{
		logger: logger,
		store:  store,
		cfg:    cfg,
		audit:  recorder,
	}
}

// Info обрабатывает GET /api/v1/system/info.
// Корректная система потребовала бы роль admin; здесь полный конфиг,
// включая signing secret, уходит любому аутентифицированному вызывающему.
// Владея секретом, вызывающий может ковать любые токены.
func (h *SystemHandler) Info(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		WriteError(w, http.StatusUnauthorized, "token required")
		return
	}

	count, err := h.store.Count(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to count users", slog.Any("error", err))
		WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.audit.Record(audit.Event{
		Action:         "read_system_info",
		CallerID:       claims.ID,
		CallerUsername: claims.Username,
		CallerRole:     claims.Role,
		Detail:         "signing secret disclosed",
	})

	WriteJSON(w, api.SystemInfoResponse{
		Server:     config.ServerLabel,
		Database:   h.cfg.DatabaseLabel(),
		UsersCount: count,
		AdminUsers: []string{"admin"},
		SecretKey:  h.cfg.Secret,
		LastBackup: config.LastBackupDate,
		DebugMode:  h.cfg.Debug,
	}, http.StatusOK)
}
