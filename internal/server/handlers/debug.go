package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/vulnlab/accesslab/internal/server/audit"
	"github.com/vulnlab/accesslab/internal/server/storage"
	"github.com/vulnlab/accesslab/internal/server/token"
	"github.com/vulnlab/accesslab/pkg/api"
)

// DebugHandler — служебные ручки учебного стенда: сброс данных, выпуск
// фейковых токенов, просмотр аудита. Это не часть изучаемой модели
// авторизации, а инструменты ведущего; монтируются только при debug_mode.
type DebugHandler struct {
	logger *slog.Logger
	store  storage.UserStore
	codec  *token.Codec
	audit  *audit.Recorder
}

// NewDebugHandler создает новый handler debug-ручек
func NewDebugHandler(logger *slog.Logger, store storage.UserStore, codec *token.Codec, recorder *audit.Recorder) *DebugHandler {
	return &DebugHandler{
		logger: logger,
		store:  store,
		codec:  codec,
		audit:  recorder,
	}
}

// Reset обрабатывает POST /api/v1/debug/reset: возвращает хранилище к
// seed-набору и очищает аудит. Ранее выпущенные токены остаются
// разбираемыми, но описывают уже несуществующее состояние.
func (h *DebugHandler) Reset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.store.Reset(ctx); err != nil {
		h.logger.ErrorContext(ctx, "failed to reset store", slog.Any("error", err))
		WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.audit.Reset()
	h.logger.InfoContext(ctx, "record store reset to seed state")

	WriteJSON(w, api.MessageResponse{Message: "database reset to initial state"}, http.StatusOK)
}

// ForgeToken обрабатывает POST /api/v1/debug/token: выпускает токен с
// произвольными claims. Демонстрирует, что сервер примет артефакт с любым
// содержимым; запись с таким id может вообще не существовать.
func (h *DebugHandler) ForgeToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.ForgeTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ttl := token.TokenTTL
	if req.ExpiresIn > 0 {
		ttl = time.Duration(req.ExpiresIn) * time.Second
	}

	now := time.Now()
	tokenString, err := h.codec.IssueClaims(token.Claims{
		ID:       req.ID,
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
		IssuedAt: now.Unix(),
		ExpireAt: now.Add(ttl).Unix(),
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to forge token", slog.Any("error", err))
		WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.WarnContext(ctx, "fake token issued",
		slog.Int64("id", req.ID),
		slog.String("username", req.Username),
		slog.String("role", req.Role))

	WriteJSON(w, api.TokenResponse{Token: tokenString}, http.StatusOK)
}

// Audit обрабатывает GET /api/v1/debug/audit: отдает накопленный след
// операций для разбора упражнения.
func (h *DebugHandler) Audit(w http.ResponseWriter, r *http.Request) {
	events := h.audit.Events()

	out := api.AuditResponse{Events: make([]api.AuditEvent, 0, len(events))}
	for _, e := range events {
		out.Events = append(out.Events, api.AuditEvent{
			ID:             e.ID,
			Time:           e.Time,
			Action:         e.Action,
			CallerID:       e.CallerID,
			CallerUsername: e.CallerUsername,
			CallerRole:     e.CallerRole,
			TargetID:       e.TargetID,
			Detail:         e.Detail,
		})
	}

	WriteJSON(w, out, http.StatusOK)
}
