package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vulnlab/accesslab/internal/server/audit"
	"github.com/vulnlab/accesslab/internal/server/storage"
	"github.com/vulnlab/accesslab/internal/server/token"
	"github.com/vulnlab/accesslab/internal/validation"
	"github.com/vulnlab/accesslab/pkg/api"
)

// AuthHandler обрабатывает запросы аутентификации
type AuthHandler struct {
	logger *slog.Logger
	store  storage.UserStore
	codec  *token.Codec
	audit  *audit.Recorder
}

// NewAuthHandler создает новый handler для аутентификации
func NewAuthHandler(logger *slog.Logger, store storage.UserStore, codec *token.Codec, recorder *audit.Recorder) *AuthHandler {
	return &AuthHandler{
		logger: logger,
		store:  store,
		codec:  codec,
		audit:  recorder,
	}
}

// Login обрабатывает POST /api/v1/auth/login.
// Единственная операция с настоящей проверкой: username и password должны
// совпасть побайтово. Любое несовпадение — 401 без уточнения, какое из
// полей не подошло.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode login request", slog.Any("error", err))
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		WriteError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	if err := validation.ValidateUsername(req.Username); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.store.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidCredentials) {
			h.logger.WarnContext(ctx, "login failed", slog.String("username", req.Username))
			WriteError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.logger.ErrorContext(ctx, "failed to authenticate user", slog.Any("error", err))
		WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	tokenString, err := h.codec.Issue(user.ID, user.Username, user.Email, user.Role)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to issue token", slog.Any("error", err))
		WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.InfoContext(ctx, "user logged in",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username),
		slog.String("role", user.Role))

	h.audit.Record(audit.Event{
		Action:         "login",
		CallerID:       user.ID,
		CallerUsername: user.Username,
		CallerRole:     user.Role,
	})

	WriteJSON(w, api.LoginResponse{
		Token: tokenString,
		User:  toAPIUser(user.Public()),
	}, http.StatusOK)
}
