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

// UsersHandler реализует операции над записями пользователей.
//
// Общий контракт всех методов одинаково дырявый: middleware уже убедился,
// что токен присутствует и разобрался, а дальше target id из URL уходит в
// хранилище как есть. Сравнения caller vs target или проверки роли нет ни
// в одном методе — это и есть изучаемые IDOR и privilege escalation.
type UsersHandler struct {
	logger *slog.Logger
	store  storage.UserStore
	codec  *token.Codec
	audit  *audit.Recorder
}

// NewUsersHandler создает новый handler операций над пользователями
func NewUsersHandler(logger *slog.Logger, store storage.UserStore, codec *token.Codec, recorder *audit.Recorder) *UsersHandler {
	return &UsersHandler{
		logger: logger,
		store:  store,
		codec:  codec,
		audit:  recorder,
	}
}

// Get обрабатывает GET /api/v1/users/{id}.
// Корректная система потребовала бы caller.id == id либо роль admin.
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		WriteError(w, http.StatusUnauthorized, "token required")
		return
	}

	id, err := targetID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.audit.Record(audit.Event{
		Action:         "read_profile",
		CallerID:       claims.ID,
		CallerUsername: claims.Username,
		CallerRole:     claims.Role,
		TargetID:       id,
	})

	WriteJSON(w, toAPIUser(user.Public()), http.StatusOK)
}

// List обрабатывает GET /api/v1/users.
// Корректная система потребовала бы роль admin.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		WriteError(w, http.StatusUnauthorized, "token required")
		return
	}

	users, err := h.store.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list users", slog.Any("error", err))
		WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	out := make([]api.User, 0, len(users))
	for _, u := range users {
		out = append(out, toAPIUser(u.Public()))
	}

	h.audit.Record(audit.Event{
		Action:         "list_users",
		CallerID:       claims.ID,
		CallerUsername: claims.Username,
		CallerRole:     claims.Role,
	})

	WriteJSON(w, out, http.StatusOK)
}

// UpdateProfile обрабатывает PATCH /api/v1/users/{id}/profile.
// Patch накладывается на профиль цели безусловно.
func (h *UsersHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		WriteError(w, http.StatusUnauthorized, "token required")
		return
	}

	id, err := targetID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req api.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.store.UpdateProfile(ctx, id, toPatch(req))
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to update profile", slog.Any("error", err))
		WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.audit.Record(audit.Event{
		Action:         "update_profile",
		CallerID:       claims.ID,
		CallerUsername: claims.Username,
		CallerRole:     claims.Role,
		TargetID:       id,
	})

	WriteJSON(w, toAPIUser(user.Public()), http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/users/{id}.
// Удаление ничем не ограничено, включая самоудаление: от него отговаривает
// только клиент.
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		WriteError(w, http.StatusUnauthorized, "token required")
		return
	}

	id, err := targetID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.store.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete user", slog.Any("error", err))
		WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.audit.Record(audit.Event{
		Action:         "delete_user",
		CallerID:       claims.ID,
		CallerUsername: claims.Username,
		CallerRole:     claims.Role,
		TargetID:       id,
	})

	WriteJSON(w, api.MessageResponse{Message: "user deleted"}, http.StatusOK)
}

// ChangeRole обрабатывает PUT /api/v1/users/{id}/role.
// Роль перезаписывается безусловно. Если вызывающий меняет роль самому
// себе, сервер тут же перевыпускает токен с новой ролью и возвращает его
// в ответе — эскалация вступает в силу немедленно.
func (h *UsersHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		WriteError(w, http.StatusUnauthorized, "token required")
		return
	}

	id, err := targetID(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req api.ChangeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validation.ValidateRole(req.Role); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.store.SetRole(ctx, id, req.Role)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to set role", slog.Any("error", err))
		WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.audit.Record(audit.Event{
		Action:         "change_role",
		CallerID:       claims.ID,
		CallerUsername: claims.Username,
		CallerRole:     claims.Role,
		TargetID:       id,
		Detail:         "new role: " + req.Role,
	})

	resp := api.ChangeRoleResponse{User: toAPIUser(user.Public())}

	if id == claims.ID {
		newToken, err := h.codec.Issue(user.ID, user.Username, user.Email, user.Role)
		if err != nil {
			h.logger.ErrorContext(ctx, "failed to reissue token", slog.Any("error", err))
			WriteError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		resp.NewToken = newToken
	}

	WriteJSON(w, resp, http.StatusOK)
}
