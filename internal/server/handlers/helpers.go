package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/vulnlab/accesslab/internal/models"
	"github.com/vulnlab/accesslab/pkg/api"
)

// WriteJSON сериализует v в ответ с заданным статусом.
func WriteJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError отправляет JSON-ошибку с заданным статусом.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, api.ErrorResponse{Error: message}, status)
}

// targetID извлекает целевой id из path-параметра {id} (Go 1.22+).
// Это caller-supplied значение: с identity вызывающего его никто не сверяет.
func targetID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// toAPIUser конвертирует публичное представление записи в API DTO
func toAPIUser(u models.PublicUser) api.User {
	out := api.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
	if u.Profile != nil {
		out.Profile = &api.Profile{
			FullName:   u.Profile.FullName,
			Phone:      u.Profile.Phone,
			Department: u.Profile.Department,
			Salary:     u.Profile.Salary,
			SSN:        u.Profile.SSN,
		}
	}
	return out
}

// toPatch конвертирует API-запрос частичного обновления в модель патча
func toPatch(req api.UpdateProfileRequest) models.ProfilePatch {
	return models.ProfilePatch{
		FullName:   req.FullName,
		Phone:      req.Phone,
		Department: req.Department,
		Salary:     req.Salary,
		SSN:        req.SSN,
	}
}
