package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vulnlab/accesslab/pkg/api"
)

func TestLogin_Success(t *testing.T) {
	env := newTestEnv()
	h := NewAuthHandler(setupTestLogger(), env.store, env.codec, env.audit)

	body := `{"username":"john","password":"user123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.Login(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, int64(2), resp.User.ID)
	assert.Equal(t, "john", resp.User.Username)
	assert.Equal(t, "user", resp.User.Role)
	assert.NotContains(t, w.Body.String(), "user123", "password must never leave the server")

	// Выданный токен разбирается и несет те же claims
	claims, err := env.codec.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(2), claims.ID)
	assert.Equal(t, "user", claims.Role)
}

func TestLogin_ExactMatchRequired(t *testing.T) {
	env := newTestEnv()
	h := NewAuthHandler(setupTestLogger(), env.store, env.codec, env.audit)

	tests := []struct {
		name string
		body string
		code int
	}{
		{"wrong password", `{"username":"john","password":"user124"}`, http.StatusUnauthorized},
		{"wrong username", `{"username":"johnny","password":"user123"}`, http.StatusUnauthorized},
		{"another user's password", `{"username":"john","password":"admin123"}`, http.StatusUnauthorized},
		{"case mismatch", `{"username":"John","password":"user123"}`, http.StatusUnauthorized},
		{"empty body fields", `{}`, http.StatusBadRequest},
		{"malformed username", `{"username":"j@hn!","password":"user123"}`, http.StatusBadRequest},
		{"broken json", `{"username":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			h.Login(w, req)

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestLogin_AdminGetsAdminRoleClaim(t *testing.T) {
	env := newTestEnv()
	h := NewAuthHandler(setupTestLogger(), env.store, env.codec, env.audit)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"username":"admin","password":"admin123"}`))
	w := httptest.NewRecorder()

	h.Login(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	claims, err := env.codec.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}
