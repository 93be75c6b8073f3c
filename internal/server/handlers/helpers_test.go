package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/vulnlab/accesslab/internal/server/audit"
	"github.com/vulnlab/accesslab/internal/server/config"
	"github.com/vulnlab/accesslab/internal/server/storage/memory"
	"github.com/vulnlab/accesslab/internal/server/token"
)

const testSecret = "vulnerable-secret-key"

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError,
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// testEnv — общий набор зависимостей для тестов handlers
type testEnv struct {
	store *memory.Store
	codec *token.Codec
	audit *audit.Recorder
	cfg   *config.Config
}

func newTestEnv() *testEnv {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return &testEnv{
		store: memory.New(),
		codec: token.NewCodec(testSecret),
		audit: audit.NewRecorder(setupTestLogger()),
		cfg:   cfg,
	}
}

// authedRequest создает запрос с claims в контексте, как после AuthMiddleware
func authedRequest(method, target string, body io.Reader, claims *token.Claims) *http.Request {
	req := httptest.NewRequest(method, target, body)
	return req.WithContext(WithClaims(req.Context(), claims))
}

// userClaims — claims обычного пользователя john
func userClaims() *token.Claims {
	return &token.Claims{ID: 2, Username: "john", Email: "john@demo.com", Role: "user"}
}

// adminClaims — claims администратора
func adminClaims() *token.Claims {
	return &token.Claims{ID: 1, Username: "admin", Email: "admin@demo.com", Role: "admin"}
}
