// Package server собирает HTTP-маршруты стенда.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/vulnlab/accesslab/internal/server/audit"
	"github.com/vulnlab/accesslab/internal/server/config"
	"github.com/vulnlab/accesslab/internal/server/handlers"
	"github.com/vulnlab/accesslab/internal/server/middleware"
	"github.com/vulnlab/accesslab/internal/server/storage"
	"github.com/vulnlab/accesslab/internal/server/token"
)

// Deps — зависимости маршрутизатора.
type Deps struct {
	Logger  *slog.Logger
	Store   storage.UserStore
	Codec   *token.Codec
	Audit   *audit.Recorder
	Cfg     *config.Config
	Version string
}

// NewHandler строит корневой http.Handler со всеми маршрутами и middleware.
//
// Каждая операция над данными стоит за AuthMiddleware — и только за ним.
// Никакого authorization-слоя между middleware и хранилищем нет; единственная
// защита login — rate limit от перебора, который к модели не относится.
func NewHandler(d Deps) http.Handler {
	mux := http.NewServeMux()

	authHandler := handlers.NewAuthHandler(d.Logger, d.Store, d.Codec, d.Audit)
	usersHandler := handlers.NewUsersHandler(d.Logger, d.Store, d.Codec, d.Audit)
	systemHandler := handlers.NewSystemHandler(d.Logger, d.Store, d.Cfg, d.Audit)
	healthHandler := handlers.NewHealthHandler(d.Logger, d.Version)

	authn := middleware.AuthMiddleware(d.Logger, d.Codec)
	loginLimit := middleware.RateLimitMiddleware(30, time.Minute, d.Logger)

	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)
	mux.Handle("POST /api/v1/auth/login", loginLimit(http.HandlerFunc(authHandler.Login)))

	mux.Handle("GET /api/v1/users", authn(http.HandlerFunc(usersHandler.List)))
	mux.Handle("GET /api/v1/users/{id}", authn(http.HandlerFunc(usersHandler.Get)))
	mux.Handle("PATCH /api/v1/users/{id}/profile", authn(http.HandlerFunc(usersHandler.UpdateProfile)))
	mux.Handle("DELETE /api/v1/users/{id}", authn(http.HandlerFunc(usersHandler.Delete)))
	mux.Handle("PUT /api/v1/users/{id}/role", authn(http.HandlerFunc(usersHandler.ChangeRole)))
	mux.Handle("GET /api/v1/system/info", authn(http.HandlerFunc(systemHandler.Info)))

	if d.Cfg.Debug {
		debugHandler := handlers.NewDebugHandler(d.Logger, d.Store, d.Codec, d.Audit)
		mux.HandleFunc("POST /api/v1/debug/reset", debugHandler.Reset)
		mux.HandleFunc("POST /api/v1/debug/token", debugHandler.ForgeToken)
		mux.HandleFunc("GET /api/v1/debug/audit", debugHandler.Audit)
	}

	var root http.Handler = mux
	if d.Cfg.Latency > 0 {
		root = middleware.LatencyMiddleware(d.Cfg.Latency)(root)
	}
	root = middleware.LoggingWithSkip(d.Logger, []string{"/api/v1/health"})(root)
	root = middleware.RecoveryMiddleware(d.Logger)(root)

	return root
}
