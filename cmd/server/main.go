package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vulnlab/accesslab/internal/server"
	"github.com/vulnlab/accesslab/internal/server/audit"
	"github.com/vulnlab/accesslab/internal/server/config"
	"github.com/vulnlab/accesslab/internal/server/storage"
	"github.com/vulnlab/accesslab/internal/server/storage/memory"
	"github.com/vulnlab/accesslab/internal/server/storage/sqlite"
	"github.com/vulnlab/accesslab/internal/server/token"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", config.DefaultAddr, "HTTP listen address")
	dbPath := flag.String("db", "", "SQLite database path (empty: in-memory store)")
	secret := flag.String("secret", config.DefaultSecret, "Token signing secret")
	debug := flag.Bool("debug", true, "Enable /api/v1/debug endpoints")
	latency := flag.Duration("latency", 0, "Artificial per-request latency (e.g. 500ms)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.Addr = *addr
	cfg.DBPath = *dbPath
	cfg.Secret = *secret
	cfg.Debug = *debug
	cfg.Latency = *latency

	if err := run(logger, cfg); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store storage.UserStore
	if cfg.DBPath != "" {
		sqlStore, err := sqlite.New(ctx, cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to open sqlite store: %w", err)
		}
		defer func() {
			if err := sqlStore.Close(); err != nil {
				logger.Error("failed to close store", "error", err)
			}
		}()
		store = sqlStore
	} else {
		store = memory.New()
	}

	handler := server.NewHandler(server.Deps{
		Logger:  logger,
		Store:   store,
		Codec:   token.NewCodec(cfg.Secret),
		Audit:   audit.NewRecorder(logger),
		Cfg:     cfg,
		Version: Version,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("AccessLab server starting",
			"addr", cfg.Addr,
			"database", cfg.DatabaseLabel(),
			"debug", cfg.Debug,
			"version", Version,
		)
		logger.Warn("this server is deliberately vulnerable; never expose it beyond a lab network")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func printVersion() {
	fmt.Printf("AccessLab Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
