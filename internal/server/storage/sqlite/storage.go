// Package sqlite реализует record store поверх SQLite.
//
// По умолчанию сервер использует in-memory хранилище; этот backend нужен,
// когда состояние лаборатории должно переживать рестарт (например, общий
// стенд на группу). С DSN ":memory:" поведение эквивалентно памяти.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Store represents SQLite record store implementation
type Store struct {
	db *sql.DB
}

// New creates a new SQLite store instance.
// dbPath is the path to the SQLite database file, ":memory:" for in-memory.
func New(ctx context.Context, dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Один писатель за раз; для :memory: это еще и гарантирует, что все
	// соединения видят одну и ту же базу.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	store := &Store{db: db}

	if err := store.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Пустая база засеивается стартовым набором
	if err := store.seedIfEmpty(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// runMigrations выполняет миграции из embedded FS
func (s *Store) runMigrations() error {
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose set dialect failed: %w", err)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.Up(s.db, "migrations"); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}

	return nil
}

// seedIfEmpty вставляет seed-набор, если таблица пуста
func (s *Store) seedIfEmpty(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}
	return s.insertSeed(ctx)
}

// DB returns the underlying database connection for testing purposes
func (s *Store) DB() *sql.DB {
	return s.db
}
