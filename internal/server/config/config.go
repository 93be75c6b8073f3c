// Package config holds runtime settings for the AccessLab server and the
// deliberately leaky system configuration payload.
package config

import "time"

// Дефолты повторяют оригинальный стенд. Секрет слабый и захардкожен
// специально: он же уходит наружу через system info.
const (
	DefaultAddr    = ":8080"
	DefaultSecret  = "vulnerable-secret-key"
	ServerLabel    = "Ubuntu 20.04"
	LastBackupDate = "2024-01-15"

	DatabaseLabelMemory = "In-Memory Store"
	DatabaseLabelSQLite = "SQLite Local Storage"
)

// Config holds runtime settings for the server.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - DBPath: SQLite path; empty means the in-memory record store.
//   - Secret: token signing secret (embedded verbatim in every signature).
//   - Debug: enables the /api/v1/debug endpoints.
//   - Latency: artificial per-request delay imitating remote-call latency.
type Config struct {
	Addr    string
	DBPath  string
	Secret  string
	Debug   bool
	Latency time.Duration
}

// LoadDefaults populates Config with the lab defaults.
func (c *Config) LoadDefaults() {
	c.Addr = DefaultAddr
	c.DBPath = ""
	c.Secret = DefaultSecret
	c.Debug = true
	c.Latency = 0
}

// DatabaseLabel возвращает человекочитаемую метку хранилища для system info.
func (c *Config) DatabaseLabel() string {
	if c.DBPath == "" {
		return DatabaseLabelMemory
	}
	return DatabaseLabelSQLite
}
