package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, "", c.DBPath)
	assert.Equal(t, "vulnerable-secret-key", c.Secret)
	assert.True(t, c.Debug)
	assert.Zero(t, c.Latency)
}

func TestDatabaseLabel(t *testing.T) {
	var c Config
	c.LoadDefaults()
	assert.Equal(t, DatabaseLabelMemory, c.DatabaseLabel())

	c.DBPath = "accesslab.db"
	assert.Equal(t, DatabaseLabelSQLite, c.DatabaseLabel())
}
