package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 5, cfg.PageSize)
	assert.Equal(t, 50, cfg.PollTimeout)
	assert.Equal(t, "https://api.telegram.org", cfg.TelegramAPIURL)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 60, cfg.SearchCacheTTL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PAGE_SIZE", "10")
	t.Setenv("POLL_TIMEOUT", "30")
	t.Setenv("DB_NAME", "musicbot")
	t.Setenv("HTTP_ADDR", ":9090")

	cfg := Load()

	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 30, cfg.PollTimeout)
	assert.Equal(t, "musicbot", cfg.DBName)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
}

func TestGetEnvIntIgnoresGarbage(t *testing.T) {
	t.Setenv("PAGE_SIZE", "not-a-number")

	cfg := Load()
	assert.Equal(t, 5, cfg.PageSize)
}
