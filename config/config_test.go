package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, "https://dummyjson.com/products/search", cfg.Search.Endpoint)
	assert.Equal(t, 0, cfg.Search.Timeout)
	assert.Equal(t, "mcp-product-search/1.0", cfg.Search.UserAgent)
	assert.Equal(t, 50, cfg.Search.MaxQueries)
	assert.Equal(t, 512, cfg.Search.MaxErrorBody)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.Log)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `debug: true
log: /tmp/search.log
search:
  endpoint: http://localhost:8080/products/search
  timeout: 3
  max_queries: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/search.log", cfg.Log)
	assert.Equal(t, "http://localhost:8080/products/search", cfg.Search.Endpoint)
	assert.Equal(t, 3, cfg.Search.Timeout)
	assert.Equal(t, 5, cfg.Search.MaxQueries)
	// Unset keys keep their defaults
	assert.Equal(t, "mcp-product-search/1.0", cfg.Search.UserAgent)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SEARCH_ENDPOINT", "https://search.internal/products/search")
	t.Setenv("SEARCH_TIMEOUT", "7")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, "https://search.internal/products/search", cfg.Search.Endpoint)
	assert.Equal(t, 7, cfg.Search.Timeout)
}
