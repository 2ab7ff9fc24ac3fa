package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeoutSeconds, cfg.TimeoutSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HATHORA_API_KEY", "sk-test-12345")
	t.Setenv("HATHORA_TIMEOUT_SECONDS", "60")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sk-test-12345", cfg.APIKey)
	assert.Equal(t, 60, cfg.TimeoutSeconds)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	content := `
api_key: "sk-from-file"
timeout_seconds: 15
endpoints:
  kokoro: "http://localhost:8081"
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hathora.yaml"), []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sk-from-file", cfg.APIKey)
	assert.Equal(t, 15, cfg.TimeoutSeconds)
	assert.Equal(t, "http://localhost:8081", cfg.Endpoints["kokoro"])
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadAPIKeyIndirection(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("MY_SECRET_KEY", "sk-indirect")

	content := `api_key: "ENV:MY_SECRET_KEY"`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hathora.yaml"), []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sk-indirect", cfg.APIKey)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	content := `
endpoints:
  kokoro: "not a url"
log:
  level: loud
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hathora.yaml"), []byte(content), 0o644))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestCheckValid(t *testing.T) {
	cfg := &Config{
		TimeoutSeconds: 30,
		Endpoints:      map[string]string{"kokoro": "https://example.com"},
		Log:            LogConfig{Level: "info", Format: "console"},
	}
	assert.NoError(t, Check(cfg))
}
