package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9090"
data_file: "data/test.json"
fetch_command: ["python3", "scripts/fetch_news.py"]
fetch_timeout: 2m
batch_size: 3
batch_delay: 500ms
ai_provider: "gemini"
model: "gemini-1.5-flash"
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "data/test.json", cfg.DataFile)
	assert.Equal(t, []string{"python3", "scripts/fetch_news.py"}, cfg.FetchCommand)
	assert.Equal(t, 2*time.Minute, cfg.FetchTimeout)
	assert.Equal(t, 3, cfg.BatchSize)
	assert.Equal(t, 500*time.Millisecond, cfg.BatchDelay)
	assert.Equal(t, "gemini", cfg.AIProvider)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ai_provider: openai\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.FetchTimeout)
	assert.Equal(t, 5, cfg.BatchSize)
	assert.Equal(t, time.Second, cfg.BatchDelay)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
