package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "# empty, everything defaulted\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "http://localhost:1234/v1", cfg.AIEndpoint)
	assert.Equal(t, "sshleifer/distilbart-cnn-6-6", cfg.Model)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, int64(50), cfg.MaxUploadMB)
	assert.Equal(t, 150, cfg.Summary.MaxLength)
	assert.Equal(t, 50, cfg.Summary.MinLength)
	assert.Equal(t, 1000, cfg.Summary.ChunkSize)
	assert.Equal(t, 100, cfg.Summary.ChunkOverlap)
	assert.Equal(t, 3, cfg.Summary.MaxReductionDepth)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
port: "9090"
model: facebook/bart-large-cnn
upload_dir: /tmp/pdfs
summary:
  max_length: 300
  chunk_size: 2000
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "facebook/bart-large-cnn", cfg.Model)
	assert.Equal(t, "/tmp/pdfs", cfg.UploadDir)
	assert.Equal(t, 300, cfg.Summary.MaxLength)
	assert.Equal(t, 2000, cfg.Summary.ChunkSize)
	// Untouched keys keep their defaults.
	assert.Equal(t, 50, cfg.Summary.MinLength)
	assert.Equal(t, 100, cfg.Summary.ChunkOverlap)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestGeminiKeys(t *testing.T) {
	cfg := &Config{}
	assert.Empty(t, cfg.GeminiKeys())

	cfg.GeminiAPIKeys = "key-one"
	assert.Equal(t, []string{"key-one"}, cfg.GeminiKeys())

	cfg.GeminiAPIKeys = " key-one , key-two ,, key-three "
	assert.Equal(t, []string{"key-one", "key-two", "key-three"}, cfg.GeminiKeys())
}

func TestDefaultOptions(t *testing.T) {
	path := writeConfig(t, "model: t5-small\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	opts := cfg.DefaultOptions()
	assert.Equal(t, "t5-small", opts.ModelName)
	assert.Equal(t, 150, opts.MaxLength)
	assert.Equal(t, 50, opts.MinLength)
	assert.Equal(t, 1000, opts.ChunkSize)
	assert.Equal(t, 100, opts.ChunkOverlap)
	assert.NoError(t, opts.Validate())
}
