package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8001", cfg.Server.Port)
	assert.Equal(t, "uploads", cfg.Server.UploadDir)
	assert.Equal(t, int64(10<<20), cfg.Server.MaxUploadBytes())
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, 20*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 20, cfg.Vision.MinFaceSize)
	assert.Empty(t, cfg.Vision.FaceCascade)
	assert.Empty(t, cfg.Vision.EyeCascade)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: ":9090"
  max_upload_mb: 2
llm:
  provider: gemini
  model: gemini-2.5-flash
  timeout: 5s
vision:
  quality_threshold: 7.5
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("ROASTMASTER_LLM_API_KEY", "from-env")
	t.Setenv("ROASTMASTER_SERVER_PORT", ":7070")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Port, "env overrides file")
	assert.Equal(t, int64(2<<20), cfg.Server.MaxUploadBytes())
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "from-env", cfg.LLM.APIKey)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 7.5, cfg.Vision.QualityThreshold)
}

func TestLoadConfig_BrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [oops"), 0o600))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}
