package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearVendorKeys(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY", "CURIO_DB", "CURIO_LLM_PROVIDER"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearVendorKeys(t)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "", cfg.DBPath)
	assert.Equal(t, "cli", cfg.LogMode)
	assert.Equal(t, 3, cfg.RecommendLimit)
	assert.False(t, cfg.LLMEnabled())
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 3, cfg.LLM.Retry.MaxAttempts)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearVendorKeys(t)
	dir := t.TempDir()
	yaml := []byte(`
db: /tmp/from-file.db
log:
  mode: prod
recommend:
  limit: 5
llm:
  provider: openai
  openai:
    api_key: file-key
    model: gpt-4o
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "curio.yaml"), yaml, 0o644))
	t.Setenv("CURIO_DB", "/tmp/from-env.db")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/from-env.db", cfg.DBPath)
	assert.Equal(t, "prod", cfg.LogMode)
	assert.Equal(t, 5, cfg.RecommendLimit)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "file-key", cfg.LLM.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o", cfg.LLM.OpenAI.Model)
	assert.True(t, cfg.LLMEnabled())
}

func TestLoad_DiscoversVendorKey(t *testing.T) {
	clearVendorKeys(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, "sk-ant", cfg.LLM.Anthropic.APIKey)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
}

func TestLoad_MalformedFile(t *testing.T) {
	clearVendorKeys(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "curio.yaml"), []byte("db: [unterminated"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
}
