package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/learner/internal/llm"
)

// isolate points HOME and XDG_CONFIG_HOME at temp dirs and clears the
// environment variables Load reads.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	for _, key := range []string{
		"FF_ENABLE_NLP_COMMANDS", "LEARNER_DB", "GEMINI_API_KEY",
		"LEARNER_DATABASE_PATH", "LEARNER_LLM_ENABLED", "LEARNER_LLM_PROVIDER",
		"LEARNER_LLM_MODEL", "LEARNER_LLM_API_KEY", "LEARNER_LOG_LEVEL",
		"LEARNER_FEATURES_ENABLE_NLP_COMMANDS", "LEARNER_LLM_CLASSIFY_TIMEOUT_MS",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".learner", "learner.db"), cfg.Database.Path)
	assert.Equal(t, filepath.Join(home, ".learner"), cfg.State.Dir)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.Features.EnableNLPCommands)
	assert.False(t, cfg.LLM.Enabled)
	assert.Equal(t, "ollama", cfg.LLM.Provider)
	assert.Equal(t, 10000, cfg.LLM.TimeoutMs)
	assert.False(t, cfg.NLPEnabled())
}

func TestLoad_FeatureFlagEnv(t *testing.T) {
	isolate(t)
	t.Setenv("FF_ENABLE_NLP_COMMANDS", "true")
	t.Setenv("LEARNER_LLM_ENABLED", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Features.EnableNLPCommands)
	assert.True(t, cfg.NLPEnabled())
}

func TestLoad_FeatureFlagAloneDoesNotEnableNLP(t *testing.T) {
	isolate(t)
	t.Setenv("FF_ENABLE_NLP_COMMANDS", "1")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Features.EnableNLPCommands)
	assert.False(t, cfg.NLPEnabled())
}

func TestLoad_DatabaseEnvAlias(t *testing.T) {
	isolate(t)
	t.Setenv("LEARNER_DB", "/tmp/alias.db")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/alias.db", cfg.Database.Path)

	t.Setenv("LEARNER_DATABASE_PATH", "/tmp/long.db")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/long.db", cfg.Database.Path)
}

func TestLoad_ExplicitFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "learner.yaml")
	writeFile(t, path, `
log:
  level: debug
  format: json
features:
  enable_nlp_commands: true
llm:
  enabled: true
  model: qwen2.5
  classify_timeout_ms: 2500
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.NLPEnabled())
	assert.Equal(t, "qwen2.5", cfg.LLM.Model)

	llmCfg := cfg.LLMConfig()
	assert.Equal(t, 2500, llmCfg.TaskTimeout(llm.TaskClassify))
	assert.Equal(t, llm.ProviderOllama, llmCfg.Provider)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "learner.yaml")
	writeFile(t, path, "log:\n  level: debug\n")
	t.Setenv("LEARNER_LOG_LEVEL", "error")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_XDGFile(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".config", "learner", "config.yaml"), "log:\n  level: info\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	home := isolate(t)
	_, err := Load(filepath.Join(home, "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad log level", map[string]string{"LEARNER_LOG_LEVEL": "loud"}},
		{"bad provider", map[string]string{"LEARNER_LLM_PROVIDER": "carrier-pigeon"}},
		{"gemini without key", map[string]string{"LEARNER_LLM_ENABLED": "true", "LEARNER_LLM_PROVIDER": "gemini"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLLMConfig_GeminiDropsOllamaDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("LEARNER_LLM_ENABLED", "true")
	t.Setenv("LEARNER_LLM_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "k-123")

	cfg, err := Load("")
	require.NoError(t, err)

	llmCfg := cfg.LLMConfig()
	assert.Equal(t, llm.ProviderGemini, llmCfg.Provider)
	assert.Equal(t, "k-123", llmCfg.APIKey)
	assert.Empty(t, llmCfg.Endpoint)
	assert.Equal(t, defaultGeminiModel, llmCfg.Model)
	assert.Equal(t, 10000, llmCfg.TimeoutMs)
}
