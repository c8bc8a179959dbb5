// Package config loads learner settings from defaults, an optional YAML file
// and LEARNER_* environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/learner/internal/llm"
)

// ErrInvalidConfig is returned when the loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	State    StateConfig    `mapstructure:"state"`
	Log      LogConfig      `mapstructure:"log"`
	Features FeatureConfig  `mapstructure:"features"`
	LLM      LLMSettings    `mapstructure:"llm"`
}

// DatabaseConfig locates the SQLite database file.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// StateConfig locates the directory holding the login state file.
type StateConfig struct {
	Dir string `mapstructure:"dir" validate:"required"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

// FeatureConfig holds feature flags.
type FeatureConfig struct {
	EnableNLPCommands bool `mapstructure:"enable_nlp_commands"`
}

// LLMSettings configures the language-understanding backend.
type LLMSettings struct {
	Enabled           bool   `mapstructure:"enabled"`
	Provider          string `mapstructure:"provider" validate:"oneof=ollama gemini"`
	Endpoint          string `mapstructure:"endpoint" validate:"omitempty,url"`
	Model             string `mapstructure:"model" validate:"required"`
	APIKey            string `mapstructure:"api_key" validate:"required_if=Enabled true Provider gemini"`
	TimeoutMs         int    `mapstructure:"timeout_ms" validate:"gt=0"`
	MaxRetries        int    `mapstructure:"max_retries" validate:"gte=0,lte=5"`
	LogCalls          bool   `mapstructure:"log_calls"`
	ClassifyTimeoutMs int    `mapstructure:"classify_timeout_ms" validate:"gte=0"`
	ExplainTimeoutMs  int    `mapstructure:"explain_timeout_ms" validate:"gte=0"`
}

// NLPEnabled reports whether natural-language commands may run.
func (c *Config) NLPEnabled() bool {
	return c.Features.EnableNLPCommands && c.LLM.Enabled
}

// LLMConfig converts the llm section into the client configuration.
func (c *Config) LLMConfig() llm.LLMConfig {
	cfg := llm.DefaultConfig()
	s := c.LLM
	cfg.Enabled = s.Enabled
	cfg.LogCalls = s.LogCalls
	cfg.Provider = llm.Provider(s.Provider)
	cfg.Model = s.Model
	cfg.APIKey = s.APIKey
	cfg.TimeoutMs = s.TimeoutMs
	cfg.MaxRetries = s.MaxRetries

	cfg.Endpoint = s.Endpoint
	if cfg.Provider == llm.ProviderGemini && s.Endpoint == defaultOllamaEndpoint {
		cfg.Endpoint = ""
	}
	if cfg.Provider == llm.ProviderGemini && s.Model == defaultOllamaModel {
		cfg.Model = defaultGeminiModel
	}

	cfg.SetTaskTimeout(llm.TaskClassify, s.ClassifyTimeoutMs)
	cfg.SetTaskTimeout(llm.TaskExplain, s.ExplainTimeoutMs)
	return cfg
}

func (c *Config) validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
