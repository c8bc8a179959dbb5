package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	envPrefix = "LEARNER"
	appDir    = "learner"

	defaultOllamaEndpoint = "http://localhost:11434"
	defaultOllamaModel    = "llama3.2"
	defaultGeminiModel    = "gemini-2.0-flash"
)

var validate = validator.New()

// Load builds the configuration. Values come from defaults, then the YAML
// file at path (or $XDG_CONFIG_HOME/learner/config.yaml when path is empty
// and that file exists), then LEARNER_* environment variables.
func Load(path string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	setDefaults(v, filepath.Join(home, "."+appDir))

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range map[string]string{
		"features.enable_nlp_commands": "FF_ENABLE_NLP_COMMANDS",
		"database.path":                "LEARNER_DB",
		"llm.api_key":                  "GEMINI_API_KEY",
	} {
		// The LEARNER_* form stays first so it wins over the short alias.
		envKey := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, envKey, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	if path == "" {
		path = defaultConfigFile()
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, dataDir string) {
	v.SetDefault("database.path", filepath.Join(dataDir, appDir+".db"))
	v.SetDefault("state.dir", dataDir)

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")

	v.SetDefault("features.enable_nlp_commands", false)

	v.SetDefault("llm.enabled", false)
	v.SetDefault("llm.provider", "ollama")
	v.SetDefault("llm.endpoint", defaultOllamaEndpoint)
	v.SetDefault("llm.model", defaultOllamaModel)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.timeout_ms", 10000)
	v.SetDefault("llm.max_retries", 1)
	v.SetDefault("llm.log_calls", false)
	v.SetDefault("llm.classify_timeout_ms", 0)
	v.SetDefault("llm.explain_timeout_ms", 0)
}

// defaultConfigFile returns the XDG config file path if it exists, or "".
func defaultConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, appDir, "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
