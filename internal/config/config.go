package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/adamlaw669/Curio/internal/llm"
)

// EnvPrefix is prepended to every environment override, e.g. CURIO_DB.
const EnvPrefix = "CURIO"

// Config holds everything the CLI needs to wire the application.
type Config struct {
	// DBPath is the SQLite file. Empty means store.DefaultDBPath.
	DBPath string

	// LogMode selects the zap preset: "cli", "dev" or "prod".
	LogMode string

	// RecommendLimit caps how many recommendations are built per student.
	RecommendLimit int

	LLM llm.Config
}

// Load reads configuration in priority order: environment (CURIO_*),
// then curio.yaml found in searchDirs (or the current directory and
// $XDG_CONFIG_HOME/curio when none are given), then defaults.
// A .env file in the working directory is loaded first when present.
func Load(searchDirs ...string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("curio")
	v.SetConfigType("yaml")
	if len(searchDirs) == 0 {
		searchDirs = defaultSearchDirs()
	}
	for _, dir := range searchDirs {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	d := llm.DefaultConfig()

	v.SetDefault("db", "")
	v.SetDefault("log.mode", "cli")
	v.SetDefault("recommend.limit", 3)

	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.timeout", d.Timeout)
	v.SetDefault("llm.anthropic.api_key", "")
	v.SetDefault("llm.anthropic.model", d.Anthropic.Model)
	v.SetDefault("llm.openai.api_key", "")
	v.SetDefault("llm.openai.model", d.OpenAI.Model)
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("llm.gemini.api_key", "")
	v.SetDefault("llm.gemini.model", d.Gemini.Model)
	v.SetDefault("llm.openrouter.api_key", "")
	v.SetDefault("llm.openrouter.model", d.OpenRouter.Model)
	v.SetDefault("llm.openrouter.base_url", "")
	v.SetDefault("llm.retry.max_attempts", d.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", d.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", d.Retry.MaxWait)
}

func fromViper(v *viper.Viper) Config {
	cfg := Config{
		DBPath:         v.GetString("db"),
		LogMode:        v.GetString("log.mode"),
		RecommendLimit: v.GetInt("recommend.limit"),
		LLM:            llm.DefaultConfig(),
	}

	cfg.LLM.Provider = v.GetString("llm.provider")
	cfg.LLM.Timeout = durationOr(v.GetDuration("llm.timeout"), cfg.LLM.Timeout)
	cfg.LLM.Anthropic.APIKey = v.GetString("llm.anthropic.api_key")
	cfg.LLM.Anthropic.Model = v.GetString("llm.anthropic.model")
	cfg.LLM.OpenAI.APIKey = v.GetString("llm.openai.api_key")
	cfg.LLM.OpenAI.Model = v.GetString("llm.openai.model")
	cfg.LLM.OpenAI.BaseURL = v.GetString("llm.openai.base_url")
	cfg.LLM.Gemini.APIKey = v.GetString("llm.gemini.api_key")
	cfg.LLM.Gemini.Model = v.GetString("llm.gemini.model")
	cfg.LLM.OpenRouter.APIKey = v.GetString("llm.openrouter.api_key")
	cfg.LLM.OpenRouter.Model = v.GetString("llm.openrouter.model")
	cfg.LLM.OpenRouter.BaseURL = v.GetString("llm.openrouter.base_url")
	cfg.LLM.Retry.MaxAttempts = v.GetInt("llm.retry.max_attempts")
	cfg.LLM.Retry.InitialWait = durationOr(v.GetDuration("llm.retry.initial_wait"), cfg.LLM.Retry.InitialWait)
	cfg.LLM.Retry.MaxWait = durationOr(v.GetDuration("llm.retry.max_wait"), cfg.LLM.Retry.MaxWait)

	// Fall back to the well-known vendor variables when no provider was
	// chosen explicitly.
	if cfg.LLM.Provider == "" {
		if discovered, ok := llm.DiscoverConfig(); ok {
			discovered.Timeout = cfg.LLM.Timeout
			discovered.Retry = cfg.LLM.Retry
			cfg.LLM = discovered
		}
	}

	return cfg
}

// LLMEnabled reports whether a provider has been selected.
func (c Config) LLMEnabled() bool {
	return c.LLM.Provider != ""
}

func defaultSearchDirs() []string {
	dirs := []string{"."}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			configHome = filepath.Join(home, ".config")
		}
	}
	if configHome != "" {
		dirs = append(dirs, filepath.Join(configHome, "curio"))
	}
	return dirs
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
