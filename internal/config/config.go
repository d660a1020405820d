package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"urdusimplify/pkg/llm"

	"github.com/spf13/viper"
)

// Config holds the settings read once at process start.
type Config struct {
	Port             string
	Provider         string
	Model            string
	FallbackProvider string
	APIKeys          map[string]string
	ModelTimeout     time.Duration
	AllowedOrigins   []string
	LogLevel         slog.Level
}

var apiKeyVars = map[string]string{
	llm.ProviderGemini:    "gemini_api_key",
	llm.ProviderOpenAI:    "openai_api_key",
	llm.ProviderAnthropic: "anthropic_api_key",
}

// Load reads configuration from the environment. Call godotenv.Load first
// if a .env file should be honoured.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("port", "3000")
	v.SetDefault("llm_provider", llm.ProviderGemini)
	v.SetDefault("llm_model", "")
	v.SetDefault("llm_fallback_provider", "")
	v.SetDefault("model_timeout", "0s")
	v.SetDefault("allowed_origins", "")
	v.SetDefault("log_level", "info")
	for _, key := range apiKeyVars {
		v.SetDefault(key, "")
	}

	cfg := &Config{
		Port:             v.GetString("port"),
		Provider:         strings.ToLower(strings.TrimSpace(v.GetString("llm_provider"))),
		Model:            v.GetString("llm_model"),
		FallbackProvider: strings.ToLower(strings.TrimSpace(v.GetString("llm_fallback_provider"))),
		APIKeys:          map[string]string{},
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid PORT %q: %w", cfg.Port, err)
	}

	timeout, err := time.ParseDuration(v.GetString("model_timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid MODEL_TIMEOUT: %w", err)
	}
	if timeout < 0 {
		return nil, errors.New("MODEL_TIMEOUT must not be negative")
	}
	cfg.ModelTimeout = timeout

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("log_level"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	for _, origin := range strings.Split(v.GetString("allowed_origins"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	for _, provider := range cfg.Providers() {
		if !llm.KnownProvider(provider) {
			return nil, fmt.Errorf("unknown llm provider %q", provider)
		}
		key := v.GetString(apiKeyVars[provider])
		if key == "" {
			return nil, fmt.Errorf("%s is required for provider %s", strings.ToUpper(apiKeyVars[provider]), provider)
		}
		cfg.APIKeys[provider] = key
	}

	if cfg.FallbackProvider == cfg.Provider {
		cfg.FallbackProvider = ""
	}

	return cfg, nil
}

// Providers lists the configured providers, primary first.
func (c *Config) Providers() []string {
	if c.FallbackProvider == "" || c.FallbackProvider == c.Provider {
		return []string{c.Provider}
	}
	return []string{c.Provider, c.FallbackProvider}
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
