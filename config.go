package tutor

import (
	"fmt"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderTogether  = "together"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// Config holds the service configuration. Files, environment variables and
// flags are resolved by the caller; Config only carries the result.
type Config struct {
	Addr            string        `yaml:"addr"`
	Provider        string        `yaml:"provider"`
	Model           string        `yaml:"model"`    // empty = provider default
	APIKey          string        `yaml:"api_key"`  // usually supplied through the environment
	BaseURL         string        `yaml:"base_url"` // empty = provider default
	Temperature     float64       `yaml:"temperature"`
	MaxTokens       int           `yaml:"max_tokens"`
	Timeout         time.Duration `yaml:"timeout"`          // outbound completion deadline
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // grace period for in-flight requests
	AllowOrigins    []string      `yaml:"allow_origins"`
	LogLevel        string        `yaml:"log_level"`
	LogFormat       string        `yaml:"log_format"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8000",
		Provider:        ProviderTogether,
		Temperature:     DefaultTemperature,
		MaxTokens:       DefaultMaxTokens,
		Timeout:         60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		AllowOrigins:    []string{"*"},
		LogLevel:        "info",
		LogFormat:       "json",
	}
}

// Validate checks the configuration for values the service cannot run with.
// A missing API key is not checked here because providers report it with
// provider-specific context.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required: %w", ErrValidation)
	}
	switch c.Provider {
	case ProviderTogether, ProviderAnthropic, ProviderGemini:
	default:
		return fmt.Errorf("unknown provider %q: must be %q, %q or %q: %w",
			c.Provider, ProviderTogether, ProviderAnthropic, ProviderGemini, ErrValidation)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be in [0, 2], got %g: %w", c.Temperature, ErrValidation)
	}
	if c.MaxTokens < 0 {
		return fmt.Errorf("max_tokens must be non-negative, got %d: %w", c.MaxTokens, ErrValidation)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative, got %s: %w", c.Timeout, ErrValidation)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive, got %s: %w", c.ShutdownTimeout, ErrValidation)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("log_format must be \"json\" or \"console\", got %q: %w", c.LogFormat, ErrValidation)
	}
	return nil
}
