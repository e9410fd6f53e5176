package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fwojciec/tutor"
	"github.com/fwojciec/tutor/yaml"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// overrides holds flag values. Empty fields leave the setting unchanged.
type overrides struct {
	Addr     string
	Provider string
	Model    string
	APIKey   string
	LogLevel string
}

// apiKeyEnv maps each provider to the env var holding its API key.
var apiKeyEnv = map[string]string{
	tutor.ProviderTogether:  "TOGETHER_API_KEY",
	tutor.ProviderAnthropic: "ANTHROPIC_API_KEY",
	tutor.ProviderGemini:    "GEMINI_API_KEY",
}

// resolveConfig layers defaults, the optional config file, the environment
// and flags, in increasing precedence, and validates the result.
func resolveConfig(path string, getenv func(string) string, flags overrides) (tutor.Config, error) {
	cfg := tutor.DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = yaml.LoadConfig(path); err != nil {
			return tutor.Config{}, err
		}
	}

	if port := getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	setIf(&cfg.Addr, getenv("TUTOR_ADDR"))
	setIf(&cfg.Provider, getenv("TUTOR_PROVIDER"))
	setIf(&cfg.Model, getenv("TUTOR_MODEL"))

	setIf(&cfg.Addr, flags.Addr)
	setIf(&cfg.Provider, flags.Provider)
	setIf(&cfg.Model, flags.Model)
	setIf(&cfg.LogLevel, flags.LogLevel)

	// The key env var depends on the final provider, so it is read last.
	if name, ok := apiKeyEnv[cfg.Provider]; ok {
		setIf(&cfg.APIKey, getenv(name))
	}
	setIf(&cfg.APIKey, flags.APIKey)

	if err := cfg.Validate(); err != nil {
		return tutor.Config{}, err
	}
	return cfg, nil
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// envLookup returns a getenv that prefers getenv and falls back to values
// read from the dotenv file at path. An empty path disables the file; a
// missing default file is ignored.
func envLookup(path string, getenv func(string) string) (func(string) string, error) {
	if path == "" {
		return getenv, nil
	}
	vals, err := godotenv.Read(path)
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist) && path == defaultEnvFile:
		return getenv, nil
	default:
		return nil, fmt.Errorf("read env file: %w", err)
	}
	return func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return vals[key]
	}, nil
}
