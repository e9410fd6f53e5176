package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fwojciec/tutor"
	"github.com/fwojciec/tutor/anthropic"
	"github.com/fwojciec/tutor/gemini"
	"github.com/fwojciec/tutor/together"
)

// resolveProvider constructs the completer named by cfg.Provider. The
// outbound HTTP client carries cfg.Timeout as its deadline.
func resolveProvider(ctx context.Context, cfg tutor.Config) (tutor.Completer, error) {
	if cfg.APIKey == "" {
		env := apiKeyEnv[cfg.Provider]
		if env == "" {
			return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
		}
		return nil, fmt.Errorf("%s not set (use -api-key flag or environment variable)", env)
	}
	hc := &http.Client{Timeout: cfg.Timeout}

	switch cfg.Provider {
	case tutor.ProviderTogether:
		opts := []together.Option{together.WithHTTPClient(hc)}
		if cfg.BaseURL != "" {
			opts = append(opts, together.WithBaseURL(cfg.BaseURL))
		}
		return together.New(cfg.APIKey, opts...), nil
	case tutor.ProviderAnthropic:
		opts := []anthropic.Option{anthropic.WithHTTPClient(hc)}
		if cfg.BaseURL != "" {
			opts = append(opts, anthropic.WithBaseURL(cfg.BaseURL))
		}
		return anthropic.New(cfg.APIKey, opts...), nil
	case tutor.ProviderGemini:
		opts := []gemini.Option{gemini.WithHTTPClient(hc)}
		if cfg.BaseURL != "" {
			opts = append(opts, gemini.WithBaseURL(cfg.BaseURL))
		}
		return gemini.New(ctx, cfg.APIKey, opts...)
	default:
		return nil, fmt.Errorf("unknown provider %q: must be %q, %q or %q",
			cfg.Provider, tutor.ProviderTogether, tutor.ProviderAnthropic, tutor.ProviderGemini)
	}
}
