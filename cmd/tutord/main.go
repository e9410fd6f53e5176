// Command tutord serves the DSA tutoring endpoint over HTTP.
//
// Usage:
//
//	TOGETHER_API_KEY=... tutord [flags]
//
// Flags:
//
//	-config string     Path to a YAML config file
//	-env-file string   Path to a dotenv file (default ".env")
//	-addr string       Listen address (default ":8000")
//	-provider string   Provider: together, anthropic, gemini (default "together")
//	-model string      Model ID (default: provider default)
//	-api-key string    API key (overrides the provider's env var)
//	-log-level string  Log level: debug, info, warn, error (default "info")
//
// Settings are resolved from defaults, then the config file, then the
// environment, then flags. Variables missing from the process environment
// are read from the dotenv file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fwojciec/tutor"
	tutorgin "github.com/fwojciec/tutor/gin"
	"github.com/fwojciec/tutor/goldmark"
	tutorzap "github.com/fwojciec/tutor/zap"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tutord: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "Path to a YAML config file")
		envFile    = flag.String("env-file", defaultEnvFile, "Path to a dotenv file (empty disables)")
		addr       = flag.String("addr", "", "Listen address (default \":8000\")")
		provider   = flag.String("provider", "", "Provider: together, anthropic, gemini")
		model      = flag.String("model", "", "Model ID (provider-specific)")
		apiKey     = flag.String("api-key", "", "API key (overrides provider's env var)")
		logLevel   = flag.String("log-level", "", "Log level: debug, info, warn, error")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Env vars are read here and passed down as values.
	getenv, err := envLookup(*envFile, os.Getenv)
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(*configPath, getenv, overrides{
		Addr:     *addr,
		Provider: *provider,
		Model:    *model,
		APIKey:   *apiKey,
		LogLevel: *logLevel,
	})
	if err != nil {
		return err
	}

	logger, err := tutorzap.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	completer, err := resolveProvider(ctx, cfg)
	if err != nil {
		return err
	}

	t := tutor.NewTutor(completer,
		tutor.WithModel(cfg.Model),
		tutor.WithTemperature(cfg.Temperature),
		tutor.WithMaxTokens(cfg.MaxTokens),
	)
	srv := tutorgin.NewServer(t, logger,
		tutorgin.WithAddr(cfg.Addr),
		tutorgin.WithAllowOrigins(cfg.AllowOrigins),
		tutorgin.WithShutdownTimeout(cfg.ShutdownTimeout),
		tutorgin.WithMarkupChecker(goldmark.New()),
	)
	if err := srv.Open(ctx); err != nil {
		return err
	}
	logger.Info("tutord started",
		zap.String("provider", cfg.Provider),
		zap.String("model", cfg.Model),
		zap.String("addr", srv.Addr()),
	)

	<-ctx.Done()
	logger.Info("shutting down")
	if err := srv.Close(); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
