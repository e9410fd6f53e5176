package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/tutor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tutor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolveConfig_Defaults(t *testing.T) {
	t.Parallel()
	cfg, err := resolveConfig("", envOf(nil), overrides{})
	require.NoError(t, err)
	assert.Equal(t, tutor.DefaultConfig(), cfg)
}

func TestResolveConfig_Precedence(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, "addr: \":7000\"\nmodel: file-model\nprovider: anthropic\napi_key: file-key\n")

	t.Run("file over defaults", func(t *testing.T) {
		t.Parallel()
		cfg, err := resolveConfig(path, envOf(nil), overrides{})
		require.NoError(t, err)
		assert.Equal(t, ":7000", cfg.Addr)
		assert.Equal(t, "file-model", cfg.Model)
		assert.Equal(t, "file-key", cfg.APIKey)
	})

	t.Run("env over file", func(t *testing.T) {
		t.Parallel()
		cfg, err := resolveConfig(path, envOf(map[string]string{
			"TUTOR_ADDR":        ":7100",
			"TUTOR_MODEL":       "env-model",
			"ANTHROPIC_API_KEY": "env-key",
		}), overrides{})
		require.NoError(t, err)
		assert.Equal(t, ":7100", cfg.Addr)
		assert.Equal(t, "env-model", cfg.Model)
		assert.Equal(t, "env-key", cfg.APIKey)
	})

	t.Run("flags over env", func(t *testing.T) {
		t.Parallel()
		cfg, err := resolveConfig(path, envOf(map[string]string{
			"TUTOR_ADDR":        ":7100",
			"ANTHROPIC_API_KEY": "env-key",
		}), overrides{Addr: ":7200", Model: "flag-model", APIKey: "flag-key", LogLevel: "debug"})
		require.NoError(t, err)
		assert.Equal(t, ":7200", cfg.Addr)
		assert.Equal(t, "flag-model", cfg.Model)
		assert.Equal(t, "flag-key", cfg.APIKey)
		assert.Equal(t, "debug", cfg.LogLevel)
	})
}

func TestResolveConfig_Port(t *testing.T) {
	t.Parallel()

	cfg, err := resolveConfig("", envOf(map[string]string{"PORT": "9000"}), overrides{})
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)

	cfg, err = resolveConfig("", envOf(map[string]string{"PORT": "9000", "TUTOR_ADDR": "127.0.0.1:9100"}), overrides{})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9100", cfg.Addr)
}

func TestResolveConfig_KeyFollowsProvider(t *testing.T) {
	t.Parallel()
	env := envOf(map[string]string{
		"TOGETHER_API_KEY": "tk",
		"GEMINI_API_KEY":   "gk",
	})

	cfg, err := resolveConfig("", env, overrides{})
	require.NoError(t, err)
	assert.Equal(t, "tk", cfg.APIKey)

	cfg, err = resolveConfig("", env, overrides{Provider: tutor.ProviderGemini})
	require.NoError(t, err)
	assert.Equal(t, tutor.ProviderGemini, cfg.Provider)
	assert.Equal(t, "gk", cfg.APIKey)
}

func TestResolveConfig_Invalid(t *testing.T) {
	t.Parallel()
	_, err := resolveConfig("", envOf(map[string]string{"TUTOR_PROVIDER": "openai"}), overrides{})
	assert.ErrorIs(t, err, tutor.ErrValidation)
}

func TestResolveConfig_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := resolveConfig(filepath.Join(t.TempDir(), "nope.yaml"), envOf(nil), overrides{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEnvLookup(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TOGETHER_API_KEY=file-key\nTUTOR_MODEL=file-model\n"), 0o644))

	getenv, err := envLookup(path, envOf(map[string]string{"TUTOR_MODEL": "process-model"}))
	require.NoError(t, err)
	assert.Equal(t, "file-key", getenv("TOGETHER_API_KEY"))
	assert.Equal(t, "process-model", getenv("TUTOR_MODEL"))
	assert.Empty(t, getenv("PORT"))

	cfg, err := resolveConfig("", getenv, overrides{})
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, "process-model", cfg.Model)
}

func TestEnvLookup_Disabled(t *testing.T) {
	t.Parallel()
	getenv, err := envLookup("", envOf(map[string]string{"PORT": "1"}))
	require.NoError(t, err)
	assert.Equal(t, "1", getenv("PORT"))
}

func TestEnvLookup_MissingExplicitFile(t *testing.T) {
	t.Parallel()
	_, err := envLookup(filepath.Join(t.TempDir(), "missing.env"), envOf(nil))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEnvLookup_MissingDefaultFileIgnored(t *testing.T) {
	t.Parallel()
	// The package directory has no .env file.
	getenv, err := envLookup(defaultEnvFile, envOf(map[string]string{"PORT": "1"}))
	require.NoError(t, err)
	assert.Equal(t, "1", getenv("PORT"))
}
