package yaml_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/tutor"
	"github.com/fwojciec/tutor/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()
	data := []byte(`
addr: ":9090"
provider: anthropic
model: claude-sonnet-4-20250514
temperature: 0.3
max_tokens: 1024
timeout: 30s
shutdown_timeout: 5s
allow_origins:
  - http://localhost:3000
log_level: debug
log_format: console
`)
	cfg, err := yaml.ParseConfig(data)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, tutor.ProviderAnthropic, cfg.Provider)
	assert.Equal(t, "claude-sonnet-4-20250514", cfg.Model)
	assert.InDelta(t, 0.3, cfg.Temperature, 1e-9)
	assert.Equal(t, 1024, cfg.MaxTokens)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowOrigins)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestParseConfig_KeepsDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := yaml.ParseConfig([]byte("model: custom\n"))
	require.NoError(t, err)
	want := tutor.DefaultConfig()
	want.Model = "custom"
	assert.Equal(t, want, cfg)
}

func TestParseConfig_Empty(t *testing.T) {
	t.Parallel()
	cfg, err := yaml.ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, tutor.DefaultConfig(), cfg)
}

func TestParseConfig_UnknownKey(t *testing.T) {
	t.Parallel()
	_, err := yaml.ParseConfig([]byte("temprature: 0.5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "temprature")
}

func TestParseConfig_Invalid(t *testing.T) {
	t.Parallel()
	_, err := yaml.ParseConfig([]byte("provider: openai\n"))
	assert.ErrorIs(t, err, tutor.ErrValidation)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "tutor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":7000\"\n"), 0o644))

	cfg, err := yaml.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Addr)
}

func TestLoadConfig_Missing(t *testing.T) {
	t.Parallel()
	_, err := yaml.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
