package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noDotEnv(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(Options{DotEnv: noDotEnv(t)})
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "https://thronesapi.com", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Portrait.Enabled)
	assert.Equal(t, 32, cfg.Portrait.Width)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("THRONESQUIZ_API_BASE_URL", "http://localhost:8080")
	t.Setenv("THRONESQUIZ_API_TIMEOUT", "3s")
	t.Setenv("THRONESQUIZ_ENV", "production")
	t.Setenv("THRONESQUIZ_PORTRAIT_ENABLED", "false")

	cfg, err := Load(Options{DotEnv: noDotEnv(t)})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.Portrait.Enabled)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  base_url: https://example.test\nportrait:\n  width: 20\n"), 0o600))

	cfg, err := Load(Options{ConfigFile: path, DotEnv: noDotEnv(t)})
	require.NoError(t, err)
	assert.Equal(t, "https://example.test", cfg.API.BaseURL)
	assert.Equal(t, 20, cfg.Portrait.Width)
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	_, err := Load(Options{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml"), DotEnv: noDotEnv(t)})
	assert.Error(t, err)
}

func TestLoad_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("THRONESQUIZ_LOG_LEVEL=debug\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("THRONESQUIZ_LOG_LEVEL") })

	cfg, err := Load(Options{DotEnv: path})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_FlagsWin(t *testing.T) {
	t.Setenv("THRONESQUIZ_API_BASE_URL", "http://from-env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("api-url", "", "")
	flags.String("log-file", "", "")
	require.NoError(t, flags.Parse([]string{"--api-url", "http://from-flag", "--log-file", "-"}))

	cfg, err := Load(Options{Flags: flags, DotEnv: noDotEnv(t)})
	require.NoError(t, err)
	assert.Equal(t, "http://from-flag", cfg.API.BaseURL)
	assert.Equal(t, "-", cfg.Log.File)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"ok", func(*Config) {}, false},
		{"empty url", func(c *Config) { c.API.BaseURL = "" }, true},
		{"not http", func(c *Config) { c.API.BaseURL = "ftp://x" }, true},
		{"negative timeout", func(c *Config) { c.API.Timeout = -time.Second }, true},
		{"negative width", func(c *Config) { c.Portrait.Width = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{API: API{BaseURL: "https://thronesapi.com", Timeout: time.Second}}
			tt.mutate(&cfg)
			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}
