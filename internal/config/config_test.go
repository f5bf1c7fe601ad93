package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads, restoring them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvConfigPath, EnvPort, EnvLogLevel, EnvLogFormat, EnvCurrencyLabel} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "billsplit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9090\nlog_level: debug\ncurrency_label: \"$\"\n"), 0o644))
	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvLogFormat, "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, LogFormatJSON, cfg.LogFormat)
	assert.Equal(t, "$", cfg.CurrencyLabel)

	t.Setenv(EnvPort, "7000")
	t.Setenv(EnvCurrencyLabel, "")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, "", cfg.CurrencyLabel)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		file string
	}{
		{name: "non-numeric port", env: map[string]string{EnvPort: "http"}},
		{name: "port out of range", env: map[string]string{EnvPort: "70000"}},
		{name: "unknown level", env: map[string]string{EnvLogLevel: "verbose"}},
		{name: "unknown format", env: map[string]string{EnvLogFormat: "xml"}},
		{name: "malformed yaml", file: "port: [1, 2\n"},
		{name: "missing file", env: map[string]string{EnvConfigPath: "/nonexistent/billsplit.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			if tt.file != "" {
				path := filepath.Join(t.TempDir(), "billsplit.yaml")
				require.NoError(t, os.WriteFile(path, []byte(tt.file), 0o644))
				t.Setenv(EnvConfigPath, path)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
