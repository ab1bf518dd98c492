package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("todos", flag.ContinueOnError)
}

func clearEnv(t *testing.T) {
	for _, key := range []string{EnvConfigFile, EnvAddr, EnvDBPath, EnvLogLevel, EnvLogFormat} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "todoApplication.db", cfg.DBPath)
}

func TestLoadPriority(t *testing.T) {
	clearEnv(t)

	configFile := filepath.Join(t.TempDir(), "todos.toml")
	err := os.WriteFile(configFile, []byte(`
addr = ":8080"
db_path = "from-file.db"
log_level = "debug"
shutdown_timeout = "30s"
`), 0o644)
	require.NoError(t, err)

	t.Setenv(EnvDBPath, "from-env.db")
	t.Setenv(EnvLogFormat, "json")

	cfg, err := Load(newFlagSet(), []string{"-config", configFile, "-log-level", "warn"})
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr, "file overrides default")
	assert.Equal(t, "from-env.db", cfg.DBPath, "env overrides file")
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "warn", cfg.LogLevel, "flag overrides file")
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout.Duration)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout.Duration)
}

func TestLoadConfigFileFromEnv(t *testing.T) {
	clearEnv(t)

	configFile := filepath.Join(t.TempDir(), "todos.toml")
	require.NoError(t, os.WriteFile(configFile, []byte(`addr = "127.0.0.1:9000"`), 0o644))
	t.Setenv(EnvConfigFile, configFile)

	cfg, err := Load(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
}

func TestLoadErrors(t *testing.T) {
	tests := map[string]struct {
		file string
		args []string
	}{
		"missing file":      {args: []string{"-config", "/does/not/exist.toml"}},
		"bad toml":          {file: `addr = `},
		"bad duration":      {file: `read_timeout = "soon"`},
		"bad log level":     {args: []string{"-log-level", "loud"}},
		"bad log format":    {args: []string{"-log-format", "xml"}},
		"unknown flag":      {args: []string{"-port", "1"}},
		"negative duration": {file: `write_timeout = "-1s"`},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			args := tt.args
			if tt.file != "" {
				configFile := filepath.Join(t.TempDir(), "todos.toml")
				require.NoError(t, os.WriteFile(configFile, []byte(tt.file), 0o644))
				args = append([]string{"-config", configFile}, args...)
			}

			fs := newFlagSet()
			fs.SetOutput(io.Discard)
			cfg, err := Load(fs, args)
			assert.Nil(t, cfg)
			assert.Error(t, err)
		})
	}
}
