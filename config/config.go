// Package config loads the todo service configuration.
package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the runtime configuration of the service.
type Config struct {
	Addr            string   `toml:"addr"`
	DBPath          string   `toml:"db_path"`
	LogLevel        string   `toml:"log_level"`
	LogFormat       string   `toml:"log_format"`
	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

// Duration lets TOML files use strings such as "5s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Environment variables read by Load.
const (
	EnvConfigFile = "TODOS_CONFIG"
	EnvAddr       = "TODOS_ADDR"
	EnvDBPath     = "TODOS_DB_PATH"
	EnvLogLevel   = "TODOS_LOG_LEVEL"
	EnvLogFormat  = "TODOS_LOG_FORMAT"
)

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Addr:            ":3000",
		DBPath:          "todoApplication.db",
		LogLevel:        "info",
		LogFormat:       "console",
		ReadTimeout:     Duration{10 * time.Second},
		WriteTimeout:    Duration{10 * time.Second},
		ShutdownTimeout: Duration{5 * time.Second},
	}
}

// Load builds the configuration in priority order:
// 1. Defaults
// 2. TOML file (-config flag, or TODOS_CONFIG)
// 3. Environment variables
// 4. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := Default()

	configFile := fs.String("config", os.Getenv(EnvConfigFile), "path to a TOML config file")
	addr := fs.String("addr", "", "listen address")
	dbPath := fs.String("db", "", "sqlite database file")
	logLevel := fs.String("log-level", "", "debug, info, warn or error")
	logFormat := fs.String("log-format", "", "console or json")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	if *configFile != "" {
		if _, err := toml.DecodeFile(*configFile, cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", *configFile, err)
		}
	}

	loadFromEnv(cfg)

	setIfNotEmpty(&cfg.Addr, *addr)
	setIfNotEmpty(&cfg.DBPath, *dbPath)
	setIfNotEmpty(&cfg.LogLevel, *logLevel)
	setIfNotEmpty(&cfg.LogFormat, *logFormat)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFromEnv(cfg *Config) {
	setIfNotEmpty(&cfg.Addr, os.Getenv(EnvAddr))
	setIfNotEmpty(&cfg.DBPath, os.Getenv(EnvDBPath))
	setIfNotEmpty(&cfg.LogLevel, os.Getenv(EnvLogLevel))
	setIfNotEmpty(&cfg.LogFormat, os.Getenv(EnvLogFormat))
}

func setIfNotEmpty(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path must not be empty")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log_format %q", c.LogFormat)
	}
	if c.ReadTimeout.Duration < 0 || c.WriteTimeout.Duration < 0 || c.ShutdownTimeout.Duration < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}
	return nil
}
