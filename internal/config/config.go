// Package config loads relq settings from an optional YAML file and
// RELQ_-prefixed environment variables. Environment variables win.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/roach88/relq/internal/querysql"
)

// EnvPrefix prefixes every environment variable read by Load,
// e.g. RELQ_DIALECT or RELQ_LOG_LEVEL.
const EnvPrefix = "RELQ_"

// DefaultFile is looked up in the working directory when no file is given.
const DefaultFile = "relq.yaml"

// Config holds the settings shared by all commands.
type Config struct {
	// Dialect selects the SQL dialect: default, postgres or sqlite.
	Dialect string `mapstructure:"dialect"`

	// Format selects command output: text or json.
	Format string `mapstructure:"format"`

	// LogLevel is a zerolog level name: debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`

	// SchemaDir is the directory holding the CUE schema.
	SchemaDir string `mapstructure:"schema_dir"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		Dialect:   querysql.Default.Name,
		Format:    "text",
		LogLevel:  "warn",
		SchemaDir: "schema",
	}
}

// Load reads path (or DefaultFile if it exists, when path is empty) and
// then the environment.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := Defaults()
	v.SetDefault("dialect", defaults.Dialect)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("schema_dir", defaults.SchemaDir)

	// 1. Config file. An explicit path must exist; the default is optional.
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else if _, err := os.Stat(DefaultFile); err == nil {
		v.SetConfigFile(DefaultFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", DefaultFile, err)
		}
	}

	// 2. Environment. Keys are flat, so RELQ_LOG_LEVEL maps to log_level.
	for _, envStr := range os.Environ() {
		key, value, ok := strings.Cut(envStr, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		propKey := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		if propKey == "" {
			continue
		}
		v.Set(propKey, value)
	}

	// 3. Unmarshal into struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects unknown dialects and output formats.
func (c *Config) Validate() error {
	var errs []error
	if _, err := querysql.DialectByName(c.Dialect); err != nil {
		errs = append(errs, fmt.Errorf("dialect: %w", err))
	}
	switch c.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("format: must be text or json, got %q", c.Format))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SQLDialect returns the configured dialect.
func (c *Config) SQLDialect() (querysql.Dialect, error) {
	return querysql.DialectByName(c.Dialect)
}
