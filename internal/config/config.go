// Package config loads flowrun settings through viper: built-in defaults,
// an optional YAML config file and FLOWRUN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ib-77/seqflow/internal/logging"
)

// EnvPrefix is the prefix of environment overrides, e.g. FLOWRUN_LOGGING_LEVEL.
const EnvPrefix = "FLOWRUN"

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Config represents the complete flowrun configuration
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Runner  RunnerConfig  `mapstructure:"runner"`
}

// LoggingConfig controls diagnostic logging
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`
	// Format is text or json
	Format string `mapstructure:"format"`
}

// RunnerConfig controls the queue runner used to execute flows
type RunnerConfig struct {
	// DefaultDelay is used by sleep steps without a duration
	DefaultDelay time.Duration `mapstructure:"default_delay"`
	// TimeLayout is the Go time layout used by ts steps
	TimeLayout string `mapstructure:"time_layout"`
	// Timeout bounds how long flowrun waits for a flow to finish (0 = forever)
	Timeout time.Duration `mapstructure:"timeout"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatText,
		},
		Runner: RunnerConfig{
			DefaultDelay: time.Second,
			TimeLayout:   "2006-01-02 15:04:05.000",
			Timeout:      0,
		},
	}
}

// SetDefaults registers the built-in values on v.
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)

	v.SetDefault("runner.default_delay", defaults.Runner.DefaultDelay)
	v.SetDefault("runner.time_layout", defaults.Runner.TimeLayout)
	v.SetDefault("runner.timeout", defaults.Runner.Timeout)
}

// Init prepares v: defaults, env overrides and the config file. An empty
// cfgFile searches the user config dir and the working directory; a missing
// file is not an error unless it was named explicitly.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	// e.g. FLOWRUN_RUNNER_DEFAULT_DELAY for runner.default_delay
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", cfgFile, err)
		}
		return nil
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(Dir())
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// Load reads the configuration from v into a Config struct and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	var errs []error

	if !logging.ValidLevel(c.Logging.Level) {
		errs = append(errs, fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level))
	}
	switch strings.ToLower(c.Logging.Format) {
	case logging.FormatText, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("%w: logging.format %q", ErrInvalid, c.Logging.Format))
	}
	if c.Runner.DefaultDelay < 0 {
		errs = append(errs, fmt.Errorf("%w: runner.default_delay must not be negative", ErrInvalid))
	}
	if c.Runner.Timeout < 0 {
		errs = append(errs, fmt.Errorf("%w: runner.timeout must not be negative", ErrInvalid))
	}
	if c.Runner.TimeLayout == "" {
		errs = append(errs, fmt.Errorf("%w: runner.time_layout is empty", ErrInvalid))
	}

	return errors.Join(errs...)
}

// Dir returns the path to the user's config directory
func Dir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "flowrun")
	}
	return "."
}
