package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const envPrefix = "GUITARCHORDS_"

// Config holds runtime settings for the CLI.
type Config struct {
	LogLevel    string        `yaml:"log_level"`
	Seed        int64         `yaml:"seed"`         // 0 picks a time-based seed
	ActionDelay time.Duration `yaml:"action_delay"` // pause between replayed actions
	Color       bool          `yaml:"color"`
}

func Default() Config {
	return Config{
		LogLevel:    "info",
		ActionDelay: 100 * time.Millisecond,
		Color:       true,
	}
}

// Load builds a Config from defaults, then the YAML file at path (if path
// is non-empty), then a .env file in the working directory, then
// GUITARCHORDS_* environment variables.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}

	if v := env("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := env("SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%sSEED: %w", envPrefix, err)
		}
		cfg.Seed = seed
	}
	if v := env("ACTION_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("%sACTION_DELAY: %w", envPrefix, err)
		}
		cfg.ActionDelay = d
	}
	if v := env("COLOR"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%sCOLOR: %w", envPrefix, err)
		}
		cfg.Color = b
	}
	return cfg, cfg.Validate()
}

var errNegativeDelay = errors.New("action_delay must not be negative")

func (c Config) Validate() error {
	if c.ActionDelay < 0 {
		return errNegativeDelay
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps debug|info|warn|error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

func env(key string) string { return strings.TrimSpace(os.Getenv(envPrefix + key)) }
