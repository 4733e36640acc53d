// Package config loads the command-line configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/eegcleaner/pkg/core"
)

// Config holds the settings shared by every eegcleaner command.
type Config struct {
	LogLevel   string // "debug", "info", "warn" or "error"
	Version    string // fixed version tag; empty means ask git
	VersionDir string // git checkout queried for the version tag
	FileName   string // log file name inside each reviewed directory
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	cfg := Config{
		LogLevel:   envStr("EEGCLEANER_LOG_LEVEL", "info"),
		Version:    envStr("EEGCLEANER_VERSION", ""),
		VersionDir: envStr("EEGCLEANER_VERSION_DIR", "."),
		FileName:   envStr("EEGCLEANER_FILE_NAME", core.DefaultFileName),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.FileName == "" || strings.ContainsRune(c.FileName, os.PathSeparator) {
		return fmt.Errorf("config: EEGCLEANER_FILE_NAME=%q must be a plain file name", c.FileName)
	}
	return nil
}

// Level returns the slog level named by LogLevel, defaulting to Info.
func (c Config) Level() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: EEGCLEANER_LOG_LEVEL=%q is not a valid level", s)
	}
	return level, nil
}

func envStr(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
