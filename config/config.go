// Package config loads interpreter settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"

	"github.com/t14raptor/es3/parser/scanner"
)

type (
	Config struct {
		Compat CompatConfig `yaml:"compat"`
		Log    LogConfig    `yaml:"log"`
		// Trace logs statement, call and throw events at debug level.
		Trace bool `yaml:"trace"`
	}

	CompatConfig struct {
		// JS is "" for strict ECMA-262, or "1.1" through "1.5".
		JS           string `yaml:"js"`
		SGMLComments bool   `yaml:"sgml_comments"`
	}

	LogConfig struct {
		Level string `yaml:"level"`
	}
)

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{Log: LogConfig{Level: "info"}}
}

// Load reads and validates the file at path. Fields missing from the file
// keep their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates YAML. Unknown fields are an error.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if _, err := scanner.ParseJSVersion(c.Compat.JS); err != nil {
		errs = append(errs, fmt.Errorf("compat.js: %w", err))
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	return errors.Join(errs...)
}

// ScannerCompat returns the scanner settings. Call it on a validated Config.
func (c Config) ScannerCompat() scanner.Compat {
	v, _ := scanner.ParseJSVersion(c.Compat.JS)
	return scanner.Compat{SGMLComments: c.Compat.SGMLComments, JS: v}
}

// LogLevel returns the configured level, or info if it is invalid.
func (c Config) LogLevel() slog.Level {
	l, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown level %q", s)
}
