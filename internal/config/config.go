// Package config holds the settings of the suokif command line tool.
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Output formats understood by the compile command.
const (
	FormatText = "text"
	FormatTree = "tree"
	FormatKIF  = "kif"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Formats lists every supported output format.
var Formats = []string{FormatText, FormatTree, FormatKIF, FormatYAML, FormatJSON}

// Config is the root configuration structure.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
	Watch  WatchConfig  `yaml:"watch"`
}

// OutputConfig controls how compile results are printed.
type OutputConfig struct {
	// Format is one of Formats.
	Format string `yaml:"format"`

	// ShowSource prints the source text of each top-level node next to it.
	ShowSource bool `yaml:"show_source"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `yaml:"level"`
}

// WatchConfig controls the watch command.
type WatchConfig struct {
	// Debounce is how long to wait after the last change before recompiling.
	Debounce time.Duration `yaml:"debounce"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills in every unset field.
func ApplyDefaults(cfg *Config) {
	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatText
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = 100 * time.Millisecond
	}
}

// Validate checks the configuration for unsupported values.
func (cfg *Config) Validate() error {
	if !isFormat(cfg.Output.Format) {
		return errors.Errorf("output.format: unsupported format %q (want one of %s)",
			cfg.Output.Format, strings.Join(Formats, ", "))
	}
	if _, err := cfg.Log.SlogLevel(); err != nil {
		return errors.Wrap(err, "log.level")
	}
	if cfg.Watch.Debounce < 0 {
		return errors.Errorf("watch.debounce: must not be negative, got %v", cfg.Watch.Debounce)
	}
	return nil
}

// SlogLevel converts Level into a slog.Level.
func (c LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, errors.Errorf("unknown level %q", c.Level)
}

func isFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}
