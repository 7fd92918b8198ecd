// Package config loads logger settings from a YAML or JSON file and the
// environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/philipp01105/lcl2log/core"
)

// Environment variables that override file values.
const (
	EnvLevel        = "LCL2_LOG_LEVEL"
	EnvDocumentsDir = "LCL2_DOCUMENTS_DIR"
	EnvWriteTimeout = "LCL2_WRITE_TIMEOUT"
)

// Config holds the logger settings.
type Config struct {
	// Level is the minimum severity that is emitted and persisted
	Level core.Level `json:"level" yaml:"level"`
	// DocumentsDir is the application's document-storage root; the log
	// file is always DocumentsDir/LCL2.txt
	DocumentsDir string `json:"documents_dir" yaml:"documents_dir"`
	// WriteTimeout bounds each batch append (0 = no timeout)
	WriteTimeout Duration `json:"write_timeout" yaml:"write_timeout"`
	// Stdout mirrors every line to standard output
	Stdout *bool `json:"stdout,omitempty" yaml:"stdout,omitempty"`
}

// Duration is a time.Duration written as a string such as "250ms".
type Duration time.Duration

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText encodes the duration as a Go duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// StdoutEnabled reports whether console mirroring is on (default true).
func (c Config) StdoutEnabled() bool {
	return c.Stdout == nil || *c.Stdout
}

// Default returns the built-in settings: INFO, no write timeout, and the
// documents directory under the user's config dir (or the working
// directory when that cannot be determined).
func Default() Config {
	return Config{
		Level:        core.InfoLevel,
		DocumentsDir: defaultDocumentsDir(),
	}
}

func defaultDocumentsDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "lcl2")
	}
	return "."
}

// configFormat represents supported configuration file formats.
type configFormat int

const (
	configFormatJSON configFormat = iota
	configFormatYAML
)

// detectConfigFormat determines the configuration file format based on file extension.
func detectConfigFormat(path string) configFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// Load starts from Default, applies the file at path (skipped when path
// is empty) and then the environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := unmarshalConfig(data, &cfg, detectConfigFormat(path)); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func unmarshalConfig(data []byte, cfg *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvLevel); v != "" {
		level, err := core.ParseLevel(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLevel, err)
		}
		cfg.Level = level
	}
	if v := os.Getenv(EnvDocumentsDir); v != "" {
		cfg.DocumentsDir = v
	}
	if v := os.Getenv(EnvWriteTimeout); v != "" {
		if err := cfg.WriteTimeout.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%s: %w", EnvWriteTimeout, err)
		}
	}
	return nil
}
