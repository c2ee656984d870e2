package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Paths are manifest files or directories searched for .hcl files.
	Paths []string `yaml:"paths"`

	LogFormat string `yaml:"log_format"`
	LogLevel  string `yaml:"log_level"`
	// Strict rejects annotations that cannot be interpreted instead of
	// skipping their validation.
	Strict bool `yaml:"strict"`
	// Workers is the number of calls validated concurrently.
	Workers int `yaml:"workers"`
}

const (
	defaultLogFormat = "auto"
	defaultLogLevel  = "info"
	defaultWorkers   = 4
)

// NewConfig validates cfg and fills in defaults for the fields left empty.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Paths) == 0 {
		return nil, errors.New("at least one manifest path is required")
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = defaultLogFormat
	}
	switch cfg.LogFormat {
	case "text", "json", "auto":
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text', 'json' or 'auto'", cfg.LogFormat)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn' or 'error'", cfg.LogLevel)
	}

	if cfg.Workers == 0 {
		cfg.Workers = defaultWorkers
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("invalid worker count %d: must be positive", cfg.Workers)
	}

	return &cfg, nil
}

// LoadConfigFile reads a YAML configuration file. Unknown keys are
// rejected, and relative paths are resolved against the file's directory.
// The result is not validated; pass it through NewConfig.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	base := filepath.Dir(path)
	for i, p := range cfg.Paths {
		if !filepath.IsAbs(p) {
			cfg.Paths[i] = filepath.Join(base, p)
		}
	}
	return &cfg, nil
}
