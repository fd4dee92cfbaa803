package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/numconv/internal/report"
)

// Defaults applied by NewConfig to zero-valued fields.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultWorkers   = 4
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath  string
	OutputPath string

	LogFormat string
	LogLevel  string
	Workers   int

	// PadHex sign-extends negative hexadecimal output to a nibble boundary.
	PadHex bool
}

// NewConfig fills defaults and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = report.DefaultFileName
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if cfg.Workers == 0 {
		cfg.Workers = DefaultWorkers
	}

	if _, ok := logLevels[cfg.LogLevel]; !ok {
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("invalid workers %d: must be at least 1", cfg.Workers)
	}

	return &cfg, nil
}
