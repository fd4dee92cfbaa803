package app

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/specialistvlad/numconv/internal/radix"
)

var (
	// ErrInputNotFound is returned when the input file does not exist.
	ErrInputNotFound = errors.New("input file does not exist")

	// ErrNoNumbers is returned when the input holds no parsable integer.
	ErrNoNumbers = errors.New("no valid numbers to process")
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config

	binary radix.Encoder
	hex    radix.Encoder
	now    func() time.Time
}

// Option customizes an App.
type Option func(*App)

// WithClock replaces the clock used to time a run.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// NewApp returns an App that prints the report to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config, opts ...Option) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)

	a := &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		binary: radix.BinaryEncoder,
		hex:    radix.HexEncoder,
		now:    time.Now,
	}
	if cfg.PadHex {
		a.hex = radix.PaddedHexEncoder
	}
	for _, opt := range opts {
		opt(a)
	}

	logger.Debug("App configured.", "input", cfg.InputPath, "output", cfg.OutputPath, "hex_encoder", a.hex.Name(), "workers", cfg.Workers)
	return a
}
