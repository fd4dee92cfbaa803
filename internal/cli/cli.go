package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/numconv/internal/app"
	"github.com/specialistvlad/numconv/internal/report"
	"github.com/specialistvlad/numconv/internal/settings"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("numconv", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
numconv - Convert integers to binary and hexadecimal.

Usage:
  numconv [options] FILE

Arguments:
  FILE
    Text file with one integer per line. Lines that are not integers are
    listed under "Invalid Entries" in the report.

Options:
`)
		flagSet.PrintDefaults()
	}

	outputFlag := flagSet.String("output", report.DefaultFileName, "Path of the results file.")
	configFlag := flagSet.String("config", "", "Path to an optional HCL settings file. Flags set on the command line take precedence.")
	logFormatFlag := flagSet.String("log-format", app.DefaultLogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", app.DefaultLogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", app.DefaultWorkers, "Number of concurrent conversion workers.")
	padHexFlag := flagSet.Bool("pad-hex", false, "Sign-extend negative hexadecimal output to a whole number of digits.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() != 1 {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "exactly one input FILE is required"}
	}

	cfg := app.Config{
		InputPath:  flagSet.Arg(0),
		OutputPath: *outputFlag,
		LogFormat:  strings.ToLower(*logFormatFlag),
		LogLevel:   strings.ToLower(*logLevelFlag),
		Workers:    *workersFlag,
		PadHex:     *padHexFlag,
	}

	if *configFlag != "" {
		file, err := settings.Load(context.Background(), *configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		applySettings(&cfg, file, explicitFlags(flagSet))
		slog.Debug("Settings file applied.", "path", *configFlag)
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// explicitFlags returns the names of the flags set on the command line.
func explicitFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// applySettings copies values from the settings file into cfg, skipping any
// whose flag was set explicitly.
func applySettings(cfg *app.Config, file *settings.File, explicit map[string]bool) {
	if file.Output != nil && !explicit["output"] {
		cfg.OutputPath = *file.Output
	}
	if file.LogFormat != nil && !explicit["log-format"] {
		cfg.LogFormat = strings.ToLower(*file.LogFormat)
	}
	if file.LogLevel != nil && !explicit["log-level"] {
		cfg.LogLevel = strings.ToLower(*file.LogLevel)
	}
	if file.Workers != nil && !explicit["workers"] {
		cfg.Workers = *file.Workers
	}
	if file.PadHex != nil && !explicit["pad-hex"] {
		cfg.PadHex = *file.PadHex
	}
}
