package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/dustin/go-humanize"
	"github.com/specialistvlad/numconv/internal/ctxlog"
	"github.com/specialistvlad/numconv/internal/ingest"
	"github.com/specialistvlad/numconv/internal/report"
)

// Run reads the input file, converts every valid number, prints the report
// and writes it to the configured output path. The elapsed time covers
// reading and conversion.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	start := a.now()

	res, err := ingest.ReadNumbers(ctx, a.config.InputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %q", ErrInputNotFound, a.config.InputPath)
		}
		return err
	}
	if len(res.Invalid) > 0 {
		a.logger.Warn("Skipped invalid lines.", "count", humanize.Comma(int64(len(res.Invalid))))
	}
	if len(res.Numbers) == 0 {
		return ErrNoNumbers
	}

	a.logger.Debug("Converting numbers.", "count", humanize.Comma(int64(len(res.Numbers))), "workers", a.config.Workers)
	rows, err := convertAll(ctx, res.Values(), a.binary, a.hex, a.config.Workers)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	rep := &report.Report{
		Rows:    rows,
		Elapsed: a.now().Sub(start),
		Invalid: res.Invalid,
	}

	if _, err := rep.WriteTo(a.outW); err != nil {
		return fmt.Errorf("failed to print report: %w", err)
	}

	n, err := report.WriteFile(a.config.OutputPath, rep)
	if err != nil {
		return err
	}
	a.logger.Info("Results written.", "path", a.config.OutputPath, "size", humanize.Bytes(uint64(n)), "elapsed", rep.Elapsed)

	a.logger.Debug("App.Run method finished.")
	return nil
}
