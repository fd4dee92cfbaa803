package app

import (
	"context"
	"math/big"

	"github.com/specialistvlad/numconv/internal/radix"
	"github.com/specialistvlad/numconv/internal/report"
	"golang.org/x/sync/errgroup"
)

// convertAll encodes values on up to workers goroutines. Each goroutine owns a
// contiguous slice of the output, so rows keep the input order.
func convertAll(ctx context.Context, values []*big.Int, binary, hex radix.Encoder, workers int) ([]report.Row, error) {
	rows := make([]report.Row, len(values))
	if len(values) == 0 {
		return rows, nil
	}

	chunk := (len(values) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < len(values); lo += chunk {
		hi := min(lo+chunk, len(values))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				v := values[i]
				rows[i] = report.Row{Value: v, Binary: binary.Encode(v), Hex: hex.Encode(v)}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}
