// Package pool runs a mapping function over a slice with bounded concurrency.
package pool

import (
	"context"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Map calls fn for every input with at most limit calls in flight and returns
// the results in input order. The first error cancels the context handed to
// the remaining calls and is returned; no partial results are returned with it.
func Map[I, O any](ctx context.Context, inputs []I, limit int, fn func(context.Context, I) (O, error)) ([]O, error) {
	out := make([]O, len(inputs))
	if len(inputs) == 0 {
		return out, nil
	}
	workers := max(limit, 1)
	workers = min(workers, len(inputs))
	slog.Debug("pool map", slog.Int("inputs", len(inputs)), slog.Int("workers", workers))

	var cursor atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	for range workers {
		g.Go(func() error {
			for {
				i := int(cursor.Add(1) - 1)
				if i >= len(inputs) {
					return nil
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				v, err := fn(ctx, inputs[i])
				if err != nil {
					return err
				}
				out[i] = v
			}
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
