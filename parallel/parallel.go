// SPDX-License-Identifier: MIT

// Package parallel runs independent units of work on a bounded worker pool
// and returns their results in input order.
package parallel

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

const panicLimitInvalid = "parallel: WithLimit: limit must be positive"

// Option configures Map.
type Option func(*options)

type options struct {
	limit int
}

// WithLimit bounds the number of concurrently running units. Panics if n < 1.
func WithLimit(n int) Option {
	if n < 1 {
		panic(panicLimitInvalid)
	}
	return func(o *options) { o.limit = n }
}

// Map applies fn to every item and returns the results in input order.
// The first error cancels the context passed to the remaining units and is
// returned. Cancellation is observed between units only: a running unit is
// never interrupted.
//
// The default limit is runtime.GOMAXPROCS(0).
func Map[In, Out any](ctx context.Context, items []In, fn func(ctx context.Context, item In) (Out, error),
	opts ...Option) ([]Out, error) {
	o := options{limit: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}

	out := make([]Out, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.limit)
	for i, item := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := fn(gctx, item)
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
