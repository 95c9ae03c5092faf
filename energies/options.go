// SPDX-License-Identifier: MIT

package energies

import (
	"runtime"

	"go.uber.org/zap"
)

// Option configures a GeometryGroupAnalyzer.
type Option func(*analyzerOptions)

type analyzerOptions struct {
	logger  *zap.Logger
	workers int
}

func defaultOptions() analyzerOptions {
	return analyzerOptions{
		logger:  zap.NewNop(),
		workers: runtime.GOMAXPROCS(0),
	}
}

// WithLogger sets the analyzer logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}
	return func(o *analyzerOptions) { o.logger = l }
}

// WithWorkers bounds the number of groups computed concurrently by
// CreateExtendedPositionGroups. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *analyzerOptions) { o.workers = n }
}
