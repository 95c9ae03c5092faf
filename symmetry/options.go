// SPDX-License-Identifier: MIT

package symmetry

import (
	"math"

	"go.uber.org/zap"

	"github.com/seb-eis/Mocassin-sub007/vector"
)

// DefaultCacheLimit is the number of point operation groups a Service keeps.
const DefaultCacheLimit = 256

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	comparer      vector.NumericComparer
	trimTolerance float64
	cacheLimit    int
	logger        *zap.Logger
}

func defaultServiceOptions() serviceOptions {
	return serviceOptions{
		comparer:      vector.NewRangeComparer(vector.DefaultTolerance),
		trimTolerance: DefaultTrimTolerance,
		cacheLimit:    DefaultCacheLimit,
		logger:        zap.NewNop(),
	}
}

// WithComparer sets the geometric tolerance comparer.
func WithComparer(c vector.NumericComparer) ServiceOption {
	return func(o *serviceOptions) { o.comparer = c }
}

// WithTrimTolerance overrides the trim tolerance of every operation of the
// service. Panics on a negative or non-finite tolerance.
func WithTrimTolerance(tolerance float64) ServiceOption {
	if tolerance < 0 || math.IsNaN(tolerance) || math.IsInf(tolerance, 0) {
		panic(panicTrimToleranceInvalid)
	}
	return func(o *serviceOptions) { o.trimTolerance = tolerance }
}

// WithCacheLimit sets the point operation group cache size; 0 disables it.
// Panics on a negative limit.
func WithCacheLimit(limit int) ServiceOption {
	if limit < 0 {
		panic(panicCacheLimitInvalid)
	}
	return func(o *serviceOptions) { o.cacheLimit = limit }
}

// WithLogger sets the service logger. Panics on nil.
func WithLogger(l *zap.Logger) ServiceOption {
	if l == nil {
		panic(panicLoggerNil)
	}
	return func(o *serviceOptions) { o.logger = l }
}
