// SPDX-License-Identifier: MIT

// Package logging builds the zap loggers used by the command line tools.
// Library packages never build loggers themselves; they take one through a
// WithLogger option and default to a no-op logger.
package logging

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrInvalidFormat is returned for an unknown encoder format.
var ErrInvalidFormat = errors.New("logging: format must be console or json")

// Options select level, encoding and preset of a logger.
type Options struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `mapstructure:"level"`
	// Format is console or json.
	Format string `mapstructure:"format"`
	// Development enables the zap development preset (stack traces on warn,
	// panics on DPanic).
	Development bool `mapstructure:"development"`
}

// New builds a logger writing to stderr.
func New(o Options) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(o.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	cfg := zap.NewProductionConfig()
	if o.Development {
		cfg = zap.NewDevelopmentConfig()
	}
	switch o.Format {
	case "", "console":
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	case "json":
		cfg.Encoding = "json"
	default:
		return nil, fmt.Errorf("%q: %w", o.Format, ErrInvalidFormat)
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}
