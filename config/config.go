// SPDX-License-Identifier: MIT

// Package config loads the settings of the command line tools from defaults,
// an optional YAML file, MOCASSIN_* environment variables and bound flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/seb-eis/Mocassin-sub007/logging"
	"github.com/seb-eis/Mocassin-sub007/symmetry"
	"github.com/seb-eis/Mocassin-sub007/vector"
)

// EnvPrefix prefixes environment overrides, e.g. MOCASSIN_LOG_LEVEL.
const EnvPrefix = "MOCASSIN"

// ErrInvalidSettings is returned by Validate.
var ErrInvalidSettings = errors.New("config: invalid settings")

// Settings are the engine and tool settings.
type Settings struct {
	// Catalogue is a space group catalogue file; empty uses the embedded one.
	Catalogue string `mapstructure:"catalogue"`
	// Tolerance is the geometric comparison tolerance.
	Tolerance float64 `mapstructure:"tolerance"`
	// Relative compares symmetry indicators with a relative tolerance.
	// Geometric comparisons always use the ranged tolerance.
	Relative bool `mapstructure:"relative"`
	// TrimTolerance absorbs coordinates near a cell boundary.
	TrimTolerance float64 `mapstructure:"trim_tolerance"`
	// CacheLimit is the number of cached point operation groups.
	CacheLimit int `mapstructure:"cache_limit"`
	// Workers bounds the number of groups computed at once.
	Workers int `mapstructure:"workers"`

	Log logging.Options `mapstructure:"log"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Tolerance:     vector.DefaultTolerance,
		TrimTolerance: symmetry.DefaultTrimTolerance,
		CacheLimit:    symmetry.DefaultCacheLimit,
		Workers:       4,
		Log:           logging.Options{Level: "info", Format: "console"},
	}
}

// Load reads the settings. path may be empty; flags may be nil. Flags are
// bound by name, so a flag "log.level" overrides the log level.
func Load(path string, flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	d := Defaults()
	v.SetDefault("catalogue", d.Catalogue)
	v.SetDefault("tolerance", d.Tolerance)
	v.SetDefault("relative", d.Relative)
	v.SetDefault("trim_tolerance", d.TrimTolerance)
	v.SetDefault("cache_limit", d.CacheLimit)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.development", d.Log.Development)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Settings{}, fmt.Errorf("config: binding flags: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("config: decoding: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// Validate checks value ranges.
func (s Settings) Validate() error {
	switch {
	case !(s.Tolerance > 0) || math.IsInf(s.Tolerance, 0):
		return fmt.Errorf("tolerance %g must be positive: %w", s.Tolerance, ErrInvalidSettings)
	case s.TrimTolerance < 0 || math.IsNaN(s.TrimTolerance) || math.IsInf(s.TrimTolerance, 0):
		return fmt.Errorf("trim_tolerance %g must be non-negative: %w", s.TrimTolerance, ErrInvalidSettings)
	case s.CacheLimit < 0:
		return fmt.Errorf("cache_limit %d must be non-negative: %w", s.CacheLimit, ErrInvalidSettings)
	case s.Workers < 1:
		return fmt.Errorf("workers %d must be positive: %w", s.Workers, ErrInvalidSettings)
	}

	return nil
}

// Comparer returns the ranged geometric comparer. Relative does not affect
// it.
func (s Settings) Comparer() vector.NumericComparer {
	return vector.NewRangeComparer(s.Tolerance)
}

// IndicatorComparer returns the comparer for symmetry indicators, relative
// when Relative is set.
func (s Settings) IndicatorComparer() symmetry.IndicatorComparer {
	if s.Relative {
		return symmetry.NewIndicatorComparer(vector.NewRelativeComparer(s.Tolerance))
	}

	return symmetry.NewIndicatorComparer(vector.NewRangeComparer(s.Tolerance))
}

// ServiceOptions returns the symmetry service options of the settings.
func (s Settings) ServiceOptions() []symmetry.ServiceOption {
	return []symmetry.ServiceOption{
		symmetry.WithComparer(s.Comparer()),
		symmetry.WithTrimTolerance(s.TrimTolerance),
		symmetry.WithCacheLimit(s.CacheLimit),
	}
}
