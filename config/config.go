// Package config loads regexviz settings from defaults, an optional
// .regexviz.yaml file and REGEXVIZ_* environment variables.
package config

import (
	"errors"
	"time"

	"github.com/coregx/regexviz/match"
	"github.com/coregx/regexviz/render"
)

// Config is the top-level configuration struct for regexviz.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Match  MatchConfig  `mapstructure:"match"`
	Output OutputConfig `mapstructure:"output"`
}

// MatchConfig holds engine settings.
type MatchConfig struct {
	Dialect         string        `mapstructure:"dialect"`
	Timeout         time.Duration `mapstructure:"timeout"`
	LiteralFastPath bool          `mapstructure:"literal_fast_path"`
	Flags           string        `mapstructure:"flags"`
}

// OutputConfig holds presentation settings.
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Color  string `mapstructure:"color"`
}

// Color modes for OutputConfig.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default values.
const (
	DefaultDialect         = string(match.DialectAuto)
	DefaultTimeout         = match.DefaultMatchTimeout
	DefaultLiteralFastPath = true
	DefaultFlags           = ""
	DefaultFormat          = string(render.FormatText)
	DefaultColor           = ColorAuto
)

// Sentinel errors for configuration validation.
var (
	// ErrInvalidDialect indicates an unknown match.dialect.
	ErrInvalidDialect = errors.New("match.dialect must be auto, re2 or ecmascript")
	// ErrInvalidTimeout indicates a negative match.timeout.
	ErrInvalidTimeout = errors.New("match.timeout must be non-negative")
	// ErrInvalidFlags indicates match.flags contains an unknown letter.
	ErrInvalidFlags = errors.New("match.flags may only contain g, i, m, s, u, y")
	// ErrInvalidFormat indicates an unknown output.format.
	ErrInvalidFormat = errors.New("output.format must be text, json or yaml")
	// ErrInvalidColor indicates an unknown output.color.
	ErrInvalidColor = errors.New("output.color must be auto, always or never")
)

// Validate checks Config invariants and returns the first error found.
// Empty string fields are accepted and mean "use the default".
func (c *Config) Validate() error {
	if c.Match.Dialect != "" && !match.Dialect(c.Match.Dialect).Valid() {
		return ErrInvalidDialect
	}

	if c.Match.Timeout < 0 {
		return ErrInvalidTimeout
	}

	if _, err := match.ParseFlags(c.Match.Flags); err != nil {
		return ErrInvalidFlags
	}

	if c.Output.Format != "" {
		if _, err := render.ParseFormat(c.Output.Format); err != nil {
			return ErrInvalidFormat
		}
	}

	switch c.Output.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return ErrInvalidColor
	}

	return nil
}

// Segmenter converts the match section to a match.Config.
func (c *Config) Segmenter() match.Config {
	mc := match.DefaultConfig()
	if c.Match.Dialect != "" {
		mc.Dialect = match.Dialect(c.Match.Dialect)
	}
	mc.MatchTimeout = c.Match.Timeout
	mc.LiteralFastPath = c.Match.LiteralFastPath
	return mc
}

// Format returns the configured output format, defaulting to text.
func (c *Config) Format() render.Format {
	if c.Output.Format == "" {
		return render.FormatText
	}
	return render.Format(c.Output.Format)
}

// UseColor resolves the color mode. isTerminal is consulted only in auto mode.
func (c *Config) UseColor(isTerminal bool) bool {
	switch c.Output.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}
