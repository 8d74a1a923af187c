package match

import (
	"fmt"
	"time"
)

// Dialect selects the regular-expression engine that executes patterns.
type Dialect string

const (
	// DialectAuto compiles with the RE2 engine and falls back to the
	// ECMAScript engine for patterns RE2 cannot express (lookaround,
	// backreferences). It accepts the union of both syntaxes, so RE2-only
	// constructs such as `(?i)a`, `(?P<n>a)`, `\Q...\E` and `\z` are valid
	// here even though a JavaScript host rejects them. Use DialectECMAScript
	// to validate strictly against JavaScript syntax.
	DialectAuto Dialect = "auto"

	// DialectRE2 uses coregex: linear-time, RE2 syntax.
	DialectRE2 Dialect = "re2"

	// DialectECMAScript uses regexp2 in ECMAScript mode: backtracking,
	// JavaScript syntax.
	DialectECMAScript Dialect = "ecmascript"
)

// Dialects lists the accepted dialect names.
var Dialects = []Dialect{DialectAuto, DialectRE2, DialectECMAScript}

// DefaultMatchTimeout bounds a single ECMAScript search.
const DefaultMatchTimeout = time.Second

// Config controls how a Segmenter compiles and runs patterns.
//
// Example:
//
//	config := match.DefaultConfig()
//	config.Dialect = match.DialectECMAScript
//	seg, err := match.New(config)
type Config struct {
	// Dialect selects the engine.
	// Default: DialectAuto
	Dialect Dialect

	// MatchTimeout bounds one ECMAScript search; a search that runs longer
	// degrades the whole segmentation to the error segment. Zero disables
	// the limit. The RE2 engine runs in linear time and ignores it.
	// Default: 1s
	MatchTimeout time.Duration

	// LiteralFastPath runs patterns like "cat|dog" on an Aho-Corasick
	// automaton instead of a regex engine.
	// Default: true
	LiteralFastPath bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Dialect:         DialectAuto,
		MatchTimeout:    DefaultMatchTimeout,
		LiteralFastPath: true,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if !c.Dialect.Valid() {
		return fmt.Errorf("%w: unknown dialect %q", ErrInvalidConfig, c.Dialect)
	}
	if c.MatchTimeout < 0 {
		return fmt.Errorf("%w: negative match timeout %v", ErrInvalidConfig, c.MatchTimeout)
	}
	return nil
}

// Valid reports whether d is one of Dialects.
func (d Dialect) Valid() bool {
	for _, known := range Dialects {
		if d == known {
			return true
		}
	}
	return false
}
