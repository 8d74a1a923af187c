package match

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrUnknownFlag indicates a flag letter outside g, i, m, s, u, y
	ErrUnknownFlag = errors.New("unknown regex flag")

	// ErrInvalidConfig indicates invalid configuration was provided
	ErrInvalidConfig = errors.New("invalid match configuration")
)

// CompileError reports a pattern that the engine of a dialect rejected.
type CompileError struct {
	Pattern string
	Dialect Dialect
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %q (%s): %v", e.Pattern, e.Dialect, e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}
