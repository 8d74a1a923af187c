package match

import (
	"fmt"
	"strings"
)

// Flag is a matching-mode modifier, named by its conventional letter.
type Flag rune

const (
	// Global finds every match instead of only the first ("g").
	Global Flag = 'g'

	// IgnoreCase matches letters case-insensitively ("i").
	IgnoreCase Flag = 'i'

	// Multiline makes ^ and $ match at line boundaries ("m").
	Multiline Flag = 'm'

	// DotAll lets . match a newline ("s").
	DotAll Flag = 's'

	// Unicode enables full Unicode escapes ("u"). The RE2 dialect is always
	// Unicode-aware, so there it has no effect.
	Unicode Flag = 'u'

	// Sticky accepts a match only at the current search position ("y").
	Sticky Flag = 'y'
)

// AllFlags lists the recognized flags in their conventional order.
var AllFlags = []Flag{Global, IgnoreCase, Multiline, DotAll, Unicode, Sticky}

// String returns the flag letter.
func (f Flag) String() string {
	return string(f)
}

// Valid reports whether f is a recognized flag.
func (f Flag) Valid() bool {
	return f.bit() != 0
}

func (f Flag) bit() flagSet {
	for i, known := range AllFlags {
		if f == known {
			return 1 << i
		}
	}
	return 0
}

// ParseFlags parses a flag string such as "gi". Repeated letters are
// accepted and kept; they are collapsed when the flags are used.
func ParseFlags(s string) ([]Flag, error) {
	flags := make([]Flag, 0, len(s))
	for _, r := range s {
		f := Flag(r)
		if !f.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFlag, r)
		}
		flags = append(flags, f)
	}
	return flags, nil
}

// FormatFlags renders flags as a string with duplicates and unrecognized
// flags removed, keeping first-seen order.
//
// Example:
//
//	match.FormatFlags([]match.Flag{match.IgnoreCase, match.Global, match.IgnoreCase}) // "ig"
func FormatFlags(flags []Flag) string {
	var (
		b    strings.Builder
		seen flagSet
	)
	for _, f := range flags {
		bit := f.bit()
		if bit == 0 || seen&bit != 0 {
			continue
		}
		seen |= bit
		b.WriteRune(rune(f))
	}
	return b.String()
}

// flagSet is the deduplicated form of a flag list.
type flagSet uint8

func newFlagSet(flags []Flag) flagSet {
	var fs flagSet
	for _, f := range flags {
		fs |= f.bit()
	}
	return fs
}

func (fs flagSet) has(f Flag) bool {
	return fs&f.bit() != 0
}
