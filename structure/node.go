// Package structure converts a regular-expression pattern into a tree of typed
// nodes for display.
//
// The parser is a hand-written recursive descent over the pattern text. It does
// not use any regex engine and never fails: malformed input is interpreted as
// leniently as possible, and anything the parser cannot make sense of is
// returned as a single opaque literal.
//
// Basic usage:
//
//	nodes := structure.Parse(`(?:ab)+c`)
//	for _, n := range nodes {
//	    fmt.Println(n.Kind, n.Display, n.QuantifierBadge())
//	}
package structure

import "fmt"

// Kind identifies the role of a Node in the pattern tree.
type Kind uint8

const (
	// KindLiteral is plain text or a single escape sequence such as `\d`.
	KindLiteral Kind = iota

	// KindGroup is a parenthesized sub-pattern; its body is in Children.
	KindGroup

	// KindClass is a bracketed character class or the `.` wildcard.
	KindClass

	// KindAlternation is the `|` marker. It sits between its alternatives
	// as a sibling rather than splitting them into branches.
	KindAlternation

	// KindAssertion is a `^` or `$` anchor.
	KindAssertion

	// KindSequence tags a composite run of nodes. The parser never emits it
	// at the top level.
	KindSequence
)

var kindNames = [...]string{
	KindLiteral:     "literal",
	KindGroup:       "group",
	KindClass:       "class",
	KindAlternation: "alternation",
	KindAssertion:   "assertion",
	KindSequence:    "sequence",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("structure: unknown node kind %d", k)
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("structure: unknown node kind %q", text)
}

// Display labels used for synthesized nodes.
const (
	GroupDisplay       = "Group"
	AlternationDisplay = "OR"
	StartDisplay       = "Start"
	EndDisplay         = "End"
	AnyCharDisplay     = "Any Char"
)

// Node is one element of a parsed pattern.
//
// Nodes returned by Parse are owned by the caller; the parser keeps no
// reference to them.
type Node struct {
	// Kind is the role of the node.
	Kind Kind `json:"kind" yaml:"kind"`

	// Display is the label shown for the node: the literal text, the
	// bracketed class, or a fixed label such as "Group" or "Start".
	Display string `json:"display" yaml:"display"`

	// Children holds the body of a group. Empty for every other kind.
	Children []Node `json:"children,omitempty" yaml:"children,omitempty"`

	// Quantifier is the raw quantifier text (`*`, `+`, `?`, `{m,n}`).
	// Back-to-back quantifiers are concatenated, e.g. `+?`.
	Quantifier string `json:"quantifier,omitempty" yaml:"quantifier,omitempty"`

	// Capturing reports whether a group captures. Only meaningful for
	// KindGroup; false for a group opened with `(?:`.
	Capturing bool `json:"isCapturing,omitempty" yaml:"isCapturing,omitempty"`
}

// QuantifierBadge returns the quantifier as "<label> (<raw>)", for example
// "1 or more (+)". Returns "" if the node has no quantifier.
func (n Node) QuantifierBadge() string {
	if n.Quantifier == "" {
		return ""
	}
	return QuantifierLabel(n.Quantifier) + " (" + n.Quantifier + ")"
}
