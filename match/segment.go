// Package match splits a test text into matched and unmatched runs for
// highlighting.
//
// Segmentation is total: an empty pattern or text, an invalid pattern, or an
// engine failure all degrade to a single unmatched segment instead of an
// error. For every non-degenerate input the segment texts, concatenated in
// order, reproduce the input exactly.
//
// Basic usage:
//
//	for _, seg := range match.Split("foo bar foo", "foo", match.Global) {
//	    fmt.Printf("%q %v\n", seg.Text, seg.IsMatch)
//	}
//
// Patterns run on coregex (RE2 syntax) by default, falling back to regexp2 in
// ECMAScript mode for lookaround and backreferences. Plain alternations such
// as "cat|dog" run on an Aho-Corasick automaton. See Config.
package match

import (
	"strconv"

	"github.com/coregx/regexviz/internal/conv"
)

// Segment ids with no offset.
const (
	NoMatchID = "nomatch"
	ErrorID   = "error"
)

// Segment is one contiguous run of the test text.
type Segment struct {
	// Text is the run's content. Only the single-segment results for empty
	// input or an invalid pattern may have empty Text.
	Text string `json:"text" yaml:"text"`

	// IsMatch reports whether the run is a pattern match.
	IsMatch bool `json:"isMatch" yaml:"isMatch"`

	// ID is unique within one result and derived from the run's role and
	// byte offset, e.g. "pre-0", "match-4", "yes-12", "end-20".
	ID string `json:"id" yaml:"id"`
}

func segmentAt(role string, offset int, text string, isMatch bool) Segment {
	return Segment{Text: text, IsMatch: isMatch, ID: role + "-" + strconv.Itoa(offset)}
}

// Segmenter splits texts by the matches of a pattern. A Segmenter is
// immutable and safe for concurrent use.
type Segmenter struct {
	config Config
}

// New returns a Segmenter for config.
func New(config Config) (*Segmenter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Segmenter{config: config}, nil
}

// Config returns the configuration the Segmenter was built with.
func (s *Segmenter) Config() Config {
	return s.config
}

var defaultSegmenter = &Segmenter{config: DefaultConfig()}

// Split splits text with the default configuration. See Segmenter.Split.
func Split(text, pattern string, flags ...Flag) []Segment {
	return defaultSegmenter.Split(text, pattern, flags...)
}

// IsValid reports whether pattern compiles, with no flags, under the default
// configuration.
func IsValid(pattern string) bool {
	return defaultSegmenter.IsValid(pattern)
}

// Split splits text into matched and unmatched runs of pattern.
//
// Without Global only the first match is highlighted: the result is the text
// before it, the match, and the text after it, each omitted when empty. With
// Global every match is highlighted and the gaps between matches become
// unmatched runs. A zero-width match produces no segment and does not split
// the surrounding unmatched run; the search moves one character past it.
// With Sticky a match counts only if it starts exactly where the search
// starts.
//
// Duplicate and unrecognized flags are ignored. The result is never empty.
//
// Example:
//
//	segs := match.Split("foo bar foo", "foo")
//	// [{"foo" match} {" bar foo" no match}]
func (s *Segmenter) Split(text, pattern string, flags ...Flag) []Segment {
	if pattern == "" || text == "" {
		return []Segment{{Text: text, ID: NoMatchID}}
	}

	fs := newFlagSet(flags)
	m, err := compile(pattern, fs, s.config)
	if err != nil {
		return []Segment{{Text: text, ID: ErrorID}}
	}

	sc := m.scan(text)
	sticky := fs.has(Sticky)

	var segs []Segment
	if fs.has(Global) {
		segs, err = segmentAll(text, sc, sticky)
	} else {
		segs, err = segmentFirst(text, sc, sticky)
	}
	if err != nil {
		return []Segment{{Text: text, ID: ErrorID}}
	}
	if len(segs) == 0 {
		return []Segment{{Text: text, ID: NoMatchID}}
	}
	return segs
}

func segmentFirst(text string, sc scanner, sticky bool) ([]Segment, error) {
	start, end, found, err := sc.next(0)
	if err != nil {
		return nil, err
	}
	if !found || (sticky && start != 0) {
		return nil, nil
	}

	segs := make([]Segment, 0, 3)
	if start > 0 {
		segs = append(segs, segmentAt("pre", start, text[:start], false))
	}
	if end > start {
		segs = append(segs, segmentAt("match", start, text[start:end], true))
	}
	if end < len(text) {
		segs = append(segs, segmentAt("post", start, text[end:], false))
	}
	return segs, nil
}

// segmentAll walks every match. A zero-width match is skipped without
// closing the current gap. at only moves forward (past a zero-width match by
// one rune), so the loop runs at most len(text)+1 times.
func segmentAll(text string, sc scanner, sticky bool) ([]Segment, error) {
	var segs []Segment
	last := 0

	for at := 0; at <= len(text); {
		start, end, found, err := sc.next(at)
		if err != nil {
			return nil, err
		}
		if !found || (sticky && start != at) {
			break
		}

		if end == start {
			at = conv.NextBoundary(text, end)
			continue
		}

		if start > last {
			segs = append(segs, segmentAt("no", last, text[last:start], false))
		}
		segs = append(segs, segmentAt("yes", start, text[start:end], true))
		last, at = end, end
	}

	if last < len(text) {
		segs = append(segs, segmentAt("end", last, text[last:], false))
	}
	return segs, nil
}

// IsValid reports whether pattern compiles with no flags.
func (s *Segmenter) IsValid(pattern string) bool {
	return s.Validate(pattern) == nil
}

// Validate compiles pattern with no flags and returns the engine's error, if
// any. The returned error is a *CompileError.
func (s *Segmenter) Validate(pattern string) error {
	_, err := compile(pattern, 0, s.config)
	return err
}
