// Package regexviz turns a regular expression and a test text into the two
// views a regex visualizer shows: the structure of the pattern and the test
// text split into highlighted matches.
//
// The two halves are independent and live in their own packages:
//   - structure parses a pattern into a tree of typed nodes without using any
//     regex engine
//   - match runs the pattern (coregex, or regexp2 for ECMAScript-only
//     syntax) and splits the text into matched and unmatched segments
//
// Both are total: every input, however malformed, produces a result.
//
// Basic usage:
//
//	view := regexviz.Visualize(`(\w+)@example\.com`, "mail bob@example.com", match.Global)
//	fmt.Println(view.Valid)            // true
//	fmt.Println(len(view.Nodes))       // 4
//	fmt.Println(view.Segments[1].Text) // "bob@example.com"
package regexviz

import (
	"github.com/coregx/regexviz/match"
	"github.com/coregx/regexviz/structure"
)

// View is everything needed to render one pattern against one text.
type View struct {
	Pattern  string           `json:"pattern" yaml:"pattern"`
	Flags    string           `json:"flags" yaml:"flags"`
	Valid    bool             `json:"valid" yaml:"valid"`
	Nodes    []structure.Node `json:"nodes" yaml:"nodes"`
	Segments []match.Segment  `json:"segments" yaml:"segments"`
}

// Visualize parses pattern and segments text with the default match
// configuration.
func Visualize(pattern, text string, flags ...match.Flag) View {
	return VisualizeWith(match.Split, match.IsValid, pattern, text, flags...)
}

// Visualizer builds views with a configured Segmenter.
type Visualizer struct {
	segmenter *match.Segmenter
}

// New returns a Visualizer whose matching follows config.
//
// Example:
//
//	config := match.DefaultConfig()
//	config.Dialect = match.DialectECMAScript
//	v, err := regexviz.New(config)
func New(config match.Config) (*Visualizer, error) {
	s, err := match.New(config)
	if err != nil {
		return nil, err
	}
	return &Visualizer{segmenter: s}, nil
}

// Visualize parses pattern and segments text.
func (v *Visualizer) Visualize(pattern, text string, flags ...match.Flag) View {
	return VisualizeWith(v.segmenter.Split, v.segmenter.IsValid, pattern, text, flags...)
}

// VisualizeWith builds a view from explicit segment and validity functions.
func VisualizeWith(
	segment func(text, pattern string, flags ...match.Flag) []match.Segment,
	isValid func(pattern string) bool,
	pattern, text string,
	flags ...match.Flag,
) View {
	return View{
		Pattern:  pattern,
		Flags:    match.FormatFlags(flags),
		Valid:    isValid(pattern),
		Nodes:    structure.Parse(pattern),
		Segments: segment(text, pattern, flags...),
	}
}
