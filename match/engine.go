package match

import (
	"errors"
	"sort"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/coregex/meta"
	"github.com/dlclark/regexp2"

	"github.com/coregx/regexviz/internal/conv"
	"github.com/coregx/regexviz/literal"
)

// matcher is a compiled pattern.
type matcher interface {
	// scan prepares a search over text.
	scan(text string) scanner
}

// scanner searches one text. Offsets are bytes into that text.
type scanner interface {
	// next returns the leftmost match that starts at or after at.
	next(at int) (start, end int, found bool, err error)
}

// compile selects an engine for pattern. The literal fast path is tried
// first, then the configured dialect.
func compile(pattern string, fs flagSet, config Config) (matcher, error) {
	if config.LiteralFastPath && !fs.has(IgnoreCase) {
		if seq, ok := literal.Alternation(pattern); ok {
			if m, err := compileLiterals(seq); err == nil {
				return m, nil
			}
		}
	}

	switch config.Dialect {
	case DialectRE2:
		return compileRE2(pattern, fs)
	case DialectECMAScript:
		return compileECMAScript(pattern, fs, config)
	}

	m, re2Err := compileRE2(pattern, fs)
	if re2Err == nil {
		return m, nil
	}
	m, ecmaErr := compileECMAScript(pattern, fs, config)
	if ecmaErr == nil {
		return m, nil
	}
	return nil, &CompileError{
		Pattern: pattern,
		Dialect: DialectAuto,
		Err:     errors.Join(errors.Unwrap(re2Err), errors.Unwrap(ecmaErr)),
	}
}

// re2Prefix returns the inline flag group for the flags RE2 syntax knows.
func re2Prefix(fs flagSet) string {
	var b []byte
	if fs.has(IgnoreCase) {
		b = append(b, 'i')
	}
	if fs.has(Multiline) {
		b = append(b, 'm')
	}
	if fs.has(DotAll) {
		b = append(b, 's')
	}
	if len(b) == 0 {
		return ""
	}
	return "(?" + string(b) + ")"
}

type re2Matcher struct {
	engine *meta.Engine
}

func compileRE2(pattern string, fs flagSet) (matcher, error) {
	engine, err := meta.Compile(re2Prefix(fs) + pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Dialect: DialectRE2, Err: err}
	}
	return &re2Matcher{engine: engine}, nil
}

func (m *re2Matcher) scan(text string) scanner {
	return &re2Scanner{engine: m.engine, haystack: []byte(text)}
}

type re2Scanner struct {
	engine   *meta.Engine
	haystack []byte
}

func (s *re2Scanner) next(at int) (int, int, bool, error) {
	if at > len(s.haystack) {
		return 0, 0, false, nil
	}
	start, end, found := s.engine.FindIndicesAt(s.haystack, at)
	return start, end, found, nil
}

type ecmaMatcher struct {
	re *regexp2.Regexp
}

func compileECMAScript(pattern string, fs flagSet, config Config) (matcher, error) {
	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	if fs.has(IgnoreCase) {
		opts |= regexp2.IgnoreCase
	}
	if fs.has(Multiline) {
		opts |= regexp2.Multiline
	}
	if fs.has(DotAll) {
		opts |= regexp2.Singleline
	}
	if fs.has(Unicode) {
		opts |= regexp2.Unicode
	}

	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Dialect: DialectECMAScript, Err: err}
	}
	if config.MatchTimeout > 0 {
		re.MatchTimeout = config.MatchTimeout
	}
	return &ecmaMatcher{re: re}, nil
}

func (m *ecmaMatcher) scan(text string) scanner {
	return &ecmaScanner{re: m.re, runes: []rune(text), offsets: conv.Index(text)}
}

// ecmaScanner runs regexp2 over runes; regexp2 reports rune indices, which
// offsets converts back to bytes.
type ecmaScanner struct {
	re      *regexp2.Regexp
	runes   []rune
	offsets conv.Offsets
}

func (s *ecmaScanner) next(at int) (int, int, bool, error) {
	ri := sort.SearchInts(s.offsets, at)
	if ri > s.offsets.Runes() {
		return 0, 0, false, nil
	}
	m, err := s.re.FindRunesMatchStartingAt(s.runes, ri)
	if err != nil {
		return 0, 0, false, err
	}
	if m == nil {
		return 0, 0, false, nil
	}
	start, end := s.offsets.Span(m.Index, m.Length)
	return start, end, true, nil
}

type literalMatcher struct {
	automaton *ahocorasick.Automaton
}

func compileLiterals(seq *literal.Seq) (matcher, error) {
	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i).Bytes)
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &literalMatcher{automaton: automaton}, nil
}

func (m *literalMatcher) scan(text string) scanner {
	return &literalScanner{automaton: m.automaton, haystack: []byte(text)}
}

type literalScanner struct {
	automaton *ahocorasick.Automaton
	haystack  []byte
}

func (s *literalScanner) next(at int) (int, int, bool, error) {
	if at >= len(s.haystack) {
		return 0, 0, false, nil
	}
	m := s.automaton.Find(s.haystack, at)
	if m == nil {
		return 0, 0, false, nil
	}
	return m.Start, m.End, true, nil
}
