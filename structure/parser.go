package structure

import (
	"errors"
	"unicode/utf8"
)

// MaxDepth bounds group nesting. Deeper patterns are returned as the opaque
// literal fallback.
const MaxDepth = 1000

// errTooDeep is raised when group nesting exceeds MaxDepth.
var errTooDeep = errors.New("structure: group nesting too deep")

// parser holds the cursor shared by nested parseSequence calls.
type parser struct {
	pattern string
	pos     int
	depth   int
}

// Parse converts pattern into an ordered list of sibling nodes.
//
// Parse never fails. Unbalanced groups run to the end of the input, an
// unterminated class extends to the end of the input, and a quantifier with
// nothing before it (or directly after `|`) is dropped. If parsing cannot
// complete at all, the result is a single literal node holding the whole
// pattern.
//
// An empty pattern, or one consisting only of dangling quantifiers, yields an
// empty (non-nil) slice.
//
// Example:
//
//	nodes := structure.Parse("a+(b|c)")
//	// nodes[0]: literal "a" with quantifier "+"
//	// nodes[1]: capturing group with children [b, OR, c]
func Parse(pattern string) (nodes []Node) {
	defer func() {
		if r := recover(); r != nil {
			nodes = fallback(pattern)
		}
	}()

	p := &parser{pattern: pattern}
	nodes, err := p.parseSequence(0)
	if err != nil {
		return fallback(pattern)
	}
	if nodes == nil {
		nodes = []Node{}
	}
	return nodes
}

func fallback(pattern string) []Node {
	return []Node{{Kind: KindLiteral, Display: pattern}}
}

func (p *parser) eof() bool {
	return p.pos >= len(p.pattern)
}

// next returns the rune at the cursor and its width in bytes. Invalid UTF-8
// yields utf8.RuneError with width 1, so raw bytes are still copied through.
func (p *parser) next() (rune, int) {
	return utf8.DecodeRuneInString(p.pattern[p.pos:])
}

// parseSequence consumes nodes until the input ends or the cursor reaches
// stop. A stop of 0 means "until end of input".
func (p *parser) parseSequence(stop byte) ([]Node, error) {
	var nodes []Node

	// mergeable reports whether the last node is a plain literal that the
	// next plain character may be appended to. Escapes, quantified nodes and
	// every non-literal kind reset it.
	mergeable := false

	for !p.eof() {
		c := p.pattern[p.pos]
		if stop != 0 && c == stop {
			return nodes, nil
		}

		switch c {
		case '(':
			group, err := p.parseGroup()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, group)
			mergeable = false

		case '[':
			nodes = append(nodes, p.parseClass())
			mergeable = false

		case '|':
			p.pos++
			nodes = append(nodes, Node{Kind: KindAlternation, Display: AlternationDisplay})
			mergeable = false

		case '*', '+', '?', '{':
			q := p.parseQuantifier()
			// The OR marker has no operand to repeat.
			if len(nodes) > 0 && nodes[len(nodes)-1].Kind != KindAlternation {
				nodes[len(nodes)-1].Quantifier += q
			}
			mergeable = false

		case '\\':
			nodes = append(nodes, p.parseEscape())
			mergeable = false

		case '^':
			p.pos++
			nodes = append(nodes, Node{Kind: KindAssertion, Display: StartDisplay})
			mergeable = false

		case '$':
			p.pos++
			nodes = append(nodes, Node{Kind: KindAssertion, Display: EndDisplay})
			mergeable = false

		case '.':
			p.pos++
			nodes = append(nodes, Node{Kind: KindClass, Display: AnyCharDisplay})
			mergeable = false

		default:
			_, w := p.next()
			text := p.pattern[p.pos : p.pos+w]
			p.pos += w
			if mergeable {
				nodes[len(nodes)-1].Display += text
			} else {
				nodes = append(nodes, Node{Kind: KindLiteral, Display: text})
				mergeable = true
			}
		}
	}
	return nodes, nil
}

// parseGroup consumes `(`, an optional `?:` marker, the body, and the closing
// `)` if there is one.
func (p *parser) parseGroup() (Node, error) {
	p.pos++ // (

	capturing := true
	if p.pos+1 < len(p.pattern) && p.pattern[p.pos] == '?' && p.pattern[p.pos+1] == ':' {
		capturing = false
		p.pos += 2
	}

	p.depth++
	if p.depth > MaxDepth {
		return Node{}, errTooDeep
	}
	children, err := p.parseSequence(')')
	p.depth--
	if err != nil {
		return Node{}, err
	}

	if !p.eof() {
		p.pos++ // )
	}

	return Node{
		Kind:      KindGroup,
		Display:   GroupDisplay,
		Children:  children,
		Capturing: capturing,
	}, nil
}

// parseClass consumes a bracketed class verbatim. An escaped pair counts as
// one unit, so `\]` does not close the class.
func (p *parser) parseClass() Node {
	start := p.pos
	p.pos++ // [

	for !p.eof() {
		switch p.pattern[p.pos] {
		case ']':
			p.pos++
			return Node{Kind: KindClass, Display: p.pattern[start:p.pos]}
		case '\\':
			p.pos++
			if !p.eof() {
				_, w := p.next()
				p.pos += w
			}
		default:
			_, w := p.next()
			p.pos += w
		}
	}
	return Node{Kind: KindClass, Display: p.pattern[start:p.pos]}
}

// parseQuantifier consumes one quantifier token. A `{` runs verbatim through
// the next `}`; its content is not validated. An unterminated `{` runs to the
// end of the input and is closed with a `}`, so `a{2` reads as `a{2}`.
func (p *parser) parseQuantifier() string {
	start := p.pos
	c := p.pattern[p.pos]
	p.pos++
	if c != '{' {
		return p.pattern[start:p.pos]
	}

	for !p.eof() && p.pattern[p.pos] != '}' {
		p.pos++
	}
	if p.eof() {
		return p.pattern[start:p.pos] + "}"
	}
	p.pos++ // }
	return p.pattern[start:p.pos]
}

// parseEscape consumes a backslash and the character after it, or the lone
// backslash at the end of the input.
func (p *parser) parseEscape() Node {
	start := p.pos
	p.pos++
	if !p.eof() {
		_, w := p.next()
		p.pos += w
	}
	return Node{Kind: KindLiteral, Display: p.pattern[start:p.pos]}
}
