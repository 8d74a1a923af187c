// Package literal recognizes patterns that are nothing but an alternation of
// plain strings, such as /cat|dog|bird/.
//
// Such patterns need no regex engine at all: every alternative is a complete
// match on its own, so a multi-pattern string matcher (Aho-Corasick) finds the
// same leftmost-first matches the engine would.
package literal

// Literal is one alternative of a literal alternation.
type Literal struct {
	// Bytes is the exact text the alternative matches.
	Bytes []byte
}

// String returns the literal text.
func (l Literal) String() string {
	return string(l.Bytes)
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// Seq is an ordered set of alternative literals. Order is significant: on a
// tie at the same start position the earlier literal wins.
//
// Example:
//
//	seq, ok := literal.Alternation("cat|dog")
//	fmt.Println(ok, seq.Len()) // true 2
type Seq struct {
	literals []Literal
}

// NewSeq creates a sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{literals: lits}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at index i.
// Panics if i is out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty returns true if the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// Strings returns the literal texts in order.
func (s *Seq) Strings() []string {
	out := make([]string, s.Len())
	for i := range out {
		out[i] = s.literals[i].String()
	}
	return out
}
