package literal

import "strings"

// MinAlternatives is the smallest number of alternatives for which a pattern
// is reported as a literal alternation. A single plain string is left to the
// regex engine, which has its own substring search.
const MinAlternatives = 2

// meta holds every byte that gives a pattern regex meaning. `|` is handled
// separately as the separator.
const meta = `\.+*?()[]{}^$`

// Alternation reports whether pattern is a plain alternation such as
// "cat|dog|bird" and returns its alternatives in pattern order.
//
// It returns false if any alternative is empty (an empty alternative matches
// everywhere) or contains a metacharacter, if one alternative occurs inside
// another, or if there are fewer than MinAlternatives alternatives.
//
// With no alternative inside another, the match that ends first is also the
// one that starts first, and no two alternatives match at the same start. A
// multi-pattern matcher therefore reports exactly the leftmost-first match of
// the regex engine whatever its own overlap semantics. "category|cat" is
// rejected: the regex engine prefers "category", an earliest-ending matcher
// reports "cat".
//
// Example:
//
//	seq, ok := literal.Alternation("GET|POST|PUT")
//	// ok == true, seq.Strings() == ["GET", "POST", "PUT"]
//
//	_, ok = literal.Alternation("colou?r|gray")
//	// ok == false: '?' is a quantifier
func Alternation(pattern string) (*Seq, bool) {
	if strings.ContainsAny(pattern, meta) {
		return nil, false
	}

	parts := strings.Split(pattern, "|")
	if len(parts) < MinAlternatives {
		return nil, false
	}

	lits := make([]Literal, 0, len(parts))
	for i, p := range parts {
		if p == "" {
			return nil, false
		}
		for j, q := range parts {
			if i != j && strings.Contains(q, p) {
				return nil, false
			}
		}
		lits = append(lits, Literal{Bytes: []byte(p)})
	}
	return NewSeq(lits...), true
}
