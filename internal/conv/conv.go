// Package conv converts between the rune indices reported by the ECMAScript
// engine and the byte offsets used everywhere else.
//
// A string is indexed once by Index; every later conversion is O(1). Invalid
// UTF-8 bytes count as one rune each, which matches how both `range` over a
// string and utf8.DecodeRuneInString treat them.
package conv

import "unicode/utf8"

// Offsets maps rune indices of a string to byte offsets.
//
// Offsets[i] is the byte offset of rune i; the final element is len(s), so
// Offsets has RuneCount+1 entries.
type Offsets []int

// Index builds the rune-to-byte table for s.
//
// Example:
//
//	off := conv.Index("héllo")
//	off.Byte(2) // 3: 'é' is two bytes wide
func Index(s string) Offsets {
	off := make(Offsets, 0, len(s)+1)
	for i := range s {
		off = append(off, i)
	}
	return append(off, len(s))
}

// Runes returns the number of runes in the indexed string.
func (o Offsets) Runes() int {
	return len(o) - 1
}

// Byte returns the byte offset of rune index r.
// Panics if r < 0 or r > Runes().
func (o Offsets) Byte(r int) int {
	if r < 0 || r >= len(o) {
		panic("rune index out of range")
	}
	return o[r]
}

// Span converts a rune-based (index, length) pair to byte offsets [start, end).
func (o Offsets) Span(index, length int) (start, end int) {
	return o.Byte(index), o.Byte(index + length)
}

// NextBoundary returns the byte offset just past the rune that starts at
// byte offset at. At or past the end of s it returns len(s)+1, so callers
// scanning forward always make progress.
func NextBoundary(s string, at int) int {
	if at >= len(s) {
		return at + 1
	}
	_, w := utf8.DecodeRuneInString(s[at:])
	return at + w
}
