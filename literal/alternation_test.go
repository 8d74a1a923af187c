package literal

import (
	"reflect"
	"testing"
)

// TestAlternation tests recognition of plain literal alternations
func TestAlternation(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []string
		ok      bool
	}{
		{"two words", "cat|dog", []string{"cat", "dog"}, true},
		{"order kept", "dog|cat|bird", []string{"dog", "cat", "bird"}, true},
		{"prefix", "category|cat", nil, false},
		{"prefix reversed", "cat|category", nil, false},
		{"suffix", "bobcat|cat", nil, false},
		{"infix", "abcd|bc", nil, false},
		{"duplicate", "cat|cat", nil, false},
		{"overlap without containment", "abc|bcd", []string{"abc", "bcd"}, true},
		{"spaces are literal", "new york|paris", []string{"new york", "paris"}, true},
		{"multibyte", "café|thé", []string{"café", "thé"}, true},
		{"single literal", "hello", nil, false},
		{"empty pattern", "", nil, false},
		{"empty alternative", "cat|", nil, false},
		{"leading bar", "|cat", nil, false},
		{"double bar", "cat||dog", nil, false},
		{"quantifier", "cats?|dog", nil, false},
		{"escape", `a\.b|c`, nil, false},
		{"group", "(cat)|dog", nil, false},
		{"class", "[cb]at|dog", nil, false},
		{"anchor", "^cat|dog", nil, false},
		{"wildcard", "c.t|dog", nil, false},
		{"range", "a{2}|b", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, ok := Alternation(tt.pattern)
			if ok != tt.ok {
				t.Fatalf("Alternation(%q) ok = %v, want %v", tt.pattern, ok, tt.ok)
			}
			if !ok {
				if seq != nil {
					t.Errorf("Alternation(%q) returned a sequence with ok=false", tt.pattern)
				}
				return
			}
			if got := seq.Strings(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Alternation(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

// TestSeqNil tests that a nil sequence behaves as empty
func TestSeqNil(t *testing.T) {
	var s *Seq
	if s.Len() != 0 || !s.IsEmpty() || len(s.Strings()) != 0 {
		t.Error("nil Seq should be empty")
	}
}

// TestLiteral tests the accessors of a single literal
func TestLiteral(t *testing.T) {
	seq := NewSeq(Literal{Bytes: []byte("héllo")})
	lit := seq.Get(0)
	if lit.String() != "héllo" || lit.Len() != 6 {
		t.Errorf("Literal = %q (len %d), want héllo (len 6)", lit.String(), lit.Len())
	}
}
