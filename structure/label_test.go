package structure

import (
	"testing"
)

// TestQuantifierLabel tests the display labels for raw quantifiers
func TestQuantifierLabel(t *testing.T) {
	tests := []struct {
		q    string
		want string
	}{
		{"", ""},
		{"*", "0 or more"},
		{"+", "1 or more"},
		{"?", "0 or 1"},
		{"{3}", "3 times"},
		{"{2,4}", "2,4 times"},
		{"{2,}", "2, times"},
		{"{2", "2"},
		{"+?", "+?"},
		{"{1}{2}", "1 times{2}"},
	}

	for _, tt := range tests {
		t.Run(tt.q, func(t *testing.T) {
			if got := QuantifierLabel(tt.q); got != tt.want {
				t.Errorf("QuantifierLabel(%q) = %q, want %q", tt.q, got, tt.want)
			}
		})
	}
}

// TestQuantifierBadge tests the combined label and raw text
func TestQuantifierBadge(t *testing.T) {
	if got := lit("a").QuantifierBadge(); got != "" {
		t.Errorf("QuantifierBadge() = %q, want empty", got)
	}
	if got := litQ("a", "{2,4}").QuantifierBadge(); got != "2,4 times ({2,4})" {
		t.Errorf("QuantifierBadge() = %q", got)
	}
}

// TestSummarize tests node counting and nesting depth
func TestSummarize(t *testing.T) {
	got := Summarize(Parse("(a|(?:b+))c*|(d)"))
	want := Summary{
		Nodes:           9,
		Groups:          3,
		CapturingGroups: 2,
		Alternations:    2,
		Quantified:      2,
		MaxDepth:        2,
	}
	if got != want {
		t.Errorf("Summarize() = %+v, want %+v", got, want)
	}

	if got := Summarize(nil); got != (Summary{}) {
		t.Errorf("Summarize(nil) = %+v, want zero", got)
	}
}

// TestWalkSkip tests that returning false prunes a subtree
func TestWalkSkip(t *testing.T) {
	var visited []string
	Walk(Parse("x(a(b))y"), func(depth int, n Node) bool {
		visited = append(visited, n.Display)
		return n.Kind != KindGroup || depth > 0
	})

	want := []string{"x", "Group", "y"}
	if len(visited) != len(want) {
		t.Fatalf("Walk() visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("Walk() visited[%d] = %q, want %q", i, visited[i], want[i])
		}
	}
}
