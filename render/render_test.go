package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/regexviz/match"
	"github.com/coregx/regexviz/structure"
)

func TestTree(t *testing.T) {
	t.Parallel()

	r := New(Options{})
	out := r.Tree(structure.Parse(`^(?:ab|c)+\d{2,4}$`))
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "ASSERTION Start")
	assert.Contains(t, lines[1], "GROUP Group (non-capturing) · 1 or more (+)")
	assert.Contains(t, lines[2], "LITERAL ab")
	assert.Contains(t, lines[3], "OR")
	assert.Contains(t, lines[4], "LITERAL c")
	assert.Contains(t, lines[5], `LITERAL \d · 2,4 times ({2,4})`)
	assert.Contains(t, lines[6], "ASSERTION End")

	// Children are indented further than their group.
	assert.Greater(t, strings.Index(lines[2], "LITERAL"), strings.Index(lines[1], "GROUP"))
}

func TestTreeEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(empty pattern)", New(Options{}).Tree(structure.Parse("")))
}

func TestTreeQuotesControlCharacters(t *testing.T) {
	t.Parallel()

	out := New(Options{}).Tree(structure.Parse("a\tb"))
	assert.Contains(t, out, `LITERAL "a\tb"`)
}

func TestHighlight(t *testing.T) {
	t.Parallel()

	segs := match.Split("foo bar foo", "foo", match.Global)

	plain := New(Options{}).Highlight(segs)
	assert.Equal(t, "[foo] bar [foo]", plain)

	colored := New(Options{Color: true}).Highlight(segs)
	assert.Contains(t, colored, "\x1b[")
	assert.Contains(t, colored, " bar ")
	assert.NotContains(t, colored, MatchOpen+"foo"+MatchClose)
}

func TestSegmentTable(t *testing.T) {
	t.Parallel()

	out := New(Options{}).SegmentTable(match.Split("foo bar", "bar"))

	assert.Contains(t, out, "pre-4")
	assert.Contains(t, out, "match-4")
	assert.Contains(t, out, `"foo "`)
	assert.Contains(t, strings.ToLower(out), "2 segments")
}

func TestMatchSummary(t *testing.T) {
	t.Parallel()

	st := match.Summarize(match.Split("foo bar foo", "foo", match.Global))
	assert.Equal(t, "2 matches, 6 B of 11 B highlighted (54.5%)", New(Options{}).MatchSummary(st))
}

func TestTreeSummary(t *testing.T) {
	t.Parallel()

	s := structure.Summarize(structure.Parse("(a|(b))+"))
	assert.Equal(t,
		"5 nodes, 2 groups (2 capturing), 1 alternation, 1 quantifier, depth 2",
		New(Options{}).TreeSummary(s))
}
