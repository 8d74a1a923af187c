// Package render formats parsed patterns and match segments for a terminal.
package render

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/coregx/regexviz/match"
	"github.com/coregx/regexviz/structure"
)

// Options controls terminal rendering.
type Options struct {
	// Color enables ANSI colors. Without it matches are marked with
	// MatchOpen and MatchClose.
	Color bool
}

// Match markers used when color is off.
const (
	MatchOpen  = "["
	MatchClose = "]"
)

// Renderer renders trees, highlights and tables. It keeps no state between
// calls.
type Renderer struct {
	opts  Options
	kinds map[structure.Kind]*color.Color
	match *color.Color
	dim   *color.Color
}

// New returns a Renderer for opts.
func New(opts Options) *Renderer {
	r := &Renderer{
		opts: opts,
		kinds: map[structure.Kind]*color.Color{
			structure.KindLiteral:     color.New(color.FgCyan),
			structure.KindGroup:       color.New(color.FgMagenta),
			structure.KindClass:       color.New(color.FgGreen),
			structure.KindAlternation: color.New(color.FgYellow, color.Bold),
			structure.KindAssertion:   color.New(color.FgRed),
			structure.KindSequence:    color.New(color.FgCyan),
		},
		match: color.New(color.FgBlack, color.BgCyan),
		dim:   color.New(color.Faint),
	}

	all := []*color.Color{r.match, r.dim}
	for _, c := range r.kinds {
		all = append(all, c)
	}
	for _, c := range all {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Tree renders nodes as an indented tree, one node per line. Group children
// are nested under their group.
func (r *Renderer) Tree(nodes []structure.Node) string {
	if len(nodes) == 0 {
		return r.dim.Sprint("(empty pattern)")
	}

	l := list.NewWriter()
	l.SetStyle(list.StyleConnectedRounded)
	r.appendNodes(l, nodes)
	return l.Render()
}

func (r *Renderer) appendNodes(l list.Writer, nodes []structure.Node) {
	for _, n := range nodes {
		l.AppendItem(r.nodeLabel(n))
		if len(n.Children) > 0 {
			l.Indent()
			r.appendNodes(l, n.Children)
			l.UnIndent()
		}
	}
}

// nodeLabel formats one node as "KIND display · badge".
func (r *Renderer) nodeLabel(n structure.Node) string {
	c := r.kinds[n.Kind]
	if c == nil {
		c = r.kinds[structure.KindLiteral]
	}
	if n.Kind == structure.KindAlternation {
		return c.Sprint(n.Display)
	}

	display := printable(n.Display)
	if n.Kind == structure.KindGroup && !n.Capturing {
		display += " (non-capturing)"
	}

	label := c.Sprint(strings.ToUpper(n.Kind.String())) + " " + display
	if badge := n.QuantifierBadge(); badge != "" {
		label += " " + r.dim.Sprint("· "+badge)
	}
	return label
}

// printable quotes text that contains control or other non-graphic runes.
func printable(s string) string {
	for _, c := range s {
		if !unicode.IsGraphic(c) {
			return strconv.Quote(s)
		}
	}
	return s
}

// Highlight renders segments back into one string with the matches marked.
func (r *Renderer) Highlight(segs []match.Segment) string {
	var b strings.Builder
	for _, seg := range segs {
		if !seg.IsMatch {
			b.WriteString(seg.Text)
			continue
		}
		if r.opts.Color {
			b.WriteString(r.match.Sprint(seg.Text))
		} else {
			b.WriteString(MatchOpen + seg.Text + MatchClose)
		}
	}
	return b.String()
}

// SegmentTable renders one row per segment.
func (r *Renderer) SegmentTable(segs []match.Segment) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"#", "ID", "Match", "Bytes", "Text"})
	for i, seg := range segs {
		tbl.AppendRow(table.Row{i, seg.ID, seg.IsMatch, len(seg.Text), strconv.Quote(seg.Text)})
	}
	tbl.AppendFooter(table.Row{"", "", "", "", english.Plural(len(segs), "segment", "")})
	return tbl.Render()
}

// MatchSummary describes segment statistics in one line, e.g.
// "2 matches, 6 B of 11 B highlighted (54.5%)".
func (r *Renderer) MatchSummary(st match.Stats) string {
	return r.dim.Sprintf("%s, %s of %s highlighted (%.1f%%)",
		english.Plural(st.Matches, "match", "matches"),
		humanize.Bytes(uint64(st.MatchedBytes)),
		humanize.Bytes(uint64(st.TotalBytes)),
		st.Coverage()*100)
}

// TreeSummary describes node counts in one line.
func (r *Renderer) TreeSummary(s structure.Summary) string {
	return r.dim.Sprintf("%s, %s (%d capturing), %s, %s, depth %d",
		english.Plural(s.Nodes, "node", ""),
		english.Plural(s.Groups, "group", ""),
		s.CapturingGroups,
		english.Plural(s.Alternations, "alternation", ""),
		english.Plural(s.Quantified, "quantifier", ""),
		s.MaxDepth)
}
