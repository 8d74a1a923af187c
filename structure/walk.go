package structure

// Walk visits nodes in pre-order. depth is 0 for the top-level siblings and
// grows by one per enclosing group. If fn returns false the children of that
// node are skipped.
func Walk(nodes []Node, fn func(depth int, n Node) bool) {
	walk(nodes, 0, fn)
}

func walk(nodes []Node, depth int, fn func(int, Node) bool) {
	for _, n := range nodes {
		if fn(depth, n) && len(n.Children) > 0 {
			walk(n.Children, depth+1, fn)
		}
	}
}

// Summary counts the nodes of a parsed pattern.
type Summary struct {
	Nodes           int `json:"nodes" yaml:"nodes"`
	Groups          int `json:"groups" yaml:"groups"`
	CapturingGroups int `json:"capturingGroups" yaml:"capturingGroups"`
	Alternations    int `json:"alternations" yaml:"alternations"`
	Quantified      int `json:"quantified" yaml:"quantified"`

	// MaxDepth is the deepest group nesting; 0 when there are no groups.
	MaxDepth int `json:"maxDepth" yaml:"maxDepth"`
}

// Summarize walks nodes and returns their counts.
func Summarize(nodes []Node) Summary {
	var s Summary
	Walk(nodes, func(depth int, n Node) bool {
		s.Nodes++
		if n.Quantifier != "" {
			s.Quantified++
		}
		switch n.Kind {
		case KindGroup:
			s.Groups++
			if n.Capturing {
				s.CapturingGroups++
			}
			if depth+1 > s.MaxDepth {
				s.MaxDepth = depth + 1
			}
		case KindAlternation:
			s.Alternations++
		}
		return true
	})
	return s
}
