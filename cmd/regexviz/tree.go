package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/regexviz/render"
	"github.com/coregx/regexviz/structure"
)

// treeOutput is the structured form of the tree command.
type treeOutput struct {
	Pattern string            `json:"pattern" yaml:"pattern"`
	Nodes   []structure.Node  `json:"nodes" yaml:"nodes"`
	Summary structure.Summary `json:"summary" yaml:"summary"`
}

func (a *app) treeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree PATTERN",
		Short: "Print the structure of a pattern",
		Long: `Print the structure of a pattern as a tree of groups, classes,
literals, anchors and alternation markers.

The parser never fails: malformed patterns still produce a best-effort tree.

Examples:
  regexviz tree '^(?:ab)+c|d$'
  regexviz tree --format json '[a-z]{2,4}'
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := args[0]
			nodes := structure.Parse(pattern)
			summary := structure.Summarize(nodes)

			a.logger.Debug("parsed pattern", "pattern", pattern, "nodes", summary.Nodes)

			if format := a.cfg.Format(); format != render.FormatText {
				return render.Encode(cmd.OutOrStdout(), format, treeOutput{
					Pattern: pattern,
					Nodes:   nodes,
					Summary: summary,
				})
			}

			r := a.renderer()
			fmt.Fprintln(cmd.OutOrStdout(), r.Tree(nodes))
			fmt.Fprintln(cmd.OutOrStdout(), r.TreeSummary(summary))
			return nil
		},
	}
}
