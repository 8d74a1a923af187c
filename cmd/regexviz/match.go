package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/coregx/regexviz"
	"github.com/coregx/regexviz/match"
	"github.com/coregx/regexviz/render"
)

// matchOutput is the structured form of the match command.
type matchOutput struct {
	regexviz.View `yaml:",inline"`

	Stats match.Stats `json:"stats" yaml:"stats"`
}

func (a *app) matchCmd() *cobra.Command {
	var (
		flagString string
		showTable  bool
	)

	cmd := &cobra.Command{
		Use:   "match PATTERN [TEXT|-]",
		Short: "Highlight the matches of a pattern in a text",
		Long: `Split TEXT into matched and unmatched segments and print it with the
matches highlighted. TEXT is read from stdin when it is "-" or omitted.

Flags letters follow JavaScript: g (global), i (ignore case), m (multiline),
s (dot matches newline), u (unicode), y (sticky).

Examples:
  regexviz match -f g '\d+' 'a1b22'
  echo 'foo bar foo' | regexviz match foo
  regexviz match --table -f gi 'cat|dog' 'Cat and dog'
`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("flags") {
				flagString = a.cfg.Match.Flags
			}
			flags, err := match.ParseFlags(flagString)
			if err != nil {
				return err
			}

			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			v, err := regexviz.New(a.cfg.Segmenter())
			if err != nil {
				return err
			}

			view := v.Visualize(args[0], text, flags...)
			stats := match.Summarize(view.Segments)

			a.logger.Debug("segmented text",
				"pattern", view.Pattern,
				"flags", view.Flags,
				"valid", view.Valid,
				"segments", stats.Segments,
				"matches", stats.Matches)
			if !view.Valid {
				a.logger.Warn("pattern does not compile", "pattern", view.Pattern)
			}

			if format := a.cfg.Format(); format != render.FormatText {
				return render.Encode(cmd.OutOrStdout(), format, matchOutput{View: view, Stats: stats})
			}

			r := a.renderer()
			out := cmd.OutOrStdout()
			if showTable {
				fmt.Fprintln(out, r.SegmentTable(view.Segments))
			} else {
				fmt.Fprintln(out, r.Highlight(view.Segments))
			}
			fmt.Fprintln(out, r.MatchSummary(stats))
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagString, "flags", "f", "", "match flags, e.g. gi (default from config)")
	cmd.Flags().BoolVar(&showTable, "table", false, "print one table row per segment")

	return cmd
}

// readText returns the TEXT argument, or stdin when it is "-" or absent.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 2 && args[1] != "-" {
		return args[1], nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
