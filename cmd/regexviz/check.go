package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coregx/regexviz/match"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check PATTERN",
		Short: "Report whether a pattern compiles",
		Long: `Compile PATTERN with the configured dialect and report the result.

Exits with status 2 when the pattern is invalid. The empty pattern is valid.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := match.New(a.cfg.Segmenter())
			if err != nil {
				return err
			}

			if err := s.Validate(args[0]); err != nil {
				a.logger.Debug("compile failed", "error", err)
				return fmt.Errorf("%w: %w", errInvalidPattern, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
}
