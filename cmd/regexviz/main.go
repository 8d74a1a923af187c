// Package main provides the regexviz CLI entry point.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/coregx/regexviz/config"
	"github.com/coregx/regexviz/render"
)

// exitCodeInvalidPattern is the exit code for a pattern that does not compile.
const exitCodeInvalidPattern = 2

// errInvalidPattern is returned by commands that reject a pattern. It maps
// to exitCodeInvalidPattern.
var errInvalidPattern = errors.New("invalid pattern")

// app holds state shared by all subcommands.
type app struct {
	cfgFile string
	verbose bool
	format  string
	color   string

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stderr)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errInvalidPattern):
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCodeInvalidPattern
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "regexviz",
		Short: "Regular expression structure and match visualizer",
		Long: `regexviz shows how a regular expression is built and what it matches.

Commands:
  tree      Print the structure of a pattern
  match     Highlight the matches of a pattern in a text
  check     Report whether a pattern compiles`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup(logOut)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./.regexviz.yaml or $HOME/.regexviz.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "", "output format: text, json or yaml")
	rootCmd.PersistentFlags().StringVar(&a.color, "color", "", "color mode: auto, always or never")

	rootCmd.AddCommand(a.treeCmd())
	rootCmd.AddCommand(a.matchCmd())
	rootCmd.AddCommand(a.checkCmd())
	rootCmd.AddCommand(a.versionCmd())

	return rootCmd
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(logOut io.Writer) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	cfg, err := config.LoadConfig(a.cfgFile)
	if err != nil {
		return err
	}

	if a.format != "" {
		cfg.Output.Format = a.format
	}
	if a.color != "" {
		cfg.Output.Color = a.color
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flag: %w", err)
	}

	a.cfg = cfg
	a.logger.Debug("configuration loaded",
		"file", a.cfgFile,
		"dialect", cfg.Match.Dialect,
		"timeout", cfg.Match.Timeout,
		"literal_fast_path", cfg.Match.LiteralFastPath,
		"format", cfg.Output.Format,
		"color", cfg.Output.Color)
	return nil
}

// renderer returns a Renderer honoring the color mode. fatih/color already
// disables itself when stdout is not a terminal, which is what auto means.
func (a *app) renderer() *render.Renderer {
	return render.New(render.Options{Color: a.cfg.UseColor(!color.NoColor)})
}
