package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"synerr/internal/version"
)

// errErrorsReported signals a run that succeeded but produced syntax errors.
var errErrorsReported = errors.New("syntax errors reported")

// newRootCmd builds the command tree with its persistent flags.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "synerr",
		Short:         "Render parser syntax errors with source excerpts",
		Long:          `synerr turns a source file, a character offset and a description into a syntax error that shows the offending line with a caret under the column`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadActiveConfig(cmd)
		},
	}

	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newLocateCmd())
	rootCmd.AddCommand(newBatchCmd())
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.PersistentFlags().String("config", "", "path to synerr.toml (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("format", "pretty", "output format (pretty|json|msgpack)")
	rootCmd.PersistentFlags().Int("max-errors", 0, "maximum number of errors to show (0 = all)")
	rootCmd.PersistentFlags().Bool("include-source", false, "include source names in json/msgpack output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().String("trace", "", "trace output file (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-format", "auto", "trace format (auto|text|ndjson)")

	return rootCmd
}

// main runs the root command. Reported syntax errors exit with status 1
// without an extra message; other failures are printed first.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errErrorsReported) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
