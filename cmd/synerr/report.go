package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"synerr/internal/diag"
	"synerr/internal/observ"
	"synerr/internal/source"
	"synerr/internal/trace"
)

const stdinName = "<stdin>"

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [flags] <file|->",
		Short: "Print the syntax error for an offset in a source file",
		Long:  `Resolve --offset to a line and column in the given file (or stdin) and print a syntax error with an excerpt of the surrounding lines`,
		Args:  cobra.ExactArgs(1),
		RunE:  runReport,
	}
	cmd.Flags().Int("offset", 0, "character offset of the error, counted in runes")
	cmd.Flags().String("message", "", "description of the error")
	cmd.Flags().String("name", "", "source name to display (default: file path, or <stdin>)")
	_ = cmd.MarkFlagRequired("offset")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}

// runReport prints a single syntax error. It returns errErrorsReported after
// a successful render so the process exits non-zero like any failed check.
func runReport(cmd *cobra.Command, args []string) error {
	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	offset, err := cmd.Flags().GetInt("offset")
	if err != nil {
		return fmt.Errorf("failed to get offset flag: %w", err)
	}
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		return fmt.Errorf("failed to get message flag: %w", err)
	}
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return fmt.Errorf("failed to get name flag: %w", err)
	}

	settings, err := resolveOutput(cmd)
	if err != nil {
		return err
	}

	span := trace.Begin(trace.FromContext(cmd.Context()), trace.ScopeCommand, "report", 0)
	defer span.End("")

	timer := observ.NewTimer()
	defer printTimings(cmd, timer)

	phase := timer.Begin("load")
	src, err := loadSource(cmd, args[0], name)
	if err != nil {
		return err
	}
	timer.End(phase, src.Name)

	phase = timer.Begin("render")
	list := diag.NewList(1)
	list.Add(diag.SyntaxError(src, offset, message))
	if err := settings.write(cmd.OutOrStdout(), list); err != nil {
		return err
	}
	timer.End(phase, "")
	return errErrorsReported
}

// printTimings writes the timer summary to stderr when --timings is set.
func printTimings(cmd *cobra.Command, timer *observ.Timer) {
	show, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil || !show {
		return
	}
	fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
}

// loadSource reads path, or stdin for "-", and applies a display name override.
func loadSource(cmd *cobra.Command, path, name string) (*source.Source, error) {
	var (
		src *source.Source
		err error
	)
	if path == "-" {
		src, err = source.Read(cmd.InOrStdin(), stdinName)
	} else {
		src, err = source.Load(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if name != "" {
		src = source.NewSource(src.Body, name)
	}
	return src, nil
}
