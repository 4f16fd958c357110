package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"synerr/internal/driver"
	"synerr/internal/observ"
	"synerr/internal/trace"
)

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [flags] <requests.toml>",
		Short: "Render many syntax errors described in a TOML file",
		Long: `Read [[error]] tables (file, offset, message) from a TOML file, load every
referenced source once and render all errors in request order`,
		Args: cobra.ExactArgs(1),
		RunE: runBatch,
	}
	cmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	return cmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	settings, err := resolveOutput(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeCommand, "batch", 0)
	defer span.End("")

	timer := observ.NewTimer()
	defer printTimings(cmd, timer)

	phase := timer.Begin("requests")
	reqs, err := driver.LoadRequests(args[0])
	if err != nil {
		return err
	}
	timer.End(phase, strconv.Itoa(len(reqs))+" requests")

	phase = timer.Begin("report")
	list, err := driver.Report(ctx, reqs, driver.Options{Jobs: jobs})
	if err != nil {
		return err
	}
	timer.End(phase, strconv.Itoa(list.Len())+" errors")
	span.WithExtra("errors", strconv.Itoa(list.Len()))

	phase = timer.Begin("render")
	if err := settings.write(cmd.OutOrStdout(), list); err != nil {
		return err
	}
	timer.End(phase, "")
	if list.Len() > 0 {
		return errErrorsReported
	}
	return nil
}
