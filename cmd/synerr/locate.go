package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"synerr/internal/source"
)

func newLocateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locate [flags] <file|->",
		Short: "Print the line:column an offset resolves to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := cmd.Flags().GetInt("offset")
			if err != nil {
				return fmt.Errorf("failed to get offset flag: %w", err)
			}
			src, err := loadSource(cmd, args[0], "")
			if err != nil {
				return err
			}
			loc := source.GetLocation(src, offset)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d:%d\n", loc.Line, loc.Column)
			return err
		},
	}
	cmd.Flags().Int("offset", 0, "character offset, counted in runes")
	_ = cmd.MarkFlagRequired("offset")
	return cmd
}
