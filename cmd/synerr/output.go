package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"synerr/internal/diag"
	"synerr/internal/diagfmt"
)

type outputSettings struct {
	format   diagfmt.Format
	pretty   diagfmt.PrettyOpts
	jsonOpts diagfmt.JSONOpts
}

func resolveOutput(cmd *cobra.Command) (outputSettings, error) {
	flags := cmd.Root().PersistentFlags()

	formatStr, err := stringSetting(cmd, "format", activeConfig.Output.Format)
	if err != nil {
		return outputSettings{}, err
	}
	format, err := diagfmt.ParseFormat(formatStr)
	if err != nil {
		return outputSettings{}, err
	}

	colorFlag, err := stringSetting(cmd, "color", activeConfig.Output.Color)
	if err != nil {
		return outputSettings{}, err
	}
	useColor, err := wantColor(colorFlag, cmd.OutOrStdout())
	if err != nil {
		return outputSettings{}, err
	}

	maxErrors, err := flags.GetInt("max-errors")
	if err != nil {
		return outputSettings{}, fmt.Errorf("failed to get max-errors flag: %w", err)
	}
	if !flags.Changed("max-errors") && activeConfig.Output.Max > 0 {
		maxErrors = activeConfig.Output.Max
	}

	includeSource, err := flags.GetBool("include-source")
	if err != nil {
		return outputSettings{}, fmt.Errorf("failed to get include-source flag: %w", err)
	}
	if !flags.Changed("include-source") {
		includeSource = includeSource || activeConfig.Output.IncludeSource
	}

	return outputSettings{
		format:   format,
		pretty:   diagfmt.PrettyOpts{Color: useColor, Max: maxErrors},
		jsonOpts: diagfmt.JSONOpts{IncludeSource: includeSource, Max: maxErrors},
	}, nil
}

func wantColor(mode string, out io.Writer) (bool, error) {
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto", "":
		f, ok := out.(*os.File)
		return ok && isTerminal(f), nil
	default:
		return false, fmt.Errorf("unknown color value: %s (expected: auto|on|off)", mode)
	}
}

func (s outputSettings) write(out io.Writer, list *diag.List) error {
	if err := diagfmt.Write(out, list, s.format, s.pretty, s.jsonOpts); err != nil {
		return fmt.Errorf("failed to write errors: %w", err)
	}
	return nil
}
