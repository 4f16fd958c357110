package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

const configFileName = "synerr.toml"

type cliConfig struct {
	Output outputConfig `toml:"output"`
	Trace  traceConfig  `toml:"trace"`
}

type outputConfig struct {
	Format        string `toml:"format"`
	Color         string `toml:"color"`
	Max           int    `toml:"max"`
	IncludeSource bool   `toml:"include_source"`
}

type traceConfig struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
	Format string `toml:"format"`
}

// activeConfig is filled by the root command before any subcommand runs.
var activeConfig cliConfig

func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadConfigFile(path string) (cliConfig, error) {
	var cfg cliConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cliConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return cliConfig{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

func loadActiveConfig(cmd *cobra.Command) error {
	activeConfig = cliConfig{}

	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	if path == "" {
		var ok bool
		path, ok, err = findConfig(".")
		if err != nil || !ok {
			return err
		}
	}

	cfg, err := loadConfigFile(path)
	if err != nil {
		return err
	}
	activeConfig = cfg
	return nil
}

// stringSetting returns the flag value when it was set explicitly, then the
// config value, then the flag default.
func stringSetting(cmd *cobra.Command, flag, fromConfig string) (string, error) {
	flags := cmd.Root().PersistentFlags()
	value, err := flags.GetString(flag)
	if err != nil {
		return "", fmt.Errorf("failed to get %s flag: %w", flag, err)
	}
	if !flags.Changed(flag) && fromConfig != "" {
		return fromConfig, nil
	}
	return value, nil
}
