package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/matsen/namenotes/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set global configuration values",
	Long: `Get or set values in the global config file
(~/.config/namenotes/config.yml, or under $XDG_CONFIG_HOME).

Usage:
  namenotes config                  # Show all config
  namenotes config path             # Get specific value
  namenotes config path ~/notes     # Set value

Keys:
  path    Default directory containing namenotes.json`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

// ConfigResponse is the response for config get commands.
type ConfigResponse struct {
	File string `json:"file"`
	Path string `json:"path,omitempty"`
}

// UpdateResponse is the response for config set commands.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		return withCode(ExitConfigError, err)
	}

	// No args: show all config
	if len(args) == 0 {
		if jsonOutput {
			return outputJSON(ConfigResponse{File: config.GlobalConfigPath(), Path: cfg.Path})
		}
		fmt.Fprintf(stdout, "file: %s\n", config.GlobalConfigPath())
		fmt.Fprintf(stdout, "path: %s\n", cfg.Path)
		return nil
	}

	key := normalizeKey(args[0])
	if key != "path" {
		return withCode(ExitError, fmt.Errorf("unknown configuration key: %s", args[0]))
	}

	// One arg: get specific value
	if len(args) == 1 {
		if jsonOutput {
			return outputJSON(map[string]string{"path": cfg.Path})
		}
		fmt.Fprintln(stdout, cfg.Path)
		return nil
	}

	// Two args: set value
	value := config.ExpandPath(args[1])
	if value != "" {
		abs, err := filepath.Abs(value)
		if err != nil {
			return withCode(ExitConfigError, fmt.Errorf("resolving %s: %w", value, err))
		}
		value = abs
		if err := config.ValidateDir(value); err != nil {
			return withCode(ExitConfigError, err)
		}
	}
	cfg.Path = value

	if err := cfg.Save(); err != nil {
		return withCode(ExitConfigError, fmt.Errorf("saving config: %w", err))
	}

	if jsonOutput {
		return outputJSON(UpdateResponse{Status: "updated", Key: key, Value: value})
	}
	fmt.Fprintf(stdout, "Updated %s to %s\n", key, value)
	return nil
}

// normalizeKey converts key formats (Path, PATH) to a consistent format
func normalizeKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", "-")
	return key
}
