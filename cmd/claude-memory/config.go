package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/matsen/claude-memory/internal/config"
	"github.com/spf13/cobra"
)

// ConfigResponse is the response for the config command with no arguments.
type ConfigResponse struct {
	MemoryDir  string `json:"memory_dir"`
	MemoryFile string `json:"memory_file"`
	ConfigFile string `json:"config_file"`
}

// UpdateResponse is the response for config set commands.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config [key] [value]",
		Short: "Get or set configuration values",
		Long: `Get or set configuration values.

Usage:
  claude-memory config                          # Show resolved paths
  claude-memory config memory-dir               # Get memory directory
  claude-memory config memory-dir ~/sync/claude # Set memory directory

Keys:
  memory-dir   Directory holding memory.json (default ~/.claude_memory)

Settings are stored in $XDG_CONFIG_HOME/claude-memory/config.yml.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfig(args)
		},
	}
}

func (a *app) runConfig(args []string) error {
	// No args: show resolved locations
	if len(args) == 0 {
		path, err := a.storePath()
		if err != nil {
			return err
		}
		resp := ConfigResponse{
			MemoryDir:  filepath.Dir(path),
			MemoryFile: path,
			ConfigFile: config.GlobalConfigPath(),
		}
		if !a.humanOutput {
			return a.outputJSON(resp)
		}
		a.outputHuman("memory-dir:  %s\n", resp.MemoryDir)
		a.outputHuman("memory-file: %s\n", resp.MemoryFile)
		a.outputHuman("config-file: %s\n", resp.ConfigFile)
		return nil
	}

	key := normalizeKey(args[0])
	if key != "memory-dir" {
		return fmt.Errorf("unknown configuration key: %s", args[0])
	}

	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		return err
	}

	// One arg: get value, honoring --dir like the no-arg form
	if len(args) == 1 {
		dir, err := config.ResolveMemoryDir(a.memoryDir)
		if err != nil {
			return err
		}
		if a.humanOutput {
			a.outputHuman("%s\n", dir)
			return nil
		}
		return a.outputJSON(map[string]string{"memory_dir": dir})
	}

	// Two args: set value
	value, err := filepath.Abs(config.ExpandPath(args[1]))
	if err != nil {
		return fmt.Errorf("resolving %s: %w", args[1], err)
	}
	cfg.MemoryDir = value
	if err := cfg.Save(); err != nil {
		return err
	}

	if a.humanOutput {
		a.outputHuman("Updated %s to %s\n", key, value)
		return nil
	}
	return a.outputJSON(UpdateResponse{Status: "updated", Key: key, Value: value})
}

// normalizeKey converts key formats (memory-dir, memory_dir, MEMORY_DIR) to consistent format
func normalizeKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", "-")
	return key
}
