// Package main provides the claude-memory CLI entry point.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/matsen/claude-memory/internal/config"
	"github.com/matsen/claude-memory/internal/logging"
	"github.com/matsen/claude-memory/internal/memory"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// app holds global flag values and output streams for one invocation.
type app struct {
	out    io.Writer
	errOut io.Writer

	humanOutput bool
	memoryDir   string
	verbose     bool
}

// execute runs the CLI with args and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	a := &app{out: stdout, errOut: stderr}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		// SilenceErrors is set, so every error is reported here.
		return a.reportError(err)
	}
	return ExitSuccess
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "claude-memory",
		Short: "Manage Claude terminal client memories",
		Long: `claude-memory manages the memories used by the Claude terminal client.

Conversation memories are recorded by the chat client; custom memories are
instruction blocks you write yourself. Both live in a single JSON file,
~/.claude_memory/memory.json by default.

All commands output JSON by default; pass --human for readable text.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(a.errOut, a.verbose)
		},
	}

	root.PersistentFlags().BoolVar(&a.humanOutput, "human", false, "Use human-readable output instead of JSON")
	root.PersistentFlags().StringVar(&a.memoryDir, "dir", "", "Memory directory (default: memory_dir from config, else ~/.claude_memory)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log debug details to stderr")

	root.AddCommand(
		newListCmd(a),
		newViewCmd(a),
		newDeleteCmd(a),
		newCreateCmd(a),
		newConfigCmd(a),
	)
	return root
}

// storePath resolves the memory.json path for this invocation.
func (a *app) storePath() (string, error) {
	dir, err := config.ResolveMemoryDir(a.memoryDir)
	if err != nil {
		return "", err
	}
	path := config.MemoryPath(dir)
	slog.Debug("resolved memory store", "path", path)
	return path, nil
}

// manager returns a memory manager for the resolved store.
func (a *app) manager() (*memory.Manager, error) {
	path, err := a.storePath()
	if err != nil {
		return nil, err
	}
	return memory.NewManager(path), nil
}
