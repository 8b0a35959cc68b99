package main

import (
	"github.com/matsen/claude-memory/internal/config"
	"github.com/matsen/claude-memory/internal/memory"
	"github.com/spf13/cobra"
)

func newCreateCmd(a *app) *cobra.Command {
	var in memory.CreateInput

	cmd := &cobra.Command{
		Use:   "create <id>",
		Short: "Create a new custom memory",
		Long: `Create a custom memory, or replace an existing one with the same ID.

Content comes from exactly one of --content or --file. Files ending in .pdf
are converted to plain text.

Examples:
  claude-memory create style -d "Coding style" -c "Prefer table-driven tests."
  claude-memory create onboarding -d "Team onboarding" -f ~/docs/onboarding.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.ID = args[0]
			if in.File != "" {
				in.File = config.ExpandPath(in.File)
			}
			m, err := a.manager()
			if err != nil {
				return err
			}

			res, err := m.Create(in)
			if err != nil {
				return err
			}

			if !a.humanOutput {
				return a.outputJSON(res)
			}
			if res.Action == memory.ActionUpdated {
				a.warn("custom memory '%s' already existed and was updated", res.ID)
			}
			a.outputHuman("Custom memory '%s' %s successfully.\n", res.ID, res.Action)
			return nil
		},
	}

	cmd.Flags().StringVarP(&in.Description, "description", "d", "", "Description of the custom memory (required)")
	cmd.Flags().StringVarP(&in.File, "file", "f", "", "File containing the memory content")
	cmd.Flags().StringVarP(&in.Content, "content", "c", "", "Memory content as a string")
	return cmd
}
