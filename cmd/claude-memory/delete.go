package main

import (
	"github.com/matsen/claude-memory/internal/memory"
	"github.com/spf13/cobra"
)

func newDeleteCmd(a *app) *cobra.Command {
	var memType string

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a memory",
		Long: `Delete a memory from the store.

The store is left unchanged if the ID does not exist in the requested type.

Examples:
  claude-memory delete chat-2024-05-01
  claude-memory delete style --type custom`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := memory.ParseCategory(memType)
			if err != nil {
				return err
			}
			m, err := a.manager()
			if err != nil {
				return err
			}

			id := args[0]
			if err := m.Delete(id, cat); err != nil {
				return err
			}

			if a.humanOutput {
				a.outputHuman("%s memory '%s' deleted successfully.\n", cat.Title(), id)
				return nil
			}
			return a.outputJSON(StatusResponse{Status: "deleted", ID: id, Type: string(cat)})
		},
	}

	cmd.Flags().StringVarP(&memType, "type", "t", string(memory.Conversation), "Type of memory to delete ("+memory.CategoryNames()+")")
	return cmd
}
