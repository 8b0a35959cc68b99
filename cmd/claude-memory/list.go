package main

import (
	"github.com/matsen/claude-memory/internal/memory"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all available memories",
		Long: `List conversation and custom memories.

Conversation memories show their message count; custom memories show their
description. Entries are sorted by ID.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.manager()
			if err != nil {
				return err
			}
			listing, err := m.List()
			if err != nil {
				return err
			}

			if !a.humanOutput {
				return a.outputJSON(listing)
			}
			a.printListingHuman(listing)
			return nil
		},
	}
}

func (a *app) printListingHuman(l *memory.Listing) {
	if len(l.Conversations) == 0 {
		a.outputHuman("\nNo conversation memories found.\n")
	} else {
		width := len("ID")
		for _, c := range l.Conversations {
			width = max(width, len(c.ID))
		}
		a.outputHuman("\nConversation Memories:\n")
		a.outputHuman("  %-*s  %s\n", width, "ID", "Messages")
		for _, c := range l.Conversations {
			a.outputHuman("  %-*s  %d\n", width, c.ID, c.Messages)
		}
	}

	if len(l.Custom) == 0 {
		a.outputHuman("\nNo custom memories found.\n")
	} else {
		width := len("ID")
		for _, c := range l.Custom {
			width = max(width, len(c.ID))
		}
		a.outputHuman("\nCustom Memories:\n")
		a.outputHuman("  %-*s  %s\n", width, "ID", "Description")
		for _, c := range l.Custom {
			a.outputHuman("  %-*s  %s\n", width, c.ID, truncateString(c.Description, ListDescriptionMaxLen))
		}
	}
}
