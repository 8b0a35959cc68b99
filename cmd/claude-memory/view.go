package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matsen/claude-memory/internal/clipboard"
	"github.com/matsen/claude-memory/internal/memory"
	"github.com/spf13/cobra"
)

// ViewResult is the JSON output for view.
type ViewResult struct {
	*memory.Entry
	Copied bool `json:"copied,omitempty"` // true if --copy succeeded
}

func newViewCmd(a *app) *cobra.Command {
	var (
		memType  string
		copyFlag bool
	)

	cmd := &cobra.Command{
		Use:   "view <id>",
		Short: "View the contents of a specific memory",
		Long: `View the contents of a memory.

Examples:
  claude-memory view chat-2024-05-01 --human
  claude-memory view style --type custom
  claude-memory view style -t custom --copy    # Also copy content to clipboard`,
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
			entry, err := m.View(args[0], cat)
			if err != nil {
				return err
			}

			copied := false
			if copyFlag {
				copied = a.copyToClipboard(clipboardText(entry))
			}

			if !a.humanOutput {
				return a.outputJSON(ViewResult{Entry: entry, Copied: copied})
			}
			a.outputHuman("%s", formatEntryHuman(entry))
			return nil
		},
	}

	cmd.Flags().StringVarP(&memType, "type", "t", string(memory.Conversation), "Type of memory to view ("+memory.CategoryNames()+")")
	cmd.Flags().BoolVar(&copyFlag, "copy", false, "Copy memory content to the system clipboard")
	return cmd
}

// copyToClipboard copies text, warning on stderr instead of failing.
func (a *app) copyToClipboard(text string) bool {
	if err := clipboard.Copy(text); err != nil {
		if errors.Is(err, clipboard.ErrClipboardUnavailable) {
			a.warn("%s", clipboard.UnavailableHint)
		} else {
			a.warn("clipboard error: %v", err)
		}
		return false
	}
	if a.humanOutput {
		fmt.Fprintln(a.errOut, "Copied to clipboard")
	}
	return true
}

// clipboardText is what --copy puts on the clipboard.
func clipboardText(e *memory.Entry) string {
	if e.Type == memory.Custom {
		return e.Content
	}
	return formatTranscript(e.Messages)
}

// formatEntryHuman renders a memory for --human output.
func formatEntryHuman(e *memory.Entry) string {
	var sb strings.Builder
	if e.Type == memory.Custom {
		fmt.Fprintf(&sb, "\nCustom Memory: %s\n", e.ID)
		fmt.Fprintf(&sb, "Description: %s\n\n", e.Description)
		sb.WriteString(e.Content)
		if !strings.HasSuffix(e.Content, "\n") {
			sb.WriteString("\n")
		}
		return sb.String()
	}

	fmt.Fprintf(&sb, "\nConversation Memory: %s\n", e.ID)
	fmt.Fprintf(&sb, "Number of messages: %d\n\n", len(e.Messages))
	sb.WriteString(formatTranscript(e.Messages))
	return sb.String()
}

// formatTranscript numbers each message from 1 and separates them with a rule.
func formatTranscript(msgs []memory.Message) string {
	var sb strings.Builder
	for i, msg := range msgs {
		speaker := "Claude"
		if msg.Role == "user" {
			speaker = "User"
		}
		fmt.Fprintf(&sb, "%s (%d):\n", speaker, i+1)
		sb.WriteString(msg.Content)
		sb.WriteString("\n\n")
		sb.WriteString(rule())
		sb.WriteString("\n\n")
	}
	return sb.String()
}
