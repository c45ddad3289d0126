package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sage/internal/cli"
	"github.com/thenoetrevino/sage/internal/services/conversation"
)

// listEntry is the JSON form of a history row
type listEntry struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	When     string `json:"when"`
	Messages int    `json:"messages"`
}

// ListCmd returns the chat list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List conversations with their last message",
		Args:  cli.ExactArgs(0),
		RunE:  runList,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		convs := c.App.Conversations()

		entries := make([]listEntry, 0, len(convs))
		ids := make([]string, 0, len(convs))
		lines := make([]string, 0, len(convs))
		for _, conv := range convs {
			sum := conversation.Summarize(conv)
			entries = append(entries, listEntry{
				ID:       string(conv.ID),
				Title:    sum.Title,
				When:     sum.When,
				Messages: len(conv.Messages),
			})
			ids = append(ids, string(conv.ID))
			lines = append(lines, fmt.Sprintf("%s  %s  %s", conv.ID, sum.When, sum.Title))
		}
		if len(lines) == 0 {
			lines = append(lines, "No conversations")
		}

		return f.Success(cli.Result{
			ID:    strings.Join(ids, "\n"),
			Data:  entries,
			Human: strings.Join(lines, "\n"),
		})
	})
}
