package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sage/internal/cli"
	"github.com/thenoetrevino/sage/internal/types"
)

// SaveCmd returns the chat save subcommand
func SaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save <message-id>",
		Short: "Split a chat message into Inbox cards",
		Long: `Split a message into sentences and add each one as a card to the
Inbox of a board.

Examples:
  MSG_ID=$(sage chat send "Buy milk. Call Alice!" --quiet)
  sage chat save "$MSG_ID" --board "Board A"
`,
		Args: cli.ExactArgs(1),
		RunE: runSave,
	}
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runSave(cmd *cobra.Command, args []string) error {
	boardRef, _ := cmd.Flags().GetString("board")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		board, err := cli.ResolveBoard(c.App, boardRef)
		if err != nil {
			return err
		}

		tasks, err := c.App.SaveMessageToCards(ctx, types.MessageID(args[0]))
		if err != nil {
			return err
		}

		ids := make([]string, len(tasks))
		for i, task := range tasks {
			ids[i] = string(task.ID)
		}
		return f.Success(cli.Result{
			ID:    strings.Join(ids, "\n"),
			Data:  tasks,
			Human: fmt.Sprintf("Saved %d card(s) to %s Inbox", len(tasks), board.Name),
		})
	})
}
