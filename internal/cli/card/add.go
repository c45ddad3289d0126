package card

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sage/internal/cli"
	"github.com/thenoetrevino/sage/internal/types"
)

// AddCmd returns the card add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <content...>",
		Short: "Add a card to a column",
		Long: `Add a card to the end of a column. Defaults to the Inbox.

Examples:
  sage card add Buy milk
  sage card add "Write report" --column todo --board "Board B"

  # Quiet mode for bash capture
  CARD_ID=$(sage card add "Write report" --quiet)
`,
		Args: cli.MinimumNArgs(1),
		RunE: runAdd,
	}
	cli.AddBoardFlag(cmd)
	cmd.Flags().StringP("column", "c", string(types.InboxColumn), "Column ID, title or position")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	boardRef, _ := cmd.Flags().GetString("board")
	columnRef, _ := cmd.Flags().GetString("column")
	content := strings.Join(args, " ")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		board, err := cli.ResolveBoard(c.App, boardRef)
		if err != nil {
			return err
		}
		col, err := cli.ResolveColumn(board, columnRef)
		if err != nil {
			return err
		}

		task, err := c.App.AddCard(ctx, content, col.ID)
		if err != nil {
			return err
		}

		return f.Success(cli.Result{
			ID:    string(task.ID),
			Data:  task,
			Human: fmt.Sprintf("Added card to %s: %s", col.Title, task.Content),
		})
	})
}
