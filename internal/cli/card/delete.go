package card

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sage/internal/cli"
	"github.com/thenoetrevino/sage/internal/models"
)

// DeleteCmd returns the card delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <column> <position>",
		Short: "Delete a card",
		Long: `Delete the card at a 1-based position of a column.

Examples:
  sage card delete inbox 1
`,
		Args: cli.ExactArgs(2),
		RunE: runDelete,
	}
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	boardRef, _ := cmd.Flags().GetString("board")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		index, err := cli.ParsePosition(args[1])
		if err != nil {
			return err
		}
		board, err := cli.ResolveBoard(c.App, boardRef)
		if err != nil {
			return err
		}
		col, err := cli.ResolveColumn(board, args[0])
		if err != nil {
			return err
		}
		if index >= len(col.Tasks) {
			return fmt.Errorf("%w: %s position %d", models.ErrTaskNotFound, col.Title, index+1)
		}
		task := col.Tasks[index]

		if err := c.App.DeleteCard(ctx, col.ID, index); err != nil {
			return err
		}

		return f.Success(cli.Result{
			ID:    string(task.ID),
			Data:  map[string]any{"deleted": true, "task": task},
			Human: fmt.Sprintf("Deleted %q from %s", task.Content, col.Title),
		})
	})
}
