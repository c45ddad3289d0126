package card

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sage/internal/cli"
	"github.com/thenoetrevino/sage/internal/models"
)

// MoveCmd returns the card move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <column> <position>",
		Short: "Move a card within or between columns",
		Long: `Move the card at a 1-based position of a column.

The destination defaults to the same column; the position defaults to the
end of the destination. Positions past the end are clamped.

Examples:
  # Move the first Inbox card to the end of To Do
  sage card move inbox 1 --to todo

  # Move the third card of To Do to the top
  sage card move todo 3 --position 1
`,
		Args: cli.ExactArgs(2),
		RunE: runMove,
	}
	cli.AddBoardFlag(cmd)
	cmd.Flags().String("to", "", "Destination column ID, title or position (default: same column)")
	cmd.Flags().Int("position", 0, "Destination 1-based position (default: end)")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	boardRef, _ := cmd.Flags().GetString("board")
	toRef, _ := cmd.Flags().GetString("to")
	position, _ := cmd.Flags().GetInt("position")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		src, err := cli.ParsePosition(args[1])
		if err != nil {
			return err
		}
		if position < 0 {
			return cli.UsageError(fmt.Errorf("--position must be positive, got %d", position))
		}

		board, err := cli.ResolveBoard(c.App, boardRef)
		if err != nil {
			return err
		}
		from, err := cli.ResolveColumn(board, args[0])
		if err != nil {
			return err
		}
		to := from
		if toRef != "" {
			if to, err = cli.ResolveColumn(board, toRef); err != nil {
				return err
			}
		}

		dst := len(to.Tasks)
		if position > 0 {
			dst = position - 1
		}
		if src >= len(from.Tasks) {
			return fmt.Errorf("%w: %s position %d", models.ErrTaskNotFound, from.Title, src+1)
		}
		task := from.Tasks[src]

		if err := c.App.MoveCard(ctx, from.ID, src, to.ID, dst); err != nil {
			return err
		}

		return f.Success(cli.Result{
			ID:    string(task.ID),
			Data:  map[string]any{"task": task, "from": from.ID, "to": to.ID},
			Human: fmt.Sprintf("Moved %q from %s to %s", task.Content, from.Title, to.Title),
		})
	})
}
