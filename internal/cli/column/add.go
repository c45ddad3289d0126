package column

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sage/internal/cli"
)

// AddCmd returns the column add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Append a column to a board",
		Long: `Append a column to the end of a board.

Without a title the column is called "New Column".

Examples:
  sage column add Review --board "Board A"

  # Quiet mode for bash capture
  COLUMN_ID=$(sage column add Review --quiet)
`,
		Args: cli.MaximumNArgs(1),
		RunE: runAdd,
	}
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	boardRef, _ := cmd.Flags().GetString("board")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		board, err := cli.ResolveBoard(c.App, boardRef)
		if err != nil {
			return err
		}

		col, err := c.App.AddColumn(ctx)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			if err := c.App.EditColumnTitle(ctx, col.ID, args[0]); err != nil {
				return err
			}
			col.Title = args[0]
		}

		return f.Success(cli.Result{
			ID:    string(col.ID),
			Data:  col,
			Human: fmt.Sprintf("Added column %q to %s", col.Title, board.Name),
		})
	})
}
