package column

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sage/internal/cli"
)

// RenameCmd returns the column rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <column> <title>",
		Short: "Rename a column",
		Long: `Rename a column, found by ID, title or 1-based position.

Examples:
  sage column rename todo "Up next"
  sage column rename 2 "Up next" --board "Board B"
`,
		Args: cli.ExactArgs(2),
		RunE: runRename,
	}
	cli.AddBoardFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	boardRef, _ := cmd.Flags().GetString("board")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		board, err := cli.ResolveBoard(c.App, boardRef)
		if err != nil {
			return err
		}
		col, err := cli.ResolveColumn(board, args[0])
		if err != nil {
			return err
		}

		if err := c.App.EditColumnTitle(ctx, col.ID, args[1]); err != nil {
			return err
		}
		col.Title = args[1]

		return f.Success(cli.Result{
			ID:    string(col.ID),
			Data:  col,
			Human: fmt.Sprintf("Renamed column to %q", args[1]),
		})
	})
}
