package board

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sage/internal/cli"
)

// RenameCmd returns the board rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <board> <name>",
		Short: "Rename a board",
		Long: `Rename a board, found by ID or name.

Examples:
  sage board rename "Board A" Home
`,
		Args: cli.ExactArgs(2),
		RunE: runRename,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		name := strings.TrimSpace(args[1])
		if name == "" {
			return cli.UsageError(fmt.Errorf("board name cannot be empty"))
		}

		board, err := cli.ResolveBoard(c.App, args[0])
		if err != nil {
			return err
		}
		if err := c.App.EditBoard(ctx, board.ID, name); err != nil {
			return err
		}
		board.Name = name

		return f.Success(cli.Result{
			ID:    string(board.ID),
			Data:  board,
			Human: fmt.Sprintf("Renamed board to %q", name),
		})
	})
}
