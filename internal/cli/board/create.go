package board

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sage/internal/cli"
)

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new board",
		Long: `Create a new board with the default columns.

Without a name the board is called "New Board N".

Examples:
  sage board create
  sage board create "Side project"

  # Quiet mode for bash capture
  BOARD_ID=$(sage board create "Side project" --quiet)
`,
		Args: cli.MaximumNArgs(1),
		RunE: runCreate,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		board, err := c.App.AddBoard(ctx)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return cli.UsageError(fmt.Errorf("board name cannot be empty"))
			}
			if err := c.App.EditBoard(ctx, board.ID, name); err != nil {
				return err
			}
			board.Name = name
		}

		return f.Success(cli.Result{
			ID:    string(board.ID),
			Data:  board,
			Human: fmt.Sprintf("Created board %q (%s)", board.Name, board.ID),
		})
	})
}
