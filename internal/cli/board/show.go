package board

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sage/internal/cli"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [board]",
		Short: "Show the columns and cards of a board",
		Long: `Show a board, found by ID or name. Defaults to the first board.

Examples:
  sage board show
  sage board show "Board B" --json
`,
		Args: cli.MaximumNArgs(1),
		RunE: runShow,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ref := ""
	if len(args) == 1 {
		ref = args[0]
	}

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		board, err := cli.ResolveBoard(c.App, ref)
		if err != nil {
			return err
		}
		return f.Success(cli.Result{ID: string(board.ID), Data: board, Human: formatBoard(board)})
	})
}
