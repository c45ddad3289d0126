package board

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sage/internal/cli"
)

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all boards",
		Long: `List all boards with their card counts.

Examples:
  sage board list
  sage board list --json
`,
		Args: cli.ExactArgs(0),
		RunE: runList,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		boards := c.App.Boards()

		if f.Quiet {
			ids := make([]string, len(boards))
			for i, b := range boards {
				ids[i] = string(b.ID)
			}
			return f.Success(cli.Result{ID: strings.Join(ids, "\n")})
		}

		lines := make([]string, 0, len(boards))
		for _, b := range boards {
			lines = append(lines, fmt.Sprintf("%s  %s  (%d cards)", b.ID, b.Name, b.Columns.TaskCount()))
		}
		if len(lines) == 0 {
			lines = append(lines, "No boards")
		}
		return f.Success(cli.Result{Data: boards, Human: strings.Join(lines, "\n")})
	})
}
