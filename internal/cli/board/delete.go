package board

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sage/internal/cli"
)

// DeleteCmd returns the board delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <board>",
		Short: "Delete a board and its cards",
		Long: `Delete a board, found by ID or name.

Examples:
  # With confirmation prompt
  sage board delete "Board B"

  # Skip confirmation
  sage board delete "Board B" --force
`,
		Args: cli.ExactArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation prompt")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		board, err := cli.ResolveBoard(c.App, args[0])
		if err != nil {
			return err
		}

		if !force && !f.JSON && !f.Quiet {
			fmt.Printf("Delete board %q with %d cards? (y/N): ", board.Name, board.Columns.TaskCount())
			reader := bufio.NewReader(os.Stdin)
			response, _ := reader.ReadString('\n')
			response = strings.ToLower(strings.TrimSpace(response))
			if response != "y" && response != "yes" {
				fmt.Println("Cancelled")
				return nil
			}
		}

		if err := c.App.DeleteBoard(ctx, board.ID); err != nil {
			return err
		}

		return f.Success(cli.Result{
			ID:    string(board.ID),
			Data:  map[string]any{"deleted": true, "id": board.ID},
			Human: fmt.Sprintf("Deleted board %q", board.Name),
		})
	})
}
