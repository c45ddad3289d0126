package card

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sage/internal/cli"
	"github.com/thenoetrevino/sage/internal/models"
)

// SplitCmd returns the card split subcommand
func SplitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split <text...>",
		Short: "Split text into one card per sentence",
		Long: `Split text on sentence punctuation (. ! ?) and add one card per
non-empty fragment. Cards go to the Inbox unless --column is given.

Examples:
  sage card split "Buy milk. Call Alice! Did you email Bob?"
  echo "One. Two." | xargs -0 sage card split --column todo
`,
		Args: cli.MinimumNArgs(1),
		RunE: runSplit,
	}
	cli.AddBoardFlag(cmd)
	cmd.Flags().StringP("column", "c", "", "Column ID, title or position (default: Inbox)")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runSplit(cmd *cobra.Command, args []string) error {
	boardRef, _ := cmd.Flags().GetString("board")
	columnRef, _ := cmd.Flags().GetString("column")
	text := strings.Join(args, " ")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		board, err := cli.ResolveBoard(c.App, boardRef)
		if err != nil {
			return err
		}

		var tasks []models.Task
		if columnRef == "" {
			tasks, err = c.App.SplitTextToCards(ctx, text)
		} else {
			col, resolveErr := cli.ResolveColumn(board, columnRef)
			if resolveErr != nil {
				return resolveErr
			}
			tasks, err = c.App.SplitTextToColumn(ctx, text, col.ID)
		}
		if err != nil {
			return err
		}

		ids := make([]string, len(tasks))
		lines := []string{fmt.Sprintf("Added %d card(s)", len(tasks))}
		for i, task := range tasks {
			ids[i] = string(task.ID)
			lines = append(lines, "  "+task.Content)
		}

		return f.Success(cli.Result{
			ID:    strings.Join(ids, "\n"),
			Data:  tasks,
			Human: strings.Join(lines, "\n"),
		})
	})
}
