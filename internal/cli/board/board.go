package board

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sage/internal/models"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Manage kanban boards",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}

// formatBoard renders a board as an indented outline
func formatBoard(b models.Board) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s)\n", b.Name, b.ID)
	for i, col := range b.Columns {
		fmt.Fprintf(&sb, "\n%d. %s [%s] (%d)\n", i+1, col.Title, col.ID, len(col.Tasks))
		for j, task := range col.Tasks {
			fmt.Fprintf(&sb, "   %d) %s\n", j+1, task.Content)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
