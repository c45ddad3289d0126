package chat

import (
	"github.com/spf13/cobra"
)

// ChatCmd returns the chat parent command
func ChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Write and browse chat notes",
	}

	cmd.AddCommand(SendCmd())
	cmd.AddCommand(NewCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(SaveCmd())

	return cmd
}
