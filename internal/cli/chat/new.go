package chat

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sage/internal/cli"
)

// NewCmd returns the chat new subcommand
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start an empty conversation",
		Args:  cli.ExactArgs(0),
		RunE:  runNew,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runNew(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		conv, err := c.App.AddChat(ctx)
		if err != nil {
			return err
		}
		return f.Success(cli.Result{
			ID:    string(conv.ID),
			Data:  conv,
			Human: fmt.Sprintf("Started conversation %s", conv.ID),
		})
	})
}
