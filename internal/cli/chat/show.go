package chat

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sage/internal/cli"
)

// ShowCmd returns the chat show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [conversation]",
		Short: "Print a conversation transcript",
		Long: `Print a conversation as "User: <message>" lines. Defaults to the
latest conversation.

Examples:
  sage chat show
  sage chat show 3f1c... --json
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
		conv, err := cli.ResolveConversation(c.App, ref)
		if err != nil {
			return err
		}
		transcript, err := c.App.Transcript(conv.ID)
		if err != nil {
			return err
		}
		return f.Success(cli.Result{ID: string(conv.ID), Data: conv, Human: transcript})
	})
}
