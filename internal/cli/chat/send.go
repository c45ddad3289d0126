package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sage/internal/cli"
)

// SendCmd returns the chat send subcommand
func SendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send <message...>",
		Short: "Add a message to the current conversation",
		Long: `Add a message. It continues the latest conversation when that
conversation was active within the continuation window (chat.continuation_window,
default 5m); otherwise a new conversation is started.

Examples:
  sage chat send "Remember to buy milk. Call Alice!"
  MSG_ID=$(sage chat send "idea" --quiet)
`,
		Args: cli.MinimumNArgs(1),
		RunE: runSend,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runSend(cmd *cobra.Command, args []string) error {
	content := strings.Join(args, " ")

	return cli.Run(cmd, func(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter) error {
		res, err := c.App.AddChatMessage(ctx, content)
		if err != nil {
			return err
		}

		human := fmt.Sprintf("Added message to conversation %s", res.Conversation.ID)
		if res.Started {
			human = fmt.Sprintf("Started conversation %s", res.Conversation.ID)
		}
		return f.Success(cli.Result{
			ID: string(res.Message.ID),
			Data: map[string]any{
				"message":      res.Message,
				"conversation": res.Conversation.ID,
				"started":      res.Started,
			},
			Human: human,
		})
	})
}
