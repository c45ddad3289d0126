package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sage/internal/cli"
	"github.com/thenoetrevino/sage/internal/cli/board"
	"github.com/thenoetrevino/sage/internal/cli/card"
	"github.com/thenoetrevino/sage/internal/cli/chat"
	"github.com/thenoetrevino/sage/internal/cli/column"
	"github.com/thenoetrevino/sage/internal/cli/setup"
	"github.com/thenoetrevino/sage/internal/config"
	"github.com/thenoetrevino/sage/internal/launcher"
	"github.com/thenoetrevino/sage/internal/logging"
)

var logCloser io.Closer

var rootCmd = &cobra.Command{
	Use:   "sage",
	Short: "Sage - a terminal kanban board with chat notes",
	Long: `Sage keeps kanban boards and a chat-style notebook side by side.

Run without arguments to open the terminal UI. The subcommands work on the
same storage for scripting.`,
	Args:              cli.ExactArgs(0),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: prepare,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.ConfigFromContext(cmd.Context())
		if err != nil {
			return err
		}
		return launcher.Launch(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().String("backend", "", "Storage backend: sqlite, file, redis or memory")
	rootCmd.PersistentFlags().String("path", "", "SQLite file or data directory for the file backend")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cli.UsageError(err)
	})

	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(column.ColumnCmd())
	rootCmd.AddCommand(card.CardCmd())
	rootCmd.AddCommand(chat.ChatCmd())
	rootCmd.AddCommand(setup.InitCmd())
}

// prepare loads configuration, applies storage flags and starts file logging
func prepare(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if backend, _ := cmd.Flags().GetString("backend"); backend != "" {
		cfg.Storage.Backend = backend
		cfg.Storage.Path = ""
	}
	if path, _ := cmd.Flags().GetString("path"); path != "" {
		cfg.Storage.Path = path
	}
	if err := cfg.Normalize(); err != nil {
		return cli.UsageError(err)
	}

	closer, err := logging.Init(cfg.Level())
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logCloser = closer
	slog.Debug("starting", "command", cmd.CommandPath(), "backend", cfg.Storage.Backend)

	cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
	return nil
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return cli.ExitSuccess
	}
	if strings.HasPrefix(err.Error(), "unknown command") {
		err = cli.UsageError(err)
	}
	if !cli.IsReported(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return cli.ExitCode(err)
}
