package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/sage/internal/cli"
	"github.com/thenoetrevino/sage/internal/config"
	"github.com/thenoetrevino/sage/internal/tui"
)

// Launch starts the TUI application
func Launch(ctx context.Context, cfg *config.Config) error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	application, err := cli.OpenApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing storage", "error", err)
		}
	}()

	// Pick up changes written by other sage processes
	watching, err := application.Watch(ctx)
	switch {
	case err != nil:
		slog.Warn("failed to watch storage, continuing without live updates", "error", err)
	case watching:
		slog.Info("watching storage for external changes", "backend", cfg.Storage.Backend)
	default:
		slog.Debug("storage backend does not report changes", "backend", cfg.Storage.Backend)
	}

	model := tui.InitialModel(ctx, application, cfg)
	defer model.Shutdown()

	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown signal received, cleaning up")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
