// Package cli holds the shared plumbing of the sage subcommands: opening
// the application, output formatting and exit codes.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sage/internal/app"
	"github.com/thenoetrevino/sage/internal/config"
	"github.com/thenoetrevino/sage/internal/database"
	"github.com/thenoetrevino/sage/internal/store"
	"github.com/thenoetrevino/sage/internal/types"
)

type contextKey string

const (
	appKey    contextKey = "app"
	configKey contextKey = "config"
)

// WithApp makes commands run against a instead of opening storage
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// WithConfig makes commands use cfg instead of loading it
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext returns the config stored by WithConfig, loading it
// from disk when absent
func ConfigFromContext(ctx context.Context) (*config.Config, error) {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok && cfg != nil {
		return cfg, nil
	}
	return config.Load()
}

// CLI represents the CLI application context
type CLI struct {
	App   *app.App
	owned bool
}

// NewCLI opens the application for a command. An app injected with WithApp
// is used as is and left open on Close.
func NewCLI(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}

	cfg, err := ConfigFromContext(ctx)
	if err != nil {
		return nil, err
	}
	a, err := OpenApp(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &CLI{App: a, owned: true}, nil
}

// OpenApp opens the configured backend and hydrates an App from it
func OpenApp(ctx context.Context, cfg *config.Config) (*app.App, error) {
	kv, err := database.Open(ctx, database.Options{
		Backend:     cfg.Storage.Backend,
		Path:        cfg.Storage.Path,
		RedisAddr:   cfg.Storage.RedisAddr,
		RedisDB:     cfg.Storage.RedisDB,
		RedisPrefix: cfg.Storage.RedisPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
	}

	a, err := app.New(ctx, store.New(kv, types.UUIDGenerator{}),
		app.WithLogger(slog.Default()),
		app.WithContinuationWindow(cfg.Chat.ContinuationWindow),
	)
	if err != nil {
		_ = kv.Close()
		return nil, err
	}
	return a, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}

// Run opens the CLI, calls fn and reports its error through the formatter.
// It is the common body of every subcommand.
func Run(cmd *cobra.Command, fn func(ctx context.Context, c *CLI, f *OutputFormatter) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := Formatter(cmd)

	c, err := NewCLI(ctx)
	if err != nil {
		return Fail(formatter, "INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := c.Close(); err != nil {
			slog.Error("failed to close storage", "error", err)
		}
	}()

	if err := fn(ctx, c, formatter); err != nil {
		return Fail(formatter, ErrorCode(err), err)
	}
	return nil
}
