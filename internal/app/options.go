package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/sage/internal/events"
	"github.com/thenoetrevino/sage/internal/types"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	bus    *events.Bus
	logger *slog.Logger
	ids    types.IDGenerator
	now    func() time.Time
	window time.Duration
}

// WithEventBus sets the bus change notifications are published on
func WithEventBus(bus *events.Bus) Option {
	return func(cfg *appConfig) {
		cfg.bus = bus
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithIDGenerator sets the source of fresh ids. Without it the App shares
// the store's generator. An injected generator must not repeat ids the
// store already handed to seeded boards, so pass the same one to both.
func WithIDGenerator(ids types.IDGenerator) Option {
	return func(cfg *appConfig) {
		cfg.ids = ids
	}
}

// WithClock sets the time source used for chat messages
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.now = now
	}
}

// WithContinuationWindow sets how long a conversation stays open for new messages
func WithContinuationWindow(d time.Duration) Option {
	return func(cfg *appConfig) {
		cfg.window = d
	}
}
