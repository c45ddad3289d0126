// Package tui is the terminal shell: a sidebar of boards and chats next to
// either the kanban board or the active conversation.
package tui

import (
	"context"
	"errors"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
	"github.com/thenoetrevino/sage/internal/app"
	"github.com/thenoetrevino/sage/internal/config"
	"github.com/thenoetrevino/sage/internal/events"
	"github.com/thenoetrevino/sage/internal/models"
	"github.com/thenoetrevino/sage/internal/tui/state"
)

// Model is the Bubble Tea model for the shell.
// Domain state lives in the App; the Model only holds presentation state.
type Model struct {
	Ctx    context.Context
	App    *app.App
	Config *config.Config
	Keys   KeyMap
	Styles Styles

	UIState           *state.UIState
	InputState        *state.InputState
	SearchState       *state.SearchState
	NotificationState *state.NotificationState

	// Clipboard writes text to the system clipboard
	Clipboard func(string) error

	eventChan   <-chan events.Event
	unsubscribe func()
	cancel      context.CancelFunc
}

// InitialModel creates the shell model and subscribes it to app events
func InitialModel(ctx context.Context, a *app.App, cfg *config.Config) *Model {
	ctx, cancel := context.WithCancel(ctx)

	m := &Model{
		Ctx:               ctx,
		App:               a,
		Config:            cfg,
		Keys:              NewKeyMap(cfg.KeyMappings),
		Styles:            NewStyles(cfg.ColorScheme),
		UIState:           state.NewUIState(),
		InputState:        state.NewInputState(),
		SearchState:       state.NewSearchState(),
		NotificationState: state.NewNotificationState(),
		Clipboard:         clipboard.WriteAll,
		cancel:            cancel,
	}
	m.listen(a)
	m.syncSelection()
	return m
}

// Init starts listening for app events
func (m *Model) Init() tea.Cmd {
	return m.subscribeToEvents()
}

// listen replaces the current event stream with one from src
func (m *Model) listen(src events.Subscriber) {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	m.eventChan, m.unsubscribe = src.Subscribe(events.DefaultBuffer)
}

// Shutdown stops the event subscription
func (m *Model) Shutdown() {
	m.cancel()
	m.unsubscribe()
}

// report shows err in the status line and reports whether the change took
// effect. Ignorable errors are dropped. Persistence failures keep the
// in-memory change and arrive separately as storage events.
func (m *Model) report(action string, err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, app.ErrPersist):
		return true
	case models.IsIgnorable(err):
		slog.Debug("ignored", "action", action, "error", err)
		return false
	}
	slog.Error("action failed", "action", action, "error", err)
	m.NotificationState.Add(state.LevelError, action+": "+err.Error())
	return false
}

func (m *Model) info(msg string) {
	m.NotificationState.Add(state.LevelInfo, msg)
}

// syncSelection clamps cursor positions to the current app state
func (m *Model) syncSelection() {
	b, ok := m.App.ActiveBoard()
	if !ok {
		m.UIState.ClampSelection(0, nil)
	} else {
		if i := b.Columns.Index(m.App.SelectedColumn()); i >= 0 && i != m.UIState.SelectedColumn() {
			m.UIState.SetSelectedColumn(i)
			m.UIState.SetSelectedTask(0)
		}
		m.UIState.ClampSelection(len(b.Columns), func(i int) int { return len(b.Columns[i].Tasks) })
	}

	if c, ok := m.App.ActiveConversation(); ok {
		m.UIState.ClampMessage(len(c.Messages))
	} else {
		m.UIState.ClampMessage(0)
	}
}

// currentColumn returns the selected column of the active board
func (m *Model) currentColumn() (models.Board, models.Column, bool) {
	b, ok := m.App.ActiveBoard()
	i := m.UIState.SelectedColumn()
	if !ok || i < 0 || i >= len(b.Columns) {
		return b, models.Column{}, false
	}
	return b, b.Columns[i], true
}

// currentTask returns the selected card, if any
func (m *Model) currentTask() (models.Column, models.Task, bool) {
	_, col, ok := m.currentColumn()
	i := m.UIState.SelectedTask()
	if !ok || i < 0 || i >= len(col.Tasks) {
		return col, models.Task{}, false
	}
	return col, col.Tasks[i], true
}
