package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/sage/internal/events"
	"github.com/thenoetrevino/sage/internal/tui/state"
)

// RefreshMsg is sent when app state changed and the view must re-read it
type RefreshMsg struct {
	Event events.Event
}

// subscribeToEvents waits for the next app event.
// It returns nil when the subscription ends so the command chain stops.
func (m *Model) subscribeToEvents() tea.Cmd {
	ch := m.eventChan
	ctx := m.Ctx
	return func() tea.Msg {
		select {
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return RefreshMsg{Event: event}
		case <-ctx.Done():
			return nil
		}
	}
}

func (m *Model) handleRefresh(msg RefreshMsg) (tea.Model, tea.Cmd) {
	switch msg.Event.Type {
	case events.EventStorageError:
		text := "storage error"
		if msg.Event.Err != nil {
			text += ": " + msg.Event.Err.Error()
		}
		m.NotificationState.Add(state.LevelError, text)
	case events.EventReloaded:
		m.info("Reloaded from storage")
	}
	m.syncSelection()
	return m, m.subscribeToEvents()
}
