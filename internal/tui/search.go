package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/sage/internal/app"
	"github.com/thenoetrevino/sage/internal/tui/state"
)

// handleSearchMode filters the sidebar as the user types. Enter opens the
// first match for the current view.
func (m *Model) handleSearchMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.openFirstMatch()
		m.SearchState.Clear()
		m.UIState.SetMode(state.NormalMode)
	case "esc":
		m.SearchState.Clear()
		m.UIState.SetMode(state.NormalMode)
	case "backspace":
		m.SearchState.Backspace()
	default:
		m.SearchState.AppendText(msg.Text)
	}
	return m, nil
}

func (m *Model) openFirstMatch() {
	res := m.App.Search(m.SearchState.Query)
	if m.App.View() == app.ViewChat {
		if len(res.Conversations) > 0 {
			m.report("select chat", m.App.SelectChat(res.Conversations[0].ID))
			m.UIState.SetSelectedMessage(0)
		}
	} else if len(res.Boards) > 0 {
		m.report("select board", m.App.SelectBoard(res.Boards[0].ID))
	}
	m.syncSelection()
}
