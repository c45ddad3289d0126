package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/sage/internal/app"
	"github.com/thenoetrevino/sage/internal/tui/state"
)

// handleInputMode handles text entry for every prompt mode
func (m *Model) handleInputMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.submitInput()
		m.InputState.Clear()
		m.UIState.SetMode(state.NormalMode)
	case "esc":
		m.InputState.Clear()
		m.UIState.SetMode(state.NormalMode)
	case "backspace":
		m.InputState.Backspace()
	default:
		m.InputState.AppendText(msg.Text)
	}
	return m, nil
}

// submitInput applies the buffer according to the mode that collected it
func (m *Model) submitInput() {
	input := m.InputState.TrimmedBuffer()

	switch m.UIState.Mode() {
	case state.AddTaskMode:
		_, col, ok := m.currentColumn()
		if !ok {
			return
		}
		if _, err := m.App.AddCard(m.Ctx, input, col.ID); m.report("add card", err) {
			m.UIState.SetSelectedTask(len(col.Tasks))
			m.syncSelection()
		}

	case state.SplitTextMode:
		tasks, err := m.App.SplitTextToCards(m.Ctx, m.InputState.Buffer)
		if m.report("split text", err) && len(tasks) > 0 {
			m.info(fmt.Sprintf("Added %d card(s) to Inbox", len(tasks)))
			m.syncSelection()
		}

	case state.RenameColumnMode:
		_, col, ok := m.currentColumn()
		if !ok || !m.InputState.HasInputChanges() {
			return
		}
		m.report("rename column", m.App.EditColumnTitle(m.Ctx, col.ID, input))

	case state.RenameBoardMode:
		b, ok := m.App.ActiveBoard()
		if !ok || m.InputState.IsEmpty() || !m.InputState.HasInputChanges() {
			return
		}
		m.report("rename board", m.App.EditBoard(m.Ctx, b.ID, input))

	case state.ComposeMode:
		res, err := m.App.AddChatMessage(m.Ctx, m.InputState.Buffer)
		if !m.report("send message", err) {
			return
		}
		m.App.SetView(app.ViewChat)
		m.UIState.SetSelectedMessage(len(res.Conversation.Messages) - 1)
	}
}
