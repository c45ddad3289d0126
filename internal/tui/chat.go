package tui

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// handleChatKeys handles message selection and export in the chat view
func (m *Model) handleChatKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	k := m.Keys
	conv, ok := m.App.ActiveConversation()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, k.PrevTask):
		if m.UIState.SelectedMessage() > 0 {
			m.UIState.SetSelectedMessage(m.UIState.SelectedMessage() - 1)
		}
	case key.Matches(msg, k.NextTask):
		if m.UIState.SelectedMessage() < len(conv.Messages)-1 {
			m.UIState.SetSelectedMessage(m.UIState.SelectedMessage() + 1)
		}
	case key.Matches(msg, k.CopyChat):
		transcript, err := m.App.Transcript(conv.ID)
		if !m.report("copy chat", err) || transcript == "" {
			break
		}
		if err := m.Clipboard(transcript); err != nil {
			m.report("copy chat", err)
			break
		}
		m.info("Copied conversation to clipboard")
	case key.Matches(msg, k.SaveToKanban):
		i := m.UIState.SelectedMessage()
		if i < 0 || i >= len(conv.Messages) {
			break
		}
		message := conv.Messages[i]
		tasks, err := m.App.SaveMessageToCards(m.Ctx, message.ID)
		if !m.report("save to kanban", err) {
			break
		}
		m.info(fmt.Sprintf("Saved %d card(s) to Inbox", len(tasks)))
		m.syncSelection()
	}
	return m, nil
}
