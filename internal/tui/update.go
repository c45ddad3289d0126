package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/sage/internal/app"
	"github.com/thenoetrevino/sage/internal/tui/state"
)

// Update handles all messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UIState.SetWidth(msg.Width)
		m.UIState.SetHeight(msg.Height)
		return m, nil
	case RefreshMsg:
		return m.handleRefresh(msg)
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey dispatches keyboard input based on the current mode
func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	switch m.UIState.Mode() {
	case state.NormalMode:
		m.NotificationState.Clear()
		return m.handleNormalMode(msg)
	case state.SearchMode:
		return m.handleSearchMode(msg)
	case state.DeleteBoardConfirmMode:
		return m.handleDeleteBoardConfirm(msg)
	case state.HelpMode:
		m.UIState.SetMode(state.NormalMode)
		return m, nil
	default:
		return m.handleInputMode(msg)
	}
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.Shutdown()
	return m, tea.Quit
}

// handleNormalMode handles keys shared by both views, then the active view's keys
func (m *Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	k := m.Keys
	switch {
	case key.Matches(msg, k.Quit):
		return m.quit()
	case key.Matches(msg, k.ShowHelp):
		m.UIState.SetMode(state.HelpMode)
	case key.Matches(msg, k.Search):
		m.SearchState.Clear()
		m.UIState.SetMode(state.SearchMode)
	case key.Matches(msg, k.ToggleView):
		m.toggleView()
	case key.Matches(msg, k.CreateBoard):
		_, err := m.App.AddBoard(m.Ctx)
		m.report("new board", err)
		m.syncSelection()
	case key.Matches(msg, k.RenameBoard):
		if b, ok := m.App.ActiveBoard(); ok {
			m.startInput(state.RenameBoardMode, "Rename board:", b.Name)
		}
	case key.Matches(msg, k.DeleteBoard):
		if _, ok := m.App.ActiveBoard(); ok {
			m.UIState.SetMode(state.DeleteBoardConfirmMode)
		}
	case key.Matches(msg, k.NextBoard):
		m.cycleBoard(1)
	case key.Matches(msg, k.PrevBoard):
		m.cycleBoard(-1)
	case key.Matches(msg, k.NewChat):
		_, err := m.App.AddChat(m.Ctx)
		m.report("new chat", err)
		m.UIState.SetSelectedMessage(0)
	case key.Matches(msg, k.NextChat):
		m.cycleChat(1)
	case key.Matches(msg, k.PrevChat):
		m.cycleChat(-1)
	case key.Matches(msg, k.Compose):
		m.startInput(state.ComposeMode, "Message:", "")
	default:
		if m.App.View() == app.ViewChat {
			return m.handleChatKeys(msg)
		}
		return m.handleKanbanKeys(msg)
	}
	return m, nil
}

func (m *Model) startInput(mode state.Mode, prompt, initial string) {
	m.InputState.Start(prompt, initial)
	m.UIState.SetMode(mode)
}

func (m *Model) toggleView() {
	if m.App.View() == app.ViewChat {
		m.App.SetView(app.ViewKanban)
		return
	}
	m.App.SetView(app.ViewChat)
}

// cycleBoard activates the board delta steps away from the active one
func (m *Model) cycleBoard(delta int) {
	boards := m.App.Boards()
	if len(boards) == 0 {
		return
	}
	cur := 0
	if b, ok := m.App.ActiveBoard(); ok {
		for i := range boards {
			if boards[i].ID == b.ID {
				cur = i
				break
			}
		}
	}
	next := (cur + delta + len(boards)) % len(boards)
	m.report("select board", m.App.SelectBoard(boards[next].ID))
	m.syncSelection()
}

// cycleChat activates the conversation delta steps away from the active one
func (m *Model) cycleChat(delta int) {
	convs := m.App.Conversations()
	if len(convs) == 0 {
		return
	}
	next := 0
	if c, ok := m.App.ActiveConversation(); ok {
		for i := range convs {
			if convs[i].ID == c.ID {
				next = (i + delta + len(convs)) % len(convs)
				break
			}
		}
	}
	m.report("select chat", m.App.SelectChat(convs[next].ID))
	m.UIState.SetSelectedMessage(0)
	m.syncSelection()
}

func (m *Model) handleDeleteBoardConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		if b, ok := m.App.ActiveBoard(); ok {
			m.report("delete board", m.App.DeleteBoard(m.Ctx, b.ID))
			m.syncSelection()
		}
		m.UIState.SetMode(state.NormalMode)
	case "n", "N", "esc":
		m.UIState.SetMode(state.NormalMode)
	}
	return m, nil
}
