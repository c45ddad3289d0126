package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/sage/internal/app"
	"github.com/thenoetrevino/sage/internal/services/conversation"
	"github.com/thenoetrevino/sage/internal/tui/state"
)

const messageTimeLayout = "3:04 PM"

// View renders the current state of the application.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.Content = m.render()
	return view
}

func (m *Model) render() string {
	if m.UIState.Mode() == state.HelpMode {
		return m.renderHelp()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), m.renderMain())
	parts := []string{body}
	if prompt := m.renderPrompt(); prompt != "" {
		parts = append(parts, prompt)
	}
	parts = append(parts, m.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) mainWidth() int {
	return max(m.UIState.Width()-sidebarWidth-4, 30)
}

// ============================================================================
// SIDEBAR
// ============================================================================

func (m *Model) renderSidebar() string {
	s := m.Styles
	inner := sidebarWidth - 4
	res := m.App.Search(m.SearchState.Query)

	var lines []string
	if m.UIState.Mode() == state.SearchMode || m.SearchState.Query != "" {
		lines = append(lines, s.Search.Render("/ "+m.SearchState.Query))
	}

	lines = append(lines, s.SidebarTitle.Render("Boards"))
	active, _ := m.App.ActiveBoard()
	if len(res.Boards) == 0 {
		lines = append(lines, s.Empty.Render("No boards"))
	}
	for _, b := range res.Boards {
		name := ansi.Truncate(b.Name, inner-2, "…")
		if b.ID == active.ID {
			lines = append(lines, s.SidebarActive.Render("▸ "+name))
			continue
		}
		lines = append(lines, s.SidebarItem.Render("  "+name))
	}

	lines = append(lines, s.SidebarTitle.Render("Chats"))
	conv, _ := m.App.ActiveConversation()
	if len(res.Conversations) == 0 {
		lines = append(lines, s.Empty.Render("No chats yet"))
	}
	for _, c := range res.Conversations {
		sum := conversation.Summarize(c)
		title := ansi.Truncate(firstLine(sum.Title), inner-2, "…")
		if c.ID == conv.ID {
			lines = append(lines, s.SidebarActive.Render("▸ "+title))
		} else {
			lines = append(lines, s.SidebarItem.Render("  "+title))
		}
		lines = append(lines, s.SidebarWhen.Render("  "+sum.When))
	}

	return s.Sidebar.Render(strings.Join(lines, "\n"))
}

func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}

// ============================================================================
// MAIN PANEL
// ============================================================================

func (m *Model) renderMain() string {
	if m.App.View() == app.ViewChat {
		return m.renderChat()
	}
	return m.renderKanban()
}

func (m *Model) renderKanban() string {
	s := m.Styles
	b, ok := m.App.ActiveBoard()
	if !ok {
		return s.Empty.Padding(1, 2).Render(fmt.Sprintf("No boards. Press %s to create one.", m.Config.KeyMappings.CreateBoard))
	}

	cols := make([]string, 0, len(b.Columns))
	for ci, col := range b.Columns {
		selected := ci == m.UIState.SelectedColumn()

		lines := []string{s.ColumnTitle.Render(fmt.Sprintf("%s (%d)", col.Title, len(col.Tasks)))}
		if len(col.Tasks) == 0 {
			lines = append(lines, s.Empty.Render("No cards"))
		}
		for ti, task := range col.Tasks {
			style := s.Task
			if selected && ti == m.UIState.SelectedTask() {
				style = s.SelectedTask
			}
			lines = append(lines, style.Render(task.Content))
		}

		style := s.Column
		if selected {
			style = s.SelectedColumn
		}
		cols = append(cols, style.Render(strings.Join(lines, "\n")))
	}

	title := s.ColumnTitle.PaddingLeft(1).Render(b.Name)
	board := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	return lipgloss.JoinVertical(lipgloss.Left, title, board)
}

func (m *Model) renderChat() string {
	s := m.Styles
	conv, ok := m.App.ActiveConversation()
	if !ok {
		return s.Empty.Padding(1, 2).Render(fmt.Sprintf("No conversation. Press %s to write a message.", m.Config.KeyMappings.Compose))
	}

	width := m.mainWidth()
	sum := conversation.Summarize(conv)
	lines := []string{s.ColumnTitle.PaddingLeft(1).Render(ansi.Truncate(firstLine(sum.Title), width-2, "…"))}
	if len(conv.Messages) == 0 {
		lines = append(lines, s.Empty.PaddingLeft(1).Render("No messages yet"))
	}
	for i, msg := range conv.Messages {
		style := s.Message
		if i == m.UIState.SelectedMessage() {
			style = s.SelectedMessage
		}
		stamp := s.MessageTime.Render(msg.Timestamp.Local().Format(messageTimeLayout))
		content := renderMarkdown(msg.Content, width-4)
		lines = append(lines, style.Render(stamp+"\n"+content))
	}
	return strings.Join(lines, "\n")
}

// ============================================================================
// PROMPT / STATUS BAR / HELP
// ============================================================================

func (m *Model) renderPrompt() string {
	s := m.Styles
	mode := m.UIState.Mode()
	switch {
	case mode == state.DeleteBoardConfirmMode:
		b, _ := m.App.ActiveBoard()
		return s.DeletePrompt.Render(fmt.Sprintf("Delete board %q? (y/n)", b.Name))
	case mode == state.RenameBoardMode || mode == state.RenameColumnMode:
		return s.RenamePrompt.Render(m.InputState.Prompt) + " " + m.InputState.Buffer + "█"
	case mode.IsInput():
		return s.Prompt.Render(m.InputState.Prompt) + " " + m.InputState.Buffer + "█"
	}
	return ""
}

func (m *Model) renderStatusBar() string {
	s := m.Styles
	left := fmt.Sprintf(" %s  %s ", m.UIState.Mode(), m.App.View())
	right := fmt.Sprintf("%s help ", m.Config.KeyMappings.ShowHelp)

	if n, ok := m.NotificationState.Latest(); ok {
		right = n.Message + " "
		if n.Level == state.LevelError {
			right = s.StatusErr.Render(right)
		}
	}

	width := max(m.UIState.Width(), lipgloss.Width(left)+lipgloss.Width(right))
	gap := strings.Repeat(" ", max(width-lipgloss.Width(left)-lipgloss.Width(right)-2, 0))
	return s.StatusBar.Render(left + gap + right)
}

func (m *Model) renderHelp() string {
	s := m.Styles
	lines := []string{s.ColumnTitle.Render("Keyboard shortcuts")}
	for _, section := range m.Keys.helpSections() {
		lines = append(lines, s.HelpTitle.Render(section.title))
		for _, b := range section.bindings {
			h := b.Help()
			lines = append(lines, s.HelpKey.Render(h.Key)+" "+h.Desc)
		}
	}
	lines = append(lines, "", s.Empty.Render("Press any key to return"))
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(lines, "\n"))
}
