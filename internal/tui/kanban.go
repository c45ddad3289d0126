package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/sage/internal/models"
	"github.com/thenoetrevino/sage/internal/tui/state"
)

// handleKanbanKeys handles navigation and card editing on the board
func (m *Model) handleKanbanKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	k := m.Keys
	switch {
	case key.Matches(msg, k.PrevColumn):
		m.moveSelection(-1)
	case key.Matches(msg, k.NextColumn):
		m.moveSelection(1)
	case key.Matches(msg, k.PrevTask):
		if m.UIState.SelectedTask() > 0 {
			m.UIState.SetSelectedTask(m.UIState.SelectedTask() - 1)
		}
	case key.Matches(msg, k.NextTask):
		if col, _, ok := m.currentTask(); ok && m.UIState.SelectedTask() < len(col.Tasks)-1 {
			m.UIState.SetSelectedTask(m.UIState.SelectedTask() + 1)
		}
	case key.Matches(msg, k.AddTask):
		if _, col, ok := m.currentColumn(); ok {
			m.startInput(state.AddTaskMode, "New card in "+col.Title+":", "")
		}
	case key.Matches(msg, k.SplitText):
		if _, ok := m.App.ActiveBoard(); ok {
			m.startInput(state.SplitTextMode, "Split into Inbox:", "")
		}
	case key.Matches(msg, k.CreateColumn):
		if _, err := m.App.AddColumn(m.Ctx); !m.report("add column", err) {
			break
		}
		if b, ok := m.App.ActiveBoard(); ok {
			m.selectColumnAt(b.Columns, len(b.Columns)-1)
		}
	case key.Matches(msg, k.RenameColumn):
		if _, col, ok := m.currentColumn(); ok {
			m.startInput(state.RenameColumnMode, "Rename column:", col.Title)
		}
	case key.Matches(msg, k.DeleteTask):
		if col, _, ok := m.currentTask(); ok {
			m.report("delete card", m.App.DeleteCard(m.Ctx, col.ID, m.UIState.SelectedTask()))
			m.syncSelection()
		}
	case key.Matches(msg, k.MoveTaskLeft):
		m.moveCardAcross(-1)
	case key.Matches(msg, k.MoveTaskRight):
		m.moveCardAcross(1)
	case key.Matches(msg, k.MoveTaskUp):
		m.moveCardWithin(-1)
	case key.Matches(msg, k.MoveTaskDown):
		m.moveCardWithin(1)
	}
	return m, nil
}

// moveSelection moves the column cursor by delta
func (m *Model) moveSelection(delta int) {
	b, ok := m.App.ActiveBoard()
	if !ok {
		return
	}
	next := m.UIState.SelectedColumn() + delta
	if next < 0 || next >= len(b.Columns) {
		return
	}
	m.selectColumnAt(b.Columns, next)
}

func (m *Model) selectColumnAt(cols models.Columns, index int) {
	m.report("select column", m.App.SelectColumn(cols[index].ID))
	m.UIState.SetSelectedColumn(index)
	m.UIState.ClampSelection(len(cols), func(i int) int { return len(cols[i].Tasks) })
}

// moveCardAcross moves the selected card to the end of the neighbouring column
func (m *Model) moveCardAcross(delta int) {
	b, col, ok := m.currentColumn()
	if !ok || len(col.Tasks) == 0 {
		return
	}
	target := m.UIState.SelectedColumn() + delta
	if target < 0 || target >= len(b.Columns) {
		return
	}
	dst := b.Columns[target]
	if !m.report("move card", m.App.MoveCard(m.Ctx, col.ID, m.UIState.SelectedTask(), dst.ID, len(dst.Tasks))) {
		return
	}
	m.report("select column", m.App.SelectColumn(dst.ID))
	m.UIState.SetSelectedColumn(target)
	m.UIState.SetSelectedTask(len(dst.Tasks))
	m.syncSelection()
}

// moveCardWithin reorders the selected card inside its column
func (m *Model) moveCardWithin(delta int) {
	col, _, ok := m.currentTask()
	if !ok {
		return
	}
	from := m.UIState.SelectedTask()
	to := from + delta
	if to < 0 || to >= len(col.Tasks) {
		return
	}
	if !m.report("move card", m.App.MoveCard(m.Ctx, col.ID, from, col.ID, to)) {
		return
	}
	m.UIState.SetSelectedTask(to)
}
