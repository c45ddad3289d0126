package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/sage/internal/app"
	"github.com/thenoetrevino/sage/internal/config"
	"github.com/thenoetrevino/sage/internal/events"
	"github.com/thenoetrevino/sage/internal/models"
	"github.com/thenoetrevino/sage/internal/testutil"
	"github.com/thenoetrevino/sage/internal/tui/state"
	"github.com/thenoetrevino/sage/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func newTestModel(t *testing.T) *Model {
	t.Helper()
	a := testutil.NewApp(t, nil)

	m := InitialModel(context.Background(), a, config.Default())
	m.Clipboard = func(string) error { return nil }
	m.UIState.SetWidth(160)
	m.UIState.SetHeight(40)
	t.Cleanup(m.Shutdown)
	return m
}

// typeText sends one key press per rune
func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyPressMsg(tea.Key{Text: string(r), Code: r}))
	}
}

func pressKey(m *Model, code rune) {
	m.Update(tea.KeyPressMsg(tea.Key{Code: code}))
}

func activeBoard(t *testing.T, m *Model) models.Board {
	t.Helper()
	b, ok := m.App.ActiveBoard()
	require.True(t, ok)
	return b
}

func contents(col models.Column) []string {
	out := make([]string, len(col.Tasks))
	for i, task := range col.Tasks {
		out[i] = task.Content
	}
	return out
}

// ============================================================================
// KANBAN
// ============================================================================

func TestAddCard(t *testing.T) {
	m := newTestModel(t)

	typeText(m, "a")
	require.Equal(t, state.AddTaskMode, m.UIState.Mode())
	typeText(m, "Buy milk")
	pressKey(m, tea.KeyEnter)

	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	inbox := activeBoard(t, m).Columns[0]
	assert.Equal(t, []string{"Task 1 for Board A", "Buy milk"}, contents(inbox))
	assert.Equal(t, 1, m.UIState.SelectedTask())
}

func TestAddCard_EscCancels(t *testing.T) {
	m := newTestModel(t)

	typeText(m, "aNope")
	pressKey(m, tea.KeyEsc)

	assert.Equal(t, state.NormalMode, m.UIState.Mode())
	assert.Empty(t, m.InputState.Buffer)
	assert.Len(t, activeBoard(t, m).Columns[0].Tasks, 1)
}

func TestAddCard_EmptyIsIgnoredSilently(t *testing.T) {
	m := newTestModel(t)

	typeText(m, "a   ")
	pressKey(m, tea.KeyEnter)

	assert.Len(t, activeBoard(t, m).Columns[0].Tasks, 1)
	assert.False(t, m.NotificationState.HasAny(), "empty content should not surface an error")
}

func TestColumnNavigationClamps(t *testing.T) {
	m := newTestModel(t)

	typeText(m, "h")
	assert.Equal(t, 0, m.UIState.SelectedColumn())

	typeText(m, "llllllll")
	assert.Equal(t, 3, m.UIState.SelectedColumn())
	assert.Equal(t, types.DoneColumn, m.App.SelectedColumn())

	pressKey(m, tea.KeyLeft)
	assert.Equal(t, 2, m.UIState.SelectedColumn())
}

func TestMoveCardAcrossAndWithin(t *testing.T) {
	m := newTestModel(t)

	typeText(m, "L")
	b := activeBoard(t, m)
	assert.Empty(t, b.Columns[0].Tasks)
	assert.Equal(t, []string{"Task 1 for Board A"}, contents(b.Columns[1]))
	assert.Equal(t, 1, m.UIState.SelectedColumn())
	assert.Equal(t, 0, m.UIState.SelectedTask())

	typeText(m, "aSecond")
	pressKey(m, tea.KeyEnter)
	typeText(m, "K")
	assert.Equal(t, []string{"Second", "Task 1 for Board A"}, contents(activeBoard(t, m).Columns[1]))
	assert.Equal(t, 0, m.UIState.SelectedTask())

	// already at the top
	typeText(m, "K")
	assert.Equal(t, []string{"Second", "Task 1 for Board A"}, contents(activeBoard(t, m).Columns[1]))

	typeText(m, "H")
	b = activeBoard(t, m)
	assert.Equal(t, []string{"Second"}, contents(b.Columns[0]))
	assert.Equal(t, 0, m.UIState.SelectedColumn())
}

func TestSplitTextIntoInbox(t *testing.T) {
	m := newTestModel(t)
	typeText(m, "l") // split always targets the inbox

	typeText(m, "sBuy milk. Call Alice!")
	pressKey(m, tea.KeyEnter)

	inbox := activeBoard(t, m).Columns[0]
	assert.Len(t, inbox.Tasks, 3)
	n, ok := m.NotificationState.Latest()
	require.True(t, ok)
	assert.Contains(t, n.Message, "2 card")
}

func TestAddAndRenameColumn(t *testing.T) {
	m := newTestModel(t)

	typeText(m, "C")
	b := activeBoard(t, m)
	require.Len(t, b.Columns, 5)
	assert.Equal(t, 4, m.UIState.SelectedColumn())

	typeText(m, "R")
	require.Equal(t, state.RenameColumnMode, m.UIState.Mode())
	for range len(b.Columns[4].Title) {
		pressKey(m, tea.KeyBackspace)
	}
	typeText(m, "Later")
	pressKey(m, tea.KeyEnter)

	assert.Equal(t, "Later", activeBoard(t, m).Columns[4].Title)
}

func TestDeleteCard(t *testing.T) {
	m := newTestModel(t)

	typeText(m, "d")
	assert.Empty(t, activeBoard(t, m).Columns[0].Tasks)

	// nothing left to delete
	typeText(m, "d")
	assert.False(t, m.NotificationState.HasAny())
}

// ============================================================================
// BOARDS
// ============================================================================

func TestBoardLifecycle(t *testing.T) {
	m := newTestModel(t)

	typeText(m, "B")
	assert.Len(t, m.App.Boards(), 3)
	assert.Equal(t, "New Board 3", activeBoard(t, m).Name)

	seen := map[types.BoardID]bool{}
	for _, b := range m.App.Boards() {
		assert.False(t, seen[b.ID], "duplicate board id %s", b.ID)
		seen[b.ID] = true
	}

	typeText(m, "}")
	assert.Equal(t, "Board A", activeBoard(t, m).Name)
	typeText(m, "{")
	assert.Equal(t, "New Board 3", activeBoard(t, m).Name)

	typeText(m, "X")
	require.Equal(t, state.DeleteBoardConfirmMode, m.UIState.Mode())
	typeText(m, "n")
	assert.Len(t, m.App.Boards(), 3)

	typeText(m, "Xy")
	assert.Len(t, m.App.Boards(), 2)
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
}

func TestRenameBoard(t *testing.T) {
	m := newTestModel(t)

	typeText(m, "E")
	for range len("Board A") {
		pressKey(m, tea.KeyBackspace)
	}
	pressKey(m, tea.KeyEnter)
	assert.Equal(t, "Board A", activeBoard(t, m).Name, "empty rename keeps the name")

	typeText(m, "E")
	for range len("Board A") {
		pressKey(m, tea.KeyBackspace)
	}
	typeText(m, "   ")
	pressKey(m, tea.KeyEnter)
	assert.Equal(t, "Board A", activeBoard(t, m).Name, "blank rename keeps the name")

	typeText(m, "E")
	for range len("Board A") {
		pressKey(m, tea.KeyBackspace)
	}
	typeText(m, "Home")
	pressKey(m, tea.KeyEnter)
	assert.Equal(t, "Home", activeBoard(t, m).Name)
}

func TestSearchOpensFirstMatchingBoard(t *testing.T) {
	m := newTestModel(t)

	typeText(m, "/")
	require.Equal(t, state.SearchMode, m.UIState.Mode())
	typeText(m, "d b")
	assert.Equal(t, "d b", m.SearchState.Query)

	content := ansi.Strip(m.View().Content)
	assert.Contains(t, content, "/ d b")
	assert.Contains(t, content, "Board B")

	pressKey(m, tea.KeyEnter)
	assert.Equal(t, "Board B", activeBoard(t, m).Name)
	assert.Empty(t, m.SearchState.Query)
}

// ============================================================================
// CHAT
// ============================================================================

func TestComposeAndSaveToKanban(t *testing.T) {
	m := newTestModel(t)

	typeText(m, "iBuy milk. Call Alice!")
	pressKey(m, tea.KeyEnter)

	assert.Equal(t, app.ViewChat, m.App.View())
	conv, ok := m.App.ActiveConversation()
	require.True(t, ok)
	require.Len(t, conv.Messages, 1)

	typeText(m, "S")
	assert.Len(t, activeBoard(t, m).Columns[0].Tasks, 3)

	pressKey(m, tea.KeyTab)
	assert.Equal(t, app.ViewKanban, m.App.View())
}

func TestCopyChat(t *testing.T) {
	m := newTestModel(t)
	var copied string
	m.Clipboard = func(s string) error {
		copied = s
		return nil
	}

	typeText(m, "ihello")
	pressKey(m, tea.KeyEnter)
	typeText(m, "y")

	assert.Equal(t, "User: hello", copied)
}

func TestCopyChat_ClipboardFailure(t *testing.T) {
	m := newTestModel(t)
	m.Clipboard = func(string) error { return errors.New("no clipboard") }

	typeText(m, "ihello")
	pressKey(m, tea.KeyEnter)
	typeText(m, "y")

	n, ok := m.NotificationState.Latest()
	require.True(t, ok)
	assert.Equal(t, state.LevelError, n.Level)
}

func TestNewChatAndCycle(t *testing.T) {
	m := newTestModel(t)

	typeText(m, "ifirst")
	pressKey(m, tea.KeyEnter)
	typeText(m, "n")
	require.Len(t, m.App.Conversations(), 2)

	typeText(m, "]")
	conv, ok := m.App.ActiveConversation()
	require.True(t, ok)
	assert.Len(t, conv.Messages, 1)
}

// ============================================================================
// EVENTS / VIEW
// ============================================================================

func TestStorageErrorEventIsShown(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(RefreshMsg{Event: events.Event{Type: events.EventStorageError, Err: errors.New("disk full")}})

	assert.NotNil(t, cmd, "subscription should be renewed")
	n, ok := m.NotificationState.Latest()
	require.True(t, ok)
	assert.Equal(t, state.LevelError, n.Level)
	assert.Contains(t, n.Message, "disk full")
}

func TestSubscriptionDeliversAppEvents(t *testing.T) {
	m := newTestModel(t)
	cmd := m.Init()

	_, err := m.App.AddBoard(context.Background())
	require.NoError(t, err)

	msg := cmd()
	refresh, ok := msg.(RefreshMsg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, events.EventBoardsChanged, refresh.Event.Type)
}

func TestListenSwitchesEventSource(t *testing.T) {
	m := newTestModel(t)
	old := m.eventChan

	bus := events.NewBus()
	t.Cleanup(bus.Close)
	m.listen(bus)

	_, ok := <-old
	assert.False(t, ok, "previous stream should be closed")

	cmd := m.Init()
	bus.Publish(events.Event{Type: events.EventReloaded})
	refresh, ok := cmd().(RefreshMsg)
	require.True(t, ok)
	assert.Equal(t, events.EventReloaded, refresh.Event.Type)
}

func TestViewRendersBoardAndHelp(t *testing.T) {
	m := newTestModel(t)

	v := m.View()
	assert.True(t, v.AltScreen)
	content := ansi.Strip(v.Content)
	for _, want := range []string{"Boards", "Board A", "Board B", "Inbox (1)", "Task 1 for Board A", "NORMAL"} {
		assert.Contains(t, content, want)
	}

	typeText(m, "?")
	help := ansi.Strip(m.View().Content)
	assert.Contains(t, help, "Keyboard shortcuts")
	assert.True(t, strings.Contains(help, "move card left"))

	typeText(m, "x")
	assert.Equal(t, state.NormalMode, m.UIState.Mode())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyPressMsg(tea.Key{Text: "q", Code: 'q'}))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}
