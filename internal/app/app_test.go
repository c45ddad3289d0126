package app

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/sage/internal/database"
	"github.com/thenoetrevino/sage/internal/events"
	"github.com/thenoetrevino/sage/internal/logging"
	"github.com/thenoetrevino/sage/internal/models"
	"github.com/thenoetrevino/sage/internal/store"
	"github.com/thenoetrevino/sage/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func sequentialIDs() types.IDGenerator {
	n := 0
	return types.IDGeneratorFunc(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})
}

type testClock struct{ t time.Time }

func (c *testClock) Now() time.Time { return c.t }

// flakyKV fails writes while failWrites is set
type flakyKV struct {
	database.KeyValueStore
	failWrites bool
}

func (f *flakyKV) Set(ctx context.Context, key, value string) error {
	if f.failWrites {
		return errors.New("disk full")
	}
	return f.KeyValueStore.Set(ctx, key, value)
}

func newTestApp(t *testing.T, kv database.KeyValueStore) (*App, *testClock) {
	t.Helper()
	clock := &testClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	ids := sequentialIDs()
	a, err := New(context.Background(), store.New(kv, ids),
		WithIDGenerator(ids),
		WithLogger(logging.Discard()),
		WithClock(clock.Now),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a, clock
}

func waitFor(t *testing.T, ch <-chan events.Event, want events.EventType) events.Event {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case ev, ok := <-ch:
			require.True(t, ok, "event channel closed")
			if ev.Type == want {
				return ev
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s", want)
			return events.Event{}
		}
	}
}

func inboxContents(t *testing.T, a *App) []string {
	t.Helper()
	b, ok := a.ActiveBoard()
	require.True(t, ok)
	inbox, ok := b.Columns.Get(types.InboxColumn)
	require.True(t, ok)
	out := []string{}
	for _, task := range inbox.Tasks {
		out = append(out, task.Content)
	}
	return out
}

// ============================================================================
// HYDRATION
// ============================================================================

func TestNew_SeedsAndActivatesFirstBoard(t *testing.T) {
	a, _ := newTestApp(t, database.NewMemoryStore())

	boards := a.Boards()
	require.Len(t, boards, 2)
	active, ok := a.ActiveBoard()
	require.True(t, ok)
	assert.Equal(t, boards[0].ID, active.ID)
	assert.Equal(t, types.InboxColumn, a.SelectedColumn())
	assert.Equal(t, ViewKanban, a.View())
	assert.Empty(t, a.Conversations())
}

func TestNew_PersistedStateSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	kv := database.NewMemoryStore()

	a, _ := newTestApp(t, kv)
	_, err := a.AddCard(ctx, "remember me", types.TodoColumn)
	require.NoError(t, err)
	_, err = a.AddChatMessage(ctx, "hello")
	require.NoError(t, err)

	b, err := New(ctx, store.New(kv, sequentialIDs()))
	require.NoError(t, err)

	active, _ := b.ActiveBoard()
	todo, _ := active.Columns.Get(types.TodoColumn)
	require.Len(t, todo.Tasks, 1)
	assert.Equal(t, "remember me", todo.Tasks[0].Content)
	require.Len(t, b.Conversations(), 1)
}

func TestNew_SharesStoreIDGenerator(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, store.New(database.NewMemoryStore(), sequentialIDs()),
		WithLogger(logging.Discard()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	_, err = a.AddBoard(ctx)
	require.NoError(t, err)
	_, err = a.AddChat(ctx)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, b := range a.Boards() {
		require.False(t, seen[string(b.ID)], "duplicate board id %s", b.ID)
		seen[string(b.ID)] = true
		for _, col := range b.Columns {
			for _, task := range col.Tasks {
				require.False(t, seen[string(task.ID)], "duplicate task id %s", task.ID)
				seen[string(task.ID)] = true
			}
		}
	}
	for _, c := range a.Conversations() {
		assert.False(t, seen[string(c.ID)], "conversation id %s reused", c.ID)
	}
}

// ============================================================================
// BOARDS
// ============================================================================

func TestAddBoard_SwitchesToKanban(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t, database.NewMemoryStore())
	_, err := a.AddChat(ctx)
	require.NoError(t, err)
	require.Equal(t, ViewChat, a.View())

	b, err := a.AddBoard(ctx)
	require.NoError(t, err)
	assert.Equal(t, "New Board 3", b.Name)
	assert.Equal(t, ViewKanban, a.View())

	active, _ := a.ActiveBoard()
	assert.Equal(t, b.ID, active.ID)
}

func TestDeleteBoard_ResyncsEditor(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t, database.NewMemoryStore())
	boards := a.Boards()

	require.NoError(t, a.SelectColumn(types.DoneColumn))
	require.NoError(t, a.DeleteBoard(ctx, boards[0].ID))

	active, ok := a.ActiveBoard()
	require.True(t, ok)
	assert.Equal(t, boards[1].ID, active.ID)
	assert.Equal(t, types.InboxColumn, a.SelectedColumn())

	require.NoError(t, a.DeleteBoard(ctx, boards[1].ID))
	_, ok = a.ActiveBoard()
	assert.False(t, ok)

	_, err := a.AddCard(ctx, "x", types.InboxColumn)
	assert.True(t, models.IsIgnorable(err))
}

func TestEditBoard_Unknown(t *testing.T) {
	a, _ := newTestApp(t, database.NewMemoryStore())
	err := a.EditBoard(context.Background(), "ghost", "x")
	assert.ErrorIs(t, err, models.ErrBoardNotFound)
}

func TestSelectBoard_FromChat(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t, database.NewMemoryStore())
	boards := a.Boards()
	_, _ = a.AddChat(ctx)

	require.NoError(t, a.SelectBoard(boards[1].ID))
	assert.Equal(t, ViewKanban, a.View())
	active, _ := a.ActiveBoard()
	assert.Equal(t, boards[1].ID, active.ID)
}

// ============================================================================
// KANBAN
// ============================================================================

func TestSplitTextToCards_TargetsActiveInbox(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t, database.NewMemoryStore())

	tasks, err := a.SplitTextToCards(ctx, "Buy milk. Call Alice! Did you email Bob?")
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	assert.Equal(t, []string{"Task 1 for Board A", "Buy milk", "Call Alice", "Did you email Bob"}, inboxContents(t, a))
}

func TestSaveMessageToCards(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t, database.NewMemoryStore())

	res, err := a.AddChatMessage(ctx, "Ship it. Celebrate!")
	require.NoError(t, err)

	tasks, err := a.SaveMessageToCards(ctx, res.Message.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
	assert.Equal(t, []string{"Task 1 for Board A", "Ship it", "Celebrate"}, inboxContents(t, a))

	_, err = a.SaveMessageToCards(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrMessageNotFound)
}

func TestMoveCard_PersistsAndPublishes(t *testing.T) {
	ctx := context.Background()
	kv := database.NewMemoryStore()
	a, _ := newTestApp(t, kv)
	ch, cancel := a.Subscribe(8)
	defer cancel()

	require.NoError(t, a.MoveCard(ctx, types.InboxColumn, 0, types.DoneColumn, 0))
	waitFor(t, ch, events.EventBoardsChanged)

	raw, _, err := kv.Get(ctx, store.BoardsKey)
	require.NoError(t, err)
	assert.Contains(t, raw, `"done":{"id":"done","title":"Done","tasks":[{"id":`)
}

func TestMoveCard_IdenticalPositionDoesNotWrite(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t, database.NewMemoryStore())
	ch, cancel := a.Subscribe(8)
	defer cancel()

	require.NoError(t, a.MoveCard(ctx, types.InboxColumn, 0, types.InboxColumn, 0))
	select {
	case ev := <-ch:
		t.Fatalf("unexpected event %s", ev.Type)
	default:
	}
}

func TestColumns(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t, database.NewMemoryStore())

	col, err := a.AddColumn(ctx)
	require.NoError(t, err)
	require.NoError(t, a.EditColumnTitle(ctx, col.ID, "Later"))

	active, _ := a.ActiveBoard()
	got, ok := active.Columns.Get(col.ID)
	require.True(t, ok)
	assert.Equal(t, "Later", got.Title)

	require.NoError(t, a.DeleteCard(ctx, types.InboxColumn, 0))
	assert.Empty(t, inboxContents(t, a))
}

// ============================================================================
// CHAT
// ============================================================================

func TestChat_WritesOnlyConversations(t *testing.T) {
	ctx := context.Background()
	kv := database.NewMemoryStore()
	a, _ := newTestApp(t, kv)

	boardsBefore, _, _ := kv.Get(ctx, store.BoardsKey)
	_, err := a.AddChatMessage(ctx, "note")
	require.NoError(t, err)
	boardsAfter, _, _ := kv.Get(ctx, store.BoardsKey)
	assert.Equal(t, boardsBefore, boardsAfter)

	raw, ok, _ := kv.Get(ctx, store.ConversationsKey)
	require.True(t, ok)
	assert.Contains(t, raw, `"content":"note"`)
}

func TestChat_SelectAndTranscript(t *testing.T) {
	ctx := context.Background()
	a, clock := newTestApp(t, database.NewMemoryStore())

	first, _ := a.AddChatMessage(ctx, "one")
	clock.t = clock.t.Add(10 * time.Minute)
	second, _ := a.AddChatMessage(ctx, "two")
	require.NotEqual(t, first.Conversation.ID, second.Conversation.ID)

	require.NoError(t, a.SelectChat(first.Conversation.ID))
	assert.Equal(t, ViewChat, a.View())
	active, _ := a.ActiveConversation()
	assert.Equal(t, first.Conversation.ID, active.ID)

	text, err := a.Transcript(first.Conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, "User: one", text)

	assert.ErrorIs(t, a.SelectChat("nope"), models.ErrConversationNotFound)
}

func TestAddChatMessage_BlankIgnored(t *testing.T) {
	a, _ := newTestApp(t, database.NewMemoryStore())
	_, err := a.AddChatMessage(context.Background(), "   ")
	assert.ErrorIs(t, err, models.ErrEmptyContent)
	assert.Empty(t, a.Conversations())
}

// ============================================================================
// SEARCH
// ============================================================================

func TestSearch(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t, database.NewMemoryStore())
	_, _ = a.AddChatMessage(ctx, "Buy MILK tomorrow")

	all := a.Search("")
	assert.Len(t, all.Boards, 2)
	assert.Len(t, all.Conversations, 1)

	res := a.Search("board b")
	require.Len(t, res.Boards, 1)
	assert.Equal(t, "Board B", res.Boards[0].Name)
	assert.Empty(t, res.Conversations)

	res = a.Search("milk")
	assert.Empty(t, res.Boards)
	assert.Len(t, res.Conversations, 1)
}

// ============================================================================
// PERSISTENCE FAILURES / RELOAD
// ============================================================================

func TestPersistFailureKeepsInMemoryChange(t *testing.T) {
	ctx := context.Background()
	kv := &flakyKV{KeyValueStore: database.NewMemoryStore()}
	a, _ := newTestApp(t, kv)
	ch, cancel := a.Subscribe(8)
	defer cancel()

	kv.failWrites = true
	_, err := a.AddCard(ctx, "kept", types.InboxColumn)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersist)
	assert.False(t, models.IsIgnorable(err))

	ev := waitFor(t, ch, events.EventStorageError)
	assert.Error(t, ev.Err)
	assert.Contains(t, inboxContents(t, a), "kept")
}

func TestReload(t *testing.T) {
	ctx := context.Background()
	kv := database.NewMemoryStore()
	a, _ := newTestApp(t, kv)
	ch, cancel := a.Subscribe(8)
	defer cancel()

	other := store.New(kv, sequentialIDs())
	boards := []models.Board{models.NewBoard("external", "From elsewhere")}
	require.NoError(t, other.SaveBoards(ctx, boards))

	require.NoError(t, a.Reload(ctx))
	waitFor(t, ch, events.EventReloaded)

	got := a.Boards()
	require.Len(t, got, 1)
	assert.Equal(t, "From elsewhere", got[0].Name)
	active, _ := a.ActiveBoard()
	assert.Equal(t, types.BoardID("external"), active.ID)
}

func TestWatch_FileBackendReloadsOnExternalWrite(t *testing.T) {
	ctx, cancelCtx := context.WithCancel(context.Background())
	defer cancelCtx()
	dir := t.TempDir()

	kv, err := database.OpenFileStore(dir)
	require.NoError(t, err)
	a, _ := newTestApp(t, kv)
	ch, cancel := a.Subscribe(16)
	defer cancel()

	ok, err := a.Watch(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	otherKV, err := database.OpenFileStore(dir)
	require.NoError(t, err)
	other := store.New(otherKV, sequentialIDs())
	require.NoError(t, other.SaveBoards(ctx, []models.Board{models.NewBoard("ext", "External")}))

	waitFor(t, ch, events.EventReloaded)
	boards := a.Boards()
	require.Len(t, boards, 1)
	assert.Equal(t, "External", boards[0].Name)
}

func TestWatch_UnsupportedBackend(t *testing.T) {
	a, _ := newTestApp(t, database.NewMemoryStore())
	ok, err := a.Watch(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}
