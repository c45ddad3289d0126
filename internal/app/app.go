// Package app is the application controller. It owns the state managers,
// writes every change to the store and notifies views through the event bus.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/thenoetrevino/sage/internal/database"
	"github.com/thenoetrevino/sage/internal/events"
	"github.com/thenoetrevino/sage/internal/models"
	boardservice "github.com/thenoetrevino/sage/internal/services/board"
	"github.com/thenoetrevino/sage/internal/services/conversation"
	"github.com/thenoetrevino/sage/internal/services/kanban"
	"github.com/thenoetrevino/sage/internal/store"
	"github.com/thenoetrevino/sage/internal/types"
)

// View is the main panel shown by the shell
type View string

const (
	ViewKanban View = "kanban"
	ViewChat   View = "chat"
)

// App holds all application state and serializes access to it
type App struct {
	mu sync.Mutex

	store  *store.Store
	bus    *events.Bus
	logger *slog.Logger

	boards boardservice.Service
	editor *kanban.Editor
	chats  conversation.Service
	view   View
}

var _ events.Subscriber = (*App)(nil)

// New hydrates an App from st. Default boards are seeded when the store is
// empty; malformed documents are replaced by defaults and logged.
func New(ctx context.Context, st *store.Store, opts ...Option) (*App, error) {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.bus == nil {
		cfg.bus = events.NewBus()
	}
	if cfg.ids == nil {
		cfg.ids = st.IDs()
	}

	state, err := st.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	a := &App{
		store:  st,
		bus:    cfg.bus,
		logger: cfg.logger,
		view:   ViewKanban,
	}
	a.boards = boardservice.NewService(state.Boards, cfg.ids)
	a.editor = kanban.NewEditor(a.boards, cfg.ids)
	a.chats = conversation.NewService(state.Conversations, conversation.Options{
		IDs:    cfg.ids,
		Now:    cfg.now,
		Window: cfg.window,
	})
	a.syncEditor()

	a.logger.Info("state loaded",
		"boards", len(state.Boards),
		"conversations", len(state.Conversations),
		"seeded", state.Seeded,
		"recovered", len(state.Recovered))
	return a, nil
}

// Subscribe returns a stream of change events
func (a *App) Subscribe(buffer int) (<-chan events.Event, func()) {
	return a.bus.Subscribe(buffer)
}

// Close stops event delivery and closes the store
func (a *App) Close() error {
	m := a.bus.Metrics()
	a.logger.Debug("event bus stats",
		"published", m.EventsPublished,
		"delivered", m.EventsDelivered,
		"dropped", m.EventsDropped,
		"uptime", m.Uptime)
	a.bus.Close()
	return a.store.Close()
}

// ============================================================================
// VIEW
// ============================================================================

// View returns the current main panel
func (a *App) View() View {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.view
}

// SetView switches the main panel
func (a *App) SetView(v View) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.setView(v)
}

func (a *App) setView(v View) {
	if a.view == v {
		return
	}
	a.view = v
	a.bus.Publish(events.Event{Type: events.EventViewChanged})
}

// ============================================================================
// BOARDS
// ============================================================================

// Boards returns all boards in order
func (a *App) Boards() []models.Board {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.boards.Boards()
}

// Board returns one board
func (a *App) Board(id types.BoardID) (models.Board, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.boards.Board(id)
}

// ActiveBoard returns the board being edited
func (a *App) ActiveBoard() (models.Board, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.boards.ActiveBoard()
}

// AddBoard creates a board, makes it active and shows the kanban view
func (a *App) AddBoard(ctx context.Context) (models.Board, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	b := a.boards.AddBoard()
	a.syncEditor()
	err := a.saveBoards(ctx)
	a.setView(ViewKanban)
	return b, err
}

// EditBoard renames a board
func (a *App) EditBoard(ctx context.Context, id types.BoardID, name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.boards.EditBoard(id, name); err != nil {
		return err
	}
	a.syncEditor()
	return a.saveBoards(ctx)
}

// DeleteBoard removes a board
func (a *App) DeleteBoard(ctx context.Context, id types.BoardID) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.boards.DeleteBoard(id); err != nil {
		return err
	}
	a.syncEditor()
	return a.saveBoards(ctx)
}

// SelectBoard makes a board active and shows the kanban view
func (a *App) SelectBoard(id types.BoardID) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.boards.SelectBoard(id); err != nil {
		return err
	}
	a.syncEditor()
	if a.view == ViewKanban {
		a.bus.Publish(events.Event{Type: events.EventViewChanged})
		return nil
	}
	a.setView(ViewKanban)
	return nil
}

// ============================================================================
// KANBAN (active board)
// ============================================================================

// SelectedColumn returns the column AddCard targets from the shell
func (a *App) SelectedColumn() types.ColumnID {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.editor.SelectedColumn()
}

// SelectColumn changes the selected column of the active board
func (a *App) SelectColumn(id types.ColumnID) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.editor.SelectColumn(id); err != nil {
		return err
	}
	a.bus.Publish(events.Event{Type: events.EventViewChanged})
	return nil
}

// AddCard appends a task to a column of the active board
func (a *App) AddCard(ctx context.Context, content string, column types.ColumnID) (models.Task, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	task, err := a.editor.AddCard(content, column)
	if err != nil {
		return models.Task{}, err
	}
	return task, a.saveBoards(ctx)
}

// MoveCard moves a task within the active board
func (a *App) MoveCard(ctx context.Context, srcCol types.ColumnID, srcIndex int, dstCol types.ColumnID, dstIndex int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.editor.MoveCard(srcCol, srcIndex, dstCol, dstIndex); err != nil {
		return err
	}
	if srcCol == dstCol && srcIndex == dstIndex {
		return nil
	}
	return a.saveBoards(ctx)
}

// AddColumn appends a column to the active board
func (a *App) AddColumn(ctx context.Context) (models.Column, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	col, err := a.editor.AddColumn()
	if err != nil {
		return models.Column{}, err
	}
	return col, a.saveBoards(ctx)
}

// EditColumnTitle renames a column of the active board
func (a *App) EditColumnTitle(ctx context.Context, column types.ColumnID, title string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.editor.EditColumnTitle(column, title); err != nil {
		return err
	}
	return a.saveBoards(ctx)
}

// DeleteCard removes a task from the active board
func (a *App) DeleteCard(ctx context.Context, column types.ColumnID, index int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.editor.DeleteCard(column, index); err != nil {
		return err
	}
	return a.saveBoards(ctx)
}

// SplitTextToCards adds one card per sentence of text to the active board's inbox
func (a *App) SplitTextToCards(ctx context.Context, text string) ([]models.Task, error) {
	return a.SplitTextToColumn(ctx, text, types.InboxColumn)
}

// SplitTextToColumn adds one card per sentence of text to a column of the
// active board
func (a *App) SplitTextToColumn(ctx context.Context, text string, column types.ColumnID) ([]models.Task, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.splitLocked(ctx, text, column)
}

func (a *App) splitLocked(ctx context.Context, text string, column types.ColumnID) ([]models.Task, error) {
	tasks, err := a.editor.SplitTextToCards(text, column)
	if err != nil || len(tasks) == 0 {
		return tasks, err
	}
	return tasks, a.saveBoards(ctx)
}

// SaveMessageToCards splits a chat message into cards in the active board's inbox
func (a *App) SaveMessageToCards(ctx context.Context, id types.MessageID) ([]models.Task, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	msg, ok := a.chats.Message(id)
	if !ok {
		return nil, models.ErrMessageNotFound
	}
	return a.splitLocked(ctx, msg.Content, types.InboxColumn)
}

// ============================================================================
// CHAT
// ============================================================================

// Conversations returns all conversations in order
func (a *App) Conversations() []models.Conversation {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.chats.Conversations()
}

// Conversation returns one conversation
func (a *App) Conversation(id types.ConversationID) (models.Conversation, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.chats.Conversation(id)
}

// ActiveConversation returns the conversation shown in the chat view
func (a *App) ActiveConversation() (models.Conversation, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.chats.ActiveConversation()
}

// AddChatMessage records a message, continuing or starting a conversation
func (a *App) AddChatMessage(ctx context.Context, content string) (conversation.AddResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	res, err := a.chats.AddChatMessage(content)
	if err != nil {
		return conversation.AddResult{}, err
	}
	return res, a.saveConversations(ctx)
}

// AddChat starts an empty conversation and shows the chat view
func (a *App) AddChat(ctx context.Context) (models.Conversation, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	conv := a.chats.AddChat()
	err := a.saveConversations(ctx)
	a.setView(ViewChat)
	return conv, err
}

// SelectChat makes a conversation active and shows the chat view
func (a *App) SelectChat(id types.ConversationID) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.chats.SelectChat(id); err != nil {
		return err
	}
	if a.view == ViewChat {
		a.bus.Publish(events.Event{Type: events.EventViewChanged})
		return nil
	}
	a.setView(ViewChat)
	return nil
}

// Transcript renders a conversation for the clipboard
func (a *App) Transcript(id types.ConversationID) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.chats.Transcript(id)
}

// ============================================================================
// SEARCH
// ============================================================================

// SearchResult lists the boards and conversations matching a term
type SearchResult struct {
	Boards        []models.Board
	Conversations []models.Conversation
}

// Search matches board names and message contents case-insensitively. An
// empty term matches everything.
func (a *App) Search(term string) SearchResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	term = strings.ToLower(strings.TrimSpace(term))
	res := SearchResult{Boards: []models.Board{}, Conversations: []models.Conversation{}}

	for _, b := range a.boards.Boards() {
		if term == "" || strings.Contains(strings.ToLower(b.Name), term) {
			res.Boards = append(res.Boards, b)
		}
	}
	for _, c := range a.chats.Conversations() {
		if term == "" || conversationMatches(c, term) {
			res.Conversations = append(res.Conversations, c)
		}
	}
	return res
}

func conversationMatches(c models.Conversation, term string) bool {
	for _, m := range c.Messages {
		if strings.Contains(strings.ToLower(m.Content), term) {
			return true
		}
	}
	return false
}

// ============================================================================
// RELOAD / WATCH
// ============================================================================

// Reload re-hydrates state from the store
func (a *App) Reload(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	state, err := a.store.Load(ctx)
	if err != nil {
		a.logger.Error("reload failed", "error", err)
		return fmt.Errorf("failed to reload state: %w", err)
	}
	a.boards.Replace(state.Boards)
	a.chats.Replace(state.Conversations)
	a.syncEditor()

	a.logger.Info("state reloaded", "boards", len(state.Boards), "conversations", len(state.Conversations))
	a.bus.Publish(events.Event{Type: events.EventReloaded})
	return nil
}

// Watch reloads state whenever another process changes the store. It
// returns false when the backend cannot report changes. The watch stops
// when ctx is done.
func (a *App) Watch(ctx context.Context) (bool, error) {
	w, ok := a.store.Backend().(database.Watcher)
	if !ok {
		return false, nil
	}
	changes, err := w.Watch(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to watch store: %w", err)
	}

	go func() {
		for key := range changes {
			if key != store.BoardsKey && key != store.ConversationsKey {
				continue
			}
			a.logger.Debug("external store change", "key", key)
			if err := a.Reload(ctx); err != nil && !errors.Is(err, context.Canceled) {
				a.publishStorageError(err)
			}
		}
	}()
	return true, nil
}

// ============================================================================
// PERSISTENCE
// ============================================================================

func (a *App) syncEditor() {
	if b, ok := a.boards.ActiveBoard(); ok {
		a.editor.Sync(b)
		return
	}
	a.editor.Clear()
}

// saveBoards writes the board collection, then announces the change. A
// write failure keeps the in-memory change.
func (a *App) saveBoards(ctx context.Context) error {
	err := a.store.SaveBoards(ctx, a.boards.Boards())
	a.bus.Publish(events.Event{Type: events.EventBoardsChanged})
	if err != nil {
		a.logger.Error("failed to save boards", "error", err)
		a.publishStorageError(err)
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

func (a *App) saveConversations(ctx context.Context) error {
	err := a.store.SaveConversations(ctx, a.chats.Conversations())
	a.bus.Publish(events.Event{Type: events.EventConversationsChanged})
	if err != nil {
		a.logger.Error("failed to save conversations", "error", err)
		a.publishStorageError(err)
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

func (a *App) publishStorageError(err error) {
	a.bus.Publish(events.Event{Type: events.EventStorageError, Err: err})
}
