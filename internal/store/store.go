// Package store persists the board and conversation collections as two
// JSON documents in a key-value backend.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/sage/internal/database"
	"github.com/thenoetrevino/sage/internal/models"
	"github.com/thenoetrevino/sage/internal/types"
)

// Fixed keys of the two documents
const (
	BoardsKey        = "kanbanBoards"
	ConversationsKey = "chatConversations"

	// corruptSuffix is appended to a key to keep a value that failed to parse
	corruptSuffix = ".corrupt"
)

// ErrMalformed wraps a parse failure of a persisted document
var ErrMalformed = errors.New("malformed persisted data")

// State is the hydrated content of the store
type State struct {
	Boards        []models.Board
	Conversations []models.Conversation

	// Seeded is true when default boards were written during Load
	Seeded bool

	// Recovered holds the parse errors that were replaced by defaults
	Recovered []error
}

// Store reads and writes whole collections under fixed keys
type Store struct {
	kv  database.KeyValueStore
	ids types.IDGenerator
}

// New creates a store over kv. ids supplies the ids of seeded data.
func New(kv database.KeyValueStore, ids types.IDGenerator) *Store {
	if ids == nil {
		ids = types.UUIDGenerator{}
	}
	return &Store{kv: kv, ids: ids}
}

// IDs returns the generator used for seeded data
func (s *Store) IDs() types.IDGenerator {
	return s.ids
}

// Backend returns the underlying key-value store
func (s *Store) Backend() database.KeyValueStore {
	return s.kv
}

// Load hydrates both collections. A missing boards document is seeded with
// the default boards and written back immediately. A document that fails to
// parse is copied to <key>.corrupt, replaced by defaults, and reported in
// State.Recovered; only backend I/O errors are returned.
func (s *Store) Load(ctx context.Context) (State, error) {
	var st State

	boards, found, err := s.loadBoards(ctx)
	switch {
	case errors.Is(err, ErrMalformed):
		slog.Error("boards document is malformed, falling back to defaults", "key", BoardsKey, "error", err)
		st.Recovered = append(st.Recovered, err)
		found = false
	case err != nil:
		return State{}, err
	}
	if !found {
		boards = DefaultBoards(s.ids)
		if err := s.SaveBoards(ctx, boards); err != nil {
			return State{}, err
		}
		st.Seeded = true
	}
	st.Boards = boards

	convs, err := s.loadConversations(ctx)
	switch {
	case errors.Is(err, ErrMalformed):
		slog.Error("conversations document is malformed, falling back to empty", "key", ConversationsKey, "error", err)
		st.Recovered = append(st.Recovered, err)
		convs = []models.Conversation{}
		if err := s.SaveConversations(ctx, convs); err != nil {
			return State{}, err
		}
	case err != nil:
		return State{}, err
	}
	st.Conversations = convs

	return st, nil
}

func (s *Store) loadBoards(ctx context.Context) ([]models.Board, bool, error) {
	raw, ok, err := s.kv.Get(ctx, BoardsKey)
	if err != nil || !ok {
		return nil, false, err
	}
	var boards []models.Board
	if err := json.Unmarshal([]byte(raw), &boards); err != nil {
		s.preserveCorrupt(ctx, BoardsKey, raw)
		return nil, false, fmt.Errorf("%w: %s: %v", ErrMalformed, BoardsKey, err)
	}
	if boards == nil {
		boards = []models.Board{}
	}
	return boards, true, nil
}

func (s *Store) loadConversations(ctx context.Context) ([]models.Conversation, error) {
	raw, ok, err := s.kv.Get(ctx, ConversationsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Conversation{}, nil
	}
	var convs []models.Conversation
	if err := json.Unmarshal([]byte(raw), &convs); err != nil {
		s.preserveCorrupt(ctx, ConversationsKey, raw)
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, ConversationsKey, err)
	}
	if convs == nil {
		convs = []models.Conversation{}
	}
	return convs, nil
}

func (s *Store) preserveCorrupt(ctx context.Context, key, raw string) {
	if err := s.kv.Set(ctx, key+corruptSuffix, raw); err != nil {
		slog.Warn("failed to preserve malformed document", "key", key, "error", err)
	}
}

// SaveBoards writes the full board list
func (s *Store) SaveBoards(ctx context.Context, boards []models.Board) error {
	if boards == nil {
		boards = []models.Board{}
	}
	data, err := json.Marshal(boards)
	if err != nil {
		return fmt.Errorf("failed to encode boards: %w", err)
	}
	if err := s.kv.Set(ctx, BoardsKey, string(data)); err != nil {
		return fmt.Errorf("failed to save boards: %w", err)
	}
	return nil
}

// SaveConversations writes the full conversation list
func (s *Store) SaveConversations(ctx context.Context, convs []models.Conversation) error {
	if convs == nil {
		convs = []models.Conversation{}
	}
	data, err := json.Marshal(convs)
	if err != nil {
		return fmt.Errorf("failed to encode conversations: %w", err)
	}
	if err := s.kv.Set(ctx, ConversationsKey, string(data)); err != nil {
		return fmt.Errorf("failed to save conversations: %w", err)
	}
	return nil
}

// Close closes the backend
func (s *Store) Close() error {
	return s.kv.Close()
}
