package conversation

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/sage/internal/models"
	"github.com/thenoetrevino/sage/internal/types"
)

const (
	// DefaultWindow is how long after the last message a new message still
	// continues the same conversation
	DefaultWindow = 5 * time.Minute

	// EmptyTitle labels a conversation with no messages
	EmptyTitle = "New Chat"

	// SummaryTimeLayout formats the last activity of a conversation
	SummaryTimeLayout = "Jan 2, 3:04 PM"
)

// Service owns the conversation list and the active conversation id
type Service interface {
	// Read operations
	Conversations() []models.Conversation
	Conversation(id types.ConversationID) (models.Conversation, bool)
	ActiveConversation() (models.Conversation, bool)
	ActiveID() types.ConversationID
	Message(id types.MessageID) (models.ChatMessage, bool)
	Transcript(id types.ConversationID) (string, error)

	// Write operations
	AddChatMessage(content string) (AddResult, error)
	AddChat() models.Conversation
	SelectChat(id types.ConversationID) error

	// Replace swaps in a freshly loaded list, keeping the active id only if
	// it still exists
	Replace(convs []models.Conversation)
}

// AddResult describes where AddChatMessage put a message
type AddResult struct {
	Message      models.ChatMessage
	Conversation models.Conversation
	Started      bool // a new conversation was created
}

// Summary is the one-line description of a conversation in the history list
type Summary struct {
	Title string
	When  string
}

// Summarize describes conv by its last message and last activity
func Summarize(conv models.Conversation) Summary {
	title := EmptyTitle
	if last, ok := conv.LastMessage(); ok {
		title = last.Content
	}
	return Summary{Title: title, When: conv.LastTimestamp.Local().Format(SummaryTimeLayout)}
}

// Options configures a service
type Options struct {
	IDs    types.IDGenerator
	Now    func() time.Time
	Window time.Duration
}

type service struct {
	convs  []models.Conversation
	active types.ConversationID
	ids    types.IDGenerator
	now    func() time.Time
	window time.Duration
}

// NewService creates a conversation service holding convs. Nothing is
// active until a conversation is created or selected.
func NewService(convs []models.Conversation, opts Options) Service {
	s := &service{ids: opts.IDs, now: opts.Now, window: opts.Window}
	if s.ids == nil {
		s.ids = types.UUIDGenerator{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.window <= 0 {
		s.window = DefaultWindow
	}
	s.Replace(convs)
	return s
}

func (s *service) Conversations() []models.Conversation {
	return models.CloneConversations(s.convs)
}

func (s *service) Conversation(id types.ConversationID) (models.Conversation, bool) {
	i := s.index(id)
	if i < 0 {
		return models.Conversation{}, false
	}
	return s.convs[i].Clone(), true
}

func (s *service) ActiveConversation() (models.Conversation, bool) {
	return s.Conversation(s.active)
}

func (s *service) ActiveID() types.ConversationID {
	return s.active
}

// Message finds a message in any conversation
func (s *service) Message(id types.MessageID) (models.ChatMessage, bool) {
	for i := range s.convs {
		for _, m := range s.convs[i].Messages {
			if m.ID == id {
				return m, true
			}
		}
	}
	return models.ChatMessage{}, false
}

// Transcript renders a conversation as one "User: content" line per message
func (s *service) Transcript(id types.ConversationID) (string, error) {
	i := s.index(id)
	if i < 0 {
		return "", ErrConversationNotFound
	}
	var b strings.Builder
	for j, m := range s.convs[i].Messages {
		if j > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "User: %s", m.Content)
	}
	return b.String(), nil
}

// AddChatMessage records a message. It continues the active conversation,
// or the last one when none is active, if that conversation saw activity
// within the window; otherwise it starts a new active conversation.
func (s *service) AddChatMessage(content string) (AddResult, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return AddResult{}, ErrEmptyContent
	}

	now := s.clock()
	id := types.MessageID(s.ids.NewID())

	if ci := s.candidate(); ci >= 0 && now.Sub(s.convs[ci].LastTimestamp) < s.window {
		// Keep lastTimestamp non-decreasing if the clock stepped back
		if last := s.convs[ci].LastTimestamp; now.Before(last) {
			now = last
		}
		msg := models.ChatMessage{ID: id, Content: content, Timestamp: now}
		s.convs[ci].Messages = append(s.convs[ci].Messages, msg)
		s.convs[ci].LastTimestamp = now
		return AddResult{Message: msg, Conversation: s.convs[ci].Clone()}, nil
	}

	msg := models.ChatMessage{ID: id, Content: content, Timestamp: now}
	conv := models.Conversation{
		ID:            types.ConversationID(s.ids.NewID()),
		Messages:      []models.ChatMessage{msg},
		LastTimestamp: now,
	}
	s.convs = append(s.convs, conv)
	s.active = conv.ID
	slog.Debug("conversation started", "conversation_id", conv.ID)
	return AddResult{Message: msg, Conversation: conv.Clone(), Started: true}, nil
}

// AddChat starts an empty conversation and makes it active
func (s *service) AddChat() models.Conversation {
	conv := models.Conversation{
		ID:            types.ConversationID(s.ids.NewID()),
		Messages:      []models.ChatMessage{},
		LastTimestamp: s.clock(),
	}
	s.convs = append(s.convs, conv)
	s.active = conv.ID
	return conv.Clone()
}

// SelectChat sets the active conversation
func (s *service) SelectChat(id types.ConversationID) error {
	if s.index(id) < 0 {
		return ErrConversationNotFound
	}
	s.active = id
	return nil
}

func (s *service) Replace(convs []models.Conversation) {
	s.convs = models.CloneConversations(convs)
	if s.index(s.active) < 0 {
		s.active = ""
	}
}

// candidate returns the index of the conversation a new message may continue
func (s *service) candidate() int {
	if i := s.index(s.active); i >= 0 {
		return i
	}
	return len(s.convs) - 1
}

// clock returns now in UTC without a monotonic reading so it compares equal
// after a JSON round trip
func (s *service) clock() time.Time {
	return s.now().UTC().Round(0)
}

func (s *service) index(id types.ConversationID) int {
	if id == "" {
		return -1
	}
	for i := range s.convs {
		if s.convs[i].ID == id {
			return i
		}
	}
	return -1
}
