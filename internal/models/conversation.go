package models

import (
	"encoding/json"
	"time"

	"github.com/thenoetrevino/sage/internal/types"
)

// ChatMessage is a single locally authored note. Messages are immutable once
// created.
type ChatMessage struct {
	ID        types.MessageID `json:"id"`
	Content   string          `json:"content"`
	Timestamp time.Time       `json:"timestamp"`
}

// Conversation is a session of chat messages grouped by the continuation
// window. LastTimestamp equals the timestamp of the last message whenever
// Messages is non-empty.
type Conversation struct {
	ID            types.ConversationID `json:"id"`
	Messages      []ChatMessage        `json:"messages"`
	LastTimestamp time.Time            `json:"lastTimestamp"`
}

// LastMessage returns the most recent message, if any
func (c Conversation) LastMessage() (ChatMessage, bool) {
	if len(c.Messages) == 0 {
		return ChatMessage{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}

// Clone returns a deep copy of the conversation
func (c Conversation) Clone() Conversation {
	msgs := make([]ChatMessage, len(c.Messages))
	copy(msgs, c.Messages)
	c.Messages = msgs
	return c
}

// CloneConversations deep copies a conversation list
func CloneConversations(convs []Conversation) []Conversation {
	out := make([]Conversation, len(convs))
	for i := range convs {
		out[i] = convs[i].Clone()
	}
	return out
}

// MarshalJSON always writes messages as an array
func (c Conversation) MarshalJSON() ([]byte, error) {
	type conversation Conversation
	if c.Messages == nil {
		c.Messages = []ChatMessage{}
	}
	return json.Marshal(conversation(c))
}

// UnmarshalJSON normalizes a missing message list to an empty one
func (c *Conversation) UnmarshalJSON(data []byte) error {
	type conversation Conversation
	var raw conversation
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Messages == nil {
		raw.Messages = []ChatMessage{}
	}
	*c = Conversation(raw)
	return nil
}
