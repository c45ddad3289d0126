package types

import "github.com/google/uuid"

// ID types give the string identifiers of the domain their own names. All of
// them are opaque: the only guarantee is uniqueness within their collection.

// BoardID identifies a board globally
type BoardID string

// ColumnID identifies a column within a board
type ColumnID string

// TaskID identifies a task card
type TaskID string

// ConversationID identifies a chat conversation
type ConversationID string

// MessageID identifies a chat message
type MessageID string

// Fixed column ids seeded on every default board
const (
	InboxColumn      ColumnID = "inbox"
	TodoColumn       ColumnID = "todo"
	InProgressColumn ColumnID = "inProgress"
	DoneColumn       ColumnID = "done"
)

func (id BoardID) String() string        { return string(id) }
func (id ColumnID) String() string       { return string(id) }
func (id TaskID) String() string         { return string(id) }
func (id ConversationID) String() string { return string(id) }
func (id MessageID) String() string      { return string(id) }

// IDGenerator supplies fresh identifiers on demand.
// No ordering or format guarantee is made beyond uniqueness.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator produces random (v4) UUID strings
type UUIDGenerator struct{}

// NewID returns a new random UUID
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// IDGeneratorFunc adapts a plain function to IDGenerator
type IDGeneratorFunc func() string

// NewID calls f
func (f IDGeneratorFunc) NewID() string {
	return f()
}
