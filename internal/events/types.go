package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	EventBoardsChanged        EventType = "boards_changed"
	EventConversationsChanged EventType = "conversations_changed"
	EventViewChanged          EventType = "view_changed"
	EventReloaded             EventType = "reloaded"
	EventStorageError         EventType = "storage_error"
)

// Event is a state change notification
type Event struct {
	Type       EventType
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
	Err        error     // Set for EventStorageError
}
