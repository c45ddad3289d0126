package events

// Subscriber hands out event streams. The returned cancel func stops
// delivery and closes the channel.
type Subscriber interface {
	Subscribe(buffer int) (<-chan Event, func())
}

var _ Subscriber = (*Bus)(nil)
