// Package events is the in-process change notification bus between the
// application controller and its views.
package events

import (
	"log/slog"
	"sync"
	"time"
)

// DefaultBuffer is the channel capacity used when Subscribe is given a
// non-positive size
const DefaultBuffer = 16

// Bus fans events out to subscribers. A subscriber whose buffer is full
// misses the event instead of stalling the publisher.
type Bus struct {
	mu     sync.Mutex
	subs   map[int]chan Event
	nextID int
	seq    int64
	closed bool

	metrics *Metrics
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Event), metrics: NewMetrics()}
}

// Subscribe registers a new subscriber
func (b *Bus) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	ch := make(chan Event, buffer)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.metrics.Subscribers.Add(1)

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
				b.metrics.Subscribers.Add(-1)
			}
		})
	}
}

// Publish stamps event with a sequence number and time, then delivers it
func (b *Bus) Publish(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}

	b.seq++
	b.metrics.EventsPublished.Add(1)
	event.SequenceID = b.seq
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	for id, ch := range b.subs {
		select {
		case ch <- event:
			b.metrics.EventsDelivered.Add(1)
		default:
			b.metrics.EventsDropped.Add(1)
			slog.Debug("event dropped for slow subscriber", "subscriber", id, "event_type", event.Type)
		}
	}
}

// Close closes every subscriber channel; later publishes are discarded
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
	b.metrics.Subscribers.Store(0)
}

// Metrics returns a snapshot of the bus counters
func (b *Bus) Metrics() MetricsSnapshot {
	return b.metrics.Snapshot()
}
