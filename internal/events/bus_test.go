package events

import (
	"testing"
	"time"
)

func receive(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev, ok := <-ch:
		if !ok {
			t.Fatal("channel closed unexpectedly")
		}
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
	return Event{}
}

func TestBus_FanOut(t *testing.T) {
	bus := NewBus()
	a, cancelA := bus.Subscribe(4)
	b, cancelB := bus.Subscribe(4)
	defer cancelA()
	defer cancelB()

	bus.Publish(Event{Type: EventBoardsChanged})

	for _, ch := range []<-chan Event{a, b} {
		ev := receive(t, ch)
		if ev.Type != EventBoardsChanged {
			t.Errorf("expected %s, got %s", EventBoardsChanged, ev.Type)
		}
		if ev.SequenceID != 1 {
			t.Errorf("expected sequence 1, got %d", ev.SequenceID)
		}
		if ev.Timestamp.IsZero() {
			t.Error("expected timestamp to be set")
		}
	}
}

func TestBus_SequenceIncreases(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(8)
	defer cancel()

	bus.Publish(Event{Type: EventBoardsChanged})
	bus.Publish(Event{Type: EventConversationsChanged})

	first := receive(t, ch)
	second := receive(t, ch)
	if second.SequenceID <= first.SequenceID {
		t.Errorf("sequence did not increase: %d then %d", first.SequenceID, second.SequenceID)
	}
}

func TestBus_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(1)
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			bus.Publish(Event{Type: EventViewChanged})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full subscriber")
	}

	if len(ch) != 1 {
		t.Errorf("expected buffer to hold exactly 1 event, got %d", len(ch))
	}
}

func TestBus_CancelClosesChannel(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(1)
	cancel()
	cancel() // idempotent

	if _, ok := <-ch; ok {
		t.Error("expected closed channel after cancel")
	}
	bus.Publish(Event{Type: EventBoardsChanged}) // must not panic
}

func TestBus_Close(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(1)
	bus.Close()
	cancel()

	if _, ok := <-ch; ok {
		t.Error("expected closed channel after bus Close")
	}

	late, _ := bus.Subscribe(1)
	if _, ok := <-late; ok {
		t.Error("subscribing to a closed bus should return a closed channel")
	}
}

func TestBus_Metrics(t *testing.T) {
	b := NewBus()
	fast, cancelFast := b.Subscribe(4)
	_, cancelSlow := b.Subscribe(1)

	if got := b.Metrics().Subscribers; got != 2 {
		t.Fatalf("Subscribers = %d, want 2", got)
	}

	b.Publish(Event{Type: EventBoardsChanged})
	b.Publish(Event{Type: EventBoardsChanged})
	receive(t, fast)

	m := b.Metrics()
	if m.EventsPublished != 2 {
		t.Errorf("EventsPublished = %d, want 2", m.EventsPublished)
	}
	if m.EventsDelivered != 3 {
		t.Errorf("EventsDelivered = %d, want 3", m.EventsDelivered)
	}
	if m.EventsDropped != 1 {
		t.Errorf("EventsDropped = %d, want 1", m.EventsDropped)
	}

	cancelSlow()
	cancelSlow()
	if got := b.Metrics().Subscribers; got != 1 {
		t.Errorf("Subscribers after cancel = %d, want 1", got)
	}
	cancelFast()
	b.Close()
	if got := b.Metrics().Subscribers; got != 0 {
		t.Errorf("Subscribers after close = %d, want 0", got)
	}
}
