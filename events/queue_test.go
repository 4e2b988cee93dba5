package events

import (
	"sync"
	"testing"
)

func TestEventQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 10; i++ {
		q.Push(GameEvent{Type: EventTimeRemainingChanged, Payload: &TimeRemainingPayload{Remaining: i}})
	}
	if q.Len() != 10 {
		t.Fatalf("Expected 10 pending, got %d", q.Len())
	}

	got := q.Consume()
	if len(got) != 10 {
		t.Fatalf("Expected 10 events, got %d", len(got))
	}
	for i, ev := range got {
		if r := ev.Payload.(*TimeRemainingPayload).Remaining; r != i {
			t.Errorf("Position %d: expected remaining %d, got %d", i, i, r)
		}
	}
	if q.Consume() != nil {
		t.Error("Expected nil on empty queue")
	}
}

func TestEventQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	total := QueueSize + 40
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventEntitySpawned, Payload: &EntitySpawnedPayload{Hole: i}})
	}
	if q.Len() != QueueSize {
		t.Fatalf("Expected %d pending, got %d", QueueSize, q.Len())
	}

	got := q.Consume()
	if len(got) != QueueSize {
		t.Fatalf("Expected %d events, got %d", QueueSize, len(got))
	}
	if first := got[0].Payload.(*EntitySpawnedPayload).Hole; first != 40 {
		t.Errorf("Expected oldest surviving hole 40, got %d", first)
	}
	if last := got[len(got)-1].Payload.(*EntitySpawnedPayload).Hole; last != total-1 {
		t.Errorf("Expected newest hole %d, got %d", total-1, last)
	}
}

func TestEventQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	const producers = 4
	const perProducer = 50

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(GameEvent{Type: EventHitResolved})
			}
		}()
	}
	wg.Wait()

	if got := len(q.Consume()); got != producers*perProducer {
		t.Errorf("Expected %d events, got %d", producers*perProducer, got)
	}
}
