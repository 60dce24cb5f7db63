package event

import (
	"sync"
	"testing"

	"github.com/amitu/bhumi/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()

	want := []InputEvent{
		{Type: ThrustForward},
		{Type: ThrustUp},
		{Type: CameraMode, Mode: ModeThirdPerson},
		{Type: Exit},
	}
	for _, ev := range want {
		q.Push(ev)
	}

	got := q.Consume()
	if len(got) != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Event %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}

	if more := q.Consume(); more != nil {
		t.Errorf("Expected drained queue, got %d events", len(more))
	}
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewQueue()

	for i := 0; i < parameter.EventQueueSize+10; i++ {
		q.Push(InputEvent{Type: ThrustForward})
	}
	q.Push(InputEvent{Type: Exit})

	got := q.Consume()
	if len(got) == 0 || len(got) > parameter.EventQueueSize {
		t.Fatalf("Expected at most %d events, got %d", parameter.EventQueueSize, len(got))
	}
	if got[len(got)-1].Type != Exit {
		t.Errorf("Expected newest event to survive overflow, got %v", got[len(got)-1].Type)
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()

	const producers = 4
	const perProducer = 32

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(InputEvent{Type: ThrustUp})
			}
		}()
	}
	wg.Wait()

	total := 0
	for {
		batch := q.Consume()
		if batch == nil {
			break
		}
		total += len(batch)
	}
	if total != producers*perProducer {
		t.Errorf("Expected %d events, got %d", producers*perProducer, total)
	}
}
