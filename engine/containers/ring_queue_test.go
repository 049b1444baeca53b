package containers

import (
	"errors"
	"testing"

	"github.com/spaghettifunk/wasm-webgl-demo/engine/core"
)

func TestRingQueueFIFO(t *testing.T) {
	rq := NewRingQueue[int](3)
	for i := 1; i <= 3; i++ {
		if err := rq.Enqueue(i); err != nil {
			t.Fatalf("enqueue %d: %v", i, err)
		}
	}
	if err := rq.Enqueue(4); !errors.Is(err, core.ErrQueueFull) {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}

	v, err := rq.Peek()
	if err != nil || v != 1 {
		t.Fatalf("peek = %d, %v; want 1", v, err)
	}

	for want := 1; want <= 3; want++ {
		got, err := rq.Dequeue()
		if err != nil {
			t.Fatalf("dequeue: %v", err)
		}
		if got != want {
			t.Errorf("dequeue = %d, want %d", got, want)
		}
	}
	if _, err := rq.Dequeue(); !errors.Is(err, core.ErrQueueEmpty) {
		t.Fatalf("expected ErrQueueEmpty, got %v", err)
	}
}

func TestRingQueueWrapsAround(t *testing.T) {
	rq := NewRingQueue[string](2)
	_ = rq.Enqueue("a")
	_ = rq.Enqueue("b")
	_, _ = rq.Dequeue()
	if err := rq.Enqueue("c"); err != nil {
		t.Fatalf("enqueue after dequeue: %v", err)
	}
	if rq.Len() != 2 || !rq.IsFull() {
		t.Fatalf("len = %d, full = %v", rq.Len(), rq.IsFull())
	}

	var got []string
	n := rq.Drain(func(s string) { got = append(got, s) })
	if n != 2 || got[0] != "b" || got[1] != "c" {
		t.Fatalf("drain = %v (%d)", got, n)
	}
	if !rq.IsEmpty() {
		t.Fatal("queue should be empty after drain")
	}
}

func TestRingQueueMinimumSize(t *testing.T) {
	rq := NewRingQueue[int](0)
	if rq.Cap() != 1 {
		t.Fatalf("cap = %d, want 1", rq.Cap())
	}
}
