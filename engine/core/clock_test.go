package core

import (
	"testing"
	"time"
)

func TestClockIsMonotonic(t *testing.T) {
	c := NewClock()
	if c.Elapsed() != 0 {
		t.Fatal("new clock should report zero")
	}

	first := c.Now()
	time.Sleep(2 * time.Millisecond)
	second := c.Now()
	if second < first+1 {
		t.Fatalf("clock did not advance: %v -> %v", first, second)
	}

	c.Stop()
	stopped := c.Elapsed()
	c.Update()
	if c.Elapsed() != stopped {
		t.Fatal("a stopped clock must not advance on Update")
	}
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(5)
	if c.Now() != 5 {
		t.Fatalf("now = %v", c.Now())
	}
	if got := c.Advance(10); got != 15 || c.Now() != 15 {
		t.Fatalf("advance = %v, now = %v", got, c.Now())
	}
	c.Set(1)
	if c.Now() != 1 {
		t.Fatalf("now = %v", c.Now())
	}
}
