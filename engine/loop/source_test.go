package loop

import (
	"context"
	"errors"
	"testing"

	"github.com/spaghettifunk/wasm-webgl-demo/engine/core"
	"github.com/spaghettifunk/wasm-webgl-demo/engine/scheduler"
)

func TestSourceDeliversClockTimestamps(t *testing.T) {
	clock := core.NewManualClock(0)
	src := NewSource(clock, 0)
	src.Pump = func() bool {
		clock.Advance(10)
		return true
	}

	var got []float64
	var cb scheduler.FrameCallback
	cb = func(now float64) error {
		got = append(got, now)
		if len(got) < 5 {
			src.RequestFrame(cb)
		}
		return nil
	}
	src.RequestFrame(cb)

	if err := src.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []float64{10, 20, 30, 40, 50}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if src.Frames() != 5 {
		t.Fatalf("frames = %d, want 5", src.Frames())
	}
}

func TestSourceReturnsWhenNothingPending(t *testing.T) {
	src := NewSource(core.NewManualClock(0), 0)
	if err := src.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if src.Frames() != 0 {
		t.Fatalf("frames = %d", src.Frames())
	}
}

func TestSourceStopsWhenPumpFails(t *testing.T) {
	src := NewSource(core.NewManualClock(0), 0)
	pumps := 0
	src.Pump = func() bool {
		pumps++
		return pumps < 3
	}

	var cb scheduler.FrameCallback
	cb = func(now float64) error {
		src.RequestFrame(cb)
		return nil
	}
	src.RequestFrame(cb)

	if err := src.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if src.Frames() != 2 {
		t.Fatalf("frames = %d, want 2", src.Frames())
	}
}

func TestSourceCancelFrame(t *testing.T) {
	src := NewSource(core.NewManualClock(0), 0)
	called := false
	h := src.RequestFrame(func(now float64) error {
		called = true
		return nil
	})

	src.CancelFrame(h + 1)
	src.CancelFrame(h)
	if err := src.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if called {
		t.Fatal("cancelled callback was invoked")
	}
}

func TestSourceErrors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("without handler", func(t *testing.T) {
		src := NewSource(core.NewManualClock(0), 0)
		var cb scheduler.FrameCallback
		cb = func(now float64) error {
			src.RequestFrame(cb)
			return boom
		}
		src.RequestFrame(cb)

		if err := src.Run(context.Background()); !errors.Is(err, boom) {
			t.Fatalf("Run = %v, want %v", err, boom)
		}
	})

	t.Run("with handler", func(t *testing.T) {
		src := NewSource(core.NewManualClock(0), 0)
		var handled []error
		src.SetErrorHandler(func(err error) { handled = append(handled, err) })

		calls := 0
		var cb scheduler.FrameCallback
		cb = func(now float64) error {
			calls++
			if calls < 3 {
				src.RequestFrame(cb)
			}
			return boom
		}
		src.RequestFrame(cb)

		if err := src.Run(context.Background()); err != nil {
			t.Fatalf("Run: %v", err)
		}
		if len(handled) != 3 {
			t.Fatalf("handled %d errors, want 3", len(handled))
		}
	})
}

func TestSourceHonoursContext(t *testing.T) {
	src := NewSource(core.NewClock(), 1000)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var cb scheduler.FrameCallback
	cb = func(now float64) error {
		src.RequestFrame(cb)
		if src.Frames() == 3 {
			cancel()
		}
		return nil
	}
	src.RequestFrame(cb)

	if err := src.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if src.Frames() != 3 {
		t.Fatalf("frames = %d, want 3", src.Frames())
	}
}

func TestSourceDrivesScheduler(t *testing.T) {
	clock := core.NewManualClock(0)
	src := NewSource(clock, 0)

	steps := 0
	sched, err := scheduler.New(src, scheduler.SimulationFunc(func() error {
		steps++
		return nil
	}), scheduler.WithClock(clock))
	if err != nil {
		t.Fatal(err)
	}

	frames := 0
	src.Pump = func() bool {
		frames++
		clock.Advance(sched.StepDuration())
		return frames <= 120
	}

	if err := sched.Start(); err != nil {
		t.Fatal(err)
	}
	if err := src.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if steps != 120 {
		t.Fatalf("steps = %d, want 120", steps)
	}
}
