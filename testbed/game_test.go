package testbed

import (
	m "math"
	"testing"

	"github.com/spaghettifunk/wasm-webgl-demo/engine"
	"github.com/spaghettifunk/wasm-webgl-demo/engine/core"
)

func near(a, b float32) bool {
	return m.Abs(float64(a-b)) < 1e-3
}

func TestPlayerMovesWithKeys(t *testing.T) {
	cfg := engine.DefaultApplicationConfig()
	cfg.StepRate = 50
	g := NewTestGame(cfg)
	start := g.Player()

	g.LogKeyDownEvent(core.NewKeyEvent(core.KEY_D, core.KeyStatePressed, false))
	for i := 0; i < 50; i++ {
		if err := g.Step(); err != nil {
			t.Fatal(err)
		}
	}
	if p := g.Player(); !near(p.X, start.X+PlayerSpeed) || !near(p.Y, start.Y) {
		t.Fatalf("player = %+v after one second moving right from %+v", p, start)
	}

	g.LogKeyUpEvent(core.NewKeyEvent(core.KEY_D, core.KeyStateReleased, false))
	if err := g.Step(); err != nil {
		t.Fatal(err)
	}
	before := g.Player()
	if err := g.Step(); err != nil {
		t.Fatal(err)
	}
	if g.Player() != before {
		t.Fatal("player kept moving after key release")
	}
}

func TestPlayerWrapsAroundWorld(t *testing.T) {
	cfg := engine.DefaultApplicationConfig()
	cfg.StepRate = 10
	g := NewTestGame(cfg)

	g.LogKeyDownEvent(core.NewKeyEvent(core.KEY_UP, core.KeyStatePressed, false))
	// 2 seconds at 10 units/s from the middle crosses the top edge.
	for i := 0; i < 20; i++ {
		if err := g.Step(); err != nil {
			t.Fatal(err)
		}
	}
	if p := g.Player(); !near(p.Y, 5) {
		t.Fatalf("player y = %v, want 5 after wrapping", p.Y)
	}
}

func TestClicksCountOnPress(t *testing.T) {
	g := NewTestGame(nil)

	g.LogMouseDownEvent(core.NewMouseEvent(core.BUTTON_MAIN, core.KeyStatePressed, 1, 1))
	for i := 0; i < 3; i++ {
		if err := g.Step(); err != nil {
			t.Fatal(err)
		}
	}
	g.LogMouseUpEvent(core.NewMouseEvent(core.BUTTON_MAIN, core.KeyStateReleased, 1, 1))
	g.LogMouseDownEvent(core.NewMouseEvent(core.BUTTON_MAIN, core.KeyStatePressed, 2, 2))
	if err := g.Step(); err != nil {
		t.Fatal(err)
	}
	if g.Clicks() != 1 {
		t.Fatalf("clicks = %d, want 1", g.Clicks())
	}
	g.LogMouseUpEvent(core.NewMouseEvent(core.BUTTON_MAIN, core.KeyStateReleased, 2, 2))
	if err := g.Step(); err != nil {
		t.Fatal(err)
	}
	g.LogMouseDownEvent(core.NewMouseEvent(core.BUTTON_MAIN, core.KeyStatePressed, 2, 2))
	if err := g.Step(); err != nil {
		t.Fatal(err)
	}
	if g.Clicks() != 2 {
		t.Fatalf("clicks = %d, want 2", g.Clicks())
	}
}
