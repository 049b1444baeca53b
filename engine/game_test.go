package engine

import (
	"testing"

	"github.com/spaghettifunk/wasm-webgl-demo/engine/core"
)

func TestGameUpEventsAreReleased(t *testing.T) {
	g := NewGame(nil)

	g.LogMouseDownEvent(core.NewMouseEvent(core.BUTTON_MAIN, core.KeyStateReleased, 3, 4))
	if err := g.Step(); err != nil {
		t.Fatal(err)
	}
	if !g.Input().IsButtonDown(core.BUTTON_MAIN) {
		t.Fatal("mousedown must press the button whatever state it carried")
	}
	if x, y := g.Input().MousePosition(); x != 3 || y != 4 {
		t.Fatalf("cursor = %d,%d", x, y)
	}

	g.LogMouseUpEvent(core.NewMouseEvent(core.BUTTON_MAIN, core.KeyStatePressed, 5, 6))
	if err := g.Step(); err != nil {
		t.Fatal(err)
	}
	if g.Input().IsButtonDown(core.BUTTON_MAIN) {
		t.Fatal("mouseup must release the button")
	}
	if !g.Input().WasButtonDown(core.BUTTON_MAIN) {
		t.Fatal("previous state should remember the press")
	}
}

func TestGameKeyEvents(t *testing.T) {
	g := NewGame(nil)

	g.LogKeyDownEvent(core.NewKeyEvent(core.KEY_A, core.KeyStatePressed, false))
	g.LogKeyDownEvent(core.NewKeyEvent(core.KEY_D, core.KeyStatePressed, true))
	if g.PendingEvents() != 2 {
		t.Fatalf("pending = %d", g.PendingEvents())
	}
	if g.Input().IsKeyDown(core.KEY_A) {
		t.Fatal("events must not apply before the step")
	}

	if err := g.Step(); err != nil {
		t.Fatal(err)
	}
	if !g.Input().IsKeyDown(core.KEY_A) || !g.Input().IsKeyDown(core.KEY_D) {
		t.Fatal("keys not pressed after step")
	}
	if k, ok := g.Input().RepeatedKey(); !ok || k != core.KEY_D {
		t.Fatalf("repeated key = %v, %v", k, ok)
	}
	if g.PendingEvents() != 0 || g.Ticks() != 1 {
		t.Fatalf("pending = %d, ticks = %d", g.PendingEvents(), g.Ticks())
	}

	g.LogKeyUpEvent(core.NewKeyEvent(core.KEY_A, core.KeyStatePressed, false))
	if err := g.Step(); err != nil {
		t.Fatal(err)
	}
	if g.Input().IsKeyDown(core.KEY_A) {
		t.Fatal("keyup must release the key")
	}
	if !g.Input().WasKeyDown(core.KEY_A) {
		t.Fatal("previous state should remember the key")
	}
}

func TestGameDropsEventsWhenQueueIsFull(t *testing.T) {
	cfg := DefaultApplicationConfig()
	cfg.InputQueueSize = 2
	g := NewGame(cfg)

	for i := 0; i < 5; i++ {
		g.LogKeyDownEvent(core.NewKeyEvent(core.KEY_SPACE, core.KeyStatePressed, false))
	}
	if g.PendingEvents() != 2 || g.DroppedEvents() != 3 {
		t.Fatalf("pending = %d, dropped = %d", g.PendingEvents(), g.DroppedEvents())
	}
}
