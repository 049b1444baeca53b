package engine

import (
	"github.com/spaghettifunk/wasm-webgl-demo/engine/containers"
	"github.com/spaghettifunk/wasm-webgl-demo/engine/core"
)

// Game is the simulation the engine steps. Input forwarded by the host is
// queued and applied at the start of the next step. Hosts call the Log*
// methods and Step from the same goroutine, so no locking is done.
type Game struct {
	ApplicationConfig *ApplicationConfig
	State             interface{}
	FnInitialize      Initialize
	FnUpdate          Update
	FnShutdown        Shutdown

	input       *core.InputState
	queue       *containers.RingQueue[core.InputEvent]
	stepSeconds float64
	ticks       uint64
	dropped     uint64
}

type Initialize func() error
type Update func(deltaTime float64) error
type Shutdown func() error

func NewGame(config *ApplicationConfig) *Game {
	if config == nil {
		config = DefaultApplicationConfig()
	}
	return &Game{
		ApplicationConfig: config,
		input:             core.NewInputState(),
		queue:             containers.NewRingQueue[core.InputEvent](config.InputQueueSize),
		stepSeconds:       config.StepSeconds(),
	}
}

// Step advances the game by one fixed tick.
func (g *Game) Step() error {
	g.input.Update()
	g.queue.Drain(g.input.Apply)

	if g.FnUpdate != nil {
		if err := g.FnUpdate(g.stepSeconds); err != nil {
			return err
		}
	}
	g.ticks++
	return nil
}

func (g *Game) LogMouseDownEvent(e core.InputEvent) {
	e.Kind = core.InputKindMouse
	e.State = core.KeyStatePressed
	g.logEvent(e)
}

func (g *Game) LogMouseUpEvent(e core.InputEvent) {
	e.Kind = core.InputKindMouse
	e.State = core.KeyStateReleased
	g.logEvent(e)
}

func (g *Game) LogKeyDownEvent(e core.InputEvent) {
	e.Kind = core.InputKindKeyboard
	e.State = core.KeyStatePressed
	g.logEvent(e)
}

func (g *Game) LogKeyUpEvent(e core.InputEvent) {
	e.Kind = core.InputKindKeyboard
	e.State = core.KeyStateReleased
	g.logEvent(e)
}

func (g *Game) logEvent(e core.InputEvent) {
	if err := g.queue.Enqueue(e); err != nil {
		g.dropped++
		core.LogWarn("input event dropped (%d so far): %s", g.dropped, err)
	}
}

// Input is the state built from the events applied so far.
func (g *Game) Input() *core.InputState {
	return g.input
}

// Ticks is the number of completed steps.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// PendingEvents is the number of events waiting for the next step.
func (g *Game) PendingEvents() int {
	return g.queue.Len()
}

func (g *Game) DroppedEvents() uint64 {
	return g.dropped
}
