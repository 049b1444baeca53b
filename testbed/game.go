package testbed

import (
	"github.com/spaghettifunk/wasm-webgl-demo/engine"
	"github.com/spaghettifunk/wasm-webgl-demo/engine/core"
	"github.com/spaghettifunk/wasm-webgl-demo/engine/math"
)

const (
	WorldWidth  float32 = 30
	WorldHeight float32 = 30
	// Player speed in world units per second.
	PlayerSpeed float32 = 10
)

type TestGame struct {
	*engine.Game
}

type Player struct {
	X float32
	Y float32
}

type gameState struct {
	Player  Player
	Elapsed float64
	Clicks  uint32
}

func NewTestGame(config *engine.ApplicationConfig) *TestGame {
	tg := &TestGame{
		Game: engine.NewGame(config),
	}
	tg.State = &gameState{
		Player: Player{X: WorldWidth / 2, Y: WorldHeight / 2},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnShutdown = tg.Shutdown

	return tg
}

func (g *TestGame) state() *gameState {
	return g.State.(*gameState)
}

func (g *TestGame) Initialize() error {
	p := g.state().Player
	core.LogInfo("testbed initialized, player at (%.1f, %.1f)", p.X, p.Y)
	return nil
}

// Update moves the player with WASD or the arrow keys and wraps it around
// the world edges.
func (g *TestGame) Update(deltaTime float64) error {
	s := g.state()
	in := g.Input()
	s.Elapsed += deltaTime

	var dx, dy float32
	if in.IsKeyDown(core.KEY_LEFT) || in.IsKeyDown(core.KEY_A) {
		dx--
	}
	if in.IsKeyDown(core.KEY_RIGHT) || in.IsKeyDown(core.KEY_D) {
		dx++
	}
	if in.IsKeyDown(core.KEY_UP) || in.IsKeyDown(core.KEY_W) {
		dy++
	}
	if in.IsKeyDown(core.KEY_DOWN) || in.IsKeyDown(core.KEY_S) {
		dy--
	}

	step := PlayerSpeed * float32(deltaTime)
	s.Player.X = math.Wrap(s.Player.X+dx*step, WorldWidth)
	s.Player.Y = math.Wrap(s.Player.Y+dy*step, WorldHeight)

	if in.IsButtonDown(core.BUTTON_MAIN) && !in.WasButtonDown(core.BUTTON_MAIN) {
		s.Clicks++
		x, y := in.MousePosition()
		core.LogDebug("click %d at (%d, %d)", s.Clicks, x, y)
	}
	return nil
}

func (g *TestGame) Shutdown() error {
	s := g.state()
	core.LogInfo("testbed shut down after %d ticks (%.2fs simulated)", g.Ticks(), s.Elapsed)
	return nil
}

func (g *TestGame) Player() Player {
	return g.state().Player
}

func (g *TestGame) Clicks() uint32 {
	return g.state().Clicks
}
