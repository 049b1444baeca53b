//go:build js && wasm

package main

import (
	"context"

	"github.com/spaghettifunk/wasm-webgl-demo/engine"
	"github.com/spaghettifunk/wasm-webgl-demo/engine/core"
	"github.com/spaghettifunk/wasm-webgl-demo/engine/platform"
	"github.com/spaghettifunk/wasm-webgl-demo/testbed"
)

func main() {
	cfg := engine.DefaultApplicationConfig()
	// A throwing tick does not stop requestAnimationFrame either.
	cfg.StopOnError = false

	tb := testbed.NewTestGame(cfg)

	src := platform.NewAnimationFrameSource()
	defer src.Release()

	binding, err := platform.BindCanvas(cfg.Web.CanvasID, tb.Game)
	if err != nil {
		core.LogFatal("%s", err)
	}
	defer binding.Release()

	e, err := engine.New(tb.Game, src, engine.WithClock(platform.PerformanceClock{}))
	if err != nil {
		core.LogFatal("%s", err)
	}
	if err := e.Initialize(); err != nil {
		core.LogFatal("%s", err)
	}

	core.LogInfo("Start")
	if err := e.Run(context.Background()); err != nil {
		core.LogError("%s", err)
	}
}
