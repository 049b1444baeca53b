//go:build !js

/*
Native host for the game: opens a window (or runs headless), paces frames
with a ticker and drives the fixed-step scheduler from them.
*/
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/wasm-webgl-demo/engine"
	"github.com/spaghettifunk/wasm-webgl-demo/engine/assets"
	"github.com/spaghettifunk/wasm-webgl-demo/engine/core"
	"github.com/spaghettifunk/wasm-webgl-demo/engine/loop"
	"github.com/spaghettifunk/wasm-webgl-demo/engine/platform"
	"github.com/spaghettifunk/wasm-webgl-demo/testbed"
	"github.com/spf13/afero"
	"github.com/urfave/cli"
)

func main() {
	app := cli.App{
		Name:      "wasm-webgl-demo",
		HelpName:  "wasm-webgl-demo",
		Usage:     "runs the game with a fixed 60Hz simulation step",
		UsageText: "wasm-webgl-demo [options]",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "config, c",
				Value: "game.toml",
				Usage: "path of the TOML config file",
			},
			cli.StringFlag{
				Name:  "log-level",
				Usage: "override the configured log level (debug, info, warn, error)",
			},
			cli.BoolFlag{
				Name:  "headless",
				Usage: "run without a window",
			},
			cli.DurationFlag{
				Name:  "duration, d",
				Usage: "stop after this long (0 runs until quit)",
			},
			cli.BoolFlag{
				Name:  "watch, w",
				Usage: "reload the log level when the config file changes",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		core.LogError("%s", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	fs := afero.NewOsFs()
	cfgPath := c.String("config")

	cfg, err := engine.LoadApplicationConfig(fs, cfgPath)
	if err != nil {
		return err
	}

	tb := testbed.NewTestGame(cfg)

	var clock core.TimeSource = core.NewClock()
	var opts []engine.Option
	if lvl := c.String("log-level"); lvl != "" {
		opts = append(opts, engine.WithLogLevel(lvl))
	}
	var p *platform.Platform
	if !c.Bool("headless") {
		p = platform.New(tb.Game)
		if err := p.Startup(cfg.Name, cfg.Window.X, cfg.Window.Y, cfg.Window.Width, cfg.Window.Height); err != nil {
			return err
		}
		// covers early returns; Shutdown is safe to call twice
		defer p.Shutdown()
		clock = platform.WindowClock{}
		opts = append(opts, engine.WithShutdownHook(p.Shutdown))
	}

	host := loop.NewSource(clock, cfg.RefreshRate)
	if p != nil {
		host.Pump = p.PumpMessages
	}

	e, err := engine.New(tb.Game, host, append(opts, engine.WithClock(clock))...)
	if err != nil {
		return err
	}
	if err := e.Initialize(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if d := c.Duration("duration"); d > 0 {
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case sig := <-sigCh:
			core.LogInfo("received %s, stopping", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	if c.Bool("watch") {
		w, err := assets.NewWatcher(func(string) {
			_ = e.ReloadConfig(fs, cfgPath)
		})
		if err != nil {
			return err
		}
		defer w.Close()
		if err := w.Add(cfgPath); err != nil {
			return err
		}
	}

	runErr := e.Run(ctx)
	if err := e.Shutdown(); err != nil {
		core.LogError("shutdown: %s", err)
	}
	return runErr
}
