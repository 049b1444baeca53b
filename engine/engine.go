package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spaghettifunk/wasm-webgl-demo/engine/core"
	"github.com/spaghettifunk/wasm-webgl-demo/engine/scheduler"
	"github.com/spf13/afero"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently booting up
	EngineStageBooting
	// Engine completed boot process and is ready to be initialized
	EngineStageBootComplete
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

func (s Stage) String() string {
	switch s {
	case EngineStageUninitialized:
		return "uninitialized"
	case EngineStageBooting:
		return "booting"
	case EngineStageBootComplete:
		return "boot complete"
	case EngineStageInitializing:
		return "initializing"
	case EngineStageInitialized:
		return "initialized"
	case EngineStageRunning:
		return "running"
	case EngineStageShuttingDown:
		return "shutting down"
	}
	return fmt.Sprintf("stage(%d)", uint8(s))
}

// Host is a frame source that also owns the loop delivering its frames.
type Host interface {
	scheduler.FrameSource
	SetErrorHandler(fn func(error))
	Run(ctx context.Context) error
}

type Option func(*Engine)

// WithClock sets the clock seeding the scheduler. It must share its time
// base with the timestamps the host delivers.
func WithClock(ts core.TimeSource) Option {
	return func(e *Engine) {
		e.clock = ts
	}
}

// WithShutdownHook registers a function run by Shutdown after the game has
// shut down, in registration order.
func WithShutdownHook(fn func() error) Option {
	return func(e *Engine) {
		e.shutdownHooks = append(e.shutdownHooks, fn)
	}
}

// WithLogLevel pins the log level, for example from a command line flag.
// Config reloads keep it.
func WithLogLevel(level string) Option {
	return func(e *Engine) {
		e.logLevelOverride = level
	}
}

type Engine struct {
	id            uuid.UUID
	currentStage  Stage
	gameInstance  *Game
	host          Host
	clock         core.TimeSource
	scheduler     *scheduler.Scheduler
	shutdownHooks []func() error
	logger        *core.Logger

	// set by WithLogLevel, wins over the config file
	logLevelOverride string

	cancel  context.CancelFunc
	lastErr error
}

func New(g *Game, host Host, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, core.ErrNilSimulation
	}
	if host == nil {
		return nil, core.ErrNilFrameSource
	}

	id := uuid.New()
	e := &Engine{
		id:           id,
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		host:         host,
		logger:       core.NewLogger("Engine 🏎️ ", "engine", id.String()),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.clock == nil {
		e.clock = core.NewClock()
	}
	return e, nil
}

func (e *Engine) Initialize() error {
	if e.currentStage != EngineStageUninitialized {
		return fmt.Errorf("%w: initialize from %s", core.ErrEngineStage, e.currentStage)
	}
	e.currentStage = EngineStageBooting

	config := e.gameInstance.ApplicationConfig
	if e.logLevelOverride != "" {
		config.LogLevel = e.logLevelOverride
	}
	if err := config.Validate(); err != nil {
		e.currentStage = EngineStageUninitialized
		return err
	}
	core.SetLogLevel(config.Level())

	sched, err := scheduler.New(e.host, e.gameInstance,
		scheduler.WithStepRate(config.StepRate),
		scheduler.WithMaxStepsPerFrame(config.MaxStepsPerFrame),
		scheduler.WithClock(e.clock),
	)
	if err != nil {
		e.currentStage = EngineStageUninitialized
		return err
	}
	e.scheduler = sched
	e.host.SetErrorHandler(e.onStepError)
	e.currentStage = EngineStageBootComplete

	e.currentStage = EngineStageInitializing
	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(); err != nil {
			e.logger.Error("game initialization failed", "err", err)
			e.scheduler = nil
			e.currentStage = EngineStageUninitialized
			return err
		}
	}
	e.currentStage = EngineStageInitialized
	e.logger.Info("engine initialized", "name", config.Name, "step_rate", config.StepRate, "scheduler", sched.ID().String())
	return nil
}

// Run starts the scheduler and blocks in the host loop until ctx is done,
// the host stops delivering frames or a failing step stops the engine.
// The error of the step that stopped the engine is returned.
func (e *Engine) Run(ctx context.Context) error {
	if e.currentStage != EngineStageInitialized {
		return fmt.Errorf("%w: run from %s", core.ErrEngineStage, e.currentStage)
	}

	ctx, e.cancel = context.WithCancel(ctx)
	defer e.cancel()

	if err := e.scheduler.Start(); err != nil {
		return err
	}
	e.currentStage = EngineStageRunning
	e.logger.Info("engine running")

	err := e.host.Run(ctx)
	e.scheduler.Stop()
	if e.currentStage == EngineStageRunning {
		e.currentStage = EngineStageInitialized
	}

	stats := e.scheduler.Stats()
	e.logger.Info("engine stopped", "frames", stats.Frames, "steps", stats.Steps, "ticks", e.gameInstance.Ticks())

	if err != nil {
		return err
	}
	return e.lastErr
}

// onStepError is the top-level handler for errors surfaced by the loop.
func (e *Engine) onStepError(err error) {
	e.logger.Error("simulation step failed", "err", err)
	if !e.gameInstance.ApplicationConfig.StopOnError {
		return
	}
	e.logger.Error("stopping engine after failed step")
	e.lastErr = err
	if e.cancel != nil {
		e.cancel()
	}
}

func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageShuttingDown {
		return nil
	}
	e.currentStage = EngineStageShuttingDown
	if e.scheduler != nil {
		e.scheduler.Stop()
	}

	var errs []error
	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			errs = append(errs, err)
		}
	}
	for _, hook := range e.shutdownHooks {
		if err := hook(); err != nil {
			errs = append(errs, err)
		}
	}

	e.logger.Info("engine shut down")
	return errors.Join(errs...)
}

// ReloadConfig re-reads the config file and applies what can change while
// running. Only the log level is live; other changes wait for a restart.
func (e *Engine) ReloadConfig(fs afero.Fs, path string) error {
	next, err := LoadApplicationConfig(fs, path)
	if err != nil {
		e.logger.Warn("config reload failed", "path", path, "err", err)
		return err
	}

	current := e.gameInstance.ApplicationConfig
	if e.logLevelOverride != "" {
		next.LogLevel = e.logLevelOverride
	}
	if next.Level() != core.GetLogLevel() {
		core.SetLogLevel(next.Level())
		e.logger.Info("log level changed", "level", next.LogLevel)
	}
	current.LogLevel = next.LogLevel

	if next.StepRate != current.StepRate || next.MaxStepsPerFrame != current.MaxStepsPerFrame {
		e.logger.Warn("step settings changed on disk, restart to apply", "step_rate", next.StepRate, "max_steps_per_frame", next.MaxStepsPerFrame)
	}
	return nil
}

func (e *Engine) ID() uuid.UUID {
	return e.id
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

func (e *Engine) Scheduler() *scheduler.Scheduler {
	return e.scheduler
}

func (e *Engine) Game() *Game {
	return e.gameInstance
}
