// Package scheduler drives a simulation at a fixed nominal rate from host
// frame callbacks that arrive at whatever rate the display refreshes.
package scheduler

import (
	"github.com/google/uuid"
	"github.com/spaghettifunk/wasm-webgl-demo/engine/core"
	"github.com/spaghettifunk/wasm-webgl-demo/engine/math"
)

// roundingULPs bounds the float error of elapsed, which is the difference
// of two timestamps no larger than now.
const roundingULPs = 4

// Stats is a snapshot of what the scheduler has observed so far.
type Stats struct {
	Frames         uint64
	Steps          uint64
	Skipped        uint64
	Remainder      float64
	FPS            float64
	StepsPerSecond float64
	FrameTime      float64
}

type Scheduler struct {
	id           uuid.UUID
	source       FrameSource
	sim          Simulation
	clock        core.TimeSource
	stepDuration float64
	maxSteps     int

	lastStep  float64
	lastFrame float64
	handle    Handle
	armed     bool

	stats   Stats
	metrics *core.Metrics
	logger  *core.Logger
}

func New(source FrameSource, sim Simulation, opts ...Option) (*Scheduler, error) {
	if source == nil {
		return nil, core.ErrNilFrameSource
	}
	if sim == nil {
		return nil, core.ErrNilSimulation
	}

	cfg := &config{
		stepRate: DefaultStepRate,
		maxSteps: DefaultMaxStepsPerFrame,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	id := uuid.New()
	if cfg.clock == nil {
		cfg.clock = core.NewClock()
	}
	if cfg.logger == nil {
		cfg.logger = core.NewLogger("Scheduler ⏱️ ", "id", id.String())
	}

	return &Scheduler{
		id:           id,
		source:       source,
		sim:          sim,
		clock:        cfg.clock,
		stepDuration: 1000.0 / cfg.stepRate,
		maxSteps:     cfg.maxSteps,
		metrics:      core.NewMetrics(),
		logger:       cfg.logger,
	}, nil
}

// Start seeds the step clock and arms the loop.
func (s *Scheduler) Start() error {
	if s.armed {
		return core.ErrSchedulerRunning
	}
	now := s.clock.Now()
	s.lastStep = now
	s.lastFrame = now
	s.armed = true
	s.handle = s.source.RequestFrame(s.onFrame)
	s.logger.Debug("scheduler started", "step_ms", s.stepDuration, "max_steps", s.maxSteps)
	return nil
}

// Stop cancels the pending frame request. The scheduler keeps its state and
// can be started again.
func (s *Scheduler) Stop() {
	if !s.armed {
		return
	}
	s.armed = false
	s.source.CancelFrame(s.handle)
	s.logger.Debug("scheduler stopped", "frames", s.stats.Frames, "steps", s.stats.Steps)
}

func (s *Scheduler) onFrame(now float64) error {
	if !s.armed {
		return nil
	}
	// Re-arm first so a failing step cannot end the loop.
	s.handle = s.source.RequestFrame(s.onFrame)

	frameMS := now - s.lastFrame
	s.lastFrame = now
	s.stats.Frames++

	elapsed := now - s.lastStep
	tolerance := math.ULPs(max(now, s.stepDuration), roundingULPs)
	steps, remainder := math.StepsAndRemainder(elapsed, s.stepDuration, tolerance)
	if steps == 0 {
		s.stats.Skipped++
		s.observe(frameMS, 0)
		return nil
	}
	steps = math.Clamp(steps, 1, s.maxSteps)

	fired := 0
	var err error
	for fired < steps && err == nil {
		fired++
		s.stats.Steps++
		err = s.sim.Step()
	}

	s.lastStep = now - remainder
	s.stats.Remainder = remainder
	s.observe(frameMS, fired)
	return err
}

func (s *Scheduler) observe(frameMS float64, steps int) {
	if !s.metrics.Update(frameMS, steps) {
		return
	}
	s.stats.FPS, s.stats.FrameTime = s.metrics.Frame()
	s.stats.StepsPerSecond = s.metrics.StepsPerSecond()
	s.logger.Debug("frame stats", "fps", s.stats.FPS, "frame_ms", s.stats.FrameTime, "steps_per_sec", s.stats.StepsPerSecond)
}

func (s *Scheduler) ID() uuid.UUID {
	return s.id
}

func (s *Scheduler) Running() bool {
	return s.armed
}

// StepDuration is the fixed step length in milliseconds.
func (s *Scheduler) StepDuration() float64 {
	return s.stepDuration
}

// LastStep is the re-based timestamp of the most recent step.
func (s *Scheduler) LastStep() float64 {
	return s.lastStep
}

func (s *Scheduler) Stats() Stats {
	return s.stats
}
