package scheduler

import (
	"fmt"

	"github.com/spaghettifunk/wasm-webgl-demo/engine/core"
)

const (
	// DefaultStepRate is the nominal number of simulation steps per second.
	DefaultStepRate = 60
	// DefaultMaxStepsPerFrame keeps the one-step-per-callback guarantee.
	DefaultMaxStepsPerFrame = 1
)

type config struct {
	stepRate float64
	maxSteps int
	clock    core.TimeSource
	logger   *core.Logger
}

type Option func(*config) error

// WithStepRate sets how many steps per second the simulation advances.
func WithStepRate(hz float64) Option {
	return func(c *config) error {
		if hz <= 0 {
			return fmt.Errorf("%w: %v", core.ErrInvalidStepRate, hz)
		}
		c.stepRate = hz
		return nil
	}
}

// WithMaxStepsPerFrame allows up to n steps on a single late callback.
// The carried remainder is the same as with n == 1.
func WithMaxStepsPerFrame(n int) Option {
	return func(c *config) error {
		if n < 1 {
			return fmt.Errorf("%w: max steps per frame %d", core.ErrInvalidConfig, n)
		}
		c.maxSteps = n
		return nil
	}
}

// WithClock replaces the wall clock used to seed the first step timestamp.
func WithClock(ts core.TimeSource) Option {
	return func(c *config) error {
		if ts != nil {
			c.clock = ts
		}
		return nil
	}
}

func WithLogger(l *core.Logger) Option {
	return func(c *config) error {
		if l != nil {
			c.logger = l
		}
		return nil
	}
}
