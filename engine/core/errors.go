package core

import (
	"errors"
)

var (
	ErrSchedulerRunning   = errors.New("scheduler already running")
	ErrNilFrameSource     = errors.New("frame source is nil")
	ErrNilSimulation      = errors.New("simulation is nil")
	ErrInvalidStepRate    = errors.New("step rate must be greater than zero")
	ErrQueueFull          = errors.New("queue is full")
	ErrQueueEmpty         = errors.New("queue is empty")
	ErrUnknownMouseButton = errors.New("unknown mouse button")
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrEngineStage        = errors.New("engine is not in the expected stage")
)
