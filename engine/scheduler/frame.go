package scheduler

// Handle identifies a pending frame request.
type Handle uint64

// FrameCallback receives the host timestamp in milliseconds. An error
// returned from it is surfaced to the host's error handling.
type FrameCallback func(now float64) error

// FrameSource is the host's display-refresh callback mechanism. Each
// request is delivered at most once; only the latest pending request
// matters.
type FrameSource interface {
	RequestFrame(cb FrameCallback) Handle
	CancelFrame(h Handle)
}

// Simulation advances the game by exactly one fixed-size tick.
type Simulation interface {
	Step() error
}

// SimulationFunc adapts a plain function to Simulation.
type SimulationFunc func() error

func (f SimulationFunc) Step() error {
	return f()
}
