// Package loop paces frames for hosts without a display refresh callback.
package loop

import (
	"context"
	"time"

	"github.com/spaghettifunk/wasm-webgl-demo/engine/core"
	"github.com/spaghettifunk/wasm-webgl-demo/engine/scheduler"
)

// Source delivers frames from a plain loop on the calling goroutine,
// paced by a ticker at RefreshRate. It stands in for the display refresh
// on native and headless hosts. It is not safe for concurrent use: stop it
// by cancelling the context given to Run.
type Source struct {
	clock       core.TimeSource
	refreshRate float64

	// Pump runs before every frame. Returning false ends the loop.
	Pump func() bool

	next    scheduler.Handle
	handle  scheduler.Handle
	pending scheduler.FrameCallback
	frames  uint64
	onError func(error)
}

// NewSource creates a loop source. A refreshRate of zero delivers
// frames back to back without waiting.
func NewSource(clock core.TimeSource, refreshRate float64) *Source {
	if clock == nil {
		clock = core.NewClock()
	}
	return &Source{
		clock:       clock,
		refreshRate: refreshRate,
	}
}

func (l *Source) RequestFrame(cb scheduler.FrameCallback) scheduler.Handle {
	l.next++
	l.handle = l.next
	l.pending = cb
	return l.handle
}

func (l *Source) CancelFrame(h scheduler.Handle) {
	if h == l.handle {
		l.pending = nil
	}
}

// SetErrorHandler receives errors returned by frame callbacks. Without a
// handler the first error ends Run.
func (l *Source) SetErrorHandler(fn func(error)) {
	l.onError = fn
}

// Frames is the number of frames delivered so far.
func (l *Source) Frames() uint64 {
	return l.frames
}

// Run delivers frames until nothing is pending, the pump asks to quit or
// ctx is done.
func (l *Source) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if l.refreshRate > 0 {
		ticker := time.NewTicker(time.Duration(float64(time.Second) / l.refreshRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	for l.pending != nil {
		if ctx.Err() != nil {
			return nil
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-tick:
			}
		}

		if l.Pump != nil && !l.Pump() {
			return nil
		}

		// the pump may have cancelled the request
		cb := l.pending
		if cb == nil {
			return nil
		}
		l.pending = nil
		l.frames++

		if err := cb(l.clock.Now()); err != nil {
			if l.onError == nil {
				return err
			}
			l.onError(err)
		}
	}
	return nil
}
