//go:build js && wasm

package platform

import (
	"context"
	"syscall/js"

	"github.com/spaghettifunk/wasm-webgl-demo/engine/core"
	"github.com/spaghettifunk/wasm-webgl-demo/engine/scheduler"
)

// AnimationFrameSource delivers frames through window.requestAnimationFrame.
// Timestamps are the DOMHighResTimeStamp handed to the callback.
type AnimationFrameSource struct {
	fn      js.Func
	handle  scheduler.Handle
	pending scheduler.FrameCallback
	onError func(error)
}

func NewAnimationFrameSource() *AnimationFrameSource {
	src := &AnimationFrameSource{}
	src.fn = js.FuncOf(src.callback)
	return src
}

func (a *AnimationFrameSource) RequestFrame(cb scheduler.FrameCallback) scheduler.Handle {
	a.pending = cb
	a.handle = scheduler.Handle(js.Global().Call("requestAnimationFrame", a.fn).Int())
	return a.handle
}

func (a *AnimationFrameSource) CancelFrame(h scheduler.Handle) {
	if h != a.handle || a.pending == nil {
		return
	}
	js.Global().Call("cancelAnimationFrame", int(h))
	a.pending = nil
}

func (a *AnimationFrameSource) SetErrorHandler(fn func(error)) {
	a.onError = fn
}

// Run parks the calling goroutine so the wasm module stays alive while the
// browser drives frames. It returns when ctx is done.
func (a *AnimationFrameSource) Run(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

// Release frees the js callback. No frames are delivered afterwards.
func (a *AnimationFrameSource) Release() {
	a.CancelFrame(a.handle)
	a.fn.Release()
}

func (a *AnimationFrameSource) callback(this js.Value, args []js.Value) interface{} {
	cb := a.pending
	if cb == nil {
		return nil
	}
	a.pending = nil

	now := args[0].Float()
	if err := cb(now); err != nil {
		js.Global().Get("console").Call("error", err.Error())
		if a.onError != nil {
			a.onError(err)
		}
	}
	return nil
}

// PerformanceClock reads performance.now(), the time base shared with
// requestAnimationFrame timestamps.
type PerformanceClock struct{}

func (PerformanceClock) Now() float64 {
	return js.Global().Get("performance").Call("now").Float()
}

var _ core.TimeSource = PerformanceClock{}
