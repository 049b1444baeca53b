//go:build js && wasm

package platform

import (
	"fmt"
	"syscall/js"

	"github.com/spaghettifunk/wasm-webgl-demo/engine/core"
)

type listener struct {
	event string
	fn    js.Func
}

// CanvasBinding forwards mouse and keyboard events from a canvas element
// to an input sink.
type CanvasBinding struct {
	canvas    js.Value
	listeners []listener
}

// BindCanvas looks up the canvas by id, focuses it and installs listeners
// for mousedown, mouseup, keydown and keyup. Every listener stops the event
// from propagating before forwarding it.
func BindCanvas(canvasID string, sink core.InputSink) (*CanvasBinding, error) {
	canvas := js.Global().Get("document").Call("getElementById", canvasID)
	if canvas.IsNull() || canvas.IsUndefined() {
		return nil, fmt.Errorf("canvas %q not found", canvasID)
	}

	b := &CanvasBinding{canvas: canvas}
	canvas.Call("focus")

	b.listen("mousedown", func(e js.Value) {
		if ev, ok := mouseEventFromJS(e, core.KeyStatePressed); ok {
			sink.LogMouseDownEvent(ev)
		}
	})
	b.listen("mouseup", func(e js.Value) {
		if ev, ok := mouseEventFromJS(e, core.KeyStateReleased); ok {
			sink.LogMouseUpEvent(ev)
		}
	})
	b.listen("keydown", func(e js.Value) {
		sink.LogKeyDownEvent(keyEventFromJS(e, core.KeyStatePressed))
	})
	b.listen("keyup", func(e js.Value) {
		sink.LogKeyUpEvent(keyEventFromJS(e, core.KeyStateReleased))
	})

	core.LogInfo("input bound to canvas #%s", canvasID)
	return b, nil
}

func (b *CanvasBinding) listen(event string, handle func(e js.Value)) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		e := args[0]
		e.Call("stopPropagation")
		handle(e)
		return nil
	})
	b.canvas.Call("addEventListener", event, fn)
	b.listeners = append(b.listeners, listener{event: event, fn: fn})
}

// Release removes every listener installed by BindCanvas.
func (b *CanvasBinding) Release() {
	for _, l := range b.listeners {
		b.canvas.Call("removeEventListener", l.event, l.fn)
		l.fn.Release()
	}
	b.listeners = nil
}

func mouseEventFromJS(e js.Value, state core.KeyState) (core.InputEvent, bool) {
	button, err := core.ButtonFromDOM(e.Get("button").Int())
	if err != nil {
		core.LogWarn("dropping mouse event: %s", err)
		return core.InputEvent{}, false
	}
	return core.NewMouseEvent(button, state, int32(e.Get("clientX").Int()), int32(e.Get("clientY").Int())), true
}

func keyEventFromJS(e js.Value, state core.KeyState) core.InputEvent {
	return core.NewKeyEvent(core.KeyFromCode(e.Get("code").String()), state, e.Get("repeat").Bool())
}
