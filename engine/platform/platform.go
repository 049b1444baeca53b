//go:build !js

package platform

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/wasm-webgl-demo/engine/core"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

// Platform owns the native window and turns its key and mouse callbacks
// into events for the sink.
type Platform struct {
	Window *glfw.Window

	sink    core.InputSink
	cursorX int32
	cursorY int32
}

func New(sink core.InputSink) *Platform {
	return &Platform{
		Window: nil,
		sink:   sink,
	}
}

func (p *Platform) Startup(applicationName string, x uint32, y uint32, width uint32, height uint32) error {
	if err := glfw.Init(); err != nil {
		core.LogError("failed to initialize glfw: %s", err)
		return err
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(int(width), int(height), applicationName, nil, nil)
	if err != nil {
		core.LogError("failed to create window: %s", err)
		glfw.Terminate()
		return err
	}
	p.Window = window

	p.Window.SetKeyCallback(p.keyCallback)
	p.Window.SetMouseButtonCallback(p.mouseButtonCallback)
	p.Window.SetCursorPosCallback(p.cursorPosCallback)
	p.Window.SetPos(int(x), int(y))
	p.Window.Show()
	p.Window.Focus()

	core.LogInfo("window %q created (%dx%d)", applicationName, width, height)
	return nil
}

func (p *Platform) Shutdown() error {
	if p.Window != nil {
		p.Window.Destroy()
		p.Window = nil
	}
	glfw.Terminate()
	return nil
}

// PumpMessages processes pending window events. It returns false once the
// window has been asked to close.
func (p *Platform) PumpMessages() bool {
	if p.Window == nil {
		return false
	}
	glfw.PollEvents()
	return !p.Window.ShouldClose()
}

// GetAbsoluteTime returns seconds since glfw was initialized.
func GetAbsoluteTime() float64 {
	return glfw.GetTime()
}

// WindowClock reads the glfw timer in milliseconds.
type WindowClock struct{}

func (WindowClock) Now() float64 {
	return GetAbsoluteTime() * 1000
}

func (p *Platform) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Release {
		w.SetShouldClose(true)
		return
	}

	code := keyFromGLFW(key)
	switch action {
	case glfw.Press, glfw.Repeat:
		p.sink.LogKeyDownEvent(core.NewKeyEvent(code, core.KeyStatePressed, action == glfw.Repeat))
	case glfw.Release:
		p.sink.LogKeyUpEvent(core.NewKeyEvent(code, core.KeyStateReleased, false))
	}
}

func (p *Platform) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b, ok := buttonFromGLFW(button)
	if !ok {
		core.LogDebug("ignoring mouse button %d", button)
		return
	}
	switch action {
	case glfw.Press:
		p.sink.LogMouseDownEvent(core.NewMouseEvent(b, core.KeyStatePressed, p.cursorX, p.cursorY))
	case glfw.Release:
		p.sink.LogMouseUpEvent(core.NewMouseEvent(b, core.KeyStateReleased, p.cursorX, p.cursorY))
	}
}

func (p *Platform) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	p.cursorX = int32(xpos)
	p.cursorY = int32(ypos)
}

func keyFromGLFW(k glfw.Key) core.KeyCode {
	switch k {
	case glfw.KeyW:
		return core.KEY_W
	case glfw.KeyA:
		return core.KEY_A
	case glfw.KeyS:
		return core.KEY_S
	case glfw.KeyD:
		return core.KEY_D
	case glfw.KeyUp:
		return core.KEY_UP
	case glfw.KeyLeft:
		return core.KEY_LEFT
	case glfw.KeyRight:
		return core.KEY_RIGHT
	case glfw.KeyDown:
		return core.KEY_DOWN
	case glfw.KeySpace:
		return core.KEY_SPACE
	case glfw.KeyEscape:
		return core.KEY_ESCAPE
	}
	return core.KEY_UNMAPPED
}

func buttonFromGLFW(b glfw.MouseButton) (core.Button, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return core.BUTTON_MAIN, true
	case glfw.MouseButtonMiddle:
		return core.BUTTON_AUX, true
	case glfw.MouseButtonRight:
		return core.BUTTON_SECONDARY, true
	case glfw.MouseButton4:
		return core.BUTTON_FOURTH, true
	case glfw.MouseButton5:
		return core.BUTTON_FIFTH, true
	}
	return 0, false
}
