package core

import "fmt"

type Button uint16

// Mouse buttons, numbered the way MouseEvent.button numbers them.
const (
	BUTTON_MAIN Button = iota
	BUTTON_AUX
	BUTTON_SECONDARY
	BUTTON_FOURTH
	BUTTON_FIFTH
	BUTTON_MAX_BUTTONS
)

// ButtonFromDOM converts a MouseEvent.button value.
func ButtonFromDOM(n int) (Button, error) {
	if n < 0 || n >= int(BUTTON_MAX_BUTTONS) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownMouseButton, n)
	}
	return Button(n), nil
}

func (b Button) String() string {
	switch b {
	case BUTTON_MAIN:
		return "main"
	case BUTTON_AUX:
		return "aux"
	case BUTTON_SECONDARY:
		return "secondary"
	case BUTTON_FOURTH:
		return "fourth"
	case BUTTON_FIFTH:
		return "fifth"
	}
	return fmt.Sprintf("button(%d)", uint16(b))
}

// Key code definitions. Values follow the virtual-key table; only the keys
// the game reacts to are mapped, everything else is KEY_UNMAPPED.
type KeyCode uint16

const (
	KEY_UNMAPPED KeyCode = 0x00
	KEY_ESCAPE   KeyCode = 0x1B
	KEY_SPACE    KeyCode = 0x20
	KEY_LEFT     KeyCode = 0x25
	KEY_UP       KeyCode = 0x26
	KEY_RIGHT    KeyCode = 0x27
	KEY_DOWN     KeyCode = 0x28
	KEY_A        KeyCode = 0x41
	KEY_D        KeyCode = 0x44
	KEY_S        KeyCode = 0x53
	KEY_W        KeyCode = 0x57
	KEYS_MAX_KEYS
)

var domKeyCodes = map[string]KeyCode{
	"KeyW":       KEY_W,
	"KeyA":       KEY_A,
	"KeyS":       KEY_S,
	"KeyD":       KEY_D,
	"ArrowLeft":  KEY_LEFT,
	"ArrowRight": KEY_RIGHT,
	"ArrowUp":    KEY_UP,
	"ArrowDown":  KEY_DOWN,
	"Space":      KEY_SPACE,
	"Escape":     KEY_ESCAPE,
}

// KeyFromCode maps a KeyboardEvent.code string.
func KeyFromCode(code string) KeyCode {
	if k, ok := domKeyCodes[code]; ok {
		return k
	}
	return KEY_UNMAPPED
}

type KeyState uint8

const (
	KeyStatePressed KeyState = iota
	KeyStateReleased
)

func (s KeyState) String() string {
	if s == KeyStateReleased {
		return "released"
	}
	return "pressed"
}

type InputKind uint8

const (
	InputKindKeyboard InputKind = iota
	InputKindMouse
)

// InputEvent is a raw keyboard or mouse event as forwarded by the host.
type InputEvent struct {
	Kind  InputKind
	State KeyState

	// keyboard
	Key      KeyCode
	Repeated bool

	// mouse
	Button Button
	X      int32
	Y      int32
}

func NewKeyEvent(key KeyCode, state KeyState, repeated bool) InputEvent {
	return InputEvent{Kind: InputKindKeyboard, Key: key, State: state, Repeated: repeated}
}

func NewMouseEvent(button Button, state KeyState, x, y int32) InputEvent {
	return InputEvent{Kind: InputKindMouse, Button: button, State: state, X: x, Y: y}
}

// Mouse state structure
type MouseState struct {
	X       int32
	Y       int32
	Buttons [BUTTON_MAX_BUTTONS]bool // button states (pressed/released)
}

// Keyboard state structure
type KeyboardState struct {
	Keys [256]bool
}

// Input state structure that holds current and previous states for keyboard and mouse
type InputState struct {
	KeyboardCurrent  KeyboardState
	KeyboardPrevious KeyboardState
	MouseCurrent     MouseState
	MousePrevious    MouseState

	repeatedKey KeyCode
	hasRepeated bool
}

func NewInputState() *InputState {
	return &InputState{}
}

// Update copies current states to previous states. Called once per step
// before new events are applied.
func (s *InputState) Update() {
	s.KeyboardPrevious = s.KeyboardCurrent
	s.MousePrevious = s.MouseCurrent
}

// Apply folds one event into the current state.
func (s *InputState) Apply(e InputEvent) {
	switch e.Kind {
	case InputKindKeyboard:
		if e.State == KeyStatePressed {
			s.PressKey(e.Key, e.Repeated)
		} else {
			s.ReleaseKey(e.Key)
		}
	case InputKindMouse:
		s.MouseCurrent.X = e.X
		s.MouseCurrent.Y = e.Y
		if e.Button < BUTTON_MAX_BUTTONS {
			s.MouseCurrent.Buttons[e.Button] = e.State == KeyStatePressed
		}
	}
}

func (s *InputState) PressKey(key KeyCode, repeated bool) {
	s.KeyboardCurrent.Keys[key] = true
	s.repeatedKey = key
	s.hasRepeated = repeated
}

func (s *InputState) ReleaseKey(key KeyCode) {
	s.KeyboardCurrent.Keys[key] = false
}

// RepeatedKey returns the key held down long enough to auto-repeat, if the
// last press was a repeat.
func (s *InputState) RepeatedKey() (KeyCode, bool) {
	return s.repeatedKey, s.hasRepeated
}

// keyboard input
func (s *InputState) IsKeyDown(key KeyCode) bool {
	return s.KeyboardCurrent.Keys[key]
}

func (s *InputState) IsKeyUp(key KeyCode) bool {
	return !s.KeyboardCurrent.Keys[key]
}

func (s *InputState) WasKeyDown(key KeyCode) bool {
	return s.KeyboardPrevious.Keys[key]
}

func (s *InputState) WasKeyUp(key KeyCode) bool {
	return !s.KeyboardPrevious.Keys[key]
}

// mouse input
func (s *InputState) IsButtonDown(button Button) bool {
	return button < BUTTON_MAX_BUTTONS && s.MouseCurrent.Buttons[button]
}

func (s *InputState) IsButtonUp(button Button) bool {
	return !s.IsButtonDown(button)
}

func (s *InputState) WasButtonDown(button Button) bool {
	return button < BUTTON_MAX_BUTTONS && s.MousePrevious.Buttons[button]
}

func (s *InputState) MousePosition() (int32, int32) {
	return s.MouseCurrent.X, s.MouseCurrent.Y
}

// InputSink receives raw events from the host. Down variants record the
// event as pressed, up variants as released.
type InputSink interface {
	LogMouseDownEvent(e InputEvent)
	LogMouseUpEvent(e InputEvent)
	LogKeyDownEvent(e InputEvent)
	LogKeyUpEvent(e InputEvent)
}
