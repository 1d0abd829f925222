package core

// Key is a semantic paddle key, abstracted from physical key presses.
// Platforms map their own key codes (Bubble Tea strings, Ebiten keys) onto it.
type Key int

const (
	KeyNone Key = iota
	KeyUp       // W, Up arrow
	KeyDown     // S, Down arrow
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// KeyEvent is a discrete edge: a paddle key was pressed or released.
type KeyEvent struct {
	Key     Key
	Pressed bool
}

// Press returns the pressed edge for k.
func Press(k Key) KeyEvent {
	return KeyEvent{Key: k, Pressed: true}
}

// Release returns the released edge for k.
func Release(k Key) KeyEvent {
	return KeyEvent{Key: k, Pressed: false}
}
