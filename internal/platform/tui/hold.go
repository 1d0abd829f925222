package tui

import "github.com/vovakirdan/tui-pong/internal/core"

// DefaultHoldTicks is used when a KeyHold is created with a non-positive timeout.
const DefaultHoldTicks = 8

// paddleKeys fixes the order in which expired keys are released.
var paddleKeys = [...]core.Key{core.KeyUp, core.KeyDown}

// KeyHold turns the press-only key stream of a terminal into press and
// release edges. A key counts as held while presses or auto-repeats keep
// arriving; once none has arrived for the timeout, it is released.
type KeyHold struct {
	timeout   int
	remaining map[core.Key]int
}

// NewKeyHold creates a KeyHold that releases keys after timeout idle ticks.
func NewKeyHold(timeout int) *KeyHold {
	if timeout <= 0 {
		timeout = DefaultHoldTicks
	}
	return &KeyHold{
		timeout:   timeout,
		remaining: make(map[core.Key]int, len(paddleKeys)),
	}
}

// Press records a press or repeat of k. It returns the press edge the first
// time k goes down, and nothing for repeats of a held key.
func (h *KeyHold) Press(k core.Key) []core.KeyEvent {
	if k == core.KeyNone {
		return nil
	}
	_, held := h.remaining[k]
	h.remaining[k] = h.timeout
	if held {
		return nil
	}
	return []core.KeyEvent{core.Press(k)}
}

// Tick ages every held key by one tick and returns release edges for the
// keys that timed out.
func (h *KeyHold) Tick() []core.KeyEvent {
	var released []core.KeyEvent
	for _, k := range paddleKeys {
		n, held := h.remaining[k]
		if !held {
			continue
		}
		n--
		if n > 0 {
			h.remaining[k] = n
			continue
		}
		delete(h.remaining, k)
		released = append(released, core.Release(k))
	}
	return released
}

// Held reports whether k is currently held.
func (h *KeyHold) Held(k core.Key) bool {
	_, held := h.remaining[k]
	return held
}

// Reset forgets every held key without emitting releases.
func (h *KeyHold) Reset() {
	clear(h.remaining)
}
