package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// MovePaddle applies the paddle's commanded velocity and clamps it to
// [0, arena.Height - p.Height].
func MovePaddle(p Paddle, arena Arena) Paddle {
	p.Pos.Y = core.ClampF(p.Pos.Y+p.DY, 0, arena.Height-p.Height)
	return p
}

// ApplyInput turns a key edge into the player's commanded velocity.
// Presses are last-wins; a release only stops the paddle when it matches
// the direction currently being travelled.
func ApplyInput(p Paddle, ev core.KeyEvent) Paddle {
	switch ev.Key {
	case core.KeyUp:
		if ev.Pressed {
			p.DY = -p.Speed
		} else if p.DY < 0 {
			p.DY = 0
		}
	case core.KeyDown:
		if ev.Pressed {
			p.DY = p.Speed
		} else if p.DY > 0 {
			p.DY = 0
		}
	}
	return p
}
