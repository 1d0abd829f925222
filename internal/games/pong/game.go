// Package pong implements Pong against a CPU opponent.
// The player controls the left paddle, the CPU controls the right paddle.
//
// Everything in this package is pure arithmetic over GameState values.
// Step advances one tick; Controller owns a state and wires it to the
// renderer, score display and input source supplied by a platform.
package pong

import "fmt"

// Default game settings, in arena units per tick.
const (
	DefaultArenaWidth    = 800
	DefaultArenaHeight   = 400
	DefaultBallSize      = 10
	DefaultBallSpeed     = 5
	DefaultPaddleWidth   = 10
	DefaultPaddleHeight  = 80
	DefaultPaddleOffset  = 50 // Distance from side wall
	DefaultPlayerSpeed   = 8
	DefaultOpponentSpeed = 6
	DefaultDeadzone      = 10
	DefaultHitSpeedup    = 1.1
)

// Vec2 is a point or velocity in arena units.
type Vec2 struct {
	X, Y float64
}

// Side identifies one half of the table.
type Side int

const (
	SidePlayer Side = iota
	SideOpponent
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideOpponent:
		return "opponent"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Arena is the playfield. The origin is the top-left corner, y grows down.
type Arena struct {
	Width  float64
	Height float64
}

// Center returns the middle of the arena.
func (a Arena) Center() Vec2 {
	return Vec2{X: a.Width / 2, Y: a.Height / 2}
}

// Ball is treated as a point for collisions; Size is its drawing radius.
type Ball struct {
	Pos   Vec2
	Vel   Vec2    // dx, dy per tick
	Size  float64 // Radius
	Speed float64 // Base speed; bounds the random rebound dy
}

// Paddle is an axis-aligned rectangle that only moves vertically.
type Paddle struct {
	Pos    Vec2 // Top-left corner
	Width  float64
	Height float64
	DY     float64 // Commanded vertical velocity
	Speed  float64
}

// CenterY returns the vertical middle of the paddle.
func (p Paddle) CenterY() float64 {
	return p.Pos.Y + p.Height/2
}

// Contains reports whether pt lies on or inside the paddle rectangle.
func (p Paddle) Contains(pt Vec2) bool {
	return pt.X >= p.Pos.X && pt.X <= p.Pos.X+p.Width &&
		pt.Y >= p.Pos.Y && pt.Y <= p.Pos.Y+p.Height
}

// Score is the pair of points won by each side.
type Score struct {
	Player   int
	Opponent int
}

func (s Score) String() string {
	return fmt.Sprintf("%d-%d", s.Player, s.Opponent)
}

// GameState is everything a tick reads and writes.
// Renderers receive it by value and must treat it as read-only.
type GameState struct {
	Arena    Arena
	Ball     Ball
	Player   Paddle
	Opponent Paddle
	Score    Score
	Running  bool
}

// Rules are the tuning values consulted while stepping.
type Rules struct {
	Deadzone   float64 // CPU tolerance band around the ball
	HitSpeedup float64 // |dx| multiplier on every paddle hit
}

// Params describe a fresh game.
type Params struct {
	Arena         Arena
	BallSize      float64
	BallSpeed     float64
	BallVel       Vec2 // Initial and post-restart velocity
	PaddleWidth   float64
	PaddleHeight  float64
	PaddleOffset  float64
	PlayerSpeed   float64
	OpponentSpeed float64
	Rules         Rules
}

// DefaultParams returns the classic 800x400 table.
func DefaultParams() Params {
	return Params{
		Arena:         Arena{Width: DefaultArenaWidth, Height: DefaultArenaHeight},
		BallSize:      DefaultBallSize,
		BallSpeed:     DefaultBallSpeed,
		BallVel:       Vec2{X: DefaultBallSpeed, Y: DefaultBallSpeed},
		PaddleWidth:   DefaultPaddleWidth,
		PaddleHeight:  DefaultPaddleHeight,
		PaddleOffset:  DefaultPaddleOffset,
		PlayerSpeed:   DefaultPlayerSpeed,
		OpponentSpeed: DefaultOpponentSpeed,
		Rules: Rules{
			Deadzone:   DefaultDeadzone,
			HitSpeedup: DefaultHitSpeedup,
		},
	}
}

// NewState builds the initial, not yet running, state: ball in the centre,
// both paddles vertically centred and zero score.
func NewState(p Params) GameState {
	paddleY := p.Arena.Height/2 - p.PaddleHeight/2

	return GameState{
		Arena: p.Arena,
		Ball: Ball{
			Pos:   p.Arena.Center(),
			Vel:   p.BallVel,
			Size:  p.BallSize,
			Speed: p.BallSpeed,
		},
		Player: Paddle{
			Pos:    Vec2{X: p.PaddleOffset, Y: paddleY},
			Width:  p.PaddleWidth,
			Height: p.PaddleHeight,
			Speed:  p.PlayerSpeed,
		},
		Opponent: Paddle{
			Pos:    Vec2{X: p.Arena.Width - p.PaddleOffset - p.PaddleWidth, Y: paddleY},
			Width:  p.PaddleWidth,
			Height: p.PaddleHeight,
			Speed:  p.OpponentSpeed,
		},
	}
}
