// Package config provides YAML-based game configuration loading and
// validation for the pong platform.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// GameConfig contains all tunable values for a game of pong.
// Units are arena units and arena units per tick.
type GameConfig struct {
	Arena    ArenaConfig    `yaml:"arena"`
	Ball     BallConfig     `yaml:"ball"`
	Paddles  PaddleConfig   `yaml:"paddles"`
	Player   PlayerConfig   `yaml:"player"`
	Opponent OpponentConfig `yaml:"opponent"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Input    InputConfig    `yaml:"input"`
}

// ArenaConfig defines the playfield size.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines the ball and its initial serve.
type BallConfig struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"` // Bounds random rebound/serve dy
	DX    float64 `yaml:"dx"`
	DY    float64 `yaml:"dy"`
}

// PaddleConfig defines the shape shared by both paddles.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Offset float64 `yaml:"offset"` // Distance from side wall
}

// PlayerConfig defines the human paddle.
type PlayerConfig struct {
	Speed float64 `yaml:"speed"`
}

// OpponentConfig defines the CPU paddle.
type OpponentConfig struct {
	Speed    float64 `yaml:"speed"`
	Deadzone float64 `yaml:"deadzone"`
}

// PhysicsConfig defines collision response.
type PhysicsConfig struct {
	HitSpeedup float64 `yaml:"hit_speedup"`
}

// InputConfig defines how terminal key repeats become press/release edges.
type InputConfig struct {
	KeyHoldTicks int `yaml:"key_hold_ticks"` // Ticks without a repeat before a key counts as released
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the config describes a playable game.
func (c GameConfig) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena must be positive, got %vx%v", ErrInvalid, c.Arena.Width, c.Arena.Height)
	case c.Paddles.Width <= 0 || c.Paddles.Height <= 0:
		return fmt.Errorf("%w: paddles must be positive, got %vx%v", ErrInvalid, c.Paddles.Width, c.Paddles.Height)
	case c.Paddles.Height > c.Arena.Height:
		return fmt.Errorf("%w: paddle height %v exceeds arena height %v", ErrInvalid, c.Paddles.Height, c.Arena.Height)
	case c.Paddles.Offset < 0 || 2*(c.Paddles.Offset+c.Paddles.Width) > c.Arena.Width:
		return fmt.Errorf("%w: paddle offset %v does not fit arena width %v", ErrInvalid, c.Paddles.Offset, c.Arena.Width)
	case c.Ball.Speed < 0:
		return fmt.Errorf("%w: ball speed must not be negative, got %v", ErrInvalid, c.Ball.Speed)
	case c.Ball.Size < 0:
		return fmt.Errorf("%w: ball size must not be negative, got %v", ErrInvalid, c.Ball.Size)
	case c.Player.Speed < 0 || c.Opponent.Speed < 0:
		return fmt.Errorf("%w: paddle speeds must not be negative", ErrInvalid)
	case c.Opponent.Deadzone < 0:
		return fmt.Errorf("%w: deadzone must not be negative, got %v", ErrInvalid, c.Opponent.Deadzone)
	case c.Physics.HitSpeedup <= 0:
		return fmt.Errorf("%w: hit_speedup must be positive, got %v", ErrInvalid, c.Physics.HitSpeedup)
	case c.Input.KeyHoldTicks < 1:
		return fmt.Errorf("%w: key_hold_ticks must be at least 1, got %d", ErrInvalid, c.Input.KeyHoldTicks)
	}
	return nil
}

// Params converts the config into simulation parameters.
func (c GameConfig) Params() pong.Params {
	return pong.Params{
		Arena:         pong.Arena{Width: c.Arena.Width, Height: c.Arena.Height},
		BallSize:      c.Ball.Size,
		BallSpeed:     c.Ball.Speed,
		BallVel:       pong.Vec2{X: c.Ball.DX, Y: c.Ball.DY},
		PaddleWidth:   c.Paddles.Width,
		PaddleHeight:  c.Paddles.Height,
		PaddleOffset:  c.Paddles.Offset,
		PlayerSpeed:   c.Player.Speed,
		OpponentSpeed: c.Opponent.Speed,
		Rules: pong.Rules{
			Deadzone:   c.Opponent.Deadzone,
			HitSpeedup: c.Physics.HitSpeedup,
		},
	}
}
