package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultKeyHoldTicks is how long a terminal key counts as held after its
// last press or repeat (~133ms at 60 ticks per second).
const DefaultKeyHoldTicks = 8

// Default returns the built-in configuration: the classic 800x400 table.
func Default() GameConfig {
	return GameConfig{
		Arena: ArenaConfig{
			Width:  pong.DefaultArenaWidth,
			Height: pong.DefaultArenaHeight,
		},
		Ball: BallConfig{
			Size:  pong.DefaultBallSize,
			Speed: pong.DefaultBallSpeed,
			DX:    pong.DefaultBallSpeed,
			DY:    pong.DefaultBallSpeed,
		},
		Paddles: PaddleConfig{
			Width:  pong.DefaultPaddleWidth,
			Height: pong.DefaultPaddleHeight,
			Offset: pong.DefaultPaddleOffset,
		},
		Player: PlayerConfig{
			Speed: pong.DefaultPlayerSpeed,
		},
		Opponent: OpponentConfig{
			Speed:    pong.DefaultOpponentSpeed,
			Deadzone: pong.DefaultDeadzone,
		},
		Physics: PhysicsConfig{
			HitSpeedup: pong.DefaultHitSpeedup,
		},
		Input: InputConfig{
			KeyHoldTicks: DefaultKeyHoldTicks,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPongYAML
}
