package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// MoveBall advances the ball by one tick of velocity.
func MoveBall(b Ball) Ball {
	b.Pos.X += b.Vel.X
	b.Pos.Y += b.Vel.Y
	return b
}

// ResolveWalls reflects dy when the ball touches or passes the top or
// bottom wall. The ball is pulled back onto the wall it crossed so y stays
// within [0, arena.Height].
func ResolveWalls(b Ball, arena Arena) (Ball, bool) {
	if b.Pos.Y > 0 && b.Pos.Y < arena.Height {
		return b, false
	}
	b.Vel.Y = -b.Vel.Y
	b.Pos.Y = core.ClampF(b.Pos.Y, 0, arena.Height)
	return b, true
}

// ResolvePaddles bounces the ball off whichever paddle contains it.
// dx is reversed and scaled by speedup, dy is re-rolled within the base
// speed. Overlapping both paddles still applies a single rebound, credited
// to the player's paddle.
func ResolvePaddles(b Ball, player, opponent Paddle, speedup float64, rng Random) (Ball, Side, bool) {
	var side Side
	switch {
	case player.Contains(b.Pos):
		side = SidePlayer
	case opponent.Contains(b.Pos):
		side = SideOpponent
	default:
		return b, 0, false
	}

	b.Vel.X *= -speedup
	b.Vel.Y = rng.Uniform(-b.Speed, b.Speed)
	return b, side, true
}

// ResolveScoring awards a point when the ball reaches a side wall and serves
// a new ball from the centre. Left wall scores for the opponent, right wall
// for the player; a single call never scores both.
func ResolveScoring(b Ball, score Score, arena Arena, rng Random) (Ball, Score, Side, bool) {
	var side Side
	switch {
	case b.Pos.X <= 0:
		score.Opponent++
		side = SideOpponent
	case b.Pos.X >= arena.Width:
		score.Player++
		side = SidePlayer
	default:
		return b, score, 0, false
	}
	return Serve(b, arena, rng), score, side, true
}

// Serve recentres the ball, reverses its horizontal direction and picks a
// fresh dy within the base speed. |dx| is kept, including any speed-up.
func Serve(b Ball, arena Arena, rng Random) Ball {
	b.Pos = arena.Center()
	b.Vel.X = -b.Vel.X
	b.Vel.Y = rng.Uniform(-b.Speed, b.Speed)
	return b
}
