package pong

import "math"

// Step advances the game by one tick and returns the new state together with
// the events that happened during it. A stopped game is returned unchanged.
//
// Paddles move before the ball so collisions test against this tick's
// paddle positions. The CPU decides from the ball's pre-move position.
func Step(s GameState, rules Rules, rng Random) (GameState, []Event) {
	if !s.Running {
		return s, nil
	}

	var events []Event

	s.Player = MovePaddle(s.Player, s.Arena)
	s.Opponent.DY = OpponentDY(s.Opponent, s.Ball.Pos.Y, rules.Deadzone)
	s.Opponent = MovePaddle(s.Opponent, s.Arena)

	s.Ball = MoveBall(s.Ball)

	var bounced bool
	if s.Ball, bounced = ResolveWalls(s.Ball, s.Arena); bounced {
		events = append(events, WallBounce{})
	}

	var (
		side Side
		hit  bool
	)
	if s.Ball, side, hit = ResolvePaddles(s.Ball, s.Player, s.Opponent, rules.HitSpeedup, rng); hit {
		events = append(events, PaddleHit{Side: side, Speed: math.Abs(s.Ball.Vel.X), Base: s.Ball.Speed})
	}

	var scored bool
	if s.Ball, s.Score, side, scored = ResolveScoring(s.Ball, s.Score, s.Arena, rng); scored {
		events = append(events, Scored{Side: side, Score: s.Score})
	}

	return s, events
}
