package pong

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestMoveBall(t *testing.T) {
	b := Ball{Pos: Vec2{X: 400, Y: 200}, Vel: Vec2{X: 5, Y: 5}}
	got := MoveBall(b)
	if got.Pos != (Vec2{X: 405, Y: 205}) {
		t.Errorf("MoveBall pos = %+v, expected (405, 205)", got.Pos)
	}
	if got.Vel != b.Vel {
		t.Errorf("MoveBall changed velocity to %+v", got.Vel)
	}
}

func TestResolveWalls(t *testing.T) {
	arena := Arena{Width: 800, Height: 400}

	tests := []struct {
		name       string
		y, dy      float64
		wantY      float64
		wantDY     float64
		wantBounce bool
	}{
		{"open field", 200, 5, 200, 5, false},
		{"touch top", 0, -5, 0, 5, true},
		{"past top", -3, -5, 0, 5, true},
		{"touch bottom", 400, 5, 400, -5, true},
		{"past bottom", 404, 5, 400, -5, true},
		{"near top", 0.5, -5, 0.5, -5, false},
		{"near bottom", 399.5, 5, 399.5, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Ball{Pos: Vec2{X: 300, Y: tc.y}, Vel: Vec2{X: 5, Y: tc.dy}}
			got, bounced := ResolveWalls(b, arena)
			if bounced != tc.wantBounce {
				t.Errorf("bounced = %v, expected %v", bounced, tc.wantBounce)
			}
			if got.Pos.Y != tc.wantY {
				t.Errorf("y = %v, expected %v", got.Pos.Y, tc.wantY)
			}
			if got.Vel.Y != tc.wantDY {
				t.Errorf("dy = %v, expected %v", got.Vel.Y, tc.wantDY)
			}
			if got.Pos.Y < 0 || got.Pos.Y > arena.Height {
				t.Errorf("y = %v escaped [0, %v]", got.Pos.Y, arena.Height)
			}
		})
	}
}

func TestResolvePaddlesHit(t *testing.T) {
	player := Paddle{Pos: Vec2{X: 50, Y: 160}, Width: 10, Height: 80}
	opponent := Paddle{Pos: Vec2{X: 740, Y: 160}, Width: 10, Height: 80}

	tests := []struct {
		name     string
		pos      Vec2
		dx       float64
		wantSide Side
	}{
		{"player face", Vec2{X: 60, Y: 200}, -5, SidePlayer},
		{"player back edge", Vec2{X: 50, Y: 200}, -5, SidePlayer},
		{"player top corner", Vec2{X: 55, Y: 160}, -5, SidePlayer},
		{"player bottom corner", Vec2{X: 55, Y: 240}, -5, SidePlayer},
		{"opponent face", Vec2{X: 740, Y: 200}, 5, SideOpponent},
		{"opponent back edge", Vec2{X: 750, Y: 180}, 5, SideOpponent},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Ball{Pos: tc.pos, Vel: Vec2{X: tc.dx, Y: 3}, Speed: 5}
			got, side, hit := ResolvePaddles(b, player, opponent, DefaultHitSpeedup, FixedRandom(0.75))
			if !hit {
				t.Fatal("expected a paddle hit")
			}
			if side != tc.wantSide {
				t.Errorf("side = %v, expected %v", side, tc.wantSide)
			}
			if !almostEqual(got.Vel.X, -tc.dx*1.1) {
				t.Errorf("dx = %v, expected %v", got.Vel.X, -tc.dx*1.1)
			}
			// 0.75 of [-5, 5]
			if !almostEqual(got.Vel.Y, 2.5) {
				t.Errorf("dy = %v, expected 2.5", got.Vel.Y)
			}
			if got.Pos != tc.pos {
				t.Errorf("paddle hit moved the ball to %+v", got.Pos)
			}
		})
	}
}

func TestResolvePaddlesMiss(t *testing.T) {
	player := Paddle{Pos: Vec2{X: 50, Y: 160}, Width: 10, Height: 80}
	opponent := Paddle{Pos: Vec2{X: 740, Y: 160}, Width: 10, Height: 80}

	misses := []Vec2{
		{X: 60.01, Y: 200},
		{X: 49.99, Y: 200},
		{X: 55, Y: 159.99},
		{X: 55, Y: 240.01},
		{X: 400, Y: 200},
		{X: 739.99, Y: 200},
	}

	for _, pos := range misses {
		b := Ball{Pos: pos, Vel: Vec2{X: 5, Y: 5}, Speed: 5}
		got, _, hit := ResolvePaddles(b, player, opponent, DefaultHitSpeedup, FixedRandom(0))
		if hit {
			t.Errorf("ball at %+v should not hit a paddle", pos)
		}
		if got != b {
			t.Errorf("miss at %+v changed ball to %+v", pos, got)
		}
	}
}

func TestResolvePaddlesUsesBaseSpeed(t *testing.T) {
	player := Paddle{Pos: Vec2{X: 50, Y: 160}, Width: 10, Height: 80}
	opponent := Paddle{Pos: Vec2{X: 740, Y: 160}, Width: 10, Height: 80}

	// Escalated dx far above the base speed must not widen the dy range.
	b := Ball{Pos: Vec2{X: 55, Y: 200}, Vel: Vec2{X: -40, Y: 1}, Speed: 5}
	for _, f := range []FixedRandom{0, 0.25, 0.5, 0.999} {
		got, _, _ := ResolvePaddles(b, player, opponent, DefaultHitSpeedup, f)
		if got.Vel.Y < -5 || got.Vel.Y > 5 {
			t.Errorf("dy = %v outside base speed range [-5, 5]", got.Vel.Y)
		}
	}

	seeded := NewRandom(7)
	for i := 0; i < 1000; i++ {
		got, _, _ := ResolvePaddles(b, player, opponent, DefaultHitSpeedup, seeded)
		if got.Vel.Y < -5 || got.Vel.Y > 5 {
			t.Fatalf("dy = %v outside base speed range [-5, 5]", got.Vel.Y)
		}
	}
}

func TestResolvePaddlesBothOverlapAppliesOnce(t *testing.T) {
	// Degenerate arena where both paddles occupy the same column.
	player := Paddle{Pos: Vec2{X: 10, Y: 0}, Width: 10, Height: 40}
	opponent := Paddle{Pos: Vec2{X: 10, Y: 0}, Width: 10, Height: 40}

	b := Ball{Pos: Vec2{X: 15, Y: 20}, Vel: Vec2{X: 5, Y: 0}, Speed: 5}
	got, side, hit := ResolvePaddles(b, player, opponent, DefaultHitSpeedup, FixedRandom(0.5))
	if !hit {
		t.Fatal("expected a hit")
	}
	if side != SidePlayer {
		t.Errorf("side = %v, expected player", side)
	}
	if !almostEqual(got.Vel.X, -5.5) {
		t.Errorf("dx = %v, expected a single rebound to -5.5", got.Vel.X)
	}
}

func TestSpeedEscalatesOnEveryHit(t *testing.T) {
	player := Paddle{Pos: Vec2{X: 50, Y: 160}, Width: 10, Height: 80}
	opponent := Paddle{Pos: Vec2{X: 740, Y: 160}, Width: 10, Height: 80}

	b := Ball{Pos: Vec2{X: 55, Y: 200}, Vel: Vec2{X: -5, Y: 0}, Speed: 5}
	prev := math.Abs(b.Vel.X)
	for i := 0; i < 50; i++ {
		b, _, _ = ResolvePaddles(b, player, opponent, DefaultHitSpeedup, FixedRandom(0.5))
		speed := math.Abs(b.Vel.X)
		if !(speed > prev) {
			t.Fatalf("hit %d: |dx| = %v did not increase from %v", i, speed, prev)
		}
		if !almostEqual(speed, prev*1.1) {
			t.Fatalf("hit %d: |dx| = %v, expected %v", i, speed, prev*1.1)
		}
		prev = speed
	}
}

func TestResolveScoring(t *testing.T) {
	arena := Arena{Width: 800, Height: 400}

	tests := []struct {
		name      string
		x         float64
		wantScore Score
		wantSide  Side
		wantReset bool
	}{
		{"left wall exactly", 0, Score{Opponent: 1}, SideOpponent, true},
		{"past left wall", -7, Score{Opponent: 1}, SideOpponent, true},
		{"right wall exactly", 800, Score{Player: 1}, SidePlayer, true},
		{"past right wall", 812, Score{Player: 1}, SidePlayer, true},
		{"in play", 400, Score{}, 0, false},
		{"just inside left", 0.1, Score{}, 0, false},
		{"just inside right", 799.9, Score{}, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Ball{Pos: Vec2{X: tc.x, Y: 123}, Vel: Vec2{X: -5, Y: 2}, Speed: 5}
			got, score, side, scored := ResolveScoring(b, Score{}, arena, FixedRandom(0.5))
			if scored != tc.wantReset {
				t.Fatalf("scored = %v, expected %v", scored, tc.wantReset)
			}
			if score != tc.wantScore {
				t.Errorf("score = %+v, expected %+v", score, tc.wantScore)
			}
			if score.Player > 0 && score.Opponent > 0 {
				t.Errorf("both sides scored in one call: %+v", score)
			}
			if !scored {
				if got != b {
					t.Errorf("ball changed without scoring: %+v", got)
				}
				return
			}
			if side != tc.wantSide {
				t.Errorf("side = %v, expected %v", side, tc.wantSide)
			}
			if got.Pos != (Vec2{X: 400, Y: 200}) {
				t.Errorf("ball reset to %+v, expected (400, 200)", got.Pos)
			}
			if got.Vel.X != 5 {
				t.Errorf("dx = %v, expected sign flipped to 5", got.Vel.X)
			}
			if got.Vel.Y != 0 {
				t.Errorf("dy = %v, expected midpoint 0", got.Vel.Y)
			}
		})
	}
}

func TestResolveScoringFromZeroZero(t *testing.T) {
	arena := Arena{Width: 800, Height: 400}
	b := Ball{Pos: Vec2{X: 0, Y: 50}, Vel: Vec2{X: -5.5, Y: -3}, Speed: 5}

	got, score, _, scored := ResolveScoring(b, Score{}, arena, NewRandom(1))
	if !scored {
		t.Fatal("expected a point")
	}
	if score != (Score{Player: 0, Opponent: 1}) {
		t.Errorf("score = %+v, expected 0-1", score)
	}
	if got.Pos != (Vec2{X: 400, Y: 200}) {
		t.Errorf("ball reset to %+v, expected (400, 200)", got.Pos)
	}
	if got.Vel.X != 5.5 {
		t.Errorf("dx = %v, expected 5.5", got.Vel.X)
	}
	if got.Vel.Y < -5 || got.Vel.Y > 5 {
		t.Errorf("serve dy = %v outside [-5, 5]", got.Vel.Y)
	}
}
