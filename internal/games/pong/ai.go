package pong

// OpponentDY decides the CPU paddle's velocity for the next tick.
// It chases the ball's current y and holds still inside the deadzone.
func OpponentDY(p Paddle, ballY, deadzone float64) float64 {
	center := p.CenterY()
	switch {
	case center < ballY-deadzone:
		return p.Speed
	case center > ballY+deadzone:
		return -p.Speed
	default:
		return 0
	}
}
