package pong

// Event is something observable that happened during a tick.
type Event interface {
	pongEvent()
}

// WallBounce is emitted when the ball reflects off the top or bottom wall.
type WallBounce struct{}

func (WallBounce) pongEvent() {}

// PaddleHit is emitted when the ball rebounds off a paddle.
type PaddleHit struct {
	Side  Side    // Whose paddle was hit
	Speed float64 // |dx| after the speed-up
	Base  float64 // Ball base speed, the |dx| of a fresh serve
}

func (PaddleHit) pongEvent() {}

// Scored is emitted when the ball leaves through a side wall.
type Scored struct {
	Side  Side  // Who won the point
	Score Score // Score after the point
}

func (Scored) pongEvent() {}
