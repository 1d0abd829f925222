package pong

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Renderer draws a state once per tick.
type Renderer interface {
	Render(s GameState)
}

// ScoreSink is told about every score change, including the reset to 0-0.
type ScoreSink interface {
	ScoreChanged(s Score)
}

// EventSink receives every event emitted by a tick (sound, effects).
type EventSink interface {
	HandleEvent(ev Event)
}

// Option configures a Controller.
type Option func(*Controller)

// WithRenderer sets the renderer invoked after every tick.
func WithRenderer(r Renderer) Option {
	return func(c *Controller) { c.renderer = r }
}

// WithScoreSink sets the score display.
func WithScoreSink(s ScoreSink) Option {
	return func(c *Controller) { c.scores = s }
}

// WithEventSink sets an observer for tick events.
func WithEventSink(s EventSink) Option {
	return func(c *Controller) { c.events = s }
}

// WithRandom replaces the time-seeded random source.
func WithRandom(r Random) Option {
	return func(c *Controller) { c.rng = r }
}

// WithLogger sets the logger used for lifecycle and scoring messages.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// Controller owns a GameState and drives it from a frame loop.
// It is not safe for concurrent use; platforms call it from one loop.
type Controller struct {
	params   Params
	state    GameState
	rng      Random
	renderer Renderer
	scores   ScoreSink
	events   EventSink
	logger   *log.Logger
	ticks    uint64
}

// NewController creates a stopped game built from p.
func NewController(p Params, opts ...Option) *Controller {
	c := &Controller{
		params: p,
		state:  NewState(p),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = NewRandom(time.Now().UnixNano())
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	return c
}

// Start begins play. Calling it on a running game does nothing.
func (c *Controller) Start() {
	if c.state.Running {
		return
	}
	c.state.Running = true
	c.logger.Debug("game started", "score", c.state.Score.String())
}

// Stop halts play; the next Tick is a no-op until Start is called again.
func (c *Controller) Stop() {
	if !c.state.Running {
		return
	}
	c.state.Running = false
	c.logger.Debug("game stopped", "tick", c.ticks)
}

// Restart puts ball, paddles and score back to their initial values and
// starts the game if it was not running. A paddle key held through the
// restart keeps moving the player, since no new press will arrive for it.
func (c *Controller) Restart() {
	running := c.state.Running
	dy := c.state.Player.DY
	c.state = NewState(c.params)
	c.state.Running = running
	c.state.Player.DY = dy
	c.ticks = 0
	c.logger.Debug("game restarted")

	if c.scores != nil {
		c.scores.ScoreChanged(c.state.Score)
	}
	c.Start()
}

// HandleInput applies a paddle key edge to the player's paddle.
func (c *Controller) HandleInput(ev core.KeyEvent) {
	c.state.Player = ApplyInput(c.state.Player, ev)
}

// Tick advances a running game by one step, notifies the sinks and renders.
// It returns the events of the step. The result is nil when the game is
// stopped and also for a running tick without events; check State().Running
// to tell them apart.
func (c *Controller) Tick() []Event {
	if !c.state.Running {
		return nil
	}

	var events []Event
	c.state, events = Step(c.state, c.params.Rules, c.rng)
	c.ticks++

	for _, ev := range events {
		if c.events != nil {
			c.events.HandleEvent(ev)
		}
		if scored, ok := ev.(Scored); ok {
			c.logger.Debug("point scored",
				"side", scored.Side.String(),
				"score", scored.Score.String(),
				"tick", c.ticks,
			)
			if c.scores != nil {
				c.scores.ScoreChanged(scored.Score)
			}
		}
	}

	if c.renderer != nil {
		c.renderer.Render(c.state)
	}
	return events
}

// State returns a copy of the current state.
func (c *Controller) State() GameState {
	return c.state
}

// Ticks returns the number of steps taken since the last restart.
func (c *Controller) Ticks() uint64 {
	return c.ticks
}
