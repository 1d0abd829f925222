// Package window runs pong in a desktop window using Ebitengine.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

var (
	backgroundColor = color.RGBA{0x11, 0x18, 0x27, 0xff}
	netColor        = color.RGBA{0x4b, 0x55, 0x63, 0xff}
	paddleColor     = color.White
	ballColor       = color.White
	textColor       = color.RGBA{0xe5, 0xe7, 0xeb, 0xff}
)

// Centre line dash pattern in pixels.
const (
	dashOn  = 5
	dashOff = 15
)

// Text height of basicfont.Face7x13.
const lineHeight = 13

// binding maps a physical key onto a paddle key.
type binding struct {
	key    ebiten.Key
	paddle core.Key
}

var paddleBindings = []binding{
	{ebiten.KeyW, core.KeyUp},
	{ebiten.KeyArrowUp, core.KeyUp},
	{ebiten.KeyS, core.KeyDown},
	{ebiten.KeyArrowDown, core.KeyDown},
}

// paddleEdges collects paddle key edges for this frame.
func paddleEdges(justPressed, justReleased func(ebiten.Key) bool) []core.KeyEvent {
	var edges []core.KeyEvent
	for _, b := range paddleBindings {
		if justPressed(b.key) {
			edges = append(edges, core.Press(b.paddle))
		}
		if justReleased(b.key) {
			edges = append(edges, core.Release(b.paddle))
		}
	}
	return edges
}

// Options configures a windowed game.
type Options struct {
	Seed   int64
	Scale  float64 // Window size multiplier, 1 by default
	Logger *log.Logger
	Events pong.EventSink
}

// Game is an ebiten.Game driving a pong.Controller at the engine's tick rate.
// It implements pong.Renderer and pong.ScoreSink for its controller.
type Game struct {
	ctrl   *pong.Controller
	params pong.Params
	state  pong.GameState
	score  pong.Score
	face   text.Face
	logger *log.Logger
}

// NewGame creates a stopped game built from params.
func NewGame(params pong.Params, opts Options) *Game {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	g := &Game{
		params: params,
		face:   text.NewGoXFace(basicfont.Face7x13),
		logger: opts.Logger,
	}

	ctrlOpts := []pong.Option{
		pong.WithRenderer(g),
		pong.WithScoreSink(g),
		pong.WithRandom(pong.NewRandom(opts.Seed)),
		pong.WithLogger(opts.Logger),
	}
	if opts.Events != nil {
		ctrlOpts = append(ctrlOpts, pong.WithEventSink(opts.Events))
	}
	g.ctrl = pong.NewController(params, ctrlOpts...)
	g.state = g.ctrl.State()
	return g
}

// Render implements pong.Renderer.
func (g *Game) Render(s pong.GameState) {
	g.state = s
}

// ScoreChanged implements pong.ScoreSink.
func (g *Game) ScoreChanged(s pong.Score) {
	g.score = s
}

// Controller exposes the game's controller.
func (g *Game) Controller() *pong.Controller {
	return g.ctrl
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.ctrl.Start()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.ctrl.Restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		if g.ctrl.State().Running {
			g.ctrl.Stop()
		} else {
			g.ctrl.Start()
		}
	}

	for _, ev := range paddleEdges(inpututil.IsKeyJustPressed, inpututil.IsKeyJustReleased) {
		g.ctrl.HandleInput(ev)
	}

	if g.ctrl.Tick() == nil && !g.ctrl.State().Running {
		g.state = g.ctrl.State()
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.state
	w, h := float32(s.Arena.Width), float32(s.Arena.Height)

	screen.Fill(backgroundColor)

	// Dashed centre line
	for y := float32(0); y < h; y += dashOn + dashOff {
		vector.StrokeLine(screen, w/2, y, w/2, min(y+dashOn, h), 2, netColor, false)
	}

	for _, p := range []pong.Paddle{s.Player, s.Opponent} {
		vector.FillRect(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Width), float32(p.Height), paddleColor, false)
	}

	vector.FillCircle(screen, float32(s.Ball.Pos.X), float32(s.Ball.Pos.Y), float32(s.Ball.Size), ballColor, true)

	g.drawCentered(screen, fmt.Sprintf("%d     %d", g.score.Player, g.score.Opponent), float64(lineHeight))

	if !s.Running {
		msg := "PRESS ENTER TO START"
		if g.ctrl.Ticks() > 0 {
			msg = "PAUSED - PRESS P"
		}
		g.drawCentered(screen, msg, float64(h)/2+2*lineHeight)
	}
}

func (g *Game) drawCentered(screen *ebiten.Image, msg string, y float64) {
	tw, _ := text.Measure(msg, g.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate((g.params.Arena.Width-tw)/2, y)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, msg, g.face, op)
}

// Layout implements ebiten.Game. The logical screen is the arena.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.params.Arena.Width), int(g.params.Arena.Height)
}

// Run opens a window and plays until it is closed.
func Run(params pong.Params, opts Options) error {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	g := NewGame(params, opts)

	ebiten.SetWindowSize(int(params.Arena.Width*scale), int(params.Arena.Height*scale))
	ebiten.SetWindowTitle("Pong")
	ebiten.SetTPS(ebiten.DefaultTPS)

	g.logger.Info("window opened", "width", params.Arena.Width, "height", params.Arena.Height)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
