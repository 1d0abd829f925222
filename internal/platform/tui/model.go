package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Banners shown while the game is not running.
const (
	bannerStart  = "PRESS ENTER TO START"
	bannerPaused = "PAUSED - PRESS ENTER"
)

// Model is the Bubble Tea model for a pong session.
// The controller and the drawing targets are shared pointers, so copies of
// the model made by Bubble Tea all drive the same game.
type Model struct {
	ctrl     *pong.Controller
	screen   *core.Screen
	arena    *ArenaRenderer
	scores   *ScoreLine
	hold     *KeyHold
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	logger   *log.Logger
	quitting bool
}

// ModelOption configures a Model.
type ModelOption func(*modelOptions)

type modelOptions struct {
	holdTicks int
	logger    *log.Logger
	events    pong.EventSink
	rng       pong.Random
}

// WithHoldTicks sets how many idle ticks release a held paddle key.
func WithHoldTicks(n int) ModelOption {
	return func(o *modelOptions) { o.holdTicks = n }
}

// WithModelLogger sets the session logger.
func WithModelLogger(l *log.Logger) ModelOption {
	return func(o *modelOptions) { o.logger = l }
}

// WithModelEvents forwards tick events (bounces, hits, points) to s.
func WithModelEvents(s pong.EventSink) ModelOption {
	return func(o *modelOptions) { o.events = s }
}

// WithModelRandom replaces the seeded random source.
func WithModelRandom(r pong.Random) ModelOption {
	return func(o *modelOptions) { o.rng = r }
}

// NewModel creates a Bubble Tea model running a stopped game built from params.
func NewModel(params pong.Params, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	o := modelOptions{holdTicks: DefaultHoldTicks}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	if o.rng == nil {
		o.rng = pong.NewRandom(cfg.Seed)
	}

	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1))
	scores := NewScoreLine()
	arena := NewArenaRenderer(screen, scores)

	ctrlOpts := []pong.Option{
		pong.WithRenderer(arena),
		pong.WithScoreSink(scores),
		pong.WithRandom(o.rng),
		pong.WithLogger(o.logger),
	}
	if o.events != nil {
		ctrlOpts = append(ctrlOpts, pong.WithEventSink(o.events))
	}

	m := Model{
		ctrl:   pong.NewController(params, ctrlOpts...),
		screen: screen,
		arena:  arena,
		scores: scores,
		hold:   NewKeyHold(o.holdTicks),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		config: cfg,
		logger: o.logger,
	}
	m.help.Width = cfg.ScreenW
	m.redraw()
	return m
}

// Init starts the tick loop. The game itself waits for the start key.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session ready", "width", m.config.ScreenW, "height", m.config.ScreenH, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keys.Start):
		m.ctrl.Start()
	case key.Matches(msg, m.keys.Pause):
		if m.ctrl.State().Running {
			m.ctrl.Stop()
		} else {
			m.ctrl.Start()
		}
	case key.Matches(msg, m.keys.Restart):
		m.releaseAll()
		m.ctrl.Restart()
	default:
		if k := m.keys.PaddleKey(msg); k != core.KeyNone {
			for _, ev := range m.hold.Press(k) {
				m.ctrl.HandleInput(ev)
			}
		}
		return m, nil
	}

	m.redraw()
	return m, nil
}

// handleResize processes window resize events. The game keeps its state;
// only the cell scale changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	m.redraw()
	return m, nil
}

// handleTick releases timed-out keys and advances the simulation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	for _, ev := range m.hold.Tick() {
		m.ctrl.HandleInput(ev)
	}
	m.scores.Tick()

	// A running controller renders on its own.
	if m.ctrl.Tick() == nil && !m.ctrl.State().Running {
		m.redraw()
	}

	return m, tickCmd(m.config.TickRate)
}

// releaseAll lets go of every held paddle key.
func (m Model) releaseAll() {
	for _, k := range paddleKeys {
		if m.hold.Held(k) {
			m.ctrl.HandleInput(core.Release(k))
		}
	}
	m.hold.Reset()
}

// redraw renders the current state with the banner matching the lifecycle.
func (m Model) redraw() {
	switch {
	case m.ctrl.State().Running:
		m.arena.SetBanner("")
	case m.ctrl.Ticks() == 0:
		m.arena.SetBanner(bannerStart)
	default:
		m.arena.SetBanner(bannerPaused)
	}
	m.arena.Render(m.ctrl.State())
}

// saveScreenshot saves the current screen to ~/.pong/screenshots.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".pong", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("pong_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// Controller exposes the game driven by the model.
func (m Model) Controller() *pong.Controller {
	return m.ctrl
}

// Screen exposes the character buffer the table is drawn into.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given model.
func Run(params pong.Params, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(params, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
