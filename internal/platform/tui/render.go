package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Glyphs used to draw the table.
const (
	netRune    = '┊'
	paddleRune = '█'
	ballRune   = '●'
)

const (
	hudRows = 1 // score line above the table

	minCols = 20
	minRows = 6

	scoreFlashTicks = 30
)

// ScoreLine displays the score and highlights it for a moment after a point.
// It implements pong.ScoreSink.
type ScoreLine struct {
	score pong.Score
	flash int
}

// NewScoreLine creates a score line showing 0-0.
func NewScoreLine() *ScoreLine {
	return &ScoreLine{}
}

// ScoreChanged implements pong.ScoreSink.
func (l *ScoreLine) ScoreChanged(s pong.Score) {
	l.flash = 0
	if s != (pong.Score{}) {
		l.flash = scoreFlashTicks
	}
	l.score = s
}

// Tick fades the highlight.
func (l *ScoreLine) Tick() {
	if l.flash > 0 {
		l.flash--
	}
}

// Score returns the last score shown.
func (l *ScoreLine) Score() pong.Score {
	return l.score
}

// Text returns the score line as shown above the table.
func (l *ScoreLine) Text() string {
	return fmt.Sprintf("PLAYER %d  :  %d CPU", l.score.Player, l.score.Opponent)
}

func (l *ScoreLine) color() core.Color {
	if l.flash > 0 {
		return core.ColorYellow
	}
	return core.ColorWhite
}

// ArenaRenderer draws a GameState into a character screen, scaling arena
// units to cells. The top row holds the score. It implements pong.Renderer.
type ArenaRenderer struct {
	screen *core.Screen
	scores *ScoreLine
	banner string
}

// NewArenaRenderer creates a renderer drawing into screen.
func NewArenaRenderer(screen *core.Screen, scores *ScoreLine) *ArenaRenderer {
	return &ArenaRenderer{screen: screen, scores: scores}
}

// SetBanner sets a message drawn over the middle of the table.
// An empty string hides it.
func (r *ArenaRenderer) SetBanner(text string) {
	r.banner = text
}

// Render implements pong.Renderer.
func (r *ArenaRenderer) Render(s pong.GameState) {
	r.screen.Clear()

	w := r.screen.Width()
	rows := r.screen.Height() - hudRows
	if w < minCols || rows < minRows {
		r.screen.DrawTextCentered(r.screen.Height()/2, "terminal too small", core.ColorYellow)
		return
	}
	field := core.NewRect(0, hudRows, w, rows)

	r.screen.DrawDashedVLine(w/2, 1, 1, netRune, core.ColorGray)

	for _, p := range []pong.Paddle{s.Player, s.Opponent} {
		r.screen.DrawRect(paddleCells(p, s.Arena, field), paddleRune, core.ColorBrightWhite)
	}

	bx, by := ballCell(s.Ball, s.Arena, field)
	r.screen.SetColored(bx, by, ballRune, core.ColorYellow)

	if r.scores != nil {
		r.screen.DrawTextCentered(0, r.scores.Text(), r.scores.color())
	}
	if r.banner != "" {
		r.screen.DrawTextCentered(field.Y+field.H/2, r.banner, core.ColorCyan)
	}
}

// paddleCells maps a paddle onto the cells it covers. A paddle is at least
// one cell in each direction and never leaves the field.
func paddleCells(p pong.Paddle, a pong.Arena, field core.Rect) core.Rect {
	x0 := core.ScaleToCells(p.Pos.X, a.Width, field.W)
	x1 := core.ScaleToCells(p.Pos.X+p.Width, a.Width, field.W)
	y0 := core.ScaleToCells(p.Pos.Y, a.Height, field.H)
	y1 := core.ScaleToCells(p.Pos.Y+p.Height, a.Height, field.H)

	w := core.Clamp(x1-x0, 1, field.W)
	h := core.Clamp(y1-y0, 1, field.H)
	return core.NewRect(
		field.X+core.Clamp(x0, 0, field.W-w),
		field.Y+core.Clamp(y0, 0, field.H-h),
		w, h,
	)
}

// ballCell maps the ball centre onto a cell inside the field.
func ballCell(b pong.Ball, a pong.Arena, field core.Rect) (int, int) {
	x := core.Clamp(core.ScaleToCells(b.Pos.X, a.Width, field.W), 0, field.W-1)
	y := core.Clamp(core.ScaleToCells(b.Pos.Y, a.Height, field.H), 0, field.H-1)
	return field.X + x, field.Y + y
}
