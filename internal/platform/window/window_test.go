package window

import (
	"reflect"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

func keySet(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, want := range keys {
			if k == want {
				return true
			}
		}
		return false
	}
}

func TestPaddleEdges(t *testing.T) {
	tests := []struct {
		name     string
		pressed  []ebiten.Key
		released []ebiten.Key
		want     []core.KeyEvent
	}{
		{"idle", nil, nil, nil},
		{"w down", []ebiten.Key{ebiten.KeyW}, nil, []core.KeyEvent{core.Press(core.KeyUp)}},
		{"arrow up", []ebiten.Key{ebiten.KeyArrowUp}, nil, []core.KeyEvent{core.Press(core.KeyUp)}},
		{"s released", nil, []ebiten.Key{ebiten.KeyS}, []core.KeyEvent{core.Release(core.KeyDown)}},
		{
			"switch direction",
			[]ebiten.Key{ebiten.KeyArrowDown},
			[]ebiten.Key{ebiten.KeyW},
			[]core.KeyEvent{core.Release(core.KeyUp), core.Press(core.KeyDown)},
		},
		{"unbound key", []ebiten.Key{ebiten.KeyA}, nil, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := paddleEdges(keySet(tc.pressed...), keySet(tc.released...))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("paddleEdges() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestGameSinks(t *testing.T) {
	g := NewGame(pong.DefaultParams(), Options{Seed: 1})

	if g.state != pong.NewState(pong.DefaultParams()) {
		t.Error("game should start from the initial state")
	}

	g.Controller().Restart()
	if !g.Controller().State().Running {
		t.Fatal("restart should start the game")
	}
	if g.score != (pong.Score{}) {
		t.Errorf("score = %+v, expected 0-0", g.score)
	}

	g.Controller().Tick()
	if g.state != g.Controller().State() {
		t.Error("controller should render into the game")
	}

	w, h := g.Layout(1920, 1080)
	if w != 800 || h != 400 {
		t.Errorf("Layout() = %dx%d, expected the arena size", w, h)
	}
}
