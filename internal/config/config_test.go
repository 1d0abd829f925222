package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default differs from Default():\n got %+v\nwant %+v", cfg, Default())
	}
}

func TestDefaultParams(t *testing.T) {
	if got := Default().Params(); got != pong.DefaultParams() {
		t.Errorf("Default().Params() = %+v, expected %+v", got, pong.DefaultParams())
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".pong")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte("opponent:\n  speed: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Opponent.Speed != 4 {
		t.Errorf("opponent speed = %v, expected 4", cfg.Opponent.Speed)
	}
	if cfg.Player.Speed != pong.DefaultPlayerSpeed {
		t.Errorf("player speed = %v, expected default to survive a partial file", cfg.Player.Speed)
	}
}

func TestLoadInvalidUserConfigIsSkipped(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".pong")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte("arena: [not, a, map]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("broken user config should fall back to defaults, got %+v", cfg)
	}
}

func TestLoadCustomPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("arena:\n  width: 1000\n  height: 500\nphysics:\n  hit_speedup: 1.05\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Arena.Width != 1000 || cfg.Arena.Height != 500 {
		t.Errorf("arena = %+v, expected 1000x500", cfg.Arena)
	}
	if cfg.Physics.HitSpeedup != 1.05 {
		t.Errorf("hit_speedup = %v, expected 1.05", cfg.Physics.HitSpeedup)
	}

	s := pong.NewState(cfg.Params())
	if s.Ball.Pos != (pong.Vec2{X: 500, Y: 250}) {
		t.Errorf("ball starts at %+v, expected arena centre", s.Ball.Pos)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, expected os.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("paddles:\n  height: 900\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrInvalid) {
		t.Errorf("oversized paddle error = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"zero arena", func(c *GameConfig) { c.Arena.Width = 0 }},
		{"negative height", func(c *GameConfig) { c.Arena.Height = -1 }},
		{"zero paddle", func(c *GameConfig) { c.Paddles.Height = 0 }},
		{"paddle taller than arena", func(c *GameConfig) { c.Paddles.Height = 401 }},
		{"paddles overlap", func(c *GameConfig) { c.Paddles.Offset = 395 }},
		{"negative ball speed", func(c *GameConfig) { c.Ball.Speed = -1 }},
		{"negative ball size", func(c *GameConfig) { c.Ball.Size = -1 }},
		{"negative player speed", func(c *GameConfig) { c.Player.Speed = -8 }},
		{"negative deadzone", func(c *GameConfig) { c.Opponent.Deadzone = -1 }},
		{"zero speedup", func(c *GameConfig) { c.Physics.HitSpeedup = 0 }},
		{"zero hold", func(c *GameConfig) { c.Input.KeyHoldTicks = 0 }},
	}

	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}
