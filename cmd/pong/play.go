package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game of pong in the terminal.

Controls:
  W/Up       - Move paddle up
  S/Down     - Move paddle down
  Enter      - Start
  P/Esc      - Pause / resume
  R          - Restart
  Ctrl+S     - Save a text screenshot to ~/.pong/screenshots
  Q/Ctrl+C   - Quit

Terminals only report key presses, so the paddle keeps moving while the key
auto-repeats and stops shortly after it is let go (input.key_hold_ticks).

Examples:
  pong play
  pong play --fps 30
  pong play --sound
  pong play --config ./my-pong.yaml --log-file pong.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg := loadGameConfig()

	// Logs would corrupt the alt screen, so they only go to --log-file.
	logger, closeLog := mustLogger(io.Discard, "pong")
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := []tui.ModelOption{
		tui.WithHoldTicks(gameCfg.Input.KeyHoldTicks),
		tui.WithModelLogger(logger),
	}
	if sink := openSound(logger); sink != nil {
		defer sink.Close()
		opts = append(opts, tui.WithModelEvents(sink))
	}

	err := tui.Run(gameCfg.Params(), cfg, opts...)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
