package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/audio"
	"github.com/vovakirdan/tui-pong/internal/platform/window"
)

var (
	flagSound bool
	flagScale float64
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game of pong in a desktop window drawn at the arena's native size.

Controls:
  W/Up       - Move paddle up
  S/Down     - Move paddle down
  Enter      - Start
  P          - Pause / resume
  R          - Restart
  Q/Esc      - Quit

The window runs at 60 ticks per second; --fps does not apply.

Examples:
  pong window
  pong window --sound
  pong window --scale 1.5`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size multiplier")
}

func runWindow(_ *cobra.Command, _ []string) {
	gameCfg := loadGameConfig()

	logger, closeLog := mustLogger(io.Discard, "pong")
	defer closeLog()

	opts := window.Options{
		Seed:   flagSeed,
		Scale:  flagScale,
		Logger: logger,
	}

	if sink := openSound(logger); sink != nil {
		defer sink.Close()
		opts.Events = sink
	}

	if err := window.Run(gameCfg.Params(), opts); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// openSound opens the speaker when --sound is set. It returns nil when sound
// is off or the device cannot be opened; the game plays on silently.
func openSound(logger *log.Logger) *audio.Sink {
	if !flagSound {
		return nil
	}
	sink, err := audio.Open(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return nil
	}
	return sink
}
