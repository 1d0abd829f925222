// Package audio plays retro square-wave sound effects for game events.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.2
)

var initOnce struct {
	sync.Mutex
	done bool
}

// Sink turns pong events into sounds. It implements pong.EventSink.
type Sink struct {
	play  func(beep.Streamer)
	muted bool
}

// Open initializes the speaker and returns a sink playing through it.
func Open(logger *log.Logger) (*Sink, error) {
	initOnce.Lock()
	defer initOnce.Unlock()

	if !initOnce.done {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
			return nil, fmt.Errorf("audio: init speaker: %w", err)
		}
		initOnce.done = true
	}
	if logger != nil {
		logger.Debug("speaker ready", "sample_rate", int(sampleRate))
	}
	return newSink(speaker.Play), nil
}

func newSink(play func(beep.Streamer)) *Sink {
	return &Sink{play: play}
}

// SetMuted silences or restores the sink.
func (s *Sink) SetMuted(muted bool) {
	s.muted = muted
}

// HandleEvent implements pong.EventSink.
func (s *Sink) HandleEvent(ev pong.Event) {
	if s.muted {
		return
	}
	if st := Effect(ev); st != nil {
		s.play(st)
	}
}

// Close stops the speaker.
func (s *Sink) Close() {
	initOnce.Lock()
	defer initOnce.Unlock()

	if initOnce.done {
		speaker.Close()
		initOnce.done = false
	}
}

// Effect returns the sound for an event, or nil for silent events.
func Effect(ev pong.Event) beep.Streamer {
	switch ev := ev.(type) {
	case pong.WallBounce:
		return squareWave(440, 30*time.Millisecond)
	case pong.PaddleHit:
		return squareWave(hitFrequency(ev), 50*time.Millisecond)
	case pong.Scored:
		if ev.Side == pong.SidePlayer {
			return beep.Seq(
				squareWave(330, 100*time.Millisecond),
				squareWave(440, 100*time.Millisecond),
				squareWave(660, 150*time.Millisecond),
			)
		}
		return beep.Seq(
			squareWave(660, 100*time.Millisecond),
			squareWave(440, 100*time.Millisecond),
			squareWave(330, 150*time.Millisecond),
		)
	}
	return nil
}

// hitFrequency rises from 880 Hz with the rally speed relative to the serve,
// topping out an octave higher.
func hitFrequency(ev pong.PaddleHit) float64 {
	freq := 880.0
	if ev.Base > 0 {
		freq *= math.Min(math.Max(ev.Speed/ev.Base, 1), 2)
	}
	return freq
}

// squareWave generates a square wave tone.
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}
