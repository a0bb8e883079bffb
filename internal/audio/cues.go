// Package audio synthesizes the sound cues of the match-3 modes and plays
// them through the system speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-match3/internal/match3"
)

// Cue identifies a sound effect.
type Cue int

const (
	CueSwap     Cue = iota // Accepted swap
	CueReject              // Swap without a match, being reverted
	CueResolve             // Match resolved by the swap itself
	CueChain               // Match resolved by a cascade
	CueDeadlock            // No move left
)

// String returns the cue name for logs.
func (c Cue) String() string {
	switch c {
	case CueSwap:
		return "swap"
	case CueReject:
		return "reject"
	case CueResolve:
		return "resolve"
	case CueChain:
		return "chain"
	case CueDeadlock:
		return "deadlock"
	default:
		return "unknown"
	}
}

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
)

// tone is a single oscillator note with an exponential decay.
type tone struct {
	freq  float64
	wave  Wave
	rate  beep.SampleRate
	decay float64 // Amplitude falls by e every 1/decay seconds
	pos   int
	total int
}

// NewTone returns a streamer playing freq for d, fading out at decay per second.
func NewTone(freq float64, d time.Duration, wave Wave, decay float64, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:  freq,
		wave:  wave,
		rate:  rate,
		decay: decay,
		total: rate.N(d),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		secs := float64(t.pos) / float64(t.rate)
		phase := math.Mod(t.freq*secs, 1)

		var val float64
		switch t.wave {
		case WaveSquare:
			val = 1
			if phase >= 0.5 {
				val = -1
			}
		default:
			val = math.Sin(2 * math.Pi * phase)
		}
		val *= math.Exp(-t.decay * secs)

		samples[i][0] = val
		samples[i][1] = val
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Synth builds the streamer for a cue. gain is a base-2 volume: 0 leaves
// the level unchanged, -1 halves it.
func Synth(c Cue, rate beep.SampleRate, gain float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueSwap:
		s = NewTone(660, 60*time.Millisecond, WaveSine, 30, rate)
	case CueReject:
		s = beep.Seq(
			NewTone(220, 80*time.Millisecond, WaveSquare, 10, rate),
			NewTone(165, 120*time.Millisecond, WaveSquare, 10, rate),
		)
	case CueResolve:
		s = beep.Mix(
			NewTone(880, 150*time.Millisecond, WaveSine, 20, rate),
			quieter(NewTone(1760, 150*time.Millisecond, WaveSine, 30, rate)),
		)
	case CueChain:
		s = beep.Seq(
			NewTone(988, 70*time.Millisecond, WaveSquare, 15, rate),
			NewTone(1319, 150*time.Millisecond, WaveSquare, 15, rate),
		)
	case CueDeadlock:
		s = beep.Seq(
			NewTone(523, 120*time.Millisecond, WaveSine, 8, rate),
			NewTone(392, 120*time.Millisecond, WaveSine, 8, rate),
			NewTone(262, 250*time.Millisecond, WaveSine, 6, rate),
		)
	default:
		return nil
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: gain}
}

func quieter(s beep.Streamer) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: -2}
}

// CueFor maps an engine event to the cue played for it.
func CueFor(e match3.Event) (Cue, bool) {
	switch ev := e.(type) {
	case match3.SwapAccepted:
		return CueSwap, true
	case match3.SwapRejected:
		return CueReject, true
	case match3.ResolutionRequested:
		if ev.Chain > 1 {
			return CueChain, true
		}
		return CueResolve, true
	case match3.DeadlockReached:
		return CueDeadlock, true
	default:
		return 0, false
	}
}
