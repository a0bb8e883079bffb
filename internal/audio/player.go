package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/match3"
)

const defaultSampleRate = beep.SampleRate(48000)

// Player plays cues through the speaker. A disabled player, or one whose
// speaker failed to open, silently ignores every call.
type Player struct {
	mu          sync.Mutex
	enabled     bool
	gain        float64
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a player for cfg. Call Init before playing.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = defaultSampleRate
	}
	return &Player{
		enabled: cfg.Enabled,
		gain:    cfg.Volume,
		rate:    rate,
		mixer:   &beep.Mixer{},
		logger:  logger,
	}
}

// Init opens the speaker. Disabled players skip it.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("speaker ready", "rate", int(p.rate))
	return nil
}

// Play starts a cue on top of whatever is playing.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := Synth(c, p.rate, p.gain)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Notify plays the cue for an engine event.
func (p *Player) Notify(e match3.Event) {
	if c, ok := CueFor(e); ok {
		p.Play(c)
	}
}

// Enabled reports whether the player will make sound once initialized.
func (p *Player) Enabled() bool {
	return p.enabled
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
