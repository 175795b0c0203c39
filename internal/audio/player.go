package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/flick-arena/internal/config"
	"github.com/vovakirdan/flick-arena/internal/sim"
)

// Player is an event sink that mixes one cue per engine event into the
// speaker. Until Start succeeds every Emit is dropped, so a machine
// without an audio device plays silently.
type Player struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	volume  float64
	mixer   *beep.Mixer
	started bool
	muted   bool
	played  uint64
}

// NewPlayer creates a player from the audio settings.
func NewPlayer(cfg config.AudioConfig) *Player {
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = 44100
	}
	return &Player{
		rate:   beep.SampleRate(rate),
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
		muted:  !cfg.Enabled,
	}
}

// Start opens the speaker and begins streaming the mixer.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// Emit queues the cue for ev. It implements sim.EventSink.
func (p *Player) Emit(ev sim.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started || p.muted {
		return
	}

	s := Tone(ev.Kind, p.rate)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(newVolume(s, p.volume))
	speaker.Unlock()
	p.played++
}

// ToggleMute flips muting and returns the new state. Muting also cuts
// cues that are still playing.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = !p.muted
	if p.muted {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
	}
	return p.muted
}

// Muted reports whether cues are suppressed.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Played returns the number of cues queued since creation.
func (p *Player) Played() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

// Close stops every queued cue. The speaker itself stays open for the
// life of the process.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.started = false
}
