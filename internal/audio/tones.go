// Package audio plays short synthesized cues for engine events.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/flick-arena/internal/sim"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	o := &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
	if wave == WaveNoise {
		o.noise = rand.New(rand.NewSource(int64(freq*1000) + 1))
	}
	return o
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope wraps s with attack and release ramps over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: max(att, total-rel),
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.release > 0 {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note is one enveloped oscillator.
type note struct {
	freq float64
	dur  time.Duration
	wave WaveType
}

func (n note) streamer(rate beep.SampleRate) beep.Streamer {
	release := n.dur / 2
	return NewEnvelope(NewOscillator(n.freq, n.dur, n.wave, rate), n.dur, 5*time.Millisecond, release, rate)
}

func sequence(rate beep.SampleRate, notes ...note) beep.Streamer {
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = n.streamer(rate)
	}
	return beep.Seq(parts...)
}

// Tone returns the cue for an event kind, or nil for kinds without one.
func Tone(kind sim.EventKind, rate beep.SampleRate) beep.Streamer {
	switch kind {
	case sim.EventWallBounce:
		return newVolume(note{110, 60 * time.Millisecond, WaveSquare}.streamer(rate), 0.4)
	case sim.EventObstacleBounce:
		return sequence(rate,
			note{523.25, 50 * time.Millisecond, WaveSine},
			note{783.99, 80 * time.Millisecond, WaveSine},
		)
	case sim.EventSlowZoneEnter:
		return beep.Mix(
			newVolume(note{0, 180 * time.Millisecond, WaveNoise}.streamer(rate), 0.3),
			newVolume(note{196, 180 * time.Millisecond, WaveSaw}.streamer(rate), 0.5),
		)
	case sim.EventGameOver:
		return sequence(rate,
			note{392, 120 * time.Millisecond, WaveSaw},
			note{311.13, 120 * time.Millisecond, WaveSaw},
			note{196, 300 * time.Millisecond, WaveSaw},
		)
	case sim.EventLevelComplete:
		return sequence(rate,
			note{659.25, 90 * time.Millisecond, WaveSquare},
			note{987.77, 160 * time.Millisecond, WaveSquare},
		)
	case sim.EventGameComplete:
		return sequence(rate,
			note{523.25, 100 * time.Millisecond, WaveSquare},
			note{659.25, 100 * time.Millisecond, WaveSquare},
			note{783.99, 100 * time.Millisecond, WaveSquare},
			note{1046.5, 300 * time.Millisecond, WaveSquare},
		)
	default:
		return nil
	}
}
