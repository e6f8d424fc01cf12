package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Cue envelope timings
const (
	FillDuration = 60 * time.Millisecond
	FillAttack   = 3 * time.Millisecond
	FillRelease  = 40 * time.Millisecond

	CrossDuration = 45 * time.Millisecond
	CrossAttack   = 2 * time.Millisecond
	CrossRelease  = 25 * time.Millisecond

	ClearDuration = 70 * time.Millisecond
	ClearAttack   = 5 * time.Millisecond
	ClearRelease  = 45 * time.Millisecond

	clickDuration = 8 * time.Millisecond
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-length oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
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
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope over s
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a volume effect; math.Log2(0) is -Inf so 0 maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// createFillSound is a short sine blip (E5) with an octave overtone
func createFillSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund := NewOscillator(659.25, FillDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, FillDuration, FillAttack, FillRelease, rate)

	over := NewOscillator(1318.51, FillDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, FillDuration, FillAttack, FillRelease/2, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.8),
		newVolume(overShaped, 0.2),
	)

	return newVolume(mixed, cfg.CueVolumes[CueFill]*cfg.MasterVolume)
}

// createCrossSound is a noise click followed by a square tick
func createCrossSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	click := NewEnvelope(NewOscillator(0, clickDuration, WaveNoise, rate), clickDuration, 0, clickDuration, rate)
	tick := NewOscillator(880.0, CrossDuration-clickDuration, WaveSquare, rate)
	tickShaped := NewEnvelope(tick, CrossDuration-clickDuration, CrossAttack, CrossRelease, rate)

	sequence := beep.Seq(newVolume(click, 0.3), tickShaped)

	return newVolume(sequence, cfg.CueVolumes[CueCross]*cfg.MasterVolume)
}

// createClearSound is a low saw blip
func createClearSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(196.0, ClearDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, ClearDuration, ClearAttack, ClearRelease, rate)

	return newVolume(shaped, cfg.CueVolumes[CueClear]*cfg.MasterVolume)
}

// CueStreamer builds a fresh streamer for a cue, nil for unknown cues
func CueStreamer(c Cue, cfg *Config) beep.Streamer {
	switch c {
	case CueFill:
		return createFillSound(cfg)
	case CueCross:
		return createCrossSound(cfg)
	case CueClear:
		return createClearSound(cfg)
	default:
		return nil
	}
}
