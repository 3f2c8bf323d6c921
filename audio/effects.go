package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/snowhop/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a wave of the given length
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
		case WaveTriangle:
			val = 4.0*math.Abs(o.phase-0.5) - 1.0
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
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

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

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
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func note(freq float64, d, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, parameter.CueAttack, release, rate)
}

// CreateVictorySound plays the arpeggio note by note, with a soft octave-down layer
func CreateVictorySound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.VictoryNoteDuration

	notes := make([]beep.Streamer, 0, len(parameter.VictoryArpeggio))
	for _, f := range parameter.VictoryArpeggio {
		notes = append(notes, beep.Mix(
			newVolume(note(f, d, parameter.CueNoteRelease, WaveTriangle, rate), 0.7),
			newVolume(note(f/2, d, parameter.CueNoteRelease, WaveSine, rate), 0.3),
		))
	}

	return newVolume(beep.Seq(notes...), cfg.EffectVolumes[CueVictory]*cfg.MasterVolume)
}

// CreatePickupSound generates a short bright chime
func CreatePickupSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.PickupChimeDuration

	mixed := beep.Mix(
		newVolume(note(parameter.PickupChimeFreq, d, d/2, WaveSine, rate), 0.7),
		newVolume(note(parameter.PickupChimeFreq*2, d, d/2, WaveSine, rate), 0.3),
	)
	return newVolume(mixed, cfg.EffectVolumes[CuePickup]*cfg.MasterVolume)
}

// CreateHurtSound generates a low harsh buzz
func CreateHurtSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.HurtBuzzDuration

	buzz := note(parameter.HurtBuzzFreq, d, parameter.HurtBuzzRelease, WaveSaw, rate)
	return newVolume(buzz, cfg.EffectVolumes[CueHurt]*cfg.MasterVolume)
}

// CueSound returns a fresh streamer for the cue, nil for unknown cues
func CueSound(c Cue, cfg *AudioConfig) beep.Streamer {
	switch c {
	case CueVictory:
		return CreateVictorySound(cfg)
	case CuePickup:
		return CreatePickupSound(cfg)
	case CueHurt:
		return CreateHurtSound(cfg)
	default:
		return nil
	}
}
