package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Effect timings
const (
	squashDuration = 70 * time.Millisecond
	squashAttack   = 2 * time.Millisecond
	squashRelease  = 50 * time.Millisecond

	comboDuration = 120 * time.Millisecond
	comboAttack   = 5 * time.Millisecond
	comboRelease  = 90 * time.Millisecond
	comboMaxSteps = 12 // semitones above the base pitch

	blockedDuration = 140 * time.Millisecond
	blockedAttack   = 3 * time.Millisecond
	blockedRelease  = 60 * time.Millisecond

	noteDuration = 90 * time.Millisecond
	noteAttack   = 5 * time.Millisecond
	noteRelease  = 60 * time.Millisecond

	finaleDuration = 300 * time.Millisecond
	finaleRelease  = 220 * time.Millisecond

	whooshDuration = 200 * time.Millisecond
	whooshAttack   = 40 * time.Millisecond
	whooshRelease  = 140 * time.Millisecond
)

// Pitches in Hz
const (
	pitchA3 = 220.00
	pitchA4 = 440.00
	pitchC5 = 523.25
	pitchE5 = 659.25
	pitchG5 = 783.99
	pitchA5 = 880.00
	pitchC6 = 1046.50
	pitchE6 = 1318.51
	pitchG6 = 1567.98
	pitchB5 = 987.77
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

// NewOscillator creates a new oscillator for wave generation
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

// NewEnvelope creates a linear attack/sustain/release envelope
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
		if e.position < e.attackSamples && e.attackSamples > 0 {
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

// math.Log2(0) is -Inf, so 0 volume is expressed as Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is one shaped oscillator
func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// arpeggio plays notes back to back, the last one held longer
func arpeggio(notes []float64, wave WaveType, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for i, f := range notes {
		if i == len(notes)-1 {
			parts = append(parts, tone(f, wave, finaleDuration, noteAttack, finaleRelease, rate))
			continue
		}
		parts = append(parts, tone(f, wave, noteDuration, noteAttack, noteRelease, rate))
	}
	return beep.Seq(parts...)
}

// CreateSquashSound generates a short descending pop
func CreateSquashSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := beep.Seq(
		tone(pitchA4, WaveSquare, squashDuration, squashAttack, squashRelease, rate),
		tone(pitchA3, WaveSquare, squashDuration, squashAttack, squashRelease, rate),
	)
	return newVolume(s, cfg.volume(SoundSquash)*0.5)
}

// CreateComboSound generates a chime whose pitch climbs with the combo count
func CreateComboSound(cfg *AudioConfig, combo int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	freq := comboPitch(combo)

	fund := tone(freq, WaveSine, comboDuration, comboAttack, comboRelease, rate)
	over := tone(freq*2, WaveSine, comboDuration, comboAttack, comboRelease/2, rate)
	mixed := beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))

	return newVolume(mixed, cfg.volume(SoundCombo))
}

// comboPitch raises A5 one semitone per combo step, capped at an octave
func comboPitch(combo int) float64 {
	steps := min(max(combo, 0), comboMaxSteps)
	return pitchA5 * math.Pow(2, float64(steps)/12)
}

// CreateBlockedSound generates a dull clank for hits on shielded bosses
func CreateBlockedSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := beep.Mix(
		tone(110, WaveSaw, blockedDuration, blockedAttack, blockedRelease, rate),
		newVolume(tone(0, WaveNoise, blockedDuration/2, blockedAttack, blockedRelease/2, rate), 0.3),
	)
	return newVolume(s, cfg.volume(SoundBlocked)*0.5)
}

// CreatePowerUpSound generates a rising major arpeggio
func CreatePowerUpSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	return newVolume(arpeggio([]float64{pitchC6, pitchE6, pitchG6}, WaveSine, rate), cfg.volume(SoundPowerUp))
}

// CreateWinSound generates a square-wave fanfare
func CreateWinSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := arpeggio([]float64{pitchC5, pitchE5, pitchG5, pitchC6}, WaveSquare, rate)
	return newVolume(s, cfg.volume(SoundWin)*0.4)
}

// CreateLossSound generates a falling saw phrase
func CreateLossSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := arpeggio([]float64{pitchG5, pitchE5, pitchC5, pitchA3}, WaveSaw, rate)
	return newVolume(s, cfg.volume(SoundLoss)*0.4)
}

// CreateKonamiSound generates a whoosh followed by a two-note coin chime
func CreateKonamiSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	whoosh := newVolume(tone(0, WaveNoise, whooshDuration, whooshAttack, whooshRelease, rate), 0.4)
	coin := beep.Seq(
		tone(pitchB5, WaveSquare, noteDuration, noteAttack, noteRelease, rate),
		tone(pitchE6, WaveSquare, finaleDuration, noteAttack, finaleRelease, rate),
	)
	return newVolume(beep.Seq(whoosh, newVolume(coin, 0.5)), cfg.volume(SoundKonami))
}

// GetSoundEffect returns the streamer for the given type, nil for unknown types
// combo only affects SoundCombo
func GetSoundEffect(soundType SoundType, combo int, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundSquash:
		return CreateSquashSound(cfg)
	case SoundCombo:
		return CreateComboSound(cfg, combo)
	case SoundBlocked:
		return CreateBlockedSound(cfg)
	case SoundPowerUp:
		return CreatePowerUpSound(cfg)
	case SoundWin:
		return CreateWinSound(cfg)
	case SoundLoss:
		return CreateLossSound(cfg)
	case SoundKonami:
		return CreateKonamiSound(cfg)
	default:
		return nil
	}
}
