package audio

import (
	"math"

	"github.com/lixenwraith/gene-bass/core"
	"github.com/lixenwraith/gene-bass/parameter"
)

// oscKind identifies a single oscillator timbre channel
type oscKind int

const (
	oscSquare oscKind = iota
	oscSaw
	oscTriangle
	oscSine
	oscSubSine   // Sine one octave down
	oscSubSquare // Square one octave down
)

// waveformVoicing maps each step waveform to the pair of timbre channels
// it drives: a lead oscillator at note pitch and a sub oscillator an
// octave below
var waveformVoicing = [core.WaveformCount][2]oscKind{
	core.WaveSquare:   {oscSquare, oscSubSine},
	core.WaveSaw:      {oscSaw, oscSubSquare},
	core.WaveTriangle: {oscTriangle, oscSubSine},
	core.WaveSine:     {oscSine, oscSubSine},
}

// ADSRState tracks envelope phase
type ADSRState int

const (
	ADSRIdle ADSRState = iota
	ADSRAttack
	ADSRDecay
	ADSRSustain
	ADSRRelease
)

// Voice is the monophonic two-channel bass voice. A gated trigger
// restarts the envelope; an ungated trigger retunes the running pair and
// releases.
type Voice struct {
	freq   float64
	kinds  [2]oscKind
	phase  [2]float64 // Oscillator phase 0-1
	fstate float64    // One-pole filter state for the saw channel

	envState ADSRState
	envLevel float64
	envPos   int     // Samples into current phase
	attack   int     // Samples
	decay    int     // Samples
	sustain  float64 // Level 0-1
	release  int     // Samples

	active bool
}

// NewVoice creates a bass voice with the standard envelope
func NewVoice() *Voice {
	sr := float64(parameter.AudioSampleRate)
	return &Voice{
		attack:  int(parameter.BassAttack * sr),
		decay:   int(parameter.BassDecay * sr),
		sustain: parameter.BassSustain,
		release: int(parameter.BassRelease * sr),
	}
}

// Trigger retunes the voice to freq with the voicing pair for wave.
// gate=true restarts the envelope; gate=false lets the current note
// release.
func (v *Voice) Trigger(freq float64, wave core.Waveform, gate bool) {
	v.freq = freq
	v.kinds = waveformVoicing[wave]

	if gate {
		v.envState = ADSRAttack
		v.envPos = 0
		v.envLevel = 0
		v.phase = [2]float64{}
		v.fstate = 0
		v.active = true
	} else {
		v.Release()
	}
}

// Release moves a sounding note into its release phase
func (v *Voice) Release() {
	if v.active && v.envState != ADSRRelease {
		v.envState = ADSRRelease
		v.envPos = 0
	}
}

// Active reports whether the voice is producing output
func (v *Voice) Active() bool {
	return v.active
}

// Reset silences the voice immediately
func (v *Voice) Reset() {
	v.active = false
	v.envState = ADSRIdle
	v.envLevel = 0
	v.phase = [2]float64{}
}

// Sample returns the next mono sample
func (v *Voice) Sample() float64 {
	if !v.active {
		return 0
	}

	lead := v.oscillate(0, v.freq)
	sub := v.oscillate(1, v.freq/2)
	raw := lead*parameter.VoiceMixLevel + sub*parameter.SubOscMixLevel

	env := v.processEnvelope()
	if v.envState == ADSRIdle {
		v.active = false
		return 0
	}

	return raw * env
}

func (v *Voice) oscillate(ch int, freq float64) float64 {
	p := v.phase[ch]
	v.phase[ch] += freq / float64(parameter.AudioSampleRate)
	if v.phase[ch] >= 1.0 {
		v.phase[ch] -= 1.0
	}

	switch v.kinds[ch] {
	case oscSquare, oscSubSquare:
		if p < 0.5 {
			return 1.0
		}
		return -1.0
	case oscSaw:
		// Saw through a one-pole lowpass that closes as the note decays
		saw := 2.0*p - 1.0
		cutoff := 0.3 - 0.2*v.envLevel
		v.fstate += cutoff * (saw - v.fstate)
		return v.fstate
	case oscTriangle:
		if p < 0.5 {
			return 4.0*p - 1.0
		}
		return 3.0 - 4.0*p
	default: // oscSine, oscSubSine
		return math.Sin(2 * math.Pi * p)
	}
}

func (v *Voice) processEnvelope() float64 {
	switch v.envState {
	case ADSRAttack:
		if v.attack > 0 {
			v.envLevel = float64(v.envPos) / float64(v.attack)
		} else {
			v.envLevel = 1.0
		}
		v.envPos++
		if v.envPos >= v.attack {
			v.envState = ADSRDecay
			v.envPos = 0
		}

	case ADSRDecay:
		if v.decay > 0 {
			t := float64(v.envPos) / float64(v.decay)
			v.envLevel = 1.0 - t*(1.0-v.sustain)
		} else {
			v.envLevel = v.sustain
		}
		v.envPos++
		if v.envPos >= v.decay {
			if v.sustain > 0 {
				v.envState = ADSRSustain
			} else {
				v.envState = ADSRRelease
				v.envPos = 0
			}
		}

	case ADSRSustain:
		v.envLevel = v.sustain
		// Stay here until Release() called

	case ADSRRelease:
		if v.release > 0 {
			t := float64(v.envPos) / float64(v.release)
			v.envLevel = v.sustain * (1.0 - t)
		} else {
			v.envLevel = 0
		}
		v.envPos++
		if v.envPos >= v.release || v.envLevel <= 0.001 {
			v.envState = ADSRIdle
			v.envLevel = 0
		}
	}

	return v.envLevel
}
