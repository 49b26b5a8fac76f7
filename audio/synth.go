package audio

import (
	"sync"

	"github.com/lixenwraith/gene-bass/parameter"
	"github.com/lixenwraith/gene-bass/sequencer"
)

// Synth renders sequencer output through the bass voice and beat click.
// It implements both sequencer.Renderer (control-rate side) and
// beep.Streamer (audio side); the mutex is the hand-off point between
// the two cadences.
type Synth struct {
	mu    sync.Mutex
	voice *Voice
	click *clickVoice
	beat  bool

	volume float64
	muted  bool
}

// NewSynth creates a silent synth at the default master volume
func NewSynth() *Synth {
	return &Synth{
		voice:  NewVoice(),
		click:  newClickVoice(),
		volume: parameter.MasterVolume,
	}
}

// Trigger implements sequencer.Renderer
func (s *Synth) Trigger(ev sequencer.NoteEvent) {
	s.mu.Lock()
	s.voice.Trigger(ev.Frequency, ev.Waveform, ev.Gate)
	s.mu.Unlock()
}

// SetBeat implements sequencer.Renderer; a rising edge fires the click
func (s *Synth) SetBeat(on bool) {
	s.mu.Lock()
	if on && !s.beat {
		s.click.Trigger()
	}
	s.beat = on
	s.mu.Unlock()
}

// Stream implements beep.Streamer
func (s *Synth) Stream(samples [][2]float64) (n int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vol := s.volume
	if s.muted {
		vol = 0
	}

	for i := range samples {
		sample := (s.voice.Sample() + s.click.Sample()) * vol
		samples[i][0] = sample
		samples[i][1] = sample
	}
	return len(samples), true
}

// Err implements beep.Streamer
func (s *Synth) Err() error {
	return nil
}

// SetVolume sets master volume (0.0-1.0)
func (s *Synth) SetVolume(vol float64) {
	if vol < 0 {
		vol = 0
	} else if vol > 1 {
		vol = 1
	}
	s.mu.Lock()
	s.volume = vol
	s.mu.Unlock()
}

// Volume returns the current master volume
func (s *Synth) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// AdjustVolume nudges master volume by delta, clamping
func (s *Synth) AdjustVolume(delta float64) {
	s.SetVolume(s.Volume() + delta)
}

// ToggleMute toggles mute state, returns true if now audible
func (s *Synth) ToggleMute() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = !s.muted
	return !s.muted
}

// IsMuted returns current mute state
func (s *Synth) IsMuted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// Reset silences all voices immediately
func (s *Synth) Reset() {
	s.mu.Lock()
	s.voice.Reset()
	s.click.Reset()
	s.beat = false
	s.mu.Unlock()
}
