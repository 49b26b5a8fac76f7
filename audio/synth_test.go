package audio

import (
	"math"
	"testing"

	"github.com/lixenwraith/gene-bass/core"
	"github.com/lixenwraith/gene-bass/sequencer"
)

// TestSynthStreamFillsBuffer verifies the streamer contract: full
// buffer, ok, finite samples on both channels
func TestSynthStreamFillsBuffer(t *testing.T) {
	s := NewSynth()
	s.Trigger(sequencer.NoteEvent{Frequency: 110, Waveform: core.WaveSquare, Gate: true})

	buf := make([][2]float64, 512)
	n, ok := s.Stream(buf)

	if !ok {
		t.Fatal("Expected streamer to stay open")
	}
	if n != len(buf) {
		t.Errorf("Expected %d samples, got %d", len(buf), n)
	}

	nonzero := false
	for i, frame := range buf {
		for ch := 0; ch < 2; ch++ {
			if math.IsNaN(frame[ch]) || math.IsInf(frame[ch], 0) {
				t.Fatalf("Frame %d channel %d not finite: %v", i, ch, frame[ch])
			}
			if frame[ch] != 0 {
				nonzero = true
			}
		}
		if frame[0] != frame[1] {
			t.Fatalf("Frame %d: expected mono output on both channels", i)
		}
	}
	if !nonzero {
		t.Error("Expected audible output after gated trigger")
	}
}

// TestSynthMutedStreamsSilence verifies mute zeroes the output while the
// voice keeps running
func TestSynthMutedStreamsSilence(t *testing.T) {
	s := NewSynth()
	s.Trigger(sequencer.NoteEvent{Frequency: 110, Waveform: core.WaveSine, Gate: true})

	if s.ToggleMute() {
		t.Error("Expected ToggleMute to report muted (false = not audible)")
	}
	if !s.IsMuted() {
		t.Error("Expected synth muted")
	}

	buf := make([][2]float64, 256)
	s.Stream(buf)
	for i, frame := range buf {
		if frame[0] != 0 || frame[1] != 0 {
			t.Fatalf("Frame %d: expected silence while muted, got %v", i, frame)
		}
	}

	if !s.ToggleMute() {
		t.Error("Expected ToggleMute to report audible again")
	}
}

// TestSynthBeatClickOnRisingEdge verifies the click fires on the rising
// beat edge only
func TestSynthBeatClickOnRisingEdge(t *testing.T) {
	s := NewSynth()

	s.SetBeat(true)
	buf := make([][2]float64, 128)
	s.Stream(buf)

	nonzero := false
	for _, frame := range buf {
		if frame[0] != 0 {
			nonzero = true
			break
		}
	}
	if !nonzero {
		t.Error("Expected click output on rising beat edge")
	}

	// Falling edge fires nothing new; drain the click first
	drain := make([][2]float64, 4096)
	s.Stream(drain)
	s.SetBeat(false)
	s.Stream(buf)
	for i, frame := range buf {
		if frame[0] != 0 {
			t.Fatalf("Frame %d: expected no click on falling edge, got %v", i, frame[0])
		}
	}
}

// TestSynthVolumeClamped verifies volume bounds
func TestSynthVolumeClamped(t *testing.T) {
	s := NewSynth()

	s.SetVolume(-0.5)
	if got := s.Volume(); got != 0 {
		t.Errorf("Expected volume clamped to 0, got %v", got)
	}

	s.SetVolume(2.0)
	if got := s.Volume(); got != 1 {
		t.Errorf("Expected volume clamped to 1, got %v", got)
	}

	s.SetVolume(0.5)
	s.AdjustVolume(0.2)
	if got := s.Volume(); math.Abs(got-0.7) > 1e-12 {
		t.Errorf("Expected volume 0.7, got %v", got)
	}
}
