package core

import (
	"math"
	"testing"
)

// TestNoteFreqReference verifies the equal-temperament anchor points
func TestNoteFreqReference(t *testing.T) {
	if got := NoteFreq(69); got != 440.0 {
		t.Errorf("Expected A4 = 440Hz exactly, got %v", got)
	}
	if got := NoteFreq(81); math.Abs(got-880.0) > 1e-9 {
		t.Errorf("Expected A5 = 880Hz, got %v", got)
	}
	if got := NoteFreq(57); math.Abs(got-220.0) > 1e-9 {
		t.Errorf("Expected A3 = 220Hz, got %v", got)
	}
}

// TestNoteFreqMonotonic verifies the table rises strictly with pitch
func TestNoteFreqMonotonic(t *testing.T) {
	for i := 1; i < 128; i++ {
		if NoteFrequencies[i] <= NoteFrequencies[i-1] {
			t.Errorf("Expected frequency to rise at note %d: %v <= %v", i, NoteFrequencies[i], NoteFrequencies[i-1])
		}
	}
}

// TestNoteFreqOutOfRange verifies out-of-range notes return silence
func TestNoteFreqOutOfRange(t *testing.T) {
	if got := NoteFreq(-1); got != 0 {
		t.Errorf("Expected 0 for note -1, got %v", got)
	}
	if got := NoteFreq(128); got != 0 {
		t.Errorf("Expected 0 for note 128, got %v", got)
	}
}

// TestOctaveDoubling verifies each octave doubles frequency
func TestOctaveDoubling(t *testing.T) {
	for midi := 0; midi < 116; midi++ {
		ratio := NoteFrequencies[midi+12] / NoteFrequencies[midi]
		if math.Abs(ratio-2.0) > 1e-9 {
			t.Errorf("Expected octave above note %d to double, got ratio %v", midi, ratio)
		}
	}
}
