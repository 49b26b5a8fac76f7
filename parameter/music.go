package parameter

import "time"

// Tempo and Timing
const (
	DefaultBPM   = 120
	MinBPM       = 60
	MaxBPM       = 300
	StepsPerBeat = 4 // 16th notes

	// SequenceLen is the number of steps in one bassline traversal
	SequenceLen = 64
)

// ClampBPM bounds a raw tempo value into the supported range.
// Out-of-range control readings are expected hardware behavior, not errors.
func ClampBPM(bpm int) int {
	if bpm < MinBPM {
		return MinBPM
	}
	if bpm > MaxBPM {
		return MaxBPM
	}
	return bpm
}

// StepInterval returns the duration of one sequencer step at the given BPM
func StepInterval(bpm int) time.Duration {
	return time.Minute / time.Duration(ClampBPM(bpm)*StepsPerBeat)
}

// Gene value domains
const (
	NoteClasses = 12 // Chromatic pitch classes per octave
	OctaveRange = 4  // Gene octaves above the bass register base
)

// BassBaseNote transposes sequence pitches into the bass register.
// Gene octave 1 (the centered octave) lands on C3-B3.
const BassBaseNote = 36 // C2

// Note names (semitone offset within octave)
const (
	NoteC  = 0
	NoteCs = 1
	NoteDb = 1
	NoteD  = 2
	NoteDs = 3
	NoteEb = 3
	NoteE  = 4
	NoteF  = 5
	NoteFs = 6
	NoteGb = 6
	NoteG  = 7
	NoteGs = 8
	NoteAb = 8
	NoteA  = 9
	NoteAs = 10
	NoteBb = 10
	NoteB  = 11
)

// MIDINote computes the MIDI note number for a gene pitch class + octave,
// transposed into the bass register
func MIDINote(note, octave int) int {
	return BassBaseNote + octave*NoteClasses + note
}
