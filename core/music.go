package core

// Waveform identifies synthesizer timbres selectable per step
type Waveform int

const (
	WaveSquare Waveform = iota
	WaveSaw
	WaveTriangle
	WaveSine
	WaveformCount
)

func (w Waveform) String() string {
	names := [...]string{"square", "saw", "triangle", "sine"}
	if int(w) < len(names) {
		return names[w]
	}
	return "unknown"
}

// Valid returns true for a waveform inside the gene domain
func (w Waveform) Valid() bool {
	return w >= 0 && w < WaveformCount
}

// ChordType identifies harmonic context for fitness scoring
type ChordType int

const (
	ChordMajor ChordType = iota
	ChordMinor
	ChordDominant
	ChordHalfDim
	ChordDim
	ChordAug
	ChordSus
	ChordTypeCount
)

func (c ChordType) String() string {
	names := [...]string{"maj7", "min7", "dom7", "m7b5", "dim7", "aug", "sus4"}
	if int(c) < len(names) {
		return names[c]
	}
	return "unknown"
}

// Chord pairs a chord quality with its root pitch class (0-11)
type Chord struct {
	Type ChordType
	Root int
}

// ScaleDegree returns the chromatic distance of a pitch class from the
// chord root, always in [0, 12)
func (c Chord) ScaleDegree(note int) int {
	return (note - c.Root + 12) % 12
}
