package genetic

import (
	"fmt"

	"github.com/lixenwraith/gene-bass/core"
	"github.com/lixenwraith/gene-bass/parameter"
)

// FitnessTable weights scale degrees per chord type. Rows are chord
// types, columns are table degrees 0-6. Chromatic scale degrees map onto
// the columns pairwise: an even chromatic degree d consults column d/2,
// odd degrees are unused and weigh zero.
type FitnessTable [core.ChordTypeCount][7]int

// JazzTable encodes harmonic preference for a walking-bass idiom.
// Columns (even chromatic degrees): unison, 2nd, 3rd, tritone,
// augmented 5th, minor 7th, unused.
var JazzTable = FitnessTable{
	core.ChordMajor:    {6, 2, 5, -3, -2, -1, 0},
	core.ChordMinor:    {6, 2, -3, -2, 1, 3, 0},
	core.ChordDominant: {6, 2, 4, -1, -2, 5, 0},
	core.ChordHalfDim:  {5, -2, -3, 4, 1, 3, 0},
	core.ChordDim:      {5, -2, -3, 4, -1, -2, 0},
	core.ChordAug:      {5, 1, 4, -2, 5, -1, 0},
	core.ChordSus:      {6, 4, -2, -1, 1, 3, 0},
}

// degreeWeight resolves a chromatic scale degree against the table
func (t *FitnessTable) degreeWeight(chord core.ChordType, degree int) int {
	if degree%2 != 0 {
		return 0
	}
	return t[chord][degree/2]
}

// Progression is the fixed harmonic context: its chords partition the
// sequence into equal contiguous segments
type Progression []core.Chord

// DefaultProgression is the ii-V flavored four-chord cycle the engine
// scores against
var DefaultProgression = Progression{
	{Type: core.ChordMajor, Root: parameter.NoteC},
	{Type: core.ChordMinor, Root: parameter.NoteA},
	{Type: core.ChordDominant, Root: parameter.NoteG},
	{Type: core.ChordMinor, Root: parameter.NoteD},
}

// checkDivides panics unless the progression evenly partitions the
// sequence. An uneven progression is a construction bug.
func (p Progression) checkDivides() {
	if len(p) == 0 || parameter.SequenceLen%len(p) != 0 {
		panic(fmt.Sprintf("genetic: progression of %d chords does not divide %d steps", len(p), parameter.SequenceLen))
	}
}

// Score rates a genome against a chord progression and preference table.
// Pure and total: no randomness, no hidden state, identical inputs give
// identical output. Higher is better; the result is unbounded and signed.
func Score(g *Genome, prog Progression, table *FitnessTable) int {
	prog.checkDivides()
	segLen := parameter.SequenceLen / len(prog)

	score := 0
	for i := 0; i < parameter.SequenceLen; i++ {
		gene := g[i]
		chord := prog[i/segLen]

		// Harmonic fit of the pitch class within its segment's chord
		score += table.degreeWeight(chord.Type, chord.ScaleDegree(gene.Note))

		// Centering pressure on register and timbre
		score -= abs(gene.Octave-parameter.CenterOctave) * parameter.OctavePenaltyWeight
		score -= abs(int(gene.Waveform)-parameter.CenterWaveform) * parameter.WaveformPenaltyWeight

		// Melodic smoothness: small intervals preferred, sustained
		// repetition of the same sounding pitch penalized extra
		if i > 0 {
			prev := g[i-1]
			interval := (gene.Note + parameter.NoteClasses*gene.Octave) -
				(prev.Note + parameter.NoteClasses*prev.Octave)
			score -= abs(interval)
			if interval == 0 && gene.Gate && prev.Gate {
				score -= parameter.RepeatPenalty
			}
		}
	}
	return score
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
