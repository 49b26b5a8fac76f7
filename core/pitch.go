package core

// NoteFrequencies contains precomputed frequencies for MIDI notes 0-127
// A4 (note 69) = 440Hz, equal temperament
var NoteFrequencies [128]float64

func init() {
	for i := range NoteFrequencies {
		// Split into whole octaves and a residual semitone offset so
		// octave steps scale by exact powers of two
		n := i - 69
		octaves := n / 12
		rem := n % 12
		if rem < 0 {
			rem += 12
			octaves--
		}

		f := 440.0 * exp2Fraction(float64(rem)/12.0)
		for o := 0; o < octaves; o++ {
			f *= 2
		}
		for o := 0; o > octaves; o-- {
			f /= 2
		}
		NoteFrequencies[i] = f
	}
}

// exp2Fraction computes 2^x for x in [0,1) using a Taylor series
func exp2Fraction(x float64) float64 {
	ln2 := 0.693147180559945
	y := x * ln2
	sum := 1.0
	term := 1.0
	for i := 1; i < 20; i++ {
		term *= y / float64(i)
		sum += term
	}
	return sum
}

// NoteFreq returns frequency in Hz for MIDI note number
func NoteFreq(midi int) float64 {
	if midi < 0 || midi >= 128 {
		return 0
	}
	return NoteFrequencies[midi]
}
