package parameter

// Genetic Algorithm - Engine Configuration
const (
	// GAPopulationSize is the number of genomes in the population
	GAPopulationSize = 100

	// GAMutationRate is the per-field probability of replacement (0.0-1.0).
	// Each gene field is an independent Bernoulli trial; the rate is not
	// per-gene or per-genome.
	GAMutationRate = 0.01

	// GAProgressionSegments is the number of chords the sequence is
	// partitioned into. Must evenly divide SequenceLen.
	GAProgressionSegments = 4
)

// Fitness weights
const (
	// OctavePenaltyWeight penalizes deviation from the centered octave
	OctavePenaltyWeight = 2

	// WaveformPenaltyWeight penalizes deviation from the centered timbre
	WaveformPenaltyWeight = 2

	// CenterOctave is the preferred gene octave
	CenterOctave = 1

	// CenterWaveform is the preferred waveform ordinal
	CenterWaveform = 1

	// RepeatPenalty applies to a sustained repetition: zero interval with
	// both gates open
	RepeatPenalty = 5
)
