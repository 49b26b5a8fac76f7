package genetic

import (
	"fmt"
	"math/rand/v2"

	"github.com/lixenwraith/gene-bass/core"
	"github.com/lixenwraith/gene-bass/parameter"
)

// StepGene is the per-step attribute bundle of one candidate bassline.
// Every field has a closed domain; no operation may produce a value
// outside it.
type StepGene struct {
	Note     int           // Pitch class, [0, NoteClasses)
	Octave   int           // [0, OctaveRange)
	Waveform core.Waveform // [0, WaveformCount)
	Gate     bool
}

// check panics on a gene outside its domain. An out-of-domain field after
// randomize or mutate is a construction bug, not a runtime condition.
func (g StepGene) check() {
	if g.Note < 0 || g.Note >= parameter.NoteClasses {
		panic(fmt.Sprintf("genetic: note %d outside [0,%d)", g.Note, parameter.NoteClasses))
	}
	if g.Octave < 0 || g.Octave >= parameter.OctaveRange {
		panic(fmt.Sprintf("genetic: octave %d outside [0,%d)", g.Octave, parameter.OctaveRange))
	}
	if !g.Waveform.Valid() {
		panic(fmt.Sprintf("genetic: waveform %d outside [0,%d)", g.Waveform, core.WaveformCount))
	}
}

// MIDINote returns the gene's pitch as a MIDI note number
func (g StepGene) MIDINote() int {
	return parameter.MIDINote(g.Note, g.Octave)
}

// Genome is one candidate bassline: an ordered, fixed-length step
// sequence. Order is time. The array type copies as a single unit, which
// best-genome replacement relies on.
type Genome [parameter.SequenceLen]StepGene

// Population is the fixed-size collection of genomes under search.
// Element order is stable; it provides the deterministic tie-break during
// selection but carries no musical meaning.
type Population struct {
	Genomes []Genome
}

// NewPopulation creates an unrandomized population of the given size
func NewPopulation(size int) *Population {
	if size <= 0 {
		panic(fmt.Sprintf("genetic: population size %d must be positive", size))
	}
	return &Population{Genomes: make([]Genome, size)}
}

// Size returns the fixed population size
func (p *Population) Size() int {
	return len(p.Genomes)
}

// Randomize draws every field of every gene of every genome independently
// and uniformly from its domain. Deterministic given a seeded rng.
func (p *Population) Randomize(rng *rand.Rand) {
	for i := range p.Genomes {
		for j := range p.Genomes[i] {
			p.Genomes[i][j] = randomGene(rng)
		}
	}
	p.validate()
}

// Mutate runs an independent Bernoulli trial per gene field: with
// probability rate the field is replaced by a fresh uniform draw from its
// domain. The granularity is per-field, not per-gene or per-genome, and
// there is no crossover between genomes.
func (p *Population) Mutate(rng *rand.Rand, rate float64) {
	for i := range p.Genomes {
		for j := range p.Genomes[i] {
			g := &p.Genomes[i][j]
			if rng.Float64() < rate {
				g.Note = rng.IntN(parameter.NoteClasses)
			}
			if rng.Float64() < rate {
				g.Octave = rng.IntN(parameter.OctaveRange)
			}
			if rng.Float64() < rate {
				g.Waveform = core.Waveform(rng.IntN(int(core.WaveformCount)))
			}
			if rng.Float64() < rate {
				g.Gate = rng.IntN(2) == 1
			}
		}
	}
	p.validate()
}

func (p *Population) validate() {
	if len(p.Genomes) == 0 {
		panic("genetic: empty population")
	}
	for i := range p.Genomes {
		for j := range p.Genomes[i] {
			p.Genomes[i][j].check()
		}
	}
}

func randomGene(rng *rand.Rand) StepGene {
	return StepGene{
		Note:     rng.IntN(parameter.NoteClasses),
		Octave:   rng.IntN(parameter.OctaveRange),
		Waveform: core.Waveform(rng.IntN(int(core.WaveformCount))),
		Gate:     rng.IntN(2) == 1,
	}
}
