package genetic

import (
	"math/rand/v2"

	"github.com/lixenwraith/gene-bass/parameter"
)

// Config holds engine parameters
type Config struct {
	// PopulationSize is the number of genomes maintained
	PopulationSize int
	// MutationRate is the per-field replacement probability (0.0-1.0)
	MutationRate float64
	// Seed for random number generation (0 for random seed)
	Seed uint64
}

// DefaultConfig returns the tuned engine configuration
func DefaultConfig() Config {
	return Config{
		PopulationSize: parameter.GAPopulationSize,
		MutationRate:   parameter.GAMutationRate,
		Seed:           0,
	}
}

// Best is the winning genome of the most recent evaluation pass together
// with its score. It is replaced only as a whole, never field by field.
type Best struct {
	Genome Genome
	Score  int
}

// Stats summarizes the most recent evaluation pass
type Stats struct {
	Best    int
	Worst   int
	Average float64
}

// Engine owns the population and the current best genome and runs the
// mutate/evaluate and randomize/evaluate cycles driven by listener
// feedback. It performs mutation-only hill-climbing: no crossover, by
// intent.
//
// All methods run on the control-rate path; the engine is not safe for
// concurrent use and does not need to be under the cooperative model.
type Engine struct {
	pop   *Population
	prog  Progression
	table *FitnessTable
	rng   *rand.Rand

	config         Config
	best           Best
	stats          Stats
	reinforcements int
	resets         int
}

// NewEngine creates an engine with a randomized, evaluated population
func NewEngine(prog Progression, table *FitnessTable, config Config) *Engine {
	prog.checkDivides()

	var rng *rand.Rand
	if config.Seed == 0 {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	} else {
		rng = rand.New(rand.NewPCG(config.Seed, config.Seed))
	}

	e := &Engine{
		pop:    NewPopulation(config.PopulationSize),
		prog:   prog,
		table:  table,
		rng:    rng,
		config: config,
	}
	e.pop.Randomize(e.rng)
	e.Evaluate()
	return e
}

// Evaluate scores every genome and atomically replaces the best with the
// maximum scorer. Ties keep the first-encountered genome in population
// order, so repeated passes over an unchanged population are stable.
func (e *Engine) Evaluate() {
	bestIdx := 0
	bestScore := Score(&e.pop.Genomes[0], e.prog, e.table)
	worst := bestScore
	total := bestScore

	for i := 1; i < len(e.pop.Genomes); i++ {
		s := Score(&e.pop.Genomes[i], e.prog, e.table)
		if s > bestScore {
			bestScore = s
			bestIdx = i
		}
		if s < worst {
			worst = s
		}
		total += s
	}

	e.best = Best{Genome: e.pop.Genomes[bestIdx], Score: bestScore}
	e.stats = Stats{
		Best:    bestScore,
		Worst:   worst,
		Average: float64(total) / float64(len(e.pop.Genomes)),
	}
}

// Reinforce mutates the whole population in place and re-evaluates.
// Triggered by a latched positive-feedback signal, once per traversal.
func (e *Engine) Reinforce() {
	e.pop.Mutate(e.rng, e.config.MutationRate)
	e.reinforcements++
	e.Evaluate()
}

// Reset re-randomizes the whole population and re-evaluates. Triggered by
// a latched negative-feedback signal, once per traversal.
func (e *Engine) Reset() {
	e.pop.Randomize(e.rng)
	e.resets++
	e.Evaluate()
}

// Best returns the winner of the most recent evaluation pass
func (e *Engine) Best() Best {
	return e.best
}

// Stats returns score statistics from the most recent evaluation pass
func (e *Engine) Stats() Stats {
	return e.stats
}

// Generation returns the number of feedback-driven transitions applied
func (e *Engine) Generation() int {
	return e.reinforcements + e.resets
}

// Reinforcements returns how many positive-feedback transitions fired
func (e *Engine) Reinforcements() int {
	return e.reinforcements
}

// Resets returns how many negative-feedback transitions fired
func (e *Engine) Resets() int {
	return e.resets
}
