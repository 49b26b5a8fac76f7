package genetic

import (
	"testing"

	"github.com/lixenwraith/gene-bass/core"
)

func testConfig(seed uint64) Config {
	return Config{PopulationSize: 16, MutationRate: 0.05, Seed: seed}
}

// TestEvaluateSelectsMaximum verifies best score equals the population
// maximum and the best genome is present in the population
func TestEvaluateSelectsMaximum(t *testing.T) {
	e := NewEngine(DefaultProgression, &JazzTable, testConfig(1))

	max := Score(&e.pop.Genomes[0], e.prog, e.table)
	for i := 1; i < len(e.pop.Genomes); i++ {
		if s := Score(&e.pop.Genomes[i], e.prog, e.table); s > max {
			max = s
		}
	}

	best := e.Best()
	if best.Score != max {
		t.Errorf("Expected best score %d, got %d", max, best.Score)
	}

	found := false
	for i := range e.pop.Genomes {
		if e.pop.Genomes[i] == best.Genome {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected best genome to be a member of the evaluated population")
	}
}

// TestEvaluateTieBreakFirstWins verifies that of equal-scoring genomes
// the earliest in population order is kept
func TestEvaluateTieBreakFirstWins(t *testing.T) {
	e := NewEngine(DefaultProgression, &JazzTable, testConfig(2))

	// Two distinct genomes with identical scores: waveforms 0 and 2 are
	// equidistant from the centered timbre
	high1 := Genome{}
	high2 := Genome{}
	low := Genome{}
	for i := range high1 {
		high1[i] = StepGene{Note: 0, Octave: 1, Waveform: core.WaveSquare}
		high2[i] = StepGene{Note: 0, Octave: 1, Waveform: core.WaveTriangle}
		low[i] = StepGene{Note: 6, Octave: 3, Waveform: core.WaveSine}
	}

	e.pop.Genomes = []Genome{low, high1, high2}
	e.Evaluate()

	s1 := Score(&high1, e.prog, e.table)
	s2 := Score(&high2, e.prog, e.table)
	if s1 != s2 {
		t.Fatalf("Test setup broken: expected equal scores, got %d and %d", s1, s2)
	}

	best := e.Best()
	if best.Genome != high1 {
		t.Error("Expected first-encountered genome to win the tie")
	}
	if best.Score != s1 {
		t.Errorf("Expected best score %d, got %d", s1, best.Score)
	}
}

// TestReinforceKeepsSelectionValid verifies the best genome is
// re-derived from the mutated population
func TestReinforceKeepsSelectionValid(t *testing.T) {
	e := NewEngine(DefaultProgression, &JazzTable, testConfig(3))

	e.Reinforce()

	if e.Reinforcements() != 1 {
		t.Errorf("Expected 1 reinforcement, got %d", e.Reinforcements())
	}
	if e.Resets() != 0 {
		t.Errorf("Expected 0 resets, got %d", e.Resets())
	}

	max := Score(&e.pop.Genomes[0], e.prog, e.table)
	for i := 1; i < len(e.pop.Genomes); i++ {
		if s := Score(&e.pop.Genomes[i], e.prog, e.table); s > max {
			max = s
		}
	}
	if e.Best().Score != max {
		t.Errorf("Expected best score %d after reinforce, got %d", max, e.Best().Score)
	}
}

// TestReinforceZeroRateIsStable verifies reinforcement with a zero
// mutation rate leaves the best genome untouched
func TestReinforceZeroRateIsStable(t *testing.T) {
	cfg := Config{PopulationSize: 8, MutationRate: 0, Seed: 4}
	e := NewEngine(DefaultProgression, &JazzTable, cfg)

	before := e.Best()
	e.Reinforce()
	after := e.Best()

	if before.Genome != after.Genome || before.Score != after.Score {
		t.Error("Expected best genome unchanged under rate=0 reinforcement")
	}
}

// TestResetReplacesPopulation verifies a reset draws a fresh population
// and re-evaluates
func TestResetReplacesPopulation(t *testing.T) {
	e := NewEngine(DefaultProgression, &JazzTable, testConfig(5))

	before := make([]Genome, len(e.pop.Genomes))
	copy(before, e.pop.Genomes)

	e.Reset()

	if e.Resets() != 1 {
		t.Errorf("Expected 1 reset, got %d", e.Resets())
	}

	same := 0
	for i := range e.pop.Genomes {
		if e.pop.Genomes[i] == before[i] {
			same++
		}
	}
	if same == len(before) {
		t.Error("Expected reset to replace the population contents")
	}

	max := Score(&e.pop.Genomes[0], e.prog, e.table)
	for i := 1; i < len(e.pop.Genomes); i++ {
		if s := Score(&e.pop.Genomes[i], e.prog, e.table); s > max {
			max = s
		}
	}
	if e.Best().Score != max {
		t.Errorf("Expected best score %d after reset, got %d", max, e.Best().Score)
	}
}

// TestEngineDeterministicWithSeed verifies two engines with the same
// seed evolve identically
func TestEngineDeterministicWithSeed(t *testing.T) {
	e1 := NewEngine(DefaultProgression, &JazzTable, testConfig(77))
	e2 := NewEngine(DefaultProgression, &JazzTable, testConfig(77))

	for i := 0; i < 3; i++ {
		e1.Reinforce()
		e2.Reinforce()
	}
	e1.Reset()
	e2.Reset()

	if e1.Best().Score != e2.Best().Score {
		t.Errorf("Expected equal best scores, got %d and %d", e1.Best().Score, e2.Best().Score)
	}
	if e1.Best().Genome != e2.Best().Genome {
		t.Error("Expected identical best genomes for equal seeds")
	}
}

// TestGenerationCounts verifies the transition counters
func TestGenerationCounts(t *testing.T) {
	e := NewEngine(DefaultProgression, &JazzTable, testConfig(6))

	e.Reinforce()
	e.Reinforce()
	e.Reset()

	if e.Generation() != 3 {
		t.Errorf("Expected generation 3, got %d", e.Generation())
	}
	if e.Reinforcements() != 2 || e.Resets() != 1 {
		t.Errorf("Expected 2 reinforcements and 1 reset, got %d and %d", e.Reinforcements(), e.Resets())
	}
}
