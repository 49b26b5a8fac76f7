package sequencer

import (
	"time"

	"github.com/lixenwraith/gene-bass/core"
	"github.com/lixenwraith/gene-bass/genetic"
	"github.com/lixenwraith/gene-bass/parameter"
)

// NoteEvent is the per-step trigger payload handed to the audio renderer.
// The renderer owns all oscillator and envelope state; this is trigger
// data only.
type NoteEvent struct {
	Frequency float64 // Hz
	Waveform  core.Waveform
	Gate      bool
}

// Renderer is the external audio collaborator consuming step output
type Renderer interface {
	// Trigger receives the note event for the step just reached
	Trigger(ev NoteEvent)
	// SetBeat receives the beat-indicator level, toggled once per tick
	SetBeat(on bool)
}

// Sequencer advances a cyclic step counter on tempo ticks, emits note
// events from the current best genome, and edge-triggers evolution
// transitions at sequence boundaries. All state lives on the control-rate
// path; ticks are never re-entered under the cooperative model.
type Sequencer struct {
	engine   *genetic.Engine
	out      Renderer
	feedback Feedback
	clock    TempoClock

	step int
	beat bool
}

// New creates a sequencer playing the engine's best genome into out
func New(engine *genetic.Engine, out Renderer) *Sequencer {
	return &Sequencer{engine: engine, out: out}
}

// Feedback exposes the latched flags for the input sampler
func (s *Sequencer) Feedback() *Feedback {
	return &s.feedback
}

// Tick performs one step: recompute tempo, emit the current step's note
// event and beat toggle, advance, and on wrap apply at most one latched
// feedback transition. Returns the interval until the next tick.
func (s *Sequencer) Tick(control float64) time.Duration {
	interval := s.clock.Update(control)

	gene := s.engine.Best().Genome[s.step]
	s.out.Trigger(NoteEvent{
		Frequency: core.NoteFreq(gene.MIDINote()),
		Waveform:  gene.Waveform,
		Gate:      gene.Gate,
	})

	// Subdivision click, independent of note gating
	s.beat = !s.beat
	s.out.SetBeat(s.beat)

	s.step = (s.step + 1) % parameter.SequenceLen
	if s.step == 0 {
		switch s.feedback.Consume() {
		case SignalLike:
			s.engine.Reinforce()
		case SignalDislike:
			s.engine.Reset()
		}
	}

	return interval
}

// Step returns the current step index
func (s *Sequencer) Step() int {
	return s.step
}

// BeatIndicator returns the current beat-indicator level
func (s *Sequencer) BeatIndicator() bool {
	return s.beat
}

// BPM returns the tempo applied on the most recent tick
func (s *Sequencer) BPM() int {
	return s.clock.BPM()
}
