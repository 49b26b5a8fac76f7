package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gene-bass/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Player owns the speaker lifecycle and the output mixer. If the speaker
// cannot initialize the player stays silent and the sequencer keeps
// running; no audio backend is a degraded mode, not an error state.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	synth       *Synth
	initialized bool
}

// NewPlayer creates a player for the given synth
func NewPlayer(synth *Synth) *Player {
	return &Player{
		mixer: &beep.Mixer{},
		synth: synth,
	}
}

// Initialize sets up the audio system and starts streaming
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration))
	if err != nil {
		return err
	}

	p.mixer.Add(p.synth)
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup stops all sound output
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	p.synth.Reset()
	p.mixer.Clear()
	p.initialized = false
}

// IsInitialized reports whether the speaker is running
func (p *Player) IsInitialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}
