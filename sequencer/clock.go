package sequencer

import (
	"time"

	"github.com/lixenwraith/gene-bass/parameter"
)

// TempoClock derives the step interval from a bounded control input.
// The interval is recomputed on every tick, so a tempo change applies to
// the very next step with no quantization boundary.
type TempoClock struct {
	bpm      int
	interval time.Duration
}

// BPMFromControl linearly maps a control reading onto the BPM range.
// Readings outside [0,1] are expected from hardware and clamp to the
// range edges.
func BPMFromControl(v float64) int {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return parameter.MinBPM + int(v*float64(parameter.MaxBPM-parameter.MinBPM)+0.5)
}

// ControlForBPM inverts BPMFromControl for seeding the control value
func ControlForBPM(bpm int) float64 {
	bpm = parameter.ClampBPM(bpm)
	return float64(bpm-parameter.MinBPM) / float64(parameter.MaxBPM-parameter.MinBPM)
}

// Update recomputes the step interval from a fresh control sample and
// returns it
func (c *TempoClock) Update(control float64) time.Duration {
	c.bpm = parameter.ClampBPM(BPMFromControl(control))
	c.interval = parameter.StepInterval(c.bpm)
	return c.interval
}

// BPM returns the clamped tempo of the most recent update
func (c *TempoClock) BPM() int {
	return c.bpm
}

// Interval returns the step interval of the most recent update
func (c *TempoClock) Interval() time.Duration {
	return c.interval
}
