package input

import (
	"math"
	"sync/atomic"
)

// Control is the bounded tempo control value in [0,1], written by the
// input goroutine and sampled once per tick by the sequencer driver
type Control struct {
	bits atomic.Uint64
}

// NewControl creates a control at the given initial value
func NewControl(v float64) *Control {
	c := &Control{}
	c.Set(v)
	return c
}

// Set stores a control value, clamped into [0,1]
func (c *Control) Set(v float64) {
	if v < 0 || math.IsNaN(v) {
		v = 0
	} else if v > 1 {
		v = 1
	}
	c.bits.Store(math.Float64bits(v))
}

// Nudge shifts the control value by delta, clamping
func (c *Control) Nudge(delta float64) {
	c.Set(c.Sample() + delta)
}

// Sample implements sequencer.ControlSource
func (c *Control) Sample() float64 {
	return math.Float64frombits(c.bits.Load())
}
