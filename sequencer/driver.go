package sequencer

import "time"

// ControlSource supplies the bounded tempo control value, sampled once
// per tick
type ControlSource interface {
	Sample() float64
}

// Timer abstracts step scheduling so the loop can be driven without real
// delays in tests
type Timer interface {
	After(d time.Duration) <-chan time.Time
}

type realTimer struct{}

func (realTimer) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// Driver runs the control-rate cadence: one Tick per step interval on a
// single goroutine. The whole evolution pass triggered by a wrap runs
// inside the tick, before the next step is scheduled, so ticks cannot
// overlap.
type Driver struct {
	seq     *Sequencer
	control ControlSource
	timer   Timer
	onTick  func()
}

// NewDriver creates a driver using the real clock
func NewDriver(seq *Sequencer, control ControlSource) *Driver {
	return &Driver{seq: seq, control: control, timer: realTimer{}}
}

// SetTimer injects an alternate time source
func (d *Driver) SetTimer(t Timer) {
	d.timer = t
}

// OnTick registers a hook invoked after every tick (UI redraw)
func (d *Driver) OnTick(fn func()) {
	d.onTick = fn
}

// Run ticks until stop is closed. The system otherwise runs indefinitely;
// there is no timeout and no cancellation of an in-flight step.
func (d *Driver) Run(stop <-chan struct{}) {
	for {
		interval := d.seq.Tick(d.control.Sample())
		if d.onTick != nil {
			d.onTick()
		}
		select {
		case <-stop:
			return
		case <-d.timer.After(interval):
		}
	}
}
