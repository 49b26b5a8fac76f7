package sequencer

import "sync/atomic"

// Signal is the outcome of consuming the latched feedback flags
type Signal int

const (
	SignalNone Signal = iota
	SignalLike
	SignalDislike
)

// Feedback latches momentary like/dislike inputs until the sequencer
// consumes them at a sequence boundary. Single writer (the input
// sampler), single reader-and-clearer (the sequencer at wrap). A signal
// asserted mid-traversal is deferred to the next wrap, never dropped.
type Feedback struct {
	like    atomic.Bool
	dislike atomic.Bool
}

// Like latches the positive-feedback flag
func (f *Feedback) Like() {
	f.like.Store(true)
}

// Dislike latches the negative-feedback flag
func (f *Feedback) Dislike() {
	f.dislike.Store(true)
}

// Consume clears both flags and reports which transition should fire.
// If both were latched during the traversal, like wins; this is the
// deterministic tie-break, not an oversight.
func (f *Feedback) Consume() Signal {
	liked := f.like.Swap(false)
	disliked := f.dislike.Swap(false)
	switch {
	case liked:
		return SignalLike
	case disliked:
		return SignalDislike
	default:
		return SignalNone
	}
}

// Pending reports the latched flags without clearing them (UI readout)
func (f *Feedback) Pending() (like, dislike bool) {
	return f.like.Load(), f.dislike.Load()
}
