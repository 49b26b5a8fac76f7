package audio

import (
	"math"

	"github.com/lixenwraith/gene-bass/parameter"
)

// clickVoice plays the beat-indicator transient: one short burst per
// rising edge of the indicator
type clickVoice struct {
	buffer []float64
	pos    int
	active bool
}

func newClickVoice() *clickVoice {
	return &clickVoice{buffer: generateClick()}
}

func (c *clickVoice) Trigger() {
	c.pos = 0
	c.active = true
}

func (c *clickVoice) Sample() float64 {
	if !c.active || c.pos >= len(c.buffer) {
		c.active = false
		return 0
	}
	s := c.buffer[c.pos]
	c.pos++
	return s
}

func (c *clickVoice) Reset() {
	c.active = false
	c.pos = 0
}

func generateClick() []float64 {
	sr := parameter.AudioSampleRate
	duration := int(float64(sr) * parameter.ClickDecay)
	buf := make([]float64, duration)

	phase := 0.0
	for i := 0; i < duration; i++ {
		t := float64(i) / float64(duration)
		amp := math.Exp(-9 * t)
		buf[i] = math.Sin(2*math.Pi*phase) * amp * parameter.ClickLevel
		phase += parameter.ClickFreq / float64(sr)
	}

	return buf
}
