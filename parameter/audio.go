package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Voice envelope (seconds)
const (
	BassAttack  = 0.005
	BassDecay   = 0.08
	BassSustain = 0.6 // Level, not time
	BassRelease = 0.12
)

// Beat click
const (
	ClickDecay = 0.03
	ClickFreq  = 2000.0
	ClickLevel = 0.25
)

// Mix levels
const (
	VoiceMixLevel   = 0.6
	SubOscMixLevel  = 0.4
	MasterVolume    = 0.8
	VolumeIncrement = 0.1
)
