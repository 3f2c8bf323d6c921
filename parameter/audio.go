package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioDefaultVolume is the master volume when SNOWHOP_MASTER_VOLUME is unset
	AudioDefaultVolume = 0.7
)

// Cue shapes
const (
	// VictoryNoteDuration is the length of each arpeggio note in the victory jingle
	VictoryNoteDuration = 160 * time.Millisecond

	PickupChimeDuration = 90 * time.Millisecond
	PickupChimeFreq     = 1318.5 // E6

	HurtBuzzDuration = 180 * time.Millisecond
	HurtBuzzFreq     = 110.0
)

// VictoryArpeggio is the note sequence of the victory jingle (C5 E5 G5 C6)
var VictoryArpeggio = []float64{523.25, 659.25, 783.99, 1046.5}

// Envelope shaping shared by all cues
const (
	CueAttack       = 5 * time.Millisecond
	CueNoteRelease  = 60 * time.Millisecond
	HurtBuzzRelease = 120 * time.Millisecond
)
