package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the simulation and render interval (~60 FPS, one tick per frame)
	FrameUpdateInterval = time.Second / 60

	// TicksPerSecond is the nominal simulation rate used for time displays
	TicksPerSecond = 60

	// EventChannelSize buffers terminal events between the poller and the frame loop
	EventChannelSize = 256

	// StatsSampleInterval is how often the frame clock refreshes the fps metric
	StatsSampleInterval = time.Second
)

// Session
const (
	// StartingLives is restored whenever a level is (re)started from a menu
	StartingLives = 3
)

// Event Queue
const (
	// EventQueueSize must be a power of two
	EventQueueSize  = 64
	EventBufferMask = EventQueueSize - 1
)
