package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/snowhop/parameter"
	"github.com/lixenwraith/snowhop/status"
)

// TimeProvider supplies wall-clock readings
type TimeProvider interface {
	Now() time.Time
}

// SystemTime is the real monotonic clock
type SystemTime struct{}

// Now returns the current time with monotonic clock reading
func (SystemTime) Now() time.Time {
	return time.Now()
}

// FrameClock paces the fixed-step loop and measures the achieved frame rate
// The simulation never reads it; ticks are counted, not timed
type FrameClock struct {
	time     TimeProvider
	interval time.Duration
	ticker   *time.Ticker

	windowStart  time.Time
	windowFrames int

	statFrames *atomic.Int64
	statFPS    *status.AtomicFloat
}

// NewFrameClock creates a clock at the given interval; Start must be called before C
func NewFrameClock(tp TimeProvider, interval time.Duration, reg *status.Registry) *FrameClock {
	return &FrameClock{
		time:       tp,
		interval:   interval,
		statFrames: reg.Ints.Get("clock.frames"),
		statFPS:    reg.Floats.Get("clock.fps"),
	}
}

// Start begins ticking
func (c *FrameClock) Start() {
	c.ticker = time.NewTicker(c.interval)
	c.windowStart = c.time.Now()
	c.windowFrames = 0
}

// Stop halts the ticker
func (c *FrameClock) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
	}
}

// C returns the tick channel
func (c *FrameClock) C() <-chan time.Time {
	return c.ticker.C
}

// Frame records a completed frame and refreshes fps once per sample window
func (c *FrameClock) Frame() {
	c.statFrames.Add(1)
	c.windowFrames++

	now := c.time.Now()
	elapsed := now.Sub(c.windowStart)
	if elapsed < parameter.StatsSampleInterval {
		return
	}
	c.statFPS.Set(float64(c.windowFrames) / elapsed.Seconds())
	c.windowStart = now
	c.windowFrames = 0
}

// FPS returns the last measured frame rate
func (c *FrameClock) FPS() float64 {
	return c.statFPS.Get()
}
