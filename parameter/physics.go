package parameter

// Playfield dimensions in simulation units (y grows downward)
const (
	PlayfieldWidth  = 1200.0
	PlayfieldHeight = 700.0
)

// Gravity and terminal velocity, per tick
const (
	GravityAccel = 0.8
	MaxFallSpeed = 20.0
)

// Vertical collision bands, measured from the platform edge being tested
const (
	// HeadBandDepth: player top in [platform bottom - HeadBandDepth, platform bottom] is a head hit
	HeadBandDepth = 10.0

	// FootBandAbove/FootBandBelow: player bottom in [top - FootBandAbove, top + FootBandBelow] is a landing
	FootBandAbove = 5.0
	FootBandBelow = 15.0

	// CollisionInset trims both platform sides for vertical tests to avoid corner snagging
	CollisionInset = 5.0
)

// Moving platform defaults applied when a manifest omits speed or range
const (
	VerticalPlatformSpeed   = 1.5
	VerticalPlatformRange   = 80.0
	HorizontalPlatformSpeed = 2.0
	HorizontalPlatformRange = 100.0
)
