package parameter

// Player body
const (
	PlayerWidth  = 30.0
	PlayerHeight = 40.0
)

// Player motion, per tick
const (
	// PlayerSpeed is the horizontal speed while a move key is held
	PlayerSpeed = 5.0

	// MinJumpPower is the upward speed applied on takeoff (tap = hop)
	MinJumpPower = -6.0

	// MaxJumpPower is the strongest upward speed reachable by holding jump (leap)
	MaxJumpPower = -9.0

	// MaxJumpHoldTicks is the number of held ticks over which the boost ramps to MaxJumpPower
	MaxJumpHoldTicks = 20
)
