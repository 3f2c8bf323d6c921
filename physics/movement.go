package physics

// ApplyGravity adds one tick of downward acceleration and clamps to terminal velocity
// Returns true if the fall speed was capped
func ApplyGravity(velY *float64, accel, maxFall float64) bool {
	*velY += accel
	if *velY > maxFall {
		*velY = maxFall
		return true
	}
	return false
}
