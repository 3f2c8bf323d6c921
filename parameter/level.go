package parameter

// Entity sizes taken from the level art
const (
	PickupWidth  = 32.0
	PickupHeight = 30.0

	HazardWidth  = 25.0
	HazardHeight = 35.0

	// HazardSpacing is the horizontal stride between spikes in a cluster
	HazardSpacing = 40.0
)
