package system

import (
	"github.com/lixenwraith/snowhop/component"
	"github.com/lixenwraith/snowhop/core"
	"github.com/lixenwraith/snowhop/vmath"
)

// CollectPickups marks every uncollected pickup overlapping box as collected
// Returns the number collected this call
func CollectPickups(box core.Rect, pickups []*component.Pickup) int {
	n := 0
	for _, p := range pickups {
		if p.Collected {
			continue
		}
		if vmath.Overlaps(box, p.Rect()) {
			p.Collected = true
			n++
		}
	}
	return n
}

// Remaining counts uncollected pickups
func Remaining(pickups []*component.Pickup) int {
	n := 0
	for _, p := range pickups {
		if !p.Collected {
			n++
		}
	}
	return n
}
