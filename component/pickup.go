package component

import (
	"github.com/lixenwraith/snowhop/core"
)

// Pickup is a collectible gift, positioned by its center
// Collected transitions false to true at most once per session
type Pickup struct {
	Center    core.Vec
	W, H      float64
	Collected bool
}

// Rect returns the pickup's bounding box
func (p *Pickup) Rect() core.Rect {
	return core.RectAround(p.Center, p.W, p.H)
}
