package system

import (
	"github.com/lixenwraith/snowhop/component"
	"github.com/lixenwraith/snowhop/physics"
)

// PlatformController advances movable platforms along a triangle wave around their origin
type PlatformController struct{}

// NewPlatformController creates the platform controller
func NewPlatformController() *PlatformController {
	return &PlatformController{}
}

// Update moves one platform a single tick; static platforms are untouched
// Direction flips once displacement strictly exceeds Range, so a platform overshoots its
// range by up to one step before reversing.
func (c *PlatformController) Update(p *component.Platform) {
	if !p.Movable {
		return
	}

	p.Vel = p.Velocity()
	physics.Integrate(&p.Body)

	d := p.Displacement()
	switch {
	case d > p.Range:
		p.Direction = -1
	case d < -p.Range:
		p.Direction = 1
	}
}

// UpdateAll advances every platform in order
func (c *PlatformController) UpdateAll(platforms []*component.Platform) {
	for _, p := range platforms {
		c.Update(p)
	}
}
