package component

import (
	"github.com/lixenwraith/snowhop/core"
)

// Platform is a solid rectangle, optionally oscillating along one axis
type Platform struct {
	core.Body

	Movable  bool
	Vertical bool // Motion axis for movable platforms

	Speed     float64 // Units per tick, 0 for static platforms
	Range     float64 // Max displacement from Origin before reversing
	Direction int     // -1, 0, +1

	// Origin is the center of oscillation (initial top-left corner)
	Origin core.Vec

	// Color is the manifest's color tag, used only for rendering
	Color string
}

// NewStaticPlatform builds a non-moving platform
func NewStaticPlatform(r core.Rect, color string) *Platform {
	return &Platform{
		Body:   core.Body{Pos: core.Vec{X: r.X, Y: r.Y}, W: r.W, H: r.H},
		Origin: core.Vec{X: r.X, Y: r.Y},
		Color:  color,
	}
}

// NewMovingPlatform builds an oscillating platform
// Vertical movers start upward, horizontal movers start rightward
func NewMovingPlatform(r core.Rect, color string, vertical bool, speed, rng float64) *Platform {
	p := NewStaticPlatform(r, color)
	p.Movable = true
	p.Vertical = vertical
	p.Speed = speed
	p.Range = rng
	if vertical {
		p.Direction = -1
	} else {
		p.Direction = 1
	}
	return p
}

// Velocity returns the signed per-tick displacement of the platform
func (p *Platform) Velocity() core.Vec {
	if !p.Movable {
		return core.Vec{}
	}
	v := p.Speed * float64(p.Direction)
	if p.Vertical {
		return core.Vec{Y: v}
	}
	return core.Vec{X: v}
}

// Displacement returns the signed offset from Origin along the motion axis
func (p *Platform) Displacement() float64 {
	if p.Vertical {
		return p.Pos.Y - p.Origin.Y
	}
	return p.Pos.X - p.Origin.X
}
