// Package manifest defines hand-authored level data, its TOML loading and validation.
package manifest

import (
	"github.com/lixenwraith/snowhop/core"
	"github.com/lixenwraith/snowhop/parameter"
)

// LevelSet is the root of a level manifest document
type LevelSet struct {
	Levels []Level `toml:"level" json:"level" jsonschema:"required,minItems=1,description=Levels in play order"`
}

// Level is one static, versionable level layout
type Level struct {
	Name         string     `toml:"name" json:"name" jsonschema:"required,minLength=1"`
	Description  string     `toml:"description" json:"description,omitempty" jsonschema:"description=Shown on the level select screen"`
	TotalPickups int        `toml:"total_pickups" json:"total_pickups" jsonschema:"required,minimum=0,description=Must equal the number of pickups listed"`
	Spawn        *Point     `toml:"spawn" json:"spawn" jsonschema:"required,description=Player top-left corner at (re)spawn"`
	Gate         Rect       `toml:"gate" json:"gate" jsonschema:"required"`
	Platforms    []Platform `toml:"platform" json:"platform,omitempty"`
	Pickups      []Point    `toml:"pickups" json:"pickups,omitempty" jsonschema:"description=Pickup centers"`
	Hazards      []Hazard   `toml:"hazard" json:"hazard,omitempty"`
}

// Point is a position in playfield units
type Point struct {
	X float64 `toml:"x" json:"x" jsonschema:"required"`
	Y float64 `toml:"y" json:"y" jsonschema:"required"`
}

// Vec converts to the core vector type
func (p Point) Vec() core.Vec {
	return core.Vec{X: p.X, Y: p.Y}
}

// Rect is an axis-aligned box anchored at its top-left corner
type Rect struct {
	X float64 `toml:"x" json:"x" jsonschema:"required"`
	Y float64 `toml:"y" json:"y" jsonschema:"required"`
	W float64 `toml:"w" json:"w" jsonschema:"required,minimum=0"`
	H float64 `toml:"h" json:"h" jsonschema:"required,minimum=0"`
}

// Core converts to the core rectangle type
func (r Rect) Core() core.Rect {
	return core.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// Platform describes a solid rectangle, optionally oscillating
type Platform struct {
	Rect
	Color    string   `toml:"color" json:"color,omitempty" jsonschema:"description=Render color tag"`
	Movable  bool     `toml:"movable" json:"movable,omitempty"`
	Vertical bool     `toml:"vertical" json:"vertical,omitempty" jsonschema:"description=Motion axis of a movable platform"`
	Speed    *float64 `toml:"speed" json:"speed,omitempty" jsonschema:"minimum=0,description=Units per tick; axis default when omitted"`
	Range    *float64 `toml:"range" json:"range,omitempty" jsonschema:"minimum=0,description=Max displacement from origin; axis default when omitted"`
}

// Motion returns speed and range with axis defaults applied
func (p Platform) Motion() (speed, rng float64) {
	if p.Vertical {
		speed, rng = parameter.VerticalPlatformSpeed, parameter.VerticalPlatformRange
	} else {
		speed, rng = parameter.HorizontalPlatformSpeed, parameter.HorizontalPlatformRange
	}
	if p.Speed != nil {
		speed = *p.Speed
	}
	if p.Range != nil {
		rng = *p.Range
	}
	return speed, rng
}

// Hazard is a horizontal row of spikes
type Hazard struct {
	X       float64  `toml:"x" json:"x" jsonschema:"required"`
	Y       float64  `toml:"y" json:"y" jsonschema:"required"`
	Count   int      `toml:"count" json:"count" jsonschema:"required,minimum=1"`
	Spacing *float64 `toml:"spacing" json:"spacing,omitempty" jsonschema:"minimum=0,description=Horizontal stride between spikes"`
}

// Positions returns the top-left corner of every spike in the row
func (h Hazard) Positions() []core.Vec {
	stride := parameter.HazardSpacing
	if h.Spacing != nil {
		stride = *h.Spacing
	}
	out := make([]core.Vec, h.Count)
	for i := range out {
		out[i] = core.Vec{X: h.X + float64(i)*stride, Y: h.Y}
	}
	return out
}
