package component

import (
	"github.com/lixenwraith/snowhop/core"
)

// Hazard is a static spike; contact is detected, never consumed
type Hazard struct {
	core.Body
}

// NewHazard builds a spike with its top-left corner at pos
func NewHazard(pos core.Vec, w, h float64) *Hazard {
	return &Hazard{Body: core.Body{Pos: pos, W: w, H: h}}
}
