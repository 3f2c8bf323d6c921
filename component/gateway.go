package component

import (
	"github.com/lixenwraith/snowhop/core"
)

// Gate is the level exit; Open is monotonic within a session
type Gate struct {
	core.Body
	Open bool
}

// NewGate builds a closed gate covering r
func NewGate(r core.Rect) *Gate {
	return &Gate{Body: core.Body{Pos: core.Vec{X: r.X, Y: r.Y}, W: r.W, H: r.H}}
}

// Unlock opens the gate; returns true only on the closed to open transition
func (g *Gate) Unlock() bool {
	if g.Open {
		return false
	}
	g.Open = true
	return true
}
