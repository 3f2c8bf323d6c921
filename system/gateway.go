package system

import (
	"github.com/lixenwraith/snowhop/component"
	"github.com/lixenwraith/snowhop/core"
	"github.com/lixenwraith/snowhop/vmath"
)

// SyncGate opens the gate once every pickup is collected
// Returns true on the tick the gate opened
func SyncGate(g *component.Gate, collected, total int) bool {
	if collected < total {
		return false
	}
	return g.Unlock()
}

// GateReached reports whether box touches an open gate
// A closed gate is not solid and never completes the level
func GateReached(g *component.Gate, box core.Rect) bool {
	return g.Open && vmath.Overlaps(box, g.Rect())
}
