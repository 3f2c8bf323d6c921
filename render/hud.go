package render

import (
	"fmt"

	"github.com/lixenwraith/snowhop/engine"
)

// HintKind selects a hint's color
type HintKind uint8

const (
	HintDoorClosed HintKind = iota
	HintDoorOpen
	HintMover
	HintPause
)

// Hint is one entry of the second HUD row
type Hint struct {
	Text string
	Kind HintKind
}

// HUDStatus is the top HUD row
func HUDStatus(f engine.Frame) string {
	return fmt.Sprintf(" Lives: %d   Gifts: %d/%d   Level %d: %s",
		f.Lives, f.Collected, f.Total, f.LevelIndex+1, f.LevelName)
}

// HUDHints returns door status, then the moving platform and pause hints
func HUDHints(f engine.Frame) []Hint {
	hints := make([]Hint, 0, 3)
	if f.GateOpen {
		hints = append(hints, Hint{"The door is open!", HintDoorOpen})
	} else {
		hints = append(hints, Hint{"Collect every gift to open the door", HintDoorClosed})
	}
	for _, p := range f.Platforms {
		if p.Movable {
			hints = append(hints, Hint{"Orange platforms move, ride them", HintMover})
			break
		}
	}
	return append(hints, Hint{"P/Esc: pause", HintPause})
}
