package core

// Snapshot is the per-tick logical input consumed by the simulation
type Snapshot struct {
	MoveLeft     bool
	MoveRight    bool
	JumpHeld     bool
	PauseToggled bool // Edge: true only on the tick the pause key was pressed
}

// Pack encodes the snapshot into a single byte for replay streams
func (s Snapshot) Pack() byte {
	var b byte
	if s.MoveLeft {
		b |= 1 << 0
	}
	if s.MoveRight {
		b |= 1 << 1
	}
	if s.JumpHeld {
		b |= 1 << 2
	}
	if s.PauseToggled {
		b |= 1 << 3
	}
	return b
}

// UnpackSnapshot is the inverse of Snapshot.Pack
func UnpackSnapshot(b byte) Snapshot {
	return Snapshot{
		MoveLeft:     b&(1<<0) != 0,
		MoveRight:    b&(1<<1) != 0,
		JumpHeld:     b&(1<<2) != 0,
		PauseToggled: b&(1<<3) != 0,
	}
}
