package engine

// Cues receives one-shot audio side effects from the session
// Implementations must not block the tick
type Cues interface {
	PlayVictory()
	StopVictory()
	PlayPickup()
	PlayHurt()
}

// NopCues discards every cue; used headless and in tests
type NopCues struct{}

func (NopCues) PlayVictory() {}
func (NopCues) StopVictory() {}
func (NopCues) PlayPickup()  {}
func (NopCues) PlayHurt()    {}
