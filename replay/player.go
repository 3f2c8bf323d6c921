package replay

import (
	"fmt"

	"github.com/lixenwraith/snowhop/engine"
	"github.com/lixenwraith/snowhop/event"
)

// Player feeds a replay into a fresh session one tick at a time
type Player struct {
	rp      *Replay
	session *engine.GameSession
	next    int // Next input index
	trig    int // Next trigger index
}

// NewPlayer binds a replay to a session that has not ticked yet
func NewPlayer(rp *Replay, s *engine.GameSession) *Player {
	return &Player{rp: rp, session: s}
}

// Done reports whether every recorded tick has been replayed
func (p *Player) Done() bool {
	return p.next >= len(p.rp.Inputs)
}

// Tick returns the number of ticks replayed so far
func (p *Player) Tick() uint64 {
	return uint64(p.next)
}

// Step queues the triggers of the next tick and runs it
// Returns false once the recording is exhausted
func (p *Player) Step() (bool, error) {
	if p.Done() {
		return false, nil
	}
	tick := uint64(p.next + 1)

	for p.trig < len(p.rp.Triggers) && p.rp.Triggers[p.trig].Tick <= tick {
		tr := p.rp.Triggers[p.trig]
		p.trig++
		et, ok := event.GetEventType(tr.Type)
		if !ok || et == 0 {
			return false, fmt.Errorf("%w: %q at tick %d", ErrUnknownTrigger, tr.Type, tr.Tick)
		}
		if et == event.EventSelectLevel {
			p.session.SelectLevel(tr.Index)
		} else {
			p.session.Trigger(et)
		}
	}

	p.session.Tick(p.rp.Inputs[p.next])
	p.next++
	return true, nil
}

// Run replays every tick, calling each after it ran; each may be nil
func (p *Player) Run(each func(tick uint64)) error {
	for {
		ok, err := p.Step()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if each != nil {
			each(p.Tick())
		}
	}
}
