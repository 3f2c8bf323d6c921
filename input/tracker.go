package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snowhop/core"
	"github.com/lixenwraith/snowhop/parameter"
)

// holdState tracks one held action between terminal key events
type holdState struct {
	active    bool
	repeating bool // At least one auto-repeat seen since the press
	last      time.Time
}

// Tracker turns terminal events into the per-tick input snapshot and a queue of UI intents
// Terminals report presses and auto-repeats but never releases: an action is held until
// no event refreshed it within the hold window
// Not safe for concurrent use; feed it from the frame loop
type Tracker struct {
	keys    *KeyTable
	initial time.Duration
	repeat  time.Duration

	held    [actionCount]holdState
	pause   bool
	intents []Intent
	buttons tcell.ButtonMask
}

// NewTracker creates a tracker with the default bindings and hold windows
func NewTracker() *Tracker {
	return NewTrackerWith(DefaultKeyTable(), parameter.KeyHoldInitial, parameter.KeyHoldRepeat)
}

// NewTrackerWith creates a tracker with custom bindings and hold windows
func NewTrackerWith(keys *KeyTable, initial, repeat time.Duration) *Tracker {
	return &Tracker{
		keys:    keys,
		initial: initial,
		repeat:  repeat,
		intents: make([]Intent, 0, 8),
	}
}

// HandleEvent records a terminal event observed at now
func (t *Tracker) HandleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		entry, ok := t.keys.Lookup(ev)
		if !ok {
			return
		}
		if entry.Action != ActionNone {
			t.Press(entry.Action, now)
		}
		if entry.Intent != IntentNone {
			t.intents = append(t.intents, Intent{Type: entry.Intent, Index: entry.Index})
		}
	case *tcell.EventMouse:
		btn := ev.Buttons()
		// Edge-detect: one click per press
		if btn&tcell.Button1 != 0 && t.buttons&tcell.Button1 == 0 {
			x, y := ev.Position()
			t.intents = append(t.intents, Intent{Type: IntentClick, X: x, Y: y})
		}
		t.buttons = btn
	case *tcell.EventResize:
		t.intents = append(t.intents, Intent{Type: IntentResize})
	}
}

// Press registers a press or repeat of a
// Moving one way releases the other direction
func (t *Tracker) Press(a Action, now time.Time) {
	switch a {
	case ActionNone:
		return
	case ActionPause:
		t.pause = true
		return
	case ActionLeft:
		t.held[ActionRight] = holdState{}
	case ActionRight:
		t.held[ActionLeft] = holdState{}
	}

	h := &t.held[a]
	h.repeating = t.isHeld(h, now)
	h.active = true
	h.last = now
}

// Release drops a held action immediately
func (t *Tracker) Release(a Action) {
	if a < actionCount {
		t.held[a] = holdState{}
	}
}

// Reset releases everything and discards queued intents, used on focus changes and state switches
func (t *Tracker) Reset() {
	t.held = [actionCount]holdState{}
	t.pause = false
	t.intents = t.intents[:0]
}

func (t *Tracker) isHeld(h *holdState, now time.Time) bool {
	if !h.active {
		return false
	}
	window := t.initial
	if h.repeating {
		window = t.repeat
	}
	return now.Sub(h.last) <= window
}

// Held reports whether a is currently held
func (t *Tracker) Held(a Action, now time.Time) bool {
	if a >= actionCount {
		return false
	}
	h := &t.held[a]
	if t.isHeld(h, now) {
		return true
	}
	h.active = false
	return false
}

// Snapshot samples the held actions at now and consumes the pause edge
func (t *Tracker) Snapshot(now time.Time) core.Snapshot {
	s := core.Snapshot{
		MoveLeft:     t.Held(ActionLeft, now),
		MoveRight:    t.Held(ActionRight, now),
		JumpHeld:     t.Held(ActionJump, now),
		PauseToggled: t.pause,
	}
	t.pause = false
	return s
}

// Intents appends queued intents to dst and clears the queue
func (t *Tracker) Intents(dst []Intent) []Intent {
	dst = append(dst, t.intents...)
	t.intents = t.intents[:0]
	return dst
}
