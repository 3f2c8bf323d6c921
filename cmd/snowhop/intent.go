package main

import (
	"github.com/lixenwraith/snowhop/event"
	"github.com/lixenwraith/snowhop/input"
	"github.com/lixenwraith/snowhop/render"
)

// command is what one UI intent asks of the session
type command struct {
	trigger event.EventType // Zero for none
	index   int             // Level for EventSelectLevel
	quit    bool            // Leave immediately, bypassing the state machine
}

// resolveIntent maps an intent against the layout on screen
// Shortcuts only fire when the layout offers a matching button, so the session never sees
// a trigger the screen could not have produced
// Returns the command and the new keyboard selection
func resolveIntent(in input.Intent, l render.Layout, selected int) (command, int) {
	switch in.Type {
	case input.IntentQuit:
		return command{quit: true}, selected

	case input.IntentUp:
		return command{}, l.Clamp(selected - 1)
	case input.IntentDown:
		return command{}, l.Clamp(selected + 1)

	case input.IntentActivate:
		if len(l.Buttons) == 0 {
			return command{}, selected
		}
		i := l.Clamp(selected)
		return press(l.Buttons[i]), i

	case input.IntentClick:
		for i, b := range l.Buttons {
			if b.Contains(in.X, in.Y) {
				return press(b), i
			}
		}
		return command{}, selected

	case input.IntentEscape:
		return shortcut(l, selected, event.EventBack, -1)
	case input.IntentSelectLevel:
		return shortcut(l, selected, event.EventSelectLevel, in.Index)
	case input.IntentInstructions:
		return shortcut(l, selected, event.EventShowInstructions, -1)
	case input.IntentRestart:
		return shortcut(l, selected, event.EventRestart, -1)
	case input.IntentMenu:
		return shortcut(l, selected, event.EventMenu, -1)
	case input.IntentNext:
		return shortcut(l, selected, event.EventNextLevel, -1)
	}
	return command{}, selected
}

func press(b render.Button) command {
	return command{trigger: b.Trigger, index: b.Index}
}

// shortcut fires the first button with trigger et (and level index, when index >= 0)
func shortcut(l render.Layout, selected int, et event.EventType, index int) (command, int) {
	for i, b := range l.Buttons {
		if b.Trigger != et {
			continue
		}
		if index >= 0 && b.Index != index {
			continue
		}
		return press(b), i
	}
	return command{}, selected
}
