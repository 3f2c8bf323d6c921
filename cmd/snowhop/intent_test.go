package main

import (
	"testing"

	"github.com/lixenwraith/snowhop/core"
	"github.com/lixenwraith/snowhop/engine"
	"github.com/lixenwraith/snowhop/event"
	"github.com/lixenwraith/snowhop/input"
	"github.com/lixenwraith/snowhop/render"
)

func layoutFor(state core.GameState, hasNext bool) render.Layout {
	f := engine.Frame{State: state, Name: state.String(), HasNextLevel: hasNext, Player: &engine.PlayerView{}}
	levels := []render.LevelInfo{{Name: "Frosty Start"}, {Name: "Icy Ascent"}, {Name: "Summit"}}
	return render.NewLayout(f, levels, 80, 30)
}

func TestResolveIntent(t *testing.T) {
	menu := layoutFor(core.StateMenu, false)
	selectScreen := layoutFor(core.StateLevelSelect, false)
	paused := layoutFor(core.StatePaused, false)
	lastWin := layoutFor(core.StateWinScreen, false)
	win := layoutFor(core.StateWinScreen, true)
	playing := layoutFor(core.StatePlaying, false)

	back := selectScreen.Buttons[len(selectScreen.Buttons)-1]

	tests := []struct {
		name     string
		in       input.Intent
		layout   render.Layout
		selected int
		want     command
		wantSel  int
	}{
		{"quit anywhere", input.Intent{Type: input.IntentQuit}, playing, 0, command{quit: true}, 0},
		{"activate start", input.Intent{Type: input.IntentActivate}, menu, 0, command{trigger: event.EventStart}, 0},
		{"activate quit button", input.Intent{Type: input.IntentActivate}, menu, 2, command{trigger: event.EventQuit}, 2},
		{"down wraps", input.Intent{Type: input.IntentDown}, menu, 2, command{}, 0},
		{"up wraps", input.Intent{Type: input.IntentUp}, menu, 0, command{}, 2},
		{"activate with no buttons", input.Intent{Type: input.IntentActivate}, playing, 0, command{}, 0},
		{"digit picks level", input.Intent{Type: input.IntentSelectLevel, Index: 1}, selectScreen, 0,
			command{trigger: event.EventSelectLevel, index: 1}, 1},
		{"digit past level count", input.Intent{Type: input.IntentSelectLevel, Index: 5}, selectScreen, 0, command{}, 0},
		{"digit outside level select", input.Intent{Type: input.IntentSelectLevel, Index: 0}, menu, 1, command{}, 1},
		{"escape backs out", input.Intent{Type: input.IntentEscape}, selectScreen, 0,
			command{trigger: event.EventBack}, len(selectScreen.Buttons) - 1},
		{"escape on menu", input.Intent{Type: input.IntentEscape}, menu, 0, command{}, 0},
		{"instructions shortcut", input.Intent{Type: input.IntentInstructions}, menu, 0,
			command{trigger: event.EventShowInstructions}, 1},
		{"restart while paused", input.Intent{Type: input.IntentRestart}, paused, 0, command{trigger: event.EventRestart}, 1},
		{"restart while playing", input.Intent{Type: input.IntentRestart}, playing, 0, command{}, 0},
		{"menu from paused", input.Intent{Type: input.IntentMenu}, paused, 0, command{trigger: event.EventMenu}, 2},
		{"next offered", input.Intent{Type: input.IntentNext}, win, 0, command{trigger: event.EventNextLevel}, 0},
		{"next on last level", input.Intent{Type: input.IntentNext}, lastWin, 0, command{}, 0},
		{"click back", input.Intent{Type: input.IntentClick, X: back.X + 1, Y: back.Y}, selectScreen, 0,
			command{trigger: event.EventBack}, len(selectScreen.Buttons) - 1},
		{"click miss", input.Intent{Type: input.IntentClick, X: 0, Y: 0}, selectScreen, 2, command{}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, sel := resolveIntent(tt.in, tt.layout, tt.selected)
			if got != tt.want {
				t.Errorf("command = %+v, want %+v", got, tt.want)
			}
			if sel != tt.wantSel {
				t.Errorf("selected = %d, want %d", sel, tt.wantSel)
			}
		})
	}
	t.Logf("✓ %d intent mappings", len(tests))
}
