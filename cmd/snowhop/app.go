package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snowhop/core"
	"github.com/lixenwraith/snowhop/engine"
	"github.com/lixenwraith/snowhop/event"
	"github.com/lixenwraith/snowhop/input"
	"github.com/lixenwraith/snowhop/manifest"
	"github.com/lixenwraith/snowhop/render"
	"github.com/lixenwraith/snowhop/replay"
	"github.com/lixenwraith/snowhop/spectate"
)

// app glues the session to the terminal, one tick per frame
type app struct {
	session  *engine.GameSession
	tracker  *input.Tracker
	renderer *render.TerminalRenderer
	clock    *engine.FrameClock
	levels   []render.LevelInfo

	recorder *replay.Recorder // Optional
	player   *replay.Player   // Set in playback mode
	hub      *spectate.Hub    // Optional

	layout    render.Layout
	selected  int
	lastState core.GameState
	intents   []input.Intent
	done      bool
}

// run drives the loop until the session quits or the terminal closes
func (a *app) run(events <-chan tcell.Event) {
	a.clock.Start()
	defer a.clock.Stop()

	a.lastState = a.session.State()
	a.render(a.session.Frame())

	for !a.done {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			a.tracker.HandleEvent(ev, time.Now())
		case now := <-a.clock.C():
			a.frame(now)
		}
	}
}

// frame applies queued intents, advances the session once, and draws
func (a *app) frame(now time.Time) {
	a.intents = a.tracker.Intents(a.intents[:0])
	for _, in := range a.intents {
		if in.Type == input.IntentResize {
			a.renderer.Resize()
			continue
		}
		if a.player != nil {
			// Playback only listens for the way out
			if in.Type == input.IntentQuit || in.Type == input.IntentEscape {
				a.done = true
			}
			continue
		}
		cmd, sel := resolveIntent(in, a.layout, a.selected)
		a.selected = sel
		a.apply(cmd)
	}
	if a.done {
		return
	}

	if a.player != nil {
		a.tracker.Snapshot(now)
		if !a.player.Done() {
			if _, err := a.player.Step(); err != nil {
				log.Printf("replay stopped at tick %d: %v", a.player.Tick(), err)
				a.player = nil
				a.done = true
				return
			}
			if a.player.Done() {
				log.Printf("replay finished after %d ticks", a.player.Tick())
			}
		}
	} else {
		in := a.tracker.Snapshot(now)
		if a.recorder != nil {
			a.recorder.RecordInput(in)
		}
		a.session.Tick(in)
	}

	if a.session.Quit() {
		a.done = true
		return
	}

	f := a.session.Frame()
	if f.State != a.lastState {
		a.selected = 0
		a.tracker.Reset()
		a.lastState = f.State
	}
	a.render(f)
	if a.hub != nil {
		a.hub.Broadcast(f)
	}
	a.clock.Frame()
}

func (a *app) apply(cmd command) {
	switch {
	case cmd.quit:
		log.Printf("quit requested at tick %d", a.session.Ticks())
		a.done = true
	case cmd.trigger == event.EventSelectLevel:
		a.session.SelectLevel(cmd.index)
	case cmd.trigger != 0:
		a.session.Trigger(cmd.trigger)
	}
}

// levelInfos lists the level select entries of a set
func levelInfos(set *manifest.LevelSet) []render.LevelInfo {
	out := make([]render.LevelInfo, set.Len())
	for i, l := range set.Levels {
		out[i] = render.LevelInfo{Name: l.Name, Description: l.Description}
	}
	return out
}

func (a *app) render(f engine.Frame) {
	cols, rows := a.renderer.Size()
	a.layout = render.NewLayout(f, a.levels, cols, rows)
	a.selected = a.layout.Clamp(a.selected)
	a.renderer.RenderFrame(f, a.layout, a.selected)
}
