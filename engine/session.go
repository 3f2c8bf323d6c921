package engine

import (
	"errors"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/lixenwraith/snowhop/core"
	"github.com/lixenwraith/snowhop/engine/fsm"
	"github.com/lixenwraith/snowhop/event"
	"github.com/lixenwraith/snowhop/manifest"
	"github.com/lixenwraith/snowhop/parameter"
	"github.com/lixenwraith/snowhop/status"
	"github.com/lixenwraith/snowhop/system"
)

// ErrNoSuchLevel is reported when a load targets an index outside the level set
var ErrNoSuchLevel = errors.New("no such level")

// Config wires a GameSession
type Config struct {
	Levels    *manifest.LevelSet
	FSMConfig string // TOML graph, see asset.DefaultFSMConfig
	Cues      Cues   // nil means NopCues
	Status    *status.Registry
}

// GameSession owns the state machine, lives, and the current level
// Tick is single-threaded; Trigger and SelectLevel may be called from any goroutine
type GameSession struct {
	machine *fsm.Machine[*GameSession]
	levels  *manifest.LevelSet
	cues    Cues
	queue   *event.EventQueue
	drained []event.GameEvent

	Level            *LevelSession
	LevelIndex       int
	Lives            int
	VictoryCuePlayed bool

	pendingLevel int
	loadErr      error
	quit         bool
	ticks        uint64
	onTrigger    func(event.GameEvent)

	// Cached metric pointers
	statTicks   *atomic.Int64
	statDeaths  *atomic.Int64
	statPickups *atomic.Int64
	statWins    *atomic.Int64
	statState   *status.AtomicString
}

// NewGameSession builds the state machine from cfg.FSMConfig and enters its initial state
func NewGameSession(cfg Config) (*GameSession, error) {
	if cfg.Levels == nil || cfg.Levels.Len() == 0 {
		return nil, fmt.Errorf("game session: %w", ErrNoSuchLevel)
	}
	if cfg.Cues == nil {
		cfg.Cues = NopCues{}
	}
	if cfg.Status == nil {
		cfg.Status = status.NewRegistry()
	}

	s := &GameSession{
		machine:     fsm.NewMachine[*GameSession](),
		levels:      cfg.Levels,
		cues:        cfg.Cues,
		queue:       event.NewEventQueue(),
		drained:     make([]event.GameEvent, 0, parameter.EventQueueSize),
		Lives:       parameter.StartingLives,
		statTicks:   cfg.Status.Ints.Get("session.ticks"),
		statDeaths:  cfg.Status.Ints.Get("session.deaths"),
		statPickups: cfg.Status.Ints.Get("session.pickups"),
		statWins:    cfg.Status.Ints.Get("session.wins"),
		statState:   cfg.Status.Strings.Get("session.state"),
	}

	registerMachine(s.machine)
	if err := s.machine.LoadConfig([]byte(cfg.FSMConfig)); err != nil {
		return nil, fmt.Errorf("game session: %w", err)
	}
	if err := s.validateStates(); err != nil {
		return nil, err
	}
	if err := s.machine.Init(s); err != nil {
		return nil, fmt.Errorf("game session: %w", err)
	}
	s.statState.Store(s.machine.ActiveStateName())
	return s, nil
}

// validateStates rejects configs whose leaf states the session cannot present
func (s *GameSession) validateStates() error {
	for _, name := range s.machine.StateNames() {
		if _, ok := core.ParseGameState(name); !ok {
			return fmt.Errorf("game session: FSM state '%s' has no GameState", name)
		}
	}
	return nil
}

// registerMachine binds the actions and guards the FSM config may reference
func registerMachine(m *fsm.Machine[*GameSession]) {
	m.RegisterAction("ResetLives", func(s *GameSession, _ map[string]any) {
		s.Lives = parameter.StartingLives
	})
	m.RegisterAction("LoadLevel", func(s *GameSession, _ map[string]any) {
		s.loadLevel(s.pendingLevel)
	})
	m.RegisterAction("PlayVictoryCue", func(s *GameSession, _ map[string]any) {
		if s.VictoryCuePlayed {
			return
		}
		s.VictoryCuePlayed = true
		s.cues.PlayVictory()
	})
	m.RegisterAction("StopVictoryCue", func(s *GameSession, _ map[string]any) {
		s.cues.StopVictory()
		s.VictoryCuePlayed = false
	})
	m.RegisterAction("RequestQuit", func(s *GameSession, _ map[string]any) {
		s.quit = true
	})

	m.RegisterGuard("LevelReady", func(s *GameSession) bool {
		return s.Level != nil && s.loadErr == nil
	})
	m.RegisterGuard("LevelFailed", func(s *GameSession) bool {
		return s.loadErr != nil
	})
	m.RegisterGuard("HasNextLevel", (*GameSession).HasNextLevel)
}

// loadLevel tears down the current level and builds index from the manifest
func (s *GameSession) loadLevel(index int) {
	s.Level = nil
	s.loadErr = nil
	s.VictoryCuePlayed = false

	l, ok := s.levels.Level(index)
	if !ok {
		s.loadErr = fmt.Errorf("level %d: %w", index+1, ErrNoSuchLevel)
		log.Printf("session: load failed: %v", s.loadErr)
		return
	}
	ls, err := NewLevelSession(index, l)
	if err != nil {
		s.loadErr = err
		log.Printf("session: load failed: %v", err)
		return
	}
	s.Level = ls
	s.LevelIndex = index
	log.Printf("session: loaded level %d %q, %d platforms, %d pickups, %d spikes",
		index+1, ls.Name, len(ls.Platforms), ls.Total, len(ls.Hazards))
}

// Trigger queues a UI trigger for the next tick
func (s *GameSession) Trigger(et event.EventType) {
	s.queue.Push(event.GameEvent{Type: et, Tick: s.ticks})
}

// SelectLevel queues a level choice (zero-based) for the next tick
func (s *GameSession) SelectLevel(index int) {
	s.queue.Push(event.GameEvent{
		Type:    event.EventSelectLevel,
		Payload: &event.SelectLevelPayload{Index: index},
		Tick:    s.ticks,
	})
}

// OnTrigger registers a callback that observes every queued trigger as Tick drains it
// Triggers the session raises itself are not reported; a replay derives them again
// Called on the tick goroutine, after the tick counter advanced
func (s *GameSession) OnTrigger(fn func(event.GameEvent)) {
	s.onTrigger = fn
}

// Tick runs one fixed simulation step: queued triggers, pause edge, level step, tick transitions
func (s *GameSession) Tick(in core.Snapshot) {
	s.ticks++

	s.drained = s.queue.Drain(s.drained[:0])
	for _, ev := range s.drained {
		if s.onTrigger != nil {
			s.onTrigger(ev)
		}
		s.dispatch(ev)
	}

	if in.PauseToggled && s.machine.InState("Level") {
		s.dispatch(event.GameEvent{Type: event.EventPauseToggle, Tick: s.ticks})
	}

	if s.State() == core.StatePlaying {
		s.stepLevel(in)
	}

	if s.machine.Update(s) {
		s.logState("tick")
	}

	s.statTicks.Store(int64(s.ticks))
	s.statState.Store(s.machine.ActiveStateName())
}

// dispatch resolves the level a trigger refers to, then routes it through the machine
func (s *GameSession) dispatch(ev event.GameEvent) bool {
	switch ev.Type {
	case event.EventSelectLevel:
		if p, ok := ev.Payload.(*event.SelectLevelPayload); ok {
			s.pendingLevel = p.Index
		}
	case event.EventRestart:
		s.pendingLevel = s.LevelIndex
	case event.EventNextLevel:
		s.pendingLevel = s.LevelIndex + 1
	}

	fired := s.machine.HandleEvent(s, ev.Type)
	if fired {
		s.logState(ev.Type.String())
	}
	return fired
}

func (s *GameSession) stepLevel(in core.Snapshot) {
	res := s.Level.Step(in)

	switch res.Outcome {
	case system.OutcomeFallen, system.OutcomeHazardHit:
		s.Lives--
		s.statDeaths.Add(1)
		s.cues.PlayHurt()
		log.Printf("session: player %s on level %d tick %d, lives %d", res.Outcome, s.LevelIndex+1, s.Level.Ticks, s.Lives)
		if s.Lives <= 0 {
			s.dispatch(event.GameEvent{Type: event.EventPlayerOutOfLives, Tick: s.ticks})
			return
		}
		s.Level.Revive(&res)
	}

	if res.Picked > 0 {
		s.statPickups.Add(int64(res.Picked))
		s.cues.PlayPickup()
	}
	if res.GateOpened {
		log.Printf("session: gate open on level %d", s.LevelIndex+1)
	}
	if res.Completed {
		s.statWins.Add(1)
		s.dispatch(event.GameEvent{Type: event.EventLevelComplete, Tick: s.ticks})
	}
}

func (s *GameSession) logState(cause string) {
	log.Printf("session: %s -> %s", cause, s.machine.ActiveStateName())
}

// State returns the current high-level state
func (s *GameSession) State() core.GameState {
	st, _ := core.ParseGameState(s.machine.ActiveStateName())
	return st
}

// HasNextLevel reports whether a level follows the current one
func (s *GameSession) HasNextLevel() bool {
	return s.LevelIndex+1 < s.levels.Len()
}

// Levels returns the loaded level set
func (s *GameSession) Levels() *manifest.LevelSet {
	return s.levels
}

// LoadErr returns the error of the last failed level load, nil after a successful one
func (s *GameSession) LoadErr() error {
	return s.loadErr
}

// Quit reports whether the session asked the program to exit
func (s *GameSession) Quit() bool {
	return s.quit
}

// Ticks returns the number of Tick calls so far
func (s *GameSession) Ticks() uint64 {
	return s.ticks
}
