package engine

import (
	"fmt"

	"github.com/lixenwraith/snowhop/component"
	"github.com/lixenwraith/snowhop/core"
	"github.com/lixenwraith/snowhop/manifest"
	"github.com/lixenwraith/snowhop/parameter"
	"github.com/lixenwraith/snowhop/physics"
	"github.com/lixenwraith/snowhop/system"
)

// LevelSession is one running level, rebuilt from its manifest on every (re)load
// Collections are typed per entity kind and touched only by Step
type LevelSession struct {
	Index       int
	Name        string
	Description string

	Player    *component.Player
	Platforms []*component.Platform
	Pickups   []*component.Pickup
	Hazards   []*component.Hazard
	Gate      *component.Gate
	Spawn     core.Vec

	Collected int
	Total     int
	Ticks     uint64

	players   *system.PlayerController
	platforms *system.PlatformController
	floorY    float64
}

// StepResult reports what happened during one level tick
type StepResult struct {
	Outcome    system.Outcome
	Picked     int  // Pickups collected this tick
	GateOpened bool // Gate went from closed to open this tick
	Completed  bool // Player touched the open gate
}

// NewLevelSession validates the manifest entry and builds a fresh session from it
func NewLevelSession(index int, l *manifest.Level) (*LevelSession, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("level %d: %w", index+1, err)
	}

	ls := &LevelSession{
		Index:       index,
		Name:        l.Name,
		Description: l.Description,
		Spawn:       l.Spawn.Vec(),
		Total:       l.TotalPickups,
		Gate:        component.NewGate(l.Gate.Core()),
		players:     system.NewPlayerController(system.DefaultPlayerTuning()),
		platforms:   system.NewPlatformController(),
		floorY:      parameter.PlayfieldHeight,
	}

	ls.Platforms = make([]*component.Platform, 0, len(l.Platforms))
	for _, p := range l.Platforms {
		if p.Movable {
			speed, rng := p.Motion()
			ls.Platforms = append(ls.Platforms, component.NewMovingPlatform(p.Core(), p.Color, p.Vertical, speed, rng))
		} else {
			ls.Platforms = append(ls.Platforms, component.NewStaticPlatform(p.Core(), p.Color))
		}
	}

	ls.Pickups = make([]*component.Pickup, 0, len(l.Pickups))
	for _, c := range l.Pickups {
		ls.Pickups = append(ls.Pickups, &component.Pickup{
			Center: c.Vec(),
			W:      parameter.PickupWidth,
			H:      parameter.PickupHeight,
		})
	}

	for _, h := range l.Hazards {
		for _, pos := range h.Positions() {
			ls.Hazards = append(ls.Hazards, component.NewHazard(pos, parameter.HazardWidth, parameter.HazardHeight))
		}
	}

	ls.Player = component.NewPlayer(ls.Spawn, parameter.PlayerWidth, parameter.PlayerHeight)

	// A level with nothing to collect starts with the exit open
	system.SyncGate(ls.Gate, ls.Collected, ls.Total)

	return ls, nil
}

// World returns the collision view for the player controller
func (ls *LevelSession) World() system.World {
	return system.World{
		Platforms: ls.Platforms,
		Hazards:   ls.Hazards,
		FloorY:    ls.floorY,
	}
}

// Step advances platforms then the player, and resolves pickups and the gate
// A tick whose outcome is not normal stops before pickups and gate; disposition belongs to
// the caller, which finishes the tick with Revive when a life remains
func (ls *LevelSession) Step(in core.Snapshot) StepResult {
	ls.Ticks++
	ls.platforms.UpdateAll(ls.Platforms)

	res := StepResult{Outcome: ls.players.Update(ls.Player, in, ls.World())}
	if res.Outcome == system.OutcomeNormal {
		ls.interact(&res)
	}
	return res
}

// Revive respawns the player after a lost life and runs the pickup and gate checks at spawn
func (ls *LevelSession) Revive(res *StepResult) {
	ls.Respawn()
	ls.interact(res)
}

func (ls *LevelSession) interact(res *StepResult) {
	box := ls.Player.Rect()
	if res.Picked = system.CollectPickups(box, ls.Pickups); res.Picked > 0 {
		ls.Collected += res.Picked
		res.GateOpened = system.SyncGate(ls.Gate, ls.Collected, ls.Total)
	}
	res.Completed = system.GateReached(ls.Gate, box)
}

// Respawn returns the player to spawn with all transient motion state cleared
func (ls *LevelSession) Respawn() {
	physics.Place(&ls.Player.Body, ls.Spawn)
	ls.Player.ClearMotion()
}
