package engine

import (
	"errors"
	"testing"

	"github.com/lixenwraith/snowhop/asset"
	"github.com/lixenwraith/snowhop/core"
	"github.com/lixenwraith/snowhop/event"
	"github.com/lixenwraith/snowhop/manifest"
	"github.com/lixenwraith/snowhop/status"
)

type cueLog struct {
	victory, stop, pickup, hurt int
}

func (c *cueLog) PlayVictory() { c.victory++ }
func (c *cueLog) StopVictory() { c.stop++ }
func (c *cueLog) PlayPickup()  { c.pickup++ }
func (c *cueLog) PlayHurt()    { c.hurt++ }

// hazardLevel: player rests on a floor with one spike 40 units to its right
func hazardLevel() manifest.Level {
	return manifest.Level{
		Name:    "Spike",
		Spawn:   &manifest.Point{X: 100, Y: 460},
		Gate:    manifest.Rect{X: 1000, Y: 300, W: 100, H: 100},
		Hazards: []manifest.Hazard{{X: 170, Y: 465, Count: 1}},
		Platforms: []manifest.Platform{
			{Rect: manifest.Rect{X: 0, Y: 500, W: 600, H: 20}},
		},
	}
}

// gemLevel: six pickups in a row on a long floor, gate at the far end
func gemLevel() manifest.Level {
	l := manifest.Level{
		Name:         "Gems",
		TotalPickups: 6,
		Spawn:        &manifest.Point{X: 20, Y: 460},
		Gate:         manifest.Rect{X: 500, Y: 400, W: 100, H: 100},
		Platforms: []manifest.Platform{
			{Rect: manifest.Rect{X: 0, Y: 500, W: 1200, H: 20}},
		},
	}
	for i := 0; i < 6; i++ {
		l.Pickups = append(l.Pickups, manifest.Point{X: 100 + 50*float64(i), Y: 480})
	}
	return l
}

// pitLevel: spawn above nothing, the player falls out immediately
func pitLevel() manifest.Level {
	return manifest.Level{
		Name:  "Pit",
		Spawn: &manifest.Point{X: 100, Y: 600},
		Gate:  manifest.Rect{X: 1000, Y: 0, W: 100, H: 100},
	}
}

func newTestSession(t *testing.T, levels ...manifest.Level) (*GameSession, *cueLog) {
	t.Helper()
	cues := &cueLog{}
	s, err := NewGameSession(Config{
		Levels:    &manifest.LevelSet{Levels: levels},
		FSMConfig: asset.DefaultFSMConfig,
		Cues:      cues,
		Status:    status.NewRegistry(),
	})
	if err != nil {
		t.Fatalf("NewGameSession: %v", err)
	}
	if s.State() != core.StateMenu {
		t.Fatalf("initial state %s", s.State())
	}
	return s, cues
}

func startLevel(t *testing.T, s *GameSession, index int) {
	t.Helper()
	s.Trigger(event.EventStart)
	s.SelectLevel(index)
	s.Tick(core.Snapshot{})
	if s.State() != core.StatePlaying {
		t.Fatalf("state after select = %s (load err %v)", s.State(), s.LoadErr())
	}
}

func TestHazardCostsOneLifeAndRespawns(t *testing.T) {
	s, cues := newTestSession(t, hazardLevel())
	startLevel(t, s, 0)
	s.Tick(core.Snapshot{}) // settle on the floor

	spawn := s.Level.Spawn
	for tick := 1; tick <= 20; tick++ {
		before := s.Level.Player.Right()
		s.Tick(core.Snapshot{MoveRight: true})
		if s.Lives == 3 {
			continue
		}
		if before+5 <= 170 {
			t.Fatalf("tick %d: life lost before overlap (right was %.1f)", tick, before)
		}
		if tick != 9 {
			t.Fatalf("hit on tick %d, want 9", tick)
		}
		if s.Lives != 2 || cues.hurt != 1 {
			t.Fatalf("lives %d hurt cues %d", s.Lives, cues.hurt)
		}
		p := s.Level.Player
		if p.Pos != spawn || p.Vel.Y != 0 || p.Riding != nil || p.IsJumping {
			t.Fatalf("respawn state pos=%+v vel=%+v riding=%v", p.Pos, p.Vel, p.Riding != nil)
		}
		if s.State() != core.StatePlaying {
			t.Fatalf("state %s after non-fatal hit", s.State())
		}
		t.Logf("✓ Spike hit on tick %d, respawned at %+v", tick, spawn)
		return
	}
	t.Fatal("spike never hit")
}

func TestDeathTickCollectsAtSpawn(t *testing.T) {
	// Spike and the only pickup both sit on the spawn point
	l := hazardLevel()
	l.Hazards = []manifest.Hazard{{X: 105, Y: 465, Count: 1}}
	l.TotalPickups = 1
	l.Pickups = []manifest.Point{{X: 115, Y: 480}}

	s, cues := newTestSession(t, l)
	startLevel(t, s, 0)

	s.Tick(core.Snapshot{})
	if s.Lives != 2 {
		t.Fatalf("lives = %d, want 2", s.Lives)
	}
	if s.Level.Player.Pos != s.Level.Spawn {
		t.Fatalf("player at %+v, want spawn %+v", s.Level.Player.Pos, s.Level.Spawn)
	}
	if s.Level.Collected != 1 || !s.Level.Gate.Open {
		t.Fatalf("collected %d gate open %v after respawn tick", s.Level.Collected, s.Level.Gate.Open)
	}
	if cues.pickup != 1 || cues.hurt != 1 {
		t.Fatalf("cues pickup %d hurt %d", cues.pickup, cues.hurt)
	}
	t.Logf("✓ Pickup at spawn collected on the tick the player respawned")
}

func TestGateOpensOnLastPickupAndWins(t *testing.T) {
	s, cues := newTestSession(t, gemLevel())
	startLevel(t, s, 0)

	openedAt := -1
	for tick := 1; tick <= 200 && s.State() == core.StatePlaying; tick++ {
		prev := s.Level.Collected
		s.Tick(core.Snapshot{MoveRight: true})
		if s.State() != core.StatePlaying {
			break
		}
		got := s.Level.Collected
		switch {
		case got < 6 && s.Level.Gate.Open:
			t.Fatalf("tick %d: gate open with %d/6", tick, got)
		case got == 6 && prev == 5:
			if !s.Level.Gate.Open {
				t.Fatalf("tick %d: gate closed on the collecting tick", tick)
			}
			openedAt = tick
		}
	}
	if openedAt < 0 {
		t.Fatal("sixth pickup never collected")
	}
	if s.State() != core.StateWinScreen {
		t.Fatalf("state %s, want WinScreen", s.State())
	}
	if s.Level.Collected != 6 || cues.pickup != 6 {
		t.Fatalf("collected %d pickup cues %d", s.Level.Collected, cues.pickup)
	}
	if cues.victory != 1 || !s.VictoryCuePlayed {
		t.Fatalf("victory cues %d flag %v", cues.victory, s.VictoryCuePlayed)
	}

	// Staying on the win screen never replays the cue
	for i := 0; i < 30; i++ {
		s.Tick(core.Snapshot{MoveRight: true})
	}
	if cues.victory != 1 {
		t.Fatalf("victory replayed: %d", cues.victory)
	}

	s.Trigger(event.EventMenu)
	s.Tick(core.Snapshot{})
	if s.State() != core.StateMenu || cues.stop != 1 || s.VictoryCuePlayed {
		t.Fatalf("leaving win: state %s stops %d flag %v", s.State(), cues.stop, s.VictoryCuePlayed)
	}
	t.Logf("✓ Gate opened on tick %d, win reached", openedAt)
}

func TestOutOfLivesAndRestart(t *testing.T) {
	s, cues := newTestSession(t, pitLevel())
	startLevel(t, s, 0)

	for tick := 0; tick < 300 && s.State() == core.StatePlaying; tick++ {
		s.Tick(core.Snapshot{})
	}
	if s.State() != core.StateGameOver {
		t.Fatalf("state %s, want GameOver", s.State())
	}
	if s.Lives != 0 || cues.hurt != 3 {
		t.Fatalf("lives %d hurt %d", s.Lives, cues.hurt)
	}

	old := s.Level
	s.Trigger(event.EventRestart)
	s.Tick(core.Snapshot{})
	if s.State() != core.StatePlaying || s.Lives != 3 {
		t.Fatalf("restart: state %s lives %d", s.State(), s.Lives)
	}
	if s.Level == old {
		t.Fatal("restart reused the old level session")
	}
}

func TestPauseFreezesAndResumesWithoutReload(t *testing.T) {
	s, _ := newTestSession(t, hazardLevel())
	startLevel(t, s, 0)
	s.Tick(core.Snapshot{MoveRight: true})

	level := s.Level
	pos := level.Player.Pos
	s.Tick(core.Snapshot{MoveRight: true, PauseToggled: true})
	if s.State() != core.StatePaused {
		t.Fatalf("state %s, want Paused", s.State())
	}
	for i := 0; i < 10; i++ {
		s.Tick(core.Snapshot{MoveRight: true})
	}
	if level.Player.Pos != pos {
		t.Fatalf("player moved while paused: %+v -> %+v", pos, level.Player.Pos)
	}

	s.Trigger(event.EventResume)
	s.Tick(core.Snapshot{})
	if s.State() != core.StatePlaying || s.Level != level {
		t.Fatalf("resume: state %s same level %v", s.State(), s.Level == level)
	}

	s.Tick(core.Snapshot{PauseToggled: true})
	s.Tick(core.Snapshot{PauseToggled: true})
	if s.State() != core.StatePlaying {
		t.Fatalf("double toggle left state %s", s.State())
	}
}

func TestNextLevelGuard(t *testing.T) {
	s, _ := newTestSession(t, gemLevel(), gemLevel())
	startLevel(t, s, 0)
	for i := 0; i < 200 && s.State() == core.StatePlaying; i++ {
		s.Tick(core.Snapshot{MoveRight: true})
	}
	if s.State() != core.StateWinScreen || !s.HasNextLevel() {
		t.Fatalf("state %s next %v", s.State(), s.HasNextLevel())
	}

	s.Lives = 1
	s.Trigger(event.EventNextLevel)
	s.Tick(core.Snapshot{})
	if s.State() != core.StatePlaying || s.LevelIndex != 1 || s.Lives != 3 {
		t.Fatalf("next: state %s index %d lives %d", s.State(), s.LevelIndex, s.Lives)
	}

	for i := 0; i < 200 && s.State() == core.StatePlaying; i++ {
		s.Tick(core.Snapshot{MoveRight: true})
	}
	if s.HasNextLevel() {
		t.Fatal("last level reports a successor")
	}
	s.Trigger(event.EventNextLevel)
	s.Tick(core.Snapshot{})
	if s.State() != core.StateWinScreen || s.LevelIndex != 1 {
		t.Fatalf("next past end: state %s index %d", s.State(), s.LevelIndex)
	}
	t.Logf("✓ Next level past the end is a no-op")
}

func TestLoadFailureReturnsToMenu(t *testing.T) {
	s, _ := newTestSession(t, hazardLevel())
	s.Trigger(event.EventStart)
	s.SelectLevel(5)
	s.Tick(core.Snapshot{})
	if s.State() != core.StateMenu {
		t.Fatalf("state %s, want Menu", s.State())
	}
	if !errors.Is(s.LoadErr(), ErrNoSuchLevel) {
		t.Fatalf("load err = %v", s.LoadErr())
	}
	if f := s.Frame(); f.LoadError == "" || f.Player != nil {
		t.Fatalf("frame after failed load: %+v", f)
	}
}

func TestInvalidLevelRefusedAtLoad(t *testing.T) {
	bad := gemLevel()
	bad.TotalPickups = 7
	s, _ := newTestSession(t, bad)
	s.Trigger(event.EventStart)
	s.SelectLevel(0)
	s.Tick(core.Snapshot{})
	if s.State() != core.StateMenu || !errors.Is(s.LoadErr(), manifest.ErrInvalidLevel) {
		t.Fatalf("state %s err %v", s.State(), s.LoadErr())
	}
}

func TestMenuNavigation(t *testing.T) {
	s, _ := newTestSession(t, hazardLevel())

	steps := []struct {
		trigger event.EventType
		want    core.GameState
	}{
		{event.EventShowInstructions, core.StateInstructions},
		{event.EventStart, core.StateInstructions}, // ignored
		{event.EventBack, core.StateMenu},
		{event.EventStart, core.StateLevelSelect},
		{event.EventBack, core.StateMenu},
		{event.EventPauseToggle, core.StateMenu}, // ignored
		{event.EventQuit, core.StateQuit},
	}
	for _, step := range steps {
		s.Trigger(step.trigger)
		s.Tick(core.Snapshot{})
		if s.State() != step.want {
			t.Fatalf("after %s: state %s, want %s", step.trigger, s.State(), step.want)
		}
	}
	if !s.Quit() {
		t.Fatal("quit not requested")
	}
}

func TestPausedMenuAndRestart(t *testing.T) {
	s, cues := newTestSession(t, hazardLevel())
	startLevel(t, s, 0)
	s.Lives = 2

	s.Tick(core.Snapshot{PauseToggled: true})
	s.Trigger(event.EventRestart)
	s.Tick(core.Snapshot{})
	if s.State() != core.StatePlaying || s.Lives != 3 {
		t.Fatalf("paused restart: state %s lives %d", s.State(), s.Lives)
	}
	if cues.stop != 1 {
		t.Fatalf("leaving pause for restart: stops %d", cues.stop)
	}

	s.Tick(core.Snapshot{PauseToggled: true})
	s.VictoryCuePlayed = true
	s.Trigger(event.EventMenu)
	s.Tick(core.Snapshot{})
	if s.State() != core.StateMenu {
		t.Fatalf("paused menu: state %s", s.State())
	}
	if cues.stop != 2 || s.VictoryCuePlayed {
		t.Fatalf("leaving pause for menu: stops %d flag %v", cues.stop, s.VictoryCuePlayed)
	}
	t.Logf("✓ Leaving pause stops the victory cue and clears its flag")
}

func TestEmbeddedLevelsPlayable(t *testing.T) {
	set, err := manifest.Load("", asset.DefaultLevels)
	if err != nil {
		t.Fatal(err)
	}
	s, _ := newTestSession(t, set.Levels...)
	for i := range set.Levels {
		s.Trigger(event.EventMenu)
		s.Tick(core.Snapshot{})
		startLevel(t, s, i)
		for tick := 0; tick < 120; tick++ {
			s.Tick(core.Snapshot{})
		}
		if s.State() != core.StatePlaying || s.Lives != 3 {
			t.Fatalf("level %d idle: state %s lives %d", i+1, s.State(), s.Lives)
		}
		if p := s.Level.Player; !p.OnGround || p.Pos != s.Level.Spawn {
			t.Fatalf("level %d: player not resting at spawn: %+v ground=%v", i+1, p.Pos, p.OnGround)
		}
	}
}

func TestFrameSnapshot(t *testing.T) {
	s, _ := newTestSession(t, gemLevel())
	f := s.Frame()
	if f.State != core.StateMenu || f.Player != nil || f.LevelCount != 1 {
		t.Fatalf("menu frame: %+v", f)
	}

	startLevel(t, s, 0)
	s.Tick(core.Snapshot{})
	f = s.Frame()
	if f.Player == nil || !f.Player.OnGround || !f.Player.FacingRight {
		t.Fatalf("player view: %+v", f.Player)
	}
	if len(f.Pickups) != 6 || f.Total != 6 || f.GateOpen || len(f.Platforms) != 1 {
		t.Fatalf("level frame: %+v", f)
	}
	if f.Name != "Playing" || f.LevelName != "Gems" {
		t.Fatalf("names: %s %s", f.Name, f.LevelName)
	}

	// Frames are copies
	f.Platforms[0].Box.X = -1
	if s.Level.Platforms[0].Pos.X == -1 {
		t.Fatal("frame aliases session state")
	}
}

func TestSessionRejectsBadConfig(t *testing.T) {
	if _, err := NewGameSession(Config{FSMConfig: asset.DefaultFSMConfig}); !errors.Is(err, ErrNoSuchLevel) {
		t.Fatalf("no levels: %v", err)
	}
	levels := &manifest.LevelSet{Levels: []manifest.Level{hazardLevel()}}
	if _, err := NewGameSession(Config{Levels: levels, FSMConfig: "initial = \"Lobby\"\n[states.Lobby]\n"}); err == nil {
		t.Fatal("unknown state name accepted")
	}
}
