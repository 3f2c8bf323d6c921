package engine

import (
	"github.com/lixenwraith/snowhop/core"
)

// Frame is the per-tick output snapshot consumed by renderers and spectators
// It shares no memory with the session and may cross goroutines
type Frame struct {
	Tick  uint64         `json:"tick"`
	State core.GameState `json:"-"`
	Name  string         `json:"state"`

	LevelIndex       int    `json:"level_index"`
	LevelCount       int    `json:"level_count"`
	LevelName        string `json:"level_name,omitempty"`
	LevelDescription string `json:"level_description,omitempty"`
	HasNextLevel     bool   `json:"has_next_level"`
	LoadError        string `json:"load_error,omitempty"`

	Lives     int  `json:"lives"`
	Collected int  `json:"collected"`
	Total     int  `json:"total"`
	GateOpen  bool `json:"gate_open"`

	// Entity views, empty outside a level
	Player    *PlayerView    `json:"player,omitempty"`
	Platforms []PlatformView `json:"platforms,omitempty"`
	Pickups   []core.Rect    `json:"pickups,omitempty"`
	Hazards   []core.Rect    `json:"hazards,omitempty"`
	Gate      core.Rect      `json:"gate"`
}

// PlayerView is the player as drawn
type PlayerView struct {
	Box         core.Rect `json:"box"`
	FacingRight bool      `json:"facing_right"`
	OnGround    bool      `json:"on_ground"`
	Riding      bool      `json:"riding"` // Standing on a moving platform
}

// PlatformView is a platform as drawn
type PlatformView struct {
	Box      core.Rect `json:"box"`
	Movable  bool      `json:"movable"`
	Vertical bool      `json:"vertical"`
	Color    string    `json:"color,omitempty"`
}

// Frame captures the current session state
// Level entities are included while a level is loaded, including on the result screens
func (s *GameSession) Frame() Frame {
	f := Frame{
		Tick:         s.ticks,
		State:        s.State(),
		Name:         s.State().String(),
		LevelIndex:   s.LevelIndex,
		LevelCount:   s.levels.Len(),
		HasNextLevel: s.HasNextLevel(),
		Lives:        s.Lives,
	}
	if s.loadErr != nil {
		f.LoadError = s.loadErr.Error()
	}

	ls := s.Level
	if ls == nil {
		return f
	}
	f.LevelName = ls.Name
	f.LevelDescription = ls.Description
	f.Collected = ls.Collected
	f.Total = ls.Total
	f.GateOpen = ls.Gate.Open
	f.Gate = ls.Gate.Rect()

	p := ls.Player
	f.Player = &PlayerView{
		Box:         p.Rect(),
		FacingRight: p.FacingRight,
		OnGround:    p.OnGround,
		Riding:      p.Riding != nil,
	}

	f.Platforms = make([]PlatformView, len(ls.Platforms))
	for i, pl := range ls.Platforms {
		f.Platforms[i] = PlatformView{
			Box:      pl.Rect(),
			Movable:  pl.Movable,
			Vertical: pl.Vertical,
			Color:    pl.Color,
		}
	}

	for _, pk := range ls.Pickups {
		if !pk.Collected {
			f.Pickups = append(f.Pickups, pk.Rect())
		}
	}

	f.Hazards = make([]core.Rect, len(ls.Hazards))
	for i, h := range ls.Hazards {
		f.Hazards[i] = h.Rect()
	}
	return f
}
