package component

import (
	"github.com/lixenwraith/snowhop/core"
)

// Player is the controllable character
// Invariant: OnGround implies Vel.Y == 0 and !IsJumping at the end of the tick that set it
type Player struct {
	core.Body

	FacingRight bool
	OnGround    bool
	IsJumping   bool

	// JumpHeldTicks counts boost ticks sampled while jump stays held
	JumpHeldTicks int

	// Riding is the movable platform under the player's feet, nil when airborne or on a static one
	// Relation only; the level session owns platforms
	Riding *Platform

	// CarriedVelX is the riding platform's horizontal speed, applied on the next tick
	CarriedVelX float64

	// JumpLatched is set when a press produced a jump and cleared on release
	// A new jump requires a fresh press
	JumpLatched bool
}

// NewPlayer places a player at spawn facing right
func NewPlayer(spawn core.Vec, w, h float64) *Player {
	return &Player{
		Body:        core.Body{Pos: spawn, W: w, H: h},
		FacingRight: true,
	}
}

// ClearMotion drops grounding, jump and riding state; position and velocity are left alone
func (p *Player) ClearMotion() {
	p.OnGround = false
	p.IsJumping = false
	p.JumpHeldTicks = 0
	p.Riding = nil
	p.CarriedVelX = 0
	p.JumpLatched = false
}
