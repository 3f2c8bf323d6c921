package system

import (
	"github.com/lixenwraith/snowhop/component"
	"github.com/lixenwraith/snowhop/core"
	"github.com/lixenwraith/snowhop/parameter"
	"github.com/lixenwraith/snowhop/physics"
)

// Outcome is the per-tick result of a player update
type Outcome uint8

const (
	OutcomeNormal Outcome = iota
	OutcomeFallen
	OutcomeHazardHit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNormal:
		return "normal"
	case OutcomeFallen:
		return "fallen"
	case OutcomeHazardHit:
		return "hazard"
	default:
		return "unknown"
	}
}

// World is the read view of the level the player moves through
// Platforms must already be advanced for the current tick
type World struct {
	Platforms []*component.Platform
	Hazards   []*component.Hazard
	FloorY    float64 // Player is lost once its top passes this line
}

// PlayerTuning holds the controller constants
type PlayerTuning struct {
	Speed        float64
	MinJump      float64 // Initial jump velocity, negative is up
	MaxJump      float64 // Strongest velocity reachable by holding
	MaxHoldTicks int
	Gravity      float64
	MaxFall      float64
	Bands        physics.Bands
}

// DefaultPlayerTuning returns the tuned arcade constants
func DefaultPlayerTuning() PlayerTuning {
	return PlayerTuning{
		Speed:        parameter.PlayerSpeed,
		MinJump:      parameter.MinJumpPower,
		MaxJump:      parameter.MaxJumpPower,
		MaxHoldTicks: parameter.MaxJumpHoldTicks,
		Gravity:      parameter.GravityAccel,
		MaxFall:      parameter.MaxFallSpeed,
		Bands:        physics.DefaultBands,
	}
}

// PlayerController turns an input snapshot into one tick of player motion
type PlayerController struct {
	tuning PlayerTuning
}

// NewPlayerController creates a controller with the given tuning
func NewPlayerController(tuning PlayerTuning) *PlayerController {
	return &PlayerController{tuning: tuning}
}

// Tuning returns the controller constants
func (c *PlayerController) Tuning() PlayerTuning {
	return c.tuning
}

// Update advances the player one tick and reports what happened to it
func (c *PlayerController) Update(p *component.Player, in core.Snapshot, w World) Outcome {
	t := &c.tuning

	// Intent, right wins when both are held
	vx := 0.0
	if in.MoveLeft {
		vx = -t.Speed
		p.FacingRight = false
	}
	if in.MoveRight {
		vx = t.Speed
		p.FacingRight = true
	}
	p.Vel.X = vx

	c.updateJump(p, in.JumpHeld)

	physics.ApplyGravity(&p.Vel.Y, t.Gravity, t.MaxFall)

	// Horizontal: own intent plus the carry of the mover stood on last tick
	dx := vx + p.CarriedVelX
	physics.Translate(&p.Body, dx, 0)
	physics.ResolveHorizontal(&p.Body, dx, w.Platforms, t.Bands)

	// Vertical: own velocity plus the carry of a vertical mover
	dy := p.Vel.Y
	if p.Riding != nil && p.Riding.Vertical {
		dy += p.Riding.Velocity().Y
	}
	physics.Translate(&p.Body, 0, dy)

	p.OnGround = false
	p.Riding = nil
	p.CarriedVelX = 0

	if dy < 0 {
		if i := physics.ResolveHead(&p.Body, w.Platforms, t.Bands); i >= 0 {
			p.Vel.Y = 0
			p.IsJumping = false
		}
	}

	if dy >= 0 {
		if i := physics.ResolveFoot(&p.Body, w.Platforms, t.Bands); i >= 0 {
			p.Vel.Y = 0
			p.OnGround = true
			p.IsJumping = false
			if plat := w.Platforms[i]; plat.Movable {
				p.Riding = plat
				if !plat.Vertical {
					p.CarriedVelX = plat.Velocity().X
				}
			}
		}
	}

	switch {
	case p.Top() > w.FloorY:
		return OutcomeFallen
	case physics.OverlapsAny(&p.Body, w.Hazards):
		return OutcomeHazardHit
	default:
		return OutcomeNormal
	}
}

// updateJump runs the variable-height jump state machine
// A press starts a jump only from the ground and only once per press
func (c *PlayerController) updateJump(p *component.Player, held bool) {
	t := &c.tuning
	if !held {
		p.IsJumping = false
		p.JumpLatched = false
		return
	}

	switch {
	case p.OnGround && !p.IsJumping && !p.JumpLatched:
		p.IsJumping = true
		p.JumpLatched = true
		p.JumpHeldTicks = 0
		p.Vel.Y = t.MinJump
	case p.IsJumping && p.JumpHeldTicks < t.MaxHoldTicks:
		p.JumpHeldTicks++
		progress := float64(p.JumpHeldTicks) / float64(t.MaxHoldTicks)
		target := t.MinJump + (t.MaxJump-t.MinJump)*progress
		if p.Vel.Y > target {
			p.Vel.Y = target
		}
	}
}
